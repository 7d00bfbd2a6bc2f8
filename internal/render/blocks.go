package render

import (
	"encoding/json"

	"github.com/evan/sports-club-website/internal/domain"
)

// Per-block field sets. Each renderer decodes its own payload from the block
// envelope; fields missing from the stored document simply zero out and the
// renderer omits the dependent markup.

type contentBlock struct {
	Heading string `json:"heading"`
	Body    string `json:"body"` // markdown
}

type programGridBlock struct {
	Heading      string `json:"heading"`
	ProgramType  string `json:"programType"` // facet preset, "" or "all" = no constraint
	Location     string `json:"location"`
	FeaturedOnly bool   `json:"featuredOnly"`
	Limit        int    `json:"limit"`
}

type coachListBlock struct {
	Heading string `json:"heading"`
	Limit   int    `json:"limit"`
}

type testimonialsBlock struct {
	Heading string `json:"heading"`
	Limit   int    `json:"limit"`
}

type faqItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"` // markdown
}

type faqBlock struct {
	Heading string    `json:"heading"`
	Items   []faqItem `json:"items"`
}

type galleryImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

type galleryBlock struct {
	Heading string         `json:"heading"`
	Images  []galleryImage `json:"images"`
}

type sponsorEntry struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
	URL     string `json:"url"`
}

type sponsorTier struct {
	Name     string         `json:"name"` // e.g. "Gold"
	Sponsors []sponsorEntry `json:"sponsors"`
}

type sponsorTiersBlock struct {
	Heading string        `json:"heading"`
	Tiers   []sponsorTier `json:"tiers"`
}

type ctaBlock struct {
	Heading string        `json:"heading"`
	Body    string        `json:"body"`
	Links   []domain.Link `json:"links"`
}

type tournamentListBlock struct {
	Heading string `json:"heading"`
	Limit   int    `json:"limit"`
}

func decodeBlock(b domain.Block, into any) error {
	return json.Unmarshal(b.Raw, into)
}
