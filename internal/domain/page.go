package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type HeroType string

const (
	HeroNone         HeroType = "none"
	HeroHighImpact   HeroType = "highImpact"
	HeroMediumImpact HeroType = "mediumImpact"
	HeroLowImpact    HeroType = "lowImpact"
)

// Link is a call-to-action reference used by heroes, blocks and globals.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Page is a staff-composed document: a hero configuration plus an ordered
// list of typed content blocks stored as a JSON document. Slug is unique and
// is the routing identifier for the rendered site.
type Page struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Slug         string         `json:"slug" gorm:"uniqueIndex;not null"`
	Title        string         `json:"title" gorm:"not null"`
	HeroType     HeroType       `json:"heroType" gorm:"not null;default:'none'"`
	HeroTagline  string         `json:"heroTagline"`
	HeroHeadline string         `json:"heroHeadline"`
	HeroMediaURL string         `json:"heroMediaUrl"`
	HeroLinks    datatypes.JSON `json:"heroLinks" gorm:"type:jsonb"` // []Link
	Blocks       datatypes.JSON `json:"blocks" gorm:"type:jsonb"`    // ordered []Block
	Published    bool           `json:"published" gorm:"not null;default:false"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

type BlockType string

const (
	BlockContent        BlockType = "content"
	BlockProgramGrid    BlockType = "programGrid"
	BlockCoachList      BlockType = "coachList"
	BlockTestimonials   BlockType = "testimonials"
	BlockFAQ            BlockType = "faq"
	BlockGallery        BlockType = "gallery"
	BlockSponsorTiers   BlockType = "sponsorTiers"
	BlockCTA            BlockType = "cta"
	BlockTournamentList BlockType = "tournamentList"
)

// Block is the envelope for one entry of a page's block list. The
// discriminant selects the renderer; Raw carries the full block record so
// each renderer can decode its own field set.
type Block struct {
	BlockType BlockType
	Raw       json.RawMessage
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var envelope struct {
		BlockType BlockType `json:"blockType"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	b.BlockType = envelope.BlockType
	b.Raw = append(b.Raw[:0], data...)
	return nil
}

func (b Block) MarshalJSON() ([]byte, error) {
	if len(b.Raw) > 0 {
		return b.Raw, nil
	}
	return json.Marshal(struct {
		BlockType BlockType `json:"blockType"`
	}{b.BlockType})
}

// DecodeBlocks parses a page's stored block list, preserving order.
func DecodeBlocks(data datatypes.JSON) ([]Block, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var blocks []Block
	if err := json.Unmarshal(data, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

// DecodeLinks parses a stored []Link document.
func DecodeLinks(data datatypes.JSON) ([]Link, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var links []Link
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, err
	}
	return links, nil
}
