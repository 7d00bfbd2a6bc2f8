package domain

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Global keys. Globals are singleton documents: one row per key.
const (
	GlobalHeader = "header"
	GlobalFooter = "footer"
)

var AllGlobalKeys = []string{GlobalHeader, GlobalFooter}

// SiteGlobal is a singleton site-wide document (header, footer) edited as a
// unit. Data holds the nested nav/CTA/social tree as JSON.
type SiteGlobal struct {
	Key       string         `json:"key" gorm:"primaryKey"`
	Data      datatypes.JSON `json:"data" gorm:"type:jsonb"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// HeaderData is the document stored under the "header" key.
type HeaderData struct {
	NavItems []Link `json:"navItems"`
	CTA      *Link  `json:"cta,omitempty"`
}

// FooterColumn groups links under a heading in the footer.
type FooterColumn struct {
	Heading string `json:"heading"`
	Links   []Link `json:"links"`
}

// FooterData is the document stored under the "footer" key.
type FooterData struct {
	Columns     []FooterColumn `json:"columns"`
	SocialLinks []Link         `json:"socialLinks"`
	Copyright   string         `json:"copyright"`
}

func IsValidGlobalKey(key string) bool {
	for _, k := range AllGlobalKeys {
		if k == key {
			return true
		}
	}
	return false
}

// DefaultGlobal returns the seed document for a key. Seeded on startup so
// the site always has a header and footer to render.
func DefaultGlobal(key string) (*SiteGlobal, error) {
	var doc any
	switch key {
	case GlobalHeader:
		doc = HeaderData{
			NavItems: []Link{
				{Label: "Programs", URL: "/programs"},
				{Label: "Coaches", URL: "/coaches"},
				{Label: "About", URL: "/about"},
			},
			CTA: &Link{Label: "Register", URL: "/programs"},
		}
	case GlobalFooter:
		doc = FooterData{
			Columns: []FooterColumn{
				{Heading: "Site", Links: []Link{{Label: "Home", URL: "/"}}},
			},
		}
	default:
		return nil, ErrNotFound
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return &SiteGlobal{Key: key, Data: data}, nil
}
