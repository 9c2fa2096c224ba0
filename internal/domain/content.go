package domain

import (
	"encoding/json"
	"time"
)

// Site content section keys. Each key maps to one row in site_content with a
// JSON payload holding per-language variants.
const (
	SectionHero       = "hero"
	SectionWhyUs      = "why_us"
	SectionServices   = "services"
	SectionHowItWorks = "how_it_works"
	SectionFAQ        = "faq"
	SectionFooter     = "footer"
)

// SiteContent is a generic versioned content section. The payload shape is
// owned by the admin editor for the section; the backend treats it as opaque
// JSON keyed by section and language.
type SiteContent struct {
	SectionKey string          `json:"section_key"`
	Content    json.RawMessage `json:"content"`
	UpdatedOn  time.Time       `json:"updated_on"`
}

// LanguageContent extracts the variant for one language ("en", "fr").
// Returns nil when the section has no payload for that language.
func (c *SiteContent) LanguageContent(lang string) json.RawMessage {
	if len(c.Content) == 0 {
		return nil
	}
	var byLang map[string]json.RawMessage
	if err := json.Unmarshal(c.Content, &byLang); err != nil {
		return nil
	}
	return byLang[lang]
}
