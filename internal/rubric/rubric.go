package rubric

import "fmt"

// Locale selects the language used for names, descriptions and templates.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleAR Locale = "ar"
)

// Competency is a closed identifier for the leadership competency catalog.
type Competency string

const (
	CompetencyVision                Competency = "vision"
	CompetencyCommunication         Competency = "communication"
	CompetencyDecisionMaking        Competency = "decision-making"
	CompetencyTeamBuilding          Competency = "team-building"
	CompetencyIntegrity             Competency = "integrity"
	CompetencyAdaptability          Competency = "adaptability"
	CompetencyEmpowerment           Competency = "empowerment"
	CompetencyEmotionalIntelligence Competency = "emotional-intelligence"
)

// AllCompetencies returns the catalog identifiers in canonical order.
func AllCompetencies() []Competency {
	return []Competency{
		CompetencyVision,
		CompetencyCommunication,
		CompetencyDecisionMaking,
		CompetencyTeamBuilding,
		CompetencyIntegrity,
		CompetencyAdaptability,
		CompetencyEmpowerment,
		CompetencyEmotionalIntelligence,
	}
}

// Text is the localized display strings for one competency.
type Text struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Entry holds both locales for one competency.
type Entry struct {
	EN Text `json:"en"`
	AR Text `json:"ar"`
}

// Template is a localized list of recommended actions.
type Template struct {
	EN []string `json:"en"`
	AR []string `json:"ar"`
}

// Catalog is the read-only rubric consumed by the scoring engine: competency
// display texts, recommendation templates and the fixed 1-5 rating scale.
type Catalog struct {
	entries         map[Competency]Entry
	templates       map[Competency]Template
	defaultTemplate Template
	scaleEN         [5]string
	scaleAR         [5]string
}

// Name resolves the display name for a group key. Unknown keys fall back to
// the raw key; a missing Arabic string falls back to English.
func (c *Catalog) Name(key string, loc Locale) string {
	entry, ok := c.entries[Competency(key)]
	if !ok {
		return key
	}
	if loc == LocaleAR && entry.AR.Name != "" {
		return entry.AR.Name
	}
	return entry.EN.Name
}

// Description resolves the competency description with the same fallback
// rules as Name. Unknown keys yield an empty description.
func (c *Catalog) Description(key string, loc Locale) string {
	entry, ok := c.entries[Competency(key)]
	if !ok {
		return ""
	}
	if loc == LocaleAR && entry.AR.Description != "" {
		return entry.AR.Description
	}
	return entry.EN.Description
}

// Actions returns the recommendation template for a group key, or the
// default template when the key has no dedicated one.
func (c *Catalog) Actions(key string, loc Locale) []string {
	tpl, ok := c.templates[Competency(key)]
	if !ok {
		tpl = c.defaultTemplate
	}
	if loc == LocaleAR && len(tpl.AR) > 0 {
		return append([]string(nil), tpl.AR...)
	}
	return append([]string(nil), tpl.EN...)
}

// ScaleLabels returns the five labels of the rating scale, index 0 = rating 1.
func (c *Catalog) ScaleLabels(loc Locale) []string {
	if loc == LocaleAR {
		return append([]string(nil), c.scaleAR[:]...)
	}
	return append([]string(nil), c.scaleEN[:]...)
}

// Validate checks catalog completeness: every competency needs both locales
// and a non-empty template, and the default template must exist. Meant to run
// once at startup so malformed rubric data fails fast instead of surfacing as
// silent fallbacks in production.
func (c *Catalog) Validate() error {
	if len(c.defaultTemplate.EN) == 0 {
		return fmt.Errorf("rubric: default template missing")
	}
	for _, id := range AllCompetencies() {
		entry, ok := c.entries[id]
		if !ok {
			return fmt.Errorf("rubric: competency %q has no catalog entry", id)
		}
		if entry.EN.Name == "" || entry.AR.Name == "" {
			return fmt.Errorf("rubric: competency %q is missing a localized name", id)
		}
		tpl, ok := c.templates[id]
		if !ok || len(tpl.EN) == 0 || len(tpl.AR) == 0 {
			return fmt.Errorf("rubric: competency %q is missing a recommendation template", id)
		}
	}
	return nil
}
