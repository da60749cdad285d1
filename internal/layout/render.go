package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/portfolio-cv/internal/types"
)

// SectionID names a CV section.
type SectionID string

const (
	SectionHeader     SectionID = "header"
	SectionHighlights SectionID = "highlights"
	SectionExperience SectionID = "experience"
	SectionSkills     SectionID = "skills"
	SectionEducation  SectionID = "education"
	SectionLanguages  SectionID = "languages"
	SectionProjects   SectionID = "projects"
)

// SectionOrder is the fixed render order.
var SectionOrder = []SectionID{
	SectionHeader,
	SectionHighlights,
	SectionExperience,
	SectionSkills,
	SectionEducation,
	SectionLanguages,
	SectionProjects,
}

// ParseSectionID validates a section name.
func ParseSectionID(name string) (SectionID, error) {
	id := SectionID(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range SectionOrder {
		if id == known {
			return id, nil
		}
	}
	return "", fmt.Errorf("unknown section %q", name)
}

// Options tunes a render.
type Options struct {
	// ForcedBreaks lists sections that always begin on a fresh page.
	ForcedBreaks map[SectionID]bool
	Accent       Color
}

// DefaultOptions starts the skills section on its own page.
func DefaultOptions() Options {
	return Options{
		ForcedBreaks: map[SectionID]bool{SectionSkills: true},
		Accent:       DefaultAccent,
	}
}

// Section is one step of the render plan.
type Section struct {
	ID           SectionID
	ForceNewPage bool
	render       func(*RenderContext, *types.ResumeDocument)
	empty        func(*types.ResumeDocument) bool
}

// Plan returns the sections in render order with their page-break policy.
func Plan(opts Options) []Section {
	renderers := map[SectionID]func(*RenderContext, *types.ResumeDocument){
		SectionHeader:     renderHeader,
		SectionHighlights: renderHighlights,
		SectionExperience: renderExperience,
		SectionSkills:     renderSkills,
		SectionEducation:  renderEducation,
		SectionLanguages:  renderLanguages,
		SectionProjects:   renderProjects,
	}
	empties := map[SectionID]func(*types.ResumeDocument) bool{
		SectionHeader:     func(*types.ResumeDocument) bool { return false },
		SectionHighlights: func(d *types.ResumeDocument) bool { return len(d.Highlights()) == 0 },
		SectionExperience: func(d *types.ResumeDocument) bool { return len(d.Experience) == 0 },
		SectionSkills:     func(d *types.ResumeDocument) bool { return len(SkillGroups(d.Skills)) == 0 },
		SectionEducation:  func(d *types.ResumeDocument) bool { return len(d.Education) == 0 },
		SectionLanguages:  func(d *types.ResumeDocument) bool { return len(d.Languages) == 0 },
		SectionProjects:   func(d *types.ResumeDocument) bool { return len(d.Projects) == 0 },
	}

	plan := make([]Section, 0, len(SectionOrder))
	for _, id := range SectionOrder {
		plan = append(plan, Section{
			ID:           id,
			ForceNewPage: opts.ForcedBreaks[id],
			render:       renderers[id],
			empty:        empties[id],
		})
	}
	return plan
}

// Render lays out doc onto s, section by section, and attaches the final
// page's links. Sections without content are skipped along with their
// forced page break.
func Render(s Surface, doc *types.ResumeDocument, opts Options) (Stats, error) {
	if doc == nil {
		return Stats{}, errors.New("nil resume document")
	}
	if s == nil {
		return Stats{}, errors.New("nil surface")
	}

	c := NewRenderContext(s, opts)
	for _, sec := range Plan(opts) {
		if sec.empty(doc) {
			continue
		}
		if sec.ForceNewPage {
			c.ForceNewPage()
		}
		sec.render(c, doc)
		c.Advance(SectionGap)
	}
	return c.Finish(), nil
}
