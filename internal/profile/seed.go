package profile

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTitle names profiles created without a title.
const DefaultTitle = "New Profile"

var defaultSections = []struct {
	name string
	kind SectionKind
}{
	{"About Me", SectionAbout},
	{"Skills", SectionSkills},
	{"Experience", SectionProjects},
	{"Education", SectionEducation},
	{"Certifications", SectionCertification},
}

// NewProfile returns an inactive profile with an empty config and the
// default section layout, every node carrying a fresh id.
func NewProfile(title string, now time.Time) Profile {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}
	p := Profile{
		ID:           uuid.New(),
		Title:        title,
		LastModified: now,
		Config:       &Config{ID: uuid.New()},
	}
	SeedSections(&p)
	return p
}

// SeedSections fills in the default layout when p has no sections.
// It reports whether anything was added.
func SeedSections(p *Profile) bool {
	if len(p.Sections) > 0 {
		return false
	}
	for i, s := range defaultSections {
		p.Sections = append(p.Sections, Section{
			ID:        uuid.New(),
			Name:      s.name,
			Kind:      s.kind,
			SortOrder: i,
			Visible:   true,
		})
	}
	return true
}
