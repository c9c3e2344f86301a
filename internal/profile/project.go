package profile

import (
	"cmp"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// PublicProfile is the read-only presentation of a profile.
type PublicProfile struct {
	ProfileID uuid.UUID     `json:"-"`
	FullName  string        `json:"fullName"`
	JobTitle  string        `json:"jobTitle"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Github    string        `json:"github"`
	Sections  []SectionView `json:"sections"`
}

// SectionView is one rendered section. Content depends on Kind:
// AboutContent, []SkillGroup, []CompanyView, []EducationView or
// []CertificationView. Unknown kinds carry nil content.
type SectionView struct {
	Name    string      `json:"name"`
	Kind    SectionKind `json:"kind"`
	Order   int         `json:"order"`
	Content any         `json:"content"`
}

// AboutContent is the content of an ABOUT section.
type AboutContent struct {
	Paragraph string   `json:"paragraph"`
	KeyRoles  []string `json:"keyRoles"`
}

// SkillGroup is one visible skill category with its visible skill names.
type SkillGroup struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// CompanyView is a company entry of a PROJECTS section.
type CompanyView struct {
	Name     string        `json:"name"`
	Type     CompanyType   `json:"type"`
	Projects []ProjectView `json:"projects"`
}

// ProjectView is a visible project and its meta items.
type ProjectView struct {
	Title string     `json:"title"`
	Items []ItemView `json:"items"`
}

// ItemView is a project meta item. TechStacks is set for TECH_STACK_GROUP
// items and Problems for CONTENT_GROUP items.
type ItemView struct {
	Kind       MetaKind      `json:"kind"`
	Content    string        `json:"content,omitempty"`
	TechStacks []string      `json:"techStacks,omitempty"`
	Problems   []ProblemView `json:"problems,omitempty"`
}

// ProblemView is a problem with its solutions and impacts.
type ProblemView struct {
	Title     string   `json:"title"`
	Solutions []string `json:"solutions"`
	Impacts   []string `json:"impacts"`
}

// EducationView is an entry of an EDUCATION section.
type EducationView struct {
	Institution    string `json:"institution"`
	Period         string `json:"period"`
	Major          string `json:"major"`
	GPA            string `json:"gpa"`
	AdditionalInfo string `json:"additionalInfo"`
}

// CertificationView is an entry of a CERTIFICATION section.
type CertificationView struct {
	Name           string `json:"name"`
	IssueDate      string `json:"issueDate"`
	AdditionalInfo string `json:"additionalInfo"`
}

// arrange returns the elements keep accepts, stably sorted by order.
// A nil keep accepts everything. items is not modified.
func arrange[T any](items []T, keep func(*T) bool, order func(*T) int) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if keep == nil || keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(order(&a), order(&b))
	})
	return out
}

// mapVisible filters, orders and converts one sibling list for presentation.
func mapVisible[T, V any](items []T, visible func(*T) bool, order func(*T) int, view func(*T) V) []V {
	kept := arrange(items, visible, order)
	out := make([]V, 0, len(kept))
	for i := range kept {
		out = append(out, view(&kept[i]))
	}
	return out
}

// Present builds the public presentation of p. Each level is filtered by its
// own visible flag and ordered by sortOrder; the subtree of a hidden node is
// never visited.
func Present(p Profile) PublicProfile {
	out := PublicProfile{ProfileID: p.ID, Sections: []SectionView{}}
	if p.Config != nil {
		out.FullName = p.Config.FullName
		out.JobTitle = p.Config.JobTitle
		out.Email = p.Config.Email
		out.Phone = p.Config.Phone
		out.Github = p.Config.Github
	}
	out.Sections = mapVisible(p.Sections,
		func(s *Section) bool { return s.Visible },
		func(s *Section) int { return s.SortOrder },
		func(s *Section) SectionView {
			return SectionView{Name: s.Name, Kind: s.Kind, Order: s.SortOrder, Content: sectionContent(&p, s.Kind)}
		})
	return out
}

func sectionContent(p *Profile, kind SectionKind) any {
	switch kind {
	case SectionAbout:
		about := AboutContent{}
		if p.Config != nil {
			about.Paragraph = p.Config.AboutParagraph
		}
		about.KeyRoles = mapVisible(p.KeyRoles,
			func(k *KeyRole) bool { return k.Visible },
			func(k *KeyRole) int { return k.SortOrder },
			func(k *KeyRole) string { return k.RoleContent })
		return about
	case SectionSkills:
		return skillGroups(p.SkillCategories)
	case SectionProjects:
		return mapVisible(p.Companies,
			func(c *Company) bool { return c.Visible },
			func(c *Company) int { return c.SortOrder },
			companyView)
	case SectionEducation:
		return mapVisible(p.Educations,
			func(e *Education) bool { return e.Visible },
			func(e *Education) int { return e.SortOrder },
			func(e *Education) EducationView {
				return EducationView{
					Institution:    e.Institution,
					Period:         e.Period,
					Major:          e.Major,
					GPA:            e.GPA,
					AdditionalInfo: e.AdditionalInfo,
				}
			})
	case SectionCertification:
		return mapVisible(p.Certifications,
			func(c *Certification) bool { return c.Visible },
			func(c *Certification) int { return c.SortOrder },
			func(c *Certification) CertificationView {
				return CertificationView{Name: c.Name, IssueDate: c.IssueDate, AdditionalInfo: c.AdditionalInfo}
			})
	default:
		return nil
	}
}

// skillGroups omits categories that end up with no visible skills.
func skillGroups(categories []SkillCategory) []SkillGroup {
	out := []SkillGroup{}
	for _, c := range arrange(categories, func(c *SkillCategory) bool { return c.Visible }, func(c *SkillCategory) int { return c.SortOrder }) {
		names := mapVisible(c.Skills,
			func(s *Skill) bool { return s.Visible },
			func(s *Skill) int { return s.SortOrder },
			func(s *Skill) string { return s.Name })
		if len(names) == 0 {
			continue
		}
		out = append(out, SkillGroup{Category: c.Name, Skills: names})
	}
	return out
}

func companyView(c *Company) CompanyView {
	return CompanyView{
		Name: c.Name,
		Type: c.Type,
		Projects: mapVisible(c.Projects,
			func(p *Project) bool { return p.Visible },
			func(p *Project) int { return p.SortOrder },
			func(p *Project) ProjectView {
				return ProjectView{
					Title: p.Title,
					Items: mapVisible(p.MetaItems,
						func(m *MetaItem) bool { return m.Visible },
						func(m *MetaItem) int { return m.SortOrder },
						itemView),
				}
			}),
	}
}

func itemView(m *MetaItem) ItemView {
	v := ItemView{Kind: m.Kind, Content: m.Content}
	switch m.Kind {
	case MetaTechStackGroup:
		v.TechStacks = mapVisible(m.TechStacks,
			func(t *TechStack) bool { return t.Visible },
			func(t *TechStack) int { return t.SortOrder },
			func(t *TechStack) string { return strings.TrimSpace(t.TechName) })
	case MetaContentGroup:
		v.Problems = mapVisible(m.Problems,
			func(pb *Problem) bool { return pb.Visible },
			func(pb *Problem) int { return pb.SortOrder },
			func(pb *Problem) ProblemView {
				return ProblemView{
					Title: pb.Title,
					Solutions: mapVisible(pb.Solutions,
						func(s *Solution) bool { return s.Visible },
						func(s *Solution) int { return s.SortOrder },
						func(s *Solution) string { return s.Content }),
					Impacts: mapVisible(pb.Impacts,
						func(i *Impact) bool { return i.Visible },
						func(i *Impact) int { return i.SortOrder },
						func(i *Impact) string { return i.Content }),
				}
			})
	}
	return v
}
