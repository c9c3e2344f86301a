// Package profile holds the profile tree model and the pure algorithms that
// operate on it: blank pruning, reconciliation of editor submissions against
// the persisted tree, the public projection and uncatalogued-skill detection.
package profile

import (
	"time"

	"github.com/google/uuid"
)

// SectionKind selects which sub-projection a section embeds.
type SectionKind string

// Known section kinds.
const (
	SectionAbout         SectionKind = "ABOUT"
	SectionSkills        SectionKind = "SKILLS"
	SectionProjects      SectionKind = "PROJECTS"
	SectionEducation     SectionKind = "EDUCATION"
	SectionCertification SectionKind = "CERTIFICATION"
)

// MetaKind tags a project meta item.
type MetaKind string

// Known meta item kinds.
const (
	MetaDuration       MetaKind = "DURATION"
	MetaTechStackGroup MetaKind = "TECH_STACK_GROUP"
	MetaSummary        MetaKind = "SUMMARY"
	MetaContentGroup   MetaKind = "CONTENT_GROUP"
)

// CompanyType distinguishes employment from personal project groups.
type CompanyType string

// Company types.
const (
	CompanyWork     CompanyType = "WORK"
	CompanyPersonal CompanyType = "PERSONAL"
)

// UntitledProject is the title given to a new project submitted without one.
const UntitledProject = "Untitled Project"

// Profile is the aggregate root. Every other node lives and dies with it.
type Profile struct {
	ID           uuid.UUID `json:"id" yaml:"id"`
	Title        string    `json:"title" yaml:"title"`
	Active       bool      `json:"active" yaml:"active"`
	LastModified time.Time `json:"lastModified" yaml:"lastModified"`

	Config          *Config         `json:"config,omitempty" yaml:"config,omitempty"`
	Sections        []Section       `json:"sections" yaml:"sections"`
	KeyRoles        []KeyRole       `json:"keyRoles" yaml:"keyRoles"`
	SkillCategories []SkillCategory `json:"skillCategories" yaml:"skillCategories"`
	Companies       []Company       `json:"companies" yaml:"companies"`
	Educations      []Education     `json:"educations" yaml:"educations"`
	Certifications  []Certification `json:"certifications" yaml:"certifications"`
}

// Summary is the list-view projection of a profile root.
type Summary struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Active       bool      `json:"active"`
	LastModified time.Time `json:"lastModified"`
}

// Config is the per-profile singleton holding header and contact fields.
type Config struct {
	ID             uuid.UUID `json:"id" yaml:"id"`
	FullName       string    `json:"fullName" yaml:"fullName"`
	JobTitle       string    `json:"jobTitle" yaml:"jobTitle"`
	Email          string    `json:"email" yaml:"email"`
	Phone          string    `json:"phone" yaml:"phone"`
	Github         string    `json:"github" yaml:"github"`
	AboutParagraph string    `json:"aboutParagraph" yaml:"aboutParagraph"`
}

// Section is one entry of the ordered public page layout.
type Section struct {
	ID        uuid.UUID   `json:"id" yaml:"id"`
	Name      string      `json:"name" yaml:"name"`
	Kind      SectionKind `json:"kind" yaml:"kind"`
	SortOrder int         `json:"sortOrder" yaml:"sortOrder"`
	Visible   bool        `json:"visible" yaml:"visible"`
}

// KeyRole is a one-line highlight rendered under the about paragraph.
type KeyRole struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	RoleContent string    `json:"roleContent" yaml:"roleContent"`
	SortOrder   int       `json:"sortOrder" yaml:"sortOrder"`
	Visible     bool      `json:"visible" yaml:"visible"`
}

// SkillCategory groups curated skills.
type SkillCategory struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	SortOrder int       `json:"sortOrder" yaml:"sortOrder"`
	Visible   bool      `json:"visible" yaml:"visible"`
	Skills    []Skill   `json:"skills" yaml:"skills"`
}

// Skill is a curated skill name.
type Skill struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	SortOrder int       `json:"sortOrder" yaml:"sortOrder"`
	Visible   bool      `json:"visible" yaml:"visible"`
}

// Company groups projects done for one employer (or personal work).
type Company struct {
	ID        uuid.UUID   `json:"id" yaml:"id"`
	Name      string      `json:"name" yaml:"name"`
	Type      CompanyType `json:"type" yaml:"type"`
	SortOrder int         `json:"sortOrder" yaml:"sortOrder"`
	Visible   bool        `json:"visible" yaml:"visible"`
	Projects  []Project   `json:"projects" yaml:"projects"`
}

// Project is described by an ordered list of meta items.
type Project struct {
	ID        uuid.UUID  `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	SortOrder int        `json:"sortOrder" yaml:"sortOrder"`
	Visible   bool       `json:"visible" yaml:"visible"`
	MetaItems []MetaItem `json:"metaItems" yaml:"metaItems"`
}

// MetaItem is one block of a project description. TechStacks are only
// meaningful for TECH_STACK_GROUP items and Problems for CONTENT_GROUP items.
type MetaItem struct {
	ID         uuid.UUID   `json:"id" yaml:"id"`
	Kind       MetaKind    `json:"kind" yaml:"kind"`
	Content    string      `json:"content" yaml:"content"`
	SortOrder  int         `json:"sortOrder" yaml:"sortOrder"`
	Visible    bool        `json:"visible" yaml:"visible"`
	TechStacks []TechStack `json:"techStacks" yaml:"techStacks"`
	Problems   []Problem   `json:"problems" yaml:"problems"`
}

// TechStack is a technology tag used by a project.
type TechStack struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	TechName  string    `json:"techName" yaml:"techName"`
	SortOrder int       `json:"sortOrder" yaml:"sortOrder"`
	Visible   bool      `json:"visible" yaml:"visible"`
}

// Problem is an episode inside a content group.
type Problem struct {
	ID        uuid.UUID  `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	SortOrder int        `json:"sortOrder" yaml:"sortOrder"`
	Visible   bool       `json:"visible" yaml:"visible"`
	Solutions []Solution `json:"solutions" yaml:"solutions"`
	Impacts   []Impact   `json:"impacts" yaml:"impacts"`
}

// Solution describes how a problem was addressed.
type Solution struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	Content   string    `json:"content" yaml:"content"`
	SortOrder int       `json:"sortOrder" yaml:"sortOrder"`
	Visible   bool      `json:"visible" yaml:"visible"`
}

// Impact describes the outcome of a problem.
type Impact struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	Content   string    `json:"content" yaml:"content"`
	SortOrder int       `json:"sortOrder" yaml:"sortOrder"`
	Visible   bool      `json:"visible" yaml:"visible"`
}

// Education is a school entry.
type Education struct {
	ID             uuid.UUID `json:"id" yaml:"id"`
	Institution    string    `json:"institution" yaml:"institution"`
	Period         string    `json:"period" yaml:"period"`
	Major          string    `json:"major" yaml:"major"`
	GPA            string    `json:"gpa" yaml:"gpa"`
	AdditionalInfo string    `json:"additionalInfo" yaml:"additionalInfo"`
	SortOrder      int       `json:"sortOrder" yaml:"sortOrder"`
	Visible        bool      `json:"visible" yaml:"visible"`
}

// Certification is a license or certificate entry.
type Certification struct {
	ID             uuid.UUID `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	IssueDate      string    `json:"issueDate" yaml:"issueDate"`
	AdditionalInfo string    `json:"additionalInfo" yaml:"additionalInfo"`
	SortOrder      int       `json:"sortOrder" yaml:"sortOrder"`
	Visible        bool      `json:"visible" yaml:"visible"`
}
