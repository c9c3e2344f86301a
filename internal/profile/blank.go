package profile

import "strings"

// isBlank reports whether s is empty or only whitespace.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// A blank node is a placeholder the editor submitted without its defining
// text. Config, Section, Skill and Project have no merge-time blank rule.

func keyRoleBlank(k *KeyRole) bool             { return isBlank(k.RoleContent) }
func companyBlank(c *Company) bool             { return isBlank(c.Name) }
func educationBlank(e *Education) bool         { return isBlank(e.Institution) }
func certificationBlank(c *Certification) bool { return isBlank(c.Name) }
func skillCategoryBlank(c *SkillCategory) bool { return isBlank(c.Name) }
func techStackBlank(t *TechStack) bool         { return isBlank(t.TechName) }
func problemBlank(p *Problem) bool             { return isBlank(p.Title) }
func solutionBlank(s *Solution) bool           { return isBlank(s.Content) }
func impactBlank(i *Impact) bool               { return isBlank(i.Content) }
func metaItemBlank(m *MetaItem) bool           { return isBlank(string(m.Kind)) }

// skillBlank only applies while a brand new category is being initialized;
// skills submitted under an existing category are kept as submitted.
func skillBlank(s *Skill) bool { return isBlank(s.Name) }

// pruneBlank returns a new slice without the elements blank reports true for.
// A nil predicate keeps everything.
func pruneBlank[T any](items []T, blank func(*T) bool) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if blank != nil && blank(&items[i]) {
			continue
		}
		out = append(out, items[i])
	}
	return out
}
