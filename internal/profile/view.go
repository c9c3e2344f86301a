package profile

import "github.com/google/uuid"

// Sorted returns a copy of p with every sibling list ordered by sortOrder.
// Hidden nodes are kept; this is the editor's view of the tree.
func Sorted(p Profile) Profile {
	out := p
	if p.Config != nil {
		cfg := *p.Config
		out.Config = &cfg
	}
	out.Sections = arrange(p.Sections, nil, func(s *Section) int { return s.SortOrder })
	out.KeyRoles = arrange(p.KeyRoles, nil, func(k *KeyRole) int { return k.SortOrder })
	out.SkillCategories = arrange(p.SkillCategories, nil, func(c *SkillCategory) int { return c.SortOrder })
	for i := range out.SkillCategories {
		c := &out.SkillCategories[i]
		c.Skills = arrange(c.Skills, nil, func(s *Skill) int { return s.SortOrder })
	}
	out.Companies = arrange(p.Companies, nil, func(c *Company) int { return c.SortOrder })
	for i := range out.Companies {
		c := &out.Companies[i]
		c.Projects = arrange(c.Projects, nil, func(p *Project) int { return p.SortOrder })
		for j := range c.Projects {
			pr := &c.Projects[j]
			pr.MetaItems = arrange(pr.MetaItems, nil, func(m *MetaItem) int { return m.SortOrder })
			for k := range pr.MetaItems {
				m := &pr.MetaItems[k]
				m.TechStacks = arrange(m.TechStacks, nil, func(t *TechStack) int { return t.SortOrder })
				m.Problems = arrange(m.Problems, nil, func(pb *Problem) int { return pb.SortOrder })
				for l := range m.Problems {
					pb := &m.Problems[l]
					pb.Solutions = arrange(pb.Solutions, nil, func(s *Solution) int { return s.SortOrder })
					pb.Impacts = arrange(pb.Impacts, nil, func(i *Impact) int { return i.SortOrder })
				}
			}
		}
	}
	out.Educations = arrange(p.Educations, nil, func(e *Education) int { return e.SortOrder })
	out.Certifications = arrange(p.Certifications, nil, func(c *Certification) int { return c.SortOrder })
	return out
}

// Count returns the number of nodes in p, the root excluded.
func Count(p Profile) int {
	n := 0
	walk(&p, func(NodeRef, uuid.UUID) { n++ })
	return n
}
