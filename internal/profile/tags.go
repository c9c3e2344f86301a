package profile

import (
	"slices"
	"strings"
)

// DetectUncatalogued returns, sorted, the tech stack names used in visible
// project descriptions that no skill category lists yet.
//
// A tech stack counts only if it and its meta item, project and company are
// all visible. Skills are matched by trimmed name regardless of visibility.
func DetectUncatalogued(p Profile) []string {
	found := make(map[string]struct{})
	for _, c := range p.Companies {
		if !c.Visible {
			continue
		}
		for _, pr := range c.Projects {
			if !pr.Visible {
				continue
			}
			for _, m := range pr.MetaItems {
				if !m.Visible || m.Kind != MetaTechStackGroup {
					continue
				}
				for _, t := range m.TechStacks {
					name := strings.TrimSpace(t.TechName)
					if !t.Visible || name == "" {
						continue
					}
					found[name] = struct{}{}
				}
			}
		}
	}

	for _, c := range p.SkillCategories {
		for _, s := range c.Skills {
			delete(found, strings.TrimSpace(s.Name))
		}
	}

	out := make([]string, 0, len(found))
	for name := range found {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
