package profile

import "github.com/google/uuid"

// walk visits every node of p with its kind, id and parent id. Root-level
// nodes report parent as the profile id.
func walk(p *Profile, visit func(ref NodeRef, parent uuid.UUID)) {
	root := p.ID
	if p.Config != nil {
		visit(NodeRef{KindConfig, p.Config.ID}, root)
	}
	for _, s := range p.Sections {
		visit(NodeRef{KindSection, s.ID}, root)
	}
	for _, k := range p.KeyRoles {
		visit(NodeRef{KindKeyRole, k.ID}, root)
	}
	for _, c := range p.SkillCategories {
		visit(NodeRef{KindSkillCategory, c.ID}, root)
		for _, s := range c.Skills {
			visit(NodeRef{KindSkill, s.ID}, c.ID)
		}
	}
	for _, c := range p.Companies {
		visit(NodeRef{KindCompany, c.ID}, root)
		for _, pr := range c.Projects {
			visit(NodeRef{KindProject, pr.ID}, c.ID)
			for _, m := range pr.MetaItems {
				visit(NodeRef{KindMetaItem, m.ID}, pr.ID)
				for _, t := range m.TechStacks {
					visit(NodeRef{KindTechStack, t.ID}, m.ID)
				}
				for _, pb := range m.Problems {
					visit(NodeRef{KindProblem, pb.ID}, m.ID)
					for _, s := range pb.Solutions {
						visit(NodeRef{KindSolution, s.ID}, pb.ID)
					}
					for _, i := range pb.Impacts {
						visit(NodeRef{KindImpact, i.ID}, pb.ID)
					}
				}
			}
		}
	}
	for _, e := range p.Educations {
		visit(NodeRef{KindEducation, e.ID}, root)
	}
	for _, c := range p.Certifications {
		visit(NodeRef{KindCertification, c.ID}, root)
	}
}

// CheckIdentities rejects submissions whose ids cannot be matched safely.
//
// An id may appear at most once per kind in a submission, and an id that
// already exists in the persisted tree must be submitted under the same
// parent it is stored under. Ids found nowhere are accepted; the reconciler
// treats them as new nodes and assigns fresh ids.
func CheckIdentities(persisted, incoming Profile) error {
	owner := make(map[NodeRef]uuid.UUID)
	walk(&persisted, func(ref NodeRef, parent uuid.UUID) {
		owner[ref] = parent
	})

	incoming = withoutBlanks(persisted, incoming)
	// The submission is always about the persisted root, whatever id it carries.
	incoming.ID = persisted.ID

	var err error
	seen := make(map[NodeRef]struct{})
	walk(&incoming, func(ref NodeRef, parent uuid.UUID) {
		if err != nil || ref.ID == uuid.Nil || ref.Kind == KindConfig {
			return
		}
		if _, dup := seen[ref]; dup {
			err = &IDConflictError{Kind: ref.Kind, ID: ref.ID, Reason: "submitted more than once"}
			return
		}
		seen[ref] = struct{}{}
		if p, ok := owner[ref]; ok && p != parent {
			err = &IDConflictError{Kind: ref.Kind, ID: ref.ID, Reason: "belongs to a different parent"}
		}
	})
	return err
}

// withoutBlanks returns a copy of incoming with blank nodes (and everything
// under them) removed the way the reconciler removes them. Ids carried by
// discarded placeholders take no part in identity checks.
func withoutBlanks(persisted, incoming Profile) Profile {
	stored := make(map[uuid.UUID]struct{}, len(persisted.SkillCategories))
	for _, c := range persisted.SkillCategories {
		stored[c.ID] = struct{}{}
	}

	out := incoming
	out.KeyRoles = pruneBlank(incoming.KeyRoles, keyRoleBlank)
	out.Educations = pruneBlank(incoming.Educations, educationBlank)
	out.Certifications = pruneBlank(incoming.Certifications, certificationBlank)

	out.SkillCategories = pruneBlank(incoming.SkillCategories, skillCategoryBlank)
	for i := range out.SkillCategories {
		c := &out.SkillCategories[i]
		// Blank skills are only dropped while a new category is initialized.
		if _, ok := stored[c.ID]; c.ID == uuid.Nil || !ok {
			c.Skills = pruneBlank(c.Skills, skillBlank)
		}
	}

	out.Companies = pruneBlank(incoming.Companies, companyBlank)
	for i := range out.Companies {
		c := &out.Companies[i]
		c.Projects = pruneBlank(c.Projects, nil)
		for j := range c.Projects {
			pr := &c.Projects[j]
			pr.MetaItems = pruneBlank(pr.MetaItems, metaItemBlank)
			for k := range pr.MetaItems {
				m := &pr.MetaItems[k]
				m.TechStacks = pruneBlank(m.TechStacks, techStackBlank)
				m.Problems = pruneBlank(m.Problems, problemBlank)
				for l := range m.Problems {
					pb := &m.Problems[l]
					pb.Solutions = pruneBlank(pb.Solutions, solutionBlank)
					pb.Impacts = pruneBlank(pb.Impacts, impactBlank)
				}
			}
		}
	}
	return out
}
