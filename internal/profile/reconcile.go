package profile

import (
	"strings"

	"github.com/google/uuid"
)

// level is the per-node-type policy the generic sibling merge runs with.
type level[T any] struct {
	kind  Kind
	id    func(*T) uuid.UUID
	setID func(*T, uuid.UUID)
	// blank prunes incoming siblings before identity matching. nil keeps all.
	blank func(*T) bool
	// initBlank prunes the children of a brand new parent. nil keeps all.
	initBlank func(*T) bool
	// update copies the mutable fields of src onto dst and merges children.
	update func(dst, src *T, ch *Changes)
	// adopt initializes the descendants of a new node.
	adopt func(n *T, ch *Changes)
	// cascade accounts for the descendants removed together with n.
	cascade func(n *T, ch *Changes)
}

// reconcile merges one incoming sibling list into the persisted one and
// returns the new persisted list. Surviving persisted nodes keep their
// position, new nodes are appended in incoming order; nothing is re-sorted.
func (l level[T]) reconcile(persisted, incoming []T, ch *Changes) []T {
	incoming = pruneBlank(incoming, l.blank)

	keep := make(map[uuid.UUID]struct{}, len(incoming))
	for i := range incoming {
		if id := l.id(&incoming[i]); id != uuid.Nil {
			keep[id] = struct{}{}
		}
	}

	out := make([]T, 0, len(persisted)+len(incoming))
	byID := make(map[uuid.UUID]int, len(persisted))
	for i := range persisted {
		n := persisted[i]
		id := l.id(&n)
		if id != uuid.Nil {
			if _, ok := keep[id]; !ok {
				ch.remove(l.kind, id)
				if l.cascade != nil {
					l.cascade(&n, ch)
				}
				continue
			}
			byID[id] = len(out)
		}
		out = append(out, n)
	}

	for i := range incoming {
		src := incoming[i]
		if id := l.id(&src); id != uuid.Nil {
			if pos, ok := byID[id]; ok {
				l.update(&out[pos], &src, ch)
				ch.Updated[l.kind]++
				continue
			}
		}
		l.insert(&src, ch)
		out = append(out, src)
	}
	return out
}

// insert gives n a fresh identity and initializes its subtree. Ids carried by
// unmatched incoming nodes are never adopted.
func (l level[T]) insert(n *T, ch *Changes) {
	l.setID(n, uuid.New())
	if l.adopt != nil {
		l.adopt(n, ch)
	}
	ch.Inserted[l.kind]++
}

// adoptAll prunes and inserts the children of a new parent.
func (l level[T]) adoptAll(items []T, ch *Changes) []T {
	out := pruneBlank(items, l.initBlank)
	for i := range out {
		l.insert(&out[i], ch)
	}
	return out
}

// dropAll accounts for a child list removed with its parent.
func (l level[T]) dropAll(items []T, ch *Changes) {
	for i := range items {
		ch.Deleted[l.kind]++
		if l.cascade != nil {
			l.cascade(&items[i], ch)
		}
	}
}

var sectionLevel = level[Section]{
	kind:  KindSection,
	id:    func(s *Section) uuid.UUID { return s.ID },
	setID: func(s *Section, id uuid.UUID) { s.ID = id },
	update: func(dst, src *Section, _ *Changes) {
		dst.Name = src.Name
		dst.Kind = src.Kind
		dst.Visible = src.Visible
		dst.SortOrder = src.SortOrder
	},
	adopt: func(s *Section, _ *Changes) {
		if s.Name == "" {
			s.Name = string(s.Kind)
		}
	},
}

var keyRoleLevel = level[KeyRole]{
	kind:      KindKeyRole,
	id:        func(k *KeyRole) uuid.UUID { return k.ID },
	setID:     func(k *KeyRole, id uuid.UUID) { k.ID = id },
	blank:     keyRoleBlank,
	initBlank: keyRoleBlank,
	update: func(dst, src *KeyRole, _ *Changes) {
		dst.RoleContent = src.RoleContent
		dst.Visible = src.Visible
		dst.SortOrder = src.SortOrder
	},
}

var skillLevel = level[Skill]{
	kind:      KindSkill,
	id:        func(s *Skill) uuid.UUID { return s.ID },
	setID:     func(s *Skill, id uuid.UUID) { s.ID = id },
	initBlank: skillBlank,
	update: func(dst, src *Skill, _ *Changes) {
		dst.Name = src.Name
		dst.SortOrder = src.SortOrder
		dst.Visible = src.Visible
	},
}

var skillCategoryLevel = level[SkillCategory]{
	kind:      KindSkillCategory,
	id:        func(c *SkillCategory) uuid.UUID { return c.ID },
	setID:     func(c *SkillCategory, id uuid.UUID) { c.ID = id },
	blank:     skillCategoryBlank,
	initBlank: skillCategoryBlank,
	update: func(dst, src *SkillCategory, ch *Changes) {
		dst.Name = src.Name
		dst.SortOrder = src.SortOrder
		dst.Visible = src.Visible
		dst.Skills = skillLevel.reconcile(dst.Skills, src.Skills, ch)
	},
	adopt: func(c *SkillCategory, ch *Changes) {
		c.Skills = skillLevel.adoptAll(c.Skills, ch)
	},
	cascade: func(c *SkillCategory, ch *Changes) {
		skillLevel.dropAll(c.Skills, ch)
	},
}

var solutionLevel = level[Solution]{
	kind:      KindSolution,
	id:        func(s *Solution) uuid.UUID { return s.ID },
	setID:     func(s *Solution, id uuid.UUID) { s.ID = id },
	blank:     solutionBlank,
	initBlank: solutionBlank,
	update: func(dst, src *Solution, _ *Changes) {
		dst.Content = src.Content
		dst.SortOrder = src.SortOrder
		dst.Visible = src.Visible
	},
}

var impactLevel = level[Impact]{
	kind:      KindImpact,
	id:        func(i *Impact) uuid.UUID { return i.ID },
	setID:     func(i *Impact, id uuid.UUID) { i.ID = id },
	blank:     impactBlank,
	initBlank: impactBlank,
	update: func(dst, src *Impact, _ *Changes) {
		dst.Content = src.Content
		dst.SortOrder = src.SortOrder
		dst.Visible = src.Visible
	},
}

var problemLevel = level[Problem]{
	kind:      KindProblem,
	id:        func(p *Problem) uuid.UUID { return p.ID },
	setID:     func(p *Problem, id uuid.UUID) { p.ID = id },
	blank:     problemBlank,
	initBlank: problemBlank,
	update: func(dst, src *Problem, ch *Changes) {
		dst.Title = src.Title
		dst.SortOrder = src.SortOrder
		dst.Visible = src.Visible
		dst.Solutions = solutionLevel.reconcile(dst.Solutions, src.Solutions, ch)
		dst.Impacts = impactLevel.reconcile(dst.Impacts, src.Impacts, ch)
	},
	adopt: func(p *Problem, ch *Changes) {
		p.Solutions = solutionLevel.adoptAll(p.Solutions, ch)
		p.Impacts = impactLevel.adoptAll(p.Impacts, ch)
	},
	cascade: func(p *Problem, ch *Changes) {
		solutionLevel.dropAll(p.Solutions, ch)
		impactLevel.dropAll(p.Impacts, ch)
	},
}

var techStackLevel = level[TechStack]{
	kind:      KindTechStack,
	id:        func(t *TechStack) uuid.UUID { return t.ID },
	setID:     func(t *TechStack, id uuid.UUID) { t.ID = id },
	blank:     techStackBlank,
	initBlank: techStackBlank,
	update: func(dst, src *TechStack, _ *Changes) {
		dst.TechName = src.TechName
		dst.SortOrder = src.SortOrder
		dst.Visible = src.Visible
	},
}

var metaItemLevel = level[MetaItem]{
	kind:      KindMetaItem,
	id:        func(m *MetaItem) uuid.UUID { return m.ID },
	setID:     func(m *MetaItem, id uuid.UUID) { m.ID = id },
	blank:     metaItemBlank,
	initBlank: metaItemBlank,
	update: func(dst, src *MetaItem, ch *Changes) {
		dst.Kind = src.Kind
		dst.Content = src.Content
		dst.SortOrder = src.SortOrder
		dst.Visible = src.Visible
		dst.TechStacks = techStackLevel.reconcile(dst.TechStacks, src.TechStacks, ch)
		dst.Problems = problemLevel.reconcile(dst.Problems, src.Problems, ch)
	},
	adopt: func(m *MetaItem, ch *Changes) {
		m.TechStacks = techStackLevel.adoptAll(m.TechStacks, ch)
		m.Problems = problemLevel.adoptAll(m.Problems, ch)
	},
	cascade: func(m *MetaItem, ch *Changes) {
		techStackLevel.dropAll(m.TechStacks, ch)
		problemLevel.dropAll(m.Problems, ch)
	},
}

var projectLevel = level[Project]{
	kind:  KindProject,
	id:    func(p *Project) uuid.UUID { return p.ID },
	setID: func(p *Project, id uuid.UUID) { p.ID = id },
	update: func(dst, src *Project, ch *Changes) {
		dst.Title = src.Title
		dst.SortOrder = src.SortOrder
		dst.Visible = src.Visible
		dst.MetaItems = metaItemLevel.reconcile(dst.MetaItems, src.MetaItems, ch)
	},
	adopt: func(p *Project, ch *Changes) {
		if isBlank(p.Title) {
			p.Title = UntitledProject
		}
		p.MetaItems = metaItemLevel.adoptAll(p.MetaItems, ch)
	},
	cascade: func(p *Project, ch *Changes) {
		metaItemLevel.dropAll(p.MetaItems, ch)
	},
}

var companyLevel = level[Company]{
	kind:      KindCompany,
	id:        func(c *Company) uuid.UUID { return c.ID },
	setID:     func(c *Company, id uuid.UUID) { c.ID = id },
	blank:     companyBlank,
	initBlank: companyBlank,
	update: func(dst, src *Company, ch *Changes) {
		dst.Name = src.Name
		dst.Type = src.Type
		dst.Visible = src.Visible
		dst.SortOrder = src.SortOrder
		dst.Projects = projectLevel.reconcile(dst.Projects, src.Projects, ch)
	},
	adopt: func(c *Company, ch *Changes) {
		if c.Type == "" {
			c.Type = CompanyWork
		}
		c.Projects = projectLevel.adoptAll(c.Projects, ch)
	},
	cascade: func(c *Company, ch *Changes) {
		projectLevel.dropAll(c.Projects, ch)
	},
}

var educationLevel = level[Education]{
	kind:      KindEducation,
	id:        func(e *Education) uuid.UUID { return e.ID },
	setID:     func(e *Education, id uuid.UUID) { e.ID = id },
	blank:     educationBlank,
	initBlank: educationBlank,
	update: func(dst, src *Education, _ *Changes) {
		dst.Institution = src.Institution
		dst.Major = src.Major
		dst.GPA = src.GPA
		dst.Period = src.Period
		dst.AdditionalInfo = src.AdditionalInfo
		dst.Visible = src.Visible
		dst.SortOrder = src.SortOrder
	},
}

var certificationLevel = level[Certification]{
	kind:      KindCertification,
	id:        func(c *Certification) uuid.UUID { return c.ID },
	setID:     func(c *Certification, id uuid.UUID) { c.ID = id },
	blank:     certificationBlank,
	initBlank: certificationBlank,
	update: func(dst, src *Certification, _ *Changes) {
		dst.Name = src.Name
		dst.IssueDate = src.IssueDate
		dst.AdditionalInfo = src.AdditionalInfo
		dst.Visible = src.Visible
		dst.SortOrder = src.SortOrder
	},
}

// Reconcile merges an editor submission into the persisted tree.
//
// It returns the new persisted tree and a summary of what changed; neither
// argument is modified. Identity problems in the submission (an id sent twice,
// or an id that lives under a different parent) are rejected before anything
// is merged. The caller persists the result and Changes.Removed in a single
// transaction.
func Reconcile(persisted, incoming Profile) (Profile, *Changes, error) {
	if err := CheckIdentities(persisted, incoming); err != nil {
		return Profile{}, nil, err
	}

	ch := newChanges()
	out := persisted
	if title := strings.TrimSpace(incoming.Title); title != "" {
		out.Title = title
	}

	switch {
	case incoming.Config != nil:
		var cfg Config
		if persisted.Config != nil {
			cfg = *persisted.Config
			ch.Updated[KindConfig]++
		} else {
			cfg.ID = uuid.New()
			ch.Inserted[KindConfig]++
		}
		cfg.FullName = incoming.Config.FullName
		cfg.JobTitle = incoming.Config.JobTitle
		cfg.AboutParagraph = incoming.Config.AboutParagraph
		cfg.Phone = incoming.Config.Phone
		cfg.Email = incoming.Config.Email
		cfg.Github = incoming.Config.Github
		out.Config = &cfg
	case persisted.Config != nil:
		cfg := *persisted.Config
		out.Config = &cfg
	}

	out.Sections = sectionLevel.reconcile(persisted.Sections, incoming.Sections, ch)
	out.KeyRoles = keyRoleLevel.reconcile(persisted.KeyRoles, incoming.KeyRoles, ch)
	out.Companies = companyLevel.reconcile(persisted.Companies, incoming.Companies, ch)
	out.SkillCategories = skillCategoryLevel.reconcile(persisted.SkillCategories, incoming.SkillCategories, ch)
	out.Educations = educationLevel.reconcile(persisted.Educations, incoming.Educations, ch)
	out.Certifications = certificationLevel.reconcile(persisted.Certifications, incoming.Certifications, ch)
	return out, ch, nil
}
