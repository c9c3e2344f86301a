package profile

import "github.com/google/uuid"

// Kind names a node type. The values double as metric labels.
type Kind string

// Node kinds.
const (
	KindConfig        Kind = "config"
	KindSection       Kind = "section"
	KindKeyRole       Kind = "key_role"
	KindSkillCategory Kind = "skill_category"
	KindSkill         Kind = "skill"
	KindCompany       Kind = "company"
	KindProject       Kind = "project"
	KindMetaItem      Kind = "meta_item"
	KindTechStack     Kind = "tech_stack"
	KindProblem       Kind = "problem"
	KindSolution      Kind = "solution"
	KindImpact        Kind = "impact"
	KindEducation     Kind = "education"
	KindCertification Kind = "certification"
)

// NodeRef identifies one node.
type NodeRef struct {
	Kind Kind      `json:"kind"`
	ID   uuid.UUID `json:"id"`
}

// Changes summarizes one reconciliation. Removed lists only the nodes that
// were dropped from their own parent list; their descendants go with them and
// are counted in Deleted but not listed.
type Changes struct {
	Inserted map[Kind]int `json:"inserted"`
	Updated  map[Kind]int `json:"updated"`
	Deleted  map[Kind]int `json:"deleted"`
	Removed  []NodeRef    `json:"removed"`
}

func newChanges() *Changes {
	return &Changes{
		Inserted: map[Kind]int{},
		Updated:  map[Kind]int{},
		Deleted:  map[Kind]int{},
	}
}

func (c *Changes) remove(kind Kind, id uuid.UUID) {
	c.Removed = append(c.Removed, NodeRef{Kind: kind, ID: id})
	c.Deleted[kind]++
}

// Total returns the number of nodes touched in any way.
func (c *Changes) Total() int {
	n := 0
	for _, m := range []map[Kind]int{c.Inserted, c.Updated, c.Deleted} {
		for _, v := range m {
			n += v
		}
	}
	return n
}
