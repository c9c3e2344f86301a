package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/profile-site/internal/profile"
)

// collect runs a per-profile query and hands every row to scan.
func collect(ctx context.Context, q querier, sql string, profileID uuid.UUID, scan func(pgx.Rows) error) error {
	rows, err := q.Query(ctx, sql, profileID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// children returns the nodes stored under parent, never nil.
func children[T any](byParent map[uuid.UUID][]T, parent uuid.UUID) []T {
	if c := byParent[parent]; c != nil {
		return c
	}
	return []T{}
}

// loadTree reads one profile with all of its nodes. Rows are assembled into
// the tree through their parent ids, in stored position order.
func loadTree(ctx context.Context, q querier, id uuid.UUID) (*profile.Profile, error) {
	p := &profile.Profile{}
	err := q.QueryRow(ctx,
		`SELECT p.id, p.title, p.last_modified, COALESCE(s.active_profile_id = p.id, FALSE)
		 FROM profiles p LEFT JOIN site_settings s ON s.singleton
		 WHERE p.id = $1`,
		id,
	).Scan(&p.ID, &p.Title, &p.LastModified, &p.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var cfg profile.Config
	err = q.QueryRow(ctx,
		`SELECT id, full_name, job_title, email, phone, github, about_paragraph
		 FROM profile_configs WHERE profile_id = $1`,
		id,
	).Scan(&cfg.ID, &cfg.FullName, &cfg.JobTitle, &cfg.Email, &cfg.Phone, &cfg.Github, &cfg.AboutParagraph)
	switch {
	case err == nil:
		p.Config = &cfg
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, fmt.Errorf("failed to get profile config: %w", err)
	}

	p.Sections = []profile.Section{}
	err = collect(ctx, q,
		`SELECT id, name, kind, sort_order, is_visible FROM sections WHERE profile_id = $1 ORDER BY position`,
		id, func(r pgx.Rows) error {
			var s profile.Section
			var kind string
			if err := r.Scan(&s.ID, &s.Name, &kind, &s.SortOrder, &s.Visible); err != nil {
				return err
			}
			s.Kind = profile.SectionKind(kind)
			p.Sections = append(p.Sections, s)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to load sections: %w", err)
	}

	p.KeyRoles = []profile.KeyRole{}
	err = collect(ctx, q,
		`SELECT id, role_content, sort_order, is_visible FROM key_roles WHERE profile_id = $1 ORDER BY position`,
		id, func(r pgx.Rows) error {
			var k profile.KeyRole
			if err := r.Scan(&k.ID, &k.RoleContent, &k.SortOrder, &k.Visible); err != nil {
				return err
			}
			p.KeyRoles = append(p.KeyRoles, k)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to load key roles: %w", err)
	}

	if err := loadSkills(ctx, q, p); err != nil {
		return nil, err
	}
	if err := loadCompanies(ctx, q, p); err != nil {
		return nil, err
	}

	p.Educations = []profile.Education{}
	err = collect(ctx, q,
		`SELECT id, institution, period, major, gpa, additional_info, sort_order, is_visible
		 FROM educations WHERE profile_id = $1 ORDER BY position`,
		id, func(r pgx.Rows) error {
			var e profile.Education
			if err := r.Scan(&e.ID, &e.Institution, &e.Period, &e.Major, &e.GPA, &e.AdditionalInfo, &e.SortOrder, &e.Visible); err != nil {
				return err
			}
			p.Educations = append(p.Educations, e)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to load educations: %w", err)
	}

	p.Certifications = []profile.Certification{}
	err = collect(ctx, q,
		`SELECT id, name, issue_date, additional_info, sort_order, is_visible
		 FROM certifications WHERE profile_id = $1 ORDER BY position`,
		id, func(r pgx.Rows) error {
			var c profile.Certification
			if err := r.Scan(&c.ID, &c.Name, &c.IssueDate, &c.AdditionalInfo, &c.SortOrder, &c.Visible); err != nil {
				return err
			}
			p.Certifications = append(p.Certifications, c)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to load certifications: %w", err)
	}

	return p, nil
}

func loadSkills(ctx context.Context, q querier, p *profile.Profile) error {
	skills := make(map[uuid.UUID][]profile.Skill)
	err := collect(ctx, q,
		`SELECT id, category_id, name, sort_order, is_visible FROM skills WHERE profile_id = $1 ORDER BY position`,
		p.ID, func(r pgx.Rows) error {
			var s profile.Skill
			var parent uuid.UUID
			if err := r.Scan(&s.ID, &parent, &s.Name, &s.SortOrder, &s.Visible); err != nil {
				return err
			}
			skills[parent] = append(skills[parent], s)
			return nil
		})
	if err != nil {
		return fmt.Errorf("failed to load skills: %w", err)
	}

	p.SkillCategories = []profile.SkillCategory{}
	err = collect(ctx, q,
		`SELECT id, name, sort_order, is_visible FROM skill_categories WHERE profile_id = $1 ORDER BY position`,
		p.ID, func(r pgx.Rows) error {
			var c profile.SkillCategory
			if err := r.Scan(&c.ID, &c.Name, &c.SortOrder, &c.Visible); err != nil {
				return err
			}
			c.Skills = children(skills, c.ID)
			p.SkillCategories = append(p.SkillCategories, c)
			return nil
		})
	if err != nil {
		return fmt.Errorf("failed to load skill categories: %w", err)
	}
	return nil
}

// loadCompanies reads the project subtree leaves first so every parent can
// pick up its children as it is scanned.
func loadCompanies(ctx context.Context, q querier, p *profile.Profile) error {
	solutions := make(map[uuid.UUID][]profile.Solution)
	err := collect(ctx, q,
		`SELECT id, problem_id, content, sort_order, is_visible FROM solutions WHERE profile_id = $1 ORDER BY position`,
		p.ID, func(r pgx.Rows) error {
			var s profile.Solution
			var parent uuid.UUID
			if err := r.Scan(&s.ID, &parent, &s.Content, &s.SortOrder, &s.Visible); err != nil {
				return err
			}
			solutions[parent] = append(solutions[parent], s)
			return nil
		})
	if err != nil {
		return fmt.Errorf("failed to load solutions: %w", err)
	}

	impacts := make(map[uuid.UUID][]profile.Impact)
	err = collect(ctx, q,
		`SELECT id, problem_id, content, sort_order, is_visible FROM impacts WHERE profile_id = $1 ORDER BY position`,
		p.ID, func(r pgx.Rows) error {
			var i profile.Impact
			var parent uuid.UUID
			if err := r.Scan(&i.ID, &parent, &i.Content, &i.SortOrder, &i.Visible); err != nil {
				return err
			}
			impacts[parent] = append(impacts[parent], i)
			return nil
		})
	if err != nil {
		return fmt.Errorf("failed to load impacts: %w", err)
	}

	problems := make(map[uuid.UUID][]profile.Problem)
	err = collect(ctx, q,
		`SELECT id, meta_item_id, title, sort_order, is_visible FROM problems WHERE profile_id = $1 ORDER BY position`,
		p.ID, func(r pgx.Rows) error {
			var pb profile.Problem
			var parent uuid.UUID
			if err := r.Scan(&pb.ID, &parent, &pb.Title, &pb.SortOrder, &pb.Visible); err != nil {
				return err
			}
			pb.Solutions = children(solutions, pb.ID)
			pb.Impacts = children(impacts, pb.ID)
			problems[parent] = append(problems[parent], pb)
			return nil
		})
	if err != nil {
		return fmt.Errorf("failed to load problems: %w", err)
	}

	stacks := make(map[uuid.UUID][]profile.TechStack)
	err = collect(ctx, q,
		`SELECT id, meta_item_id, tech_name, sort_order, is_visible FROM tech_stacks WHERE profile_id = $1 ORDER BY position`,
		p.ID, func(r pgx.Rows) error {
			var t profile.TechStack
			var parent uuid.UUID
			if err := r.Scan(&t.ID, &parent, &t.TechName, &t.SortOrder, &t.Visible); err != nil {
				return err
			}
			stacks[parent] = append(stacks[parent], t)
			return nil
		})
	if err != nil {
		return fmt.Errorf("failed to load tech stacks: %w", err)
	}

	items := make(map[uuid.UUID][]profile.MetaItem)
	err = collect(ctx, q,
		`SELECT id, project_id, kind, content, sort_order, is_visible FROM project_meta_items WHERE profile_id = $1 ORDER BY position`,
		p.ID, func(r pgx.Rows) error {
			var m profile.MetaItem
			var parent uuid.UUID
			var kind string
			if err := r.Scan(&m.ID, &parent, &kind, &m.Content, &m.SortOrder, &m.Visible); err != nil {
				return err
			}
			m.Kind = profile.MetaKind(kind)
			m.TechStacks = children(stacks, m.ID)
			m.Problems = children(problems, m.ID)
			items[parent] = append(items[parent], m)
			return nil
		})
	if err != nil {
		return fmt.Errorf("failed to load meta items: %w", err)
	}

	projects := make(map[uuid.UUID][]profile.Project)
	err = collect(ctx, q,
		`SELECT id, company_id, title, sort_order, is_visible FROM projects WHERE profile_id = $1 ORDER BY position`,
		p.ID, func(r pgx.Rows) error {
			var pr profile.Project
			var parent uuid.UUID
			if err := r.Scan(&pr.ID, &parent, &pr.Title, &pr.SortOrder, &pr.Visible); err != nil {
				return err
			}
			pr.MetaItems = children(items, pr.ID)
			projects[parent] = append(projects[parent], pr)
			return nil
		})
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	p.Companies = []profile.Company{}
	err = collect(ctx, q,
		`SELECT id, name, company_type, sort_order, is_visible FROM companies WHERE profile_id = $1 ORDER BY position`,
		p.ID, func(r pgx.Rows) error {
			var c profile.Company
			var typ string
			if err := r.Scan(&c.ID, &c.Name, &typ, &c.SortOrder, &c.Visible); err != nil {
				return err
			}
			c.Type = profile.CompanyType(typ)
			c.Projects = children(projects, c.ID)
			p.Companies = append(p.Companies, c)
			return nil
		})
	if err != nil {
		return fmt.Errorf("failed to load companies: %w", err)
	}
	return nil
}
