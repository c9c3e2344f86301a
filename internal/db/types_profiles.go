package db

import "github.com/jonathan/profile-site/internal/profile"

// nodeTables maps each node kind to the table that stores it.
var nodeTables = map[profile.Kind]string{
	profile.KindConfig:        "profile_configs",
	profile.KindSection:       "sections",
	profile.KindKeyRole:       "key_roles",
	profile.KindSkillCategory: "skill_categories",
	profile.KindSkill:         "skills",
	profile.KindCompany:       "companies",
	profile.KindProject:       "projects",
	profile.KindMetaItem:      "project_meta_items",
	profile.KindTechStack:     "tech_stacks",
	profile.KindProblem:       "problems",
	profile.KindSolution:      "solutions",
	profile.KindImpact:        "impacts",
	profile.KindEducation:     "educations",
	profile.KindCertification: "certifications",
}

// deleteOrder lists kinds children first so explicit deletes never rely on
// cascades firing mid-statement.
var deleteOrder = []profile.Kind{
	profile.KindSolution,
	profile.KindImpact,
	profile.KindProblem,
	profile.KindTechStack,
	profile.KindMetaItem,
	profile.KindProject,
	profile.KindCompany,
	profile.KindSkill,
	profile.KindSkillCategory,
	profile.KindKeyRole,
	profile.KindSection,
	profile.KindEducation,
	profile.KindCertification,
	profile.KindConfig,
}

const (
	upsertProfileSQL = `INSERT INTO profiles (id, title, last_modified)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, last_modified = EXCLUDED.last_modified`

	upsertConfigSQL = `INSERT INTO profile_configs (id, profile_id, full_name, job_title, email, phone, github, about_paragraph)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET full_name = EXCLUDED.full_name, job_title = EXCLUDED.job_title,
			email = EXCLUDED.email, phone = EXCLUDED.phone, github = EXCLUDED.github,
			about_paragraph = EXCLUDED.about_paragraph`

	upsertSectionSQL = `INSERT INTO sections (id, profile_id, name, kind, sort_order, is_visible, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, kind = EXCLUDED.kind,
			sort_order = EXCLUDED.sort_order, is_visible = EXCLUDED.is_visible, position = EXCLUDED.position`

	upsertKeyRoleSQL = `INSERT INTO key_roles (id, profile_id, role_content, sort_order, is_visible, position)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET role_content = EXCLUDED.role_content,
			sort_order = EXCLUDED.sort_order, is_visible = EXCLUDED.is_visible, position = EXCLUDED.position`

	upsertSkillCategorySQL = `INSERT INTO skill_categories (id, profile_id, name, sort_order, is_visible, position)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name,
			sort_order = EXCLUDED.sort_order, is_visible = EXCLUDED.is_visible, position = EXCLUDED.position`

	upsertSkillSQL = `INSERT INTO skills (id, profile_id, category_id, name, sort_order, is_visible, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name,
			sort_order = EXCLUDED.sort_order, is_visible = EXCLUDED.is_visible, position = EXCLUDED.position`

	upsertCompanySQL = `INSERT INTO companies (id, profile_id, name, company_type, sort_order, is_visible, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, company_type = EXCLUDED.company_type,
			sort_order = EXCLUDED.sort_order, is_visible = EXCLUDED.is_visible, position = EXCLUDED.position`

	upsertProjectSQL = `INSERT INTO projects (id, profile_id, company_id, title, sort_order, is_visible, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title,
			sort_order = EXCLUDED.sort_order, is_visible = EXCLUDED.is_visible, position = EXCLUDED.position`

	upsertMetaItemSQL = `INSERT INTO project_meta_items (id, profile_id, project_id, kind, content, sort_order, is_visible, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET kind = EXCLUDED.kind, content = EXCLUDED.content,
			sort_order = EXCLUDED.sort_order, is_visible = EXCLUDED.is_visible, position = EXCLUDED.position`

	upsertTechStackSQL = `INSERT INTO tech_stacks (id, profile_id, meta_item_id, tech_name, sort_order, is_visible, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET tech_name = EXCLUDED.tech_name,
			sort_order = EXCLUDED.sort_order, is_visible = EXCLUDED.is_visible, position = EXCLUDED.position`

	upsertProblemSQL = `INSERT INTO problems (id, profile_id, meta_item_id, title, sort_order, is_visible, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title,
			sort_order = EXCLUDED.sort_order, is_visible = EXCLUDED.is_visible, position = EXCLUDED.position`

	upsertSolutionSQL = `INSERT INTO solutions (id, profile_id, problem_id, content, sort_order, is_visible, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET content = EXCLUDED.content,
			sort_order = EXCLUDED.sort_order, is_visible = EXCLUDED.is_visible, position = EXCLUDED.position`

	upsertImpactSQL = `INSERT INTO impacts (id, profile_id, problem_id, content, sort_order, is_visible, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET content = EXCLUDED.content,
			sort_order = EXCLUDED.sort_order, is_visible = EXCLUDED.is_visible, position = EXCLUDED.position`

	upsertEducationSQL = `INSERT INTO educations (id, profile_id, institution, period, major, gpa, additional_info, sort_order, is_visible, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET institution = EXCLUDED.institution, period = EXCLUDED.period,
			major = EXCLUDED.major, gpa = EXCLUDED.gpa, additional_info = EXCLUDED.additional_info,
			sort_order = EXCLUDED.sort_order, is_visible = EXCLUDED.is_visible, position = EXCLUDED.position`

	upsertCertificationSQL = `INSERT INTO certifications (id, profile_id, name, issue_date, additional_info, sort_order, is_visible, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, issue_date = EXCLUDED.issue_date,
			additional_info = EXCLUDED.additional_info,
			sort_order = EXCLUDED.sort_order, is_visible = EXCLUDED.is_visible, position = EXCLUDED.position`
)
