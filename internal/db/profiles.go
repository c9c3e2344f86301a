package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/profile-site/internal/profile"
)

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var readOnly = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

// rollback is deferred after Begin; after a commit it returns ErrTxClosed.
func rollback(ctx context.Context, tx pgx.Tx) {
	_ = tx.Rollback(ctx)
}

// LoadProfile returns the full tree of a profile, or nil if it does not exist.
func (db *DB) LoadProfile(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	tx, err := db.pool.BeginTx(ctx, readOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	p, err := loadTree(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return p, nil
}

// LoadActiveProfile returns the selected profile, or nil if none is selected.
func (db *DB) LoadActiveProfile(ctx context.Context) (*profile.Profile, error) {
	tx, err := db.pool.BeginTx(ctx, readOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	var active *uuid.UUID
	err = tx.QueryRow(ctx, `SELECT active_profile_id FROM site_settings WHERE singleton`).Scan(&active)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && active == nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active profile: %w", err)
	}

	p, err := loadTree(ctx, tx, *active)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return p, nil
}

// ListProfiles returns all profiles, most recently modified first.
func (db *DB) ListProfiles(ctx context.Context) ([]profile.Summary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT p.id, p.title, p.last_modified, COALESCE(s.active_profile_id = p.id, FALSE)
		 FROM profiles p LEFT JOIN site_settings s ON s.singleton
		 ORDER BY p.last_modified DESC, p.title`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	out := []profile.Summary{}
	for rows.Next() {
		var s profile.Summary
		if err := rows.Scan(&s.ID, &s.Title, &s.LastModified, &s.Active); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SaveProfile writes the whole tree and deletes the removed nodes in one
// transaction. Descendants of removed nodes go through ON DELETE CASCADE.
func (db *DB) SaveProfile(ctx context.Context, p *profile.Profile, removed []profile.NodeRef) error {
	if p.ID == uuid.Nil {
		return fmt.Errorf("failed to save profile: missing id")
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	b := &pgx.Batch{}
	b.Queue(upsertProfileSQL, p.ID, p.Title, p.LastModified)
	queueDeletes(b, p.ID, removed)
	queueUpserts(b, p)

	if err := tx.SendBatch(ctx, b).Close(); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteProfile removes a profile and its whole tree. The selection record
// is cleared by its foreign key.
func (db *DB) DeleteProfile(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete profile: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// ActivateProfile points the selection record at id in a single statement.
func (db *DB) ActivateProfile(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`INSERT INTO site_settings (singleton, active_profile_id)
		 SELECT TRUE, id FROM profiles WHERE id = $1
		 ON CONFLICT (singleton) DO UPDATE SET active_profile_id = EXCLUDED.active_profile_id`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to activate profile: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

func queueDeletes(b *pgx.Batch, profileID uuid.UUID, removed []profile.NodeRef) {
	byKind := make(map[profile.Kind][]uuid.UUID)
	for _, ref := range removed {
		byKind[ref.Kind] = append(byKind[ref.Kind], ref.ID)
	}
	for _, kind := range deleteOrder {
		ids := byKind[kind]
		if len(ids) == 0 {
			continue
		}
		b.Queue(fmt.Sprintf(`DELETE FROM %s WHERE profile_id = $1 AND id = ANY($2)`, nodeTables[kind]), profileID, ids)
	}
}

// queueUpserts writes parents before children so foreign keys always hold.
func queueUpserts(b *pgx.Batch, p *profile.Profile) {
	pid := p.ID
	if c := p.Config; c != nil {
		b.Queue(upsertConfigSQL, c.ID, pid, c.FullName, c.JobTitle, c.Email, c.Phone, c.Github, c.AboutParagraph)
	}
	for i, s := range p.Sections {
		b.Queue(upsertSectionSQL, s.ID, pid, s.Name, string(s.Kind), s.SortOrder, s.Visible, i)
	}
	for i, k := range p.KeyRoles {
		b.Queue(upsertKeyRoleSQL, k.ID, pid, k.RoleContent, k.SortOrder, k.Visible, i)
	}
	for i, c := range p.SkillCategories {
		b.Queue(upsertSkillCategorySQL, c.ID, pid, c.Name, c.SortOrder, c.Visible, i)
		for j, s := range c.Skills {
			b.Queue(upsertSkillSQL, s.ID, pid, c.ID, s.Name, s.SortOrder, s.Visible, j)
		}
	}
	for i, c := range p.Companies {
		b.Queue(upsertCompanySQL, c.ID, pid, c.Name, string(c.Type), c.SortOrder, c.Visible, i)
		for j, pr := range c.Projects {
			b.Queue(upsertProjectSQL, pr.ID, pid, c.ID, pr.Title, pr.SortOrder, pr.Visible, j)
			for k, m := range pr.MetaItems {
				b.Queue(upsertMetaItemSQL, m.ID, pid, pr.ID, string(m.Kind), m.Content, m.SortOrder, m.Visible, k)
				for l, t := range m.TechStacks {
					b.Queue(upsertTechStackSQL, t.ID, pid, m.ID, t.TechName, t.SortOrder, t.Visible, l)
				}
				for l, pb := range m.Problems {
					b.Queue(upsertProblemSQL, pb.ID, pid, m.ID, pb.Title, pb.SortOrder, pb.Visible, l)
					for n, s := range pb.Solutions {
						b.Queue(upsertSolutionSQL, s.ID, pid, pb.ID, s.Content, s.SortOrder, s.Visible, n)
					}
					for n, im := range pb.Impacts {
						b.Queue(upsertImpactSQL, im.ID, pid, pb.ID, im.Content, im.SortOrder, im.Visible, n)
					}
				}
			}
		}
	}
	for i, e := range p.Educations {
		b.Queue(upsertEducationSQL, e.ID, pid, e.Institution, e.Period, e.Major, e.GPA, e.AdditionalInfo, e.SortOrder, e.Visible, i)
	}
	for i, c := range p.Certifications {
		b.Queue(upsertCertificationSQL, c.ID, pid, c.Name, c.IssueDate, c.AdditionalInfo, c.SortOrder, c.Visible, i)
	}
}
