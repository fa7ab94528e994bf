package persistence

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/iota-uz/iota-actions/modules/actions/domain/entities/action"
	"github.com/iota-uz/iota-actions/pkg/composables"
)

// ReferenceRepository writes the lookup records actions point at.
type ReferenceRepository struct{}

func NewReferenceRepository() *ReferenceRepository {
	return &ReferenceRepository{}
}

func (r *ReferenceRepository) UpsertStatus(ctx context.Context, s action.Status) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO action_statuses (slug, name) VALUES ($1, $2)
		ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name`,
		s.Slug, s.Name,
	); err != nil {
		return errors.Wrapf(err, "upsert status %q", s.Slug)
	}
	return nil
}

func (r *ReferenceRepository) UpsertProcess(ctx context.Context, p action.Process) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO action_processes (code, description) VALUES ($1, $2)
		ON CONFLICT (code) DO UPDATE SET description = EXCLUDED.description`,
		p.Code, p.Description,
	); err != nil {
		return errors.Wrapf(err, "upsert process %q", p.Code)
	}
	return nil
}

func (r *ReferenceRepository) CreateBusiness(ctx context.Context, b *action.Business) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	if err := tx.QueryRow(ctx,
		`INSERT INTO business (business_name) VALUES ($1) RETURNING id`,
		b.Name,
	).Scan(&b.ID); err != nil {
		return errors.Wrap(err, "insert business")
	}
	return nil
}

func (r *ReferenceRepository) CreateUser(ctx context.Context, u *action.User) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	if err := tx.QueryRow(ctx,
		`INSERT INTO users (first_name, last_name, profile_picture_filename) VALUES ($1, $2, $3) RETURNING id`,
		u.FirstName, u.LastName, u.ProfilePictureFilename,
	).Scan(&u.ID); err != nil {
		return errors.Wrap(err, "insert user")
	}
	return nil
}
