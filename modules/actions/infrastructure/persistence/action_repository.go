package persistence

import (
	"context"
	"time"

	"github.com/go-faster/errors"

	"github.com/iota-uz/iota-actions/modules/actions/domain/entities/action"
	"github.com/iota-uz/iota-actions/modules/actions/infrastructure/persistence/models"
	"github.com/iota-uz/iota-actions/pkg/composables"
)

type ActionRepository struct{}

func NewActionRepository() action.Repository {
	return &ActionRepository{}
}

func (r *ActionRepository) List(ctx context.Context, params *action.FindParams) ([]*action.Action, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	query, args := buildListQuery(params)
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query actions")
	}
	defer rows.Close()

	var results []*action.Action
	for rows.Next() {
		var row models.Action
		if err := rows.Scan(
			&row.ID,
			&row.BusinessID,
			&row.BusinessName,
			&row.Process,
			&row.ProcessDescription,
			&row.Description,
			&row.DueAt,
			&row.CompletedAt,
			&row.StatusSlug,
			&row.StatusName,
			&row.AssignedUserID,
			&row.FirstName,
			&row.LastName,
			&row.ProfilePictureFilename,
			&row.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "scan action")
		}
		results = append(results, toDomainAction(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate actions")
	}
	return results, nil
}

func (r *ActionRepository) Count(ctx context.Context, params *action.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	query, args := buildCountQuery(params)
	var count int64
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "count actions")
	}
	return count, nil
}

func (r *ActionRepository) CountByStatus(ctx context.Context, slug string) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM actions WHERE status_slug = $1`, slug).Scan(&count); err != nil {
		return 0, errors.Wrapf(err, "count %s actions", slug)
	}
	return count, nil
}

func (r *ActionRepository) Statuses(ctx context.Context) ([]action.Status, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `SELECT slug, name FROM action_statuses ORDER BY name`)
	if err != nil {
		return nil, errors.Wrap(err, "query action statuses")
	}
	defer rows.Close()

	var statuses []action.Status
	for rows.Next() {
		var row models.Status
		if err := rows.Scan(&row.Slug, &row.Name); err != nil {
			return nil, errors.Wrap(err, "scan action status")
		}
		statuses = append(statuses, toDomainStatus(row))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate action statuses")
	}
	return statuses, nil
}

func (r *ActionRepository) Create(ctx context.Context, a *action.Action) error {
	if a == nil {
		return errors.New("action is nil")
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	row := toDBAction(a)
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}

	if err := tx.QueryRow(
		ctx,
		`INSERT INTO actions (business_id, process, description, due_at, completed_at, status_slug, assigned_user_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		row.BusinessID,
		row.Process,
		row.Description,
		row.DueAt,
		row.CompletedAt,
		row.StatusSlug,
		row.AssignedUserID,
		row.CreatedAt,
	).Scan(&a.ID, &a.CreatedAt); err != nil {
		return errors.Wrap(err, "insert action")
	}
	return nil
}
