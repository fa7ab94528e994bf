package persistence

import (
	"github.com/iota-uz/iota-actions/modules/actions/domain/entities/action"
	"github.com/iota-uz/iota-actions/modules/actions/infrastructure/persistence/models"
)

func toDomainAction(row *models.Action) *action.Action {
	a := &action.Action{
		ID:                 row.ID,
		BusinessID:         row.BusinessID,
		Process:            row.Process,
		ProcessDescription: row.ProcessDescription,
		Description:        row.Description,
		DueAt:              row.DueAt,
		CompletedAt:        row.CompletedAt,
		StatusSlug:         row.StatusSlug,
		StatusName:         row.StatusName,
		AssignedUserID:     row.AssignedUserID,
		CreatedAt:          row.CreatedAt,
	}
	if row.BusinessID != nil {
		a.Business = &action.Business{ID: *row.BusinessID, Name: row.BusinessName}
	}
	if row.AssignedUserID != nil {
		a.AssignedUser = &action.User{
			ID:                     *row.AssignedUserID,
			FirstName:              row.FirstName,
			LastName:               row.LastName,
			ProfilePictureFilename: row.ProfilePictureFilename,
		}
	}
	return a
}

func toDBAction(a *action.Action) *models.Action {
	return &models.Action{
		ID:             a.ID,
		BusinessID:     a.BusinessID,
		Process:        a.Process,
		Description:    a.Description,
		DueAt:          a.DueAt,
		CompletedAt:    a.CompletedAt,
		StatusSlug:     a.StatusSlug,
		AssignedUserID: a.AssignedUserID,
		CreatedAt:      a.CreatedAt,
	}
}

func toDomainStatus(row models.Status) action.Status {
	return action.Status{Slug: row.Slug, Name: row.Name}
}
