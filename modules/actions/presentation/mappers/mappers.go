package mappers

import (
	"strconv"

	"github.com/iota-uz/iota-actions/modules/actions/domain/entities/action"
	"github.com/iota-uz/iota-actions/modules/actions/presentation/controllers/dtos"
	"github.com/iota-uz/iota-actions/modules/actions/presentation/viewmodels"
	"github.com/iota-uz/iota-actions/pkg/mapping"
)

const (
	DisplayTimeFormat = "02 Jan 2006 15:04"

	noBusiness    = "-"
	noProcess     = "-"
	notCompleted  = "N/A"
	unassigned    = "Unassigned"
	unknownStatus = "Unknown"
)

func ActionToViewModel(a *action.Action) *viewmodels.Action {
	if a == nil {
		return nil
	}

	vm := &viewmodels.Action{
		ID:           strconv.FormatInt(a.ID, 10),
		BusinessName: a.BusinessName(),
		Process:      a.ProcessLabel(),
		Description:  a.Description,
		DueAt:        a.DueAt.Format(DisplayTimeFormat),
		CompletedAt:  notCompleted,
		StatusSlug:   a.StatusSlug,
		StatusName:   a.StatusLabel(),
		AssignedTo:   unassigned,
		Completed:    a.IsCompleted(),
	}
	if vm.BusinessName == "" {
		vm.BusinessName = noBusiness
	}
	if vm.Process == "" {
		vm.Process = noProcess
	}
	if vm.StatusName == "" {
		vm.StatusName = unknownStatus
	}
	if a.CompletedAt != nil {
		vm.CompletedAt = a.CompletedAt.Format(DisplayTimeFormat)
	}
	if a.AssignedUser != nil {
		vm.Assigned = true
		vm.AssignedTo = a.AssignedUser.FullName()
	}
	return vm
}

func StatusToOption(s action.Status) viewmodels.StatusOption {
	return viewmodels.StatusOption{Value: s.Slug, Label: s.Name}
}

func StatusesToOptions(statuses []action.Status) []viewmodels.StatusOption {
	return mapping.MapViewModels(statuses, StatusToOption)
}

func idString(v *int64) *string {
	if v == nil {
		return nil
	}
	s := strconv.FormatInt(*v, 10)
	return &s
}

func ActionToResponse(a *action.Action) *dtos.ActionResponse {
	if a == nil {
		return nil
	}

	resp := &dtos.ActionResponse{
		ID:                 strconv.FormatInt(a.ID, 10),
		BusinessID:         idString(a.BusinessID),
		Process:            a.Process,
		ProcessDescription: noProcess,
		Description:        a.Description,
		DueAt:              a.DueAt,
		CompletedAt:        a.CompletedAt,
		StatusSlug:         a.StatusSlug,
		StatusName:         unknownStatus,
		AssignedUserID:     idString(a.AssignedUserID),
		CreatedAt:          a.CreatedAt,
	}
	if a.Business != nil {
		resp.Business.BusinessName = a.Business.Name
	}
	if a.ProcessDescription != nil {
		resp.ProcessDescription = *a.ProcessDescription
		resp.ActionProcess = &dtos.ActionProcessResponse{Description: *a.ProcessDescription}
	}
	if a.StatusName != nil {
		resp.StatusName = *a.StatusName
		resp.Status = &dtos.StatusResponse{Name: *a.StatusName}
	}
	if a.AssignedUser != nil {
		resp.AssignedUser = &dtos.AssignedUserResponse{
			FirstName:              a.AssignedUser.FirstName,
			LastName:               a.AssignedUser.LastName,
			ProfilePictureFilename: a.AssignedUser.ProfilePictureFilename,
		}
	}
	return resp
}
