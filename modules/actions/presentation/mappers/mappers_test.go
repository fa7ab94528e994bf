package mappers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iota-uz/iota-actions/modules/actions/domain/entities/action"
)

func strPtr(v string) *string { return &v }
func idPtr(v int64) *int64    { return &v }

func TestActionToViewModel_Defaults(t *testing.T) {
	due := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	vm := ActionToViewModel(&action.Action{
		ID:          12,
		Process:     strPtr("VAT"),
		Description: "File VAT",
		DueAt:       due,
		StatusSlug:  action.StatusOutstanding,
	})
	require.Equal(t, "12", vm.ID)
	require.Equal(t, "-", vm.BusinessName)
	require.Equal(t, "VAT", vm.Process)
	require.Equal(t, "01 Mar 2024 09:30", vm.DueAt)
	require.Equal(t, "N/A", vm.CompletedAt)
	require.Equal(t, "Unknown", vm.StatusName)
	require.Equal(t, "Unassigned", vm.AssignedTo)
	require.False(t, vm.Assigned)
	require.False(t, vm.Completed)

	require.Nil(t, ActionToViewModel(nil))
}

func TestActionToViewModel_FullRow(t *testing.T) {
	due := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	done := due.Add(time.Hour)
	vm := ActionToViewModel(&action.Action{
		ID:                 3,
		Business:           &action.Business{ID: 1, Name: strPtr("Acme")},
		ProcessDescription: strPtr("VAT return"),
		DueAt:              due,
		CompletedAt:        &done,
		StatusSlug:         action.StatusCompleted,
		StatusName:         strPtr("Completed"),
		AssignedUser:       &action.User{ID: 5, FirstName: strPtr("Ann"), LastName: strPtr("Lee"), ProfilePictureFilename: strPtr("ann.png")},
	})
	require.Equal(t, "Acme", vm.BusinessName)
	require.Equal(t, "VAT return", vm.Process)
	require.Equal(t, "01 Mar 2024 10:30", vm.CompletedAt)
	require.Equal(t, "Completed", vm.StatusName)
	require.Equal(t, "Ann Lee", vm.AssignedTo)
	require.True(t, vm.Completed)
}

func TestActionToResponse_Shape(t *testing.T) {
	due := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	resp := ActionToResponse(&action.Action{
		ID:             7,
		BusinessID:     idPtr(1153),
		Business:       &action.Business{ID: 1153, Name: strPtr("Acme")},
		Description:    "File VAT",
		DueAt:          due,
		StatusSlug:     action.StatusOutstanding,
		AssignedUserID: idPtr(163),
		AssignedUser:   &action.User{ID: 163, FirstName: strPtr("Test")},
	})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	require.Equal(t, "7", decoded["id"])
	require.Equal(t, "1153", decoded["business_id"])
	require.Equal(t, "163", decoded["assigned_user_id"])
	require.Equal(t, "-", decoded["process_description"])
	require.Equal(t, "Unknown", decoded["status_name"])
	require.Nil(t, decoded["completed_at"])
	require.Nil(t, decoded["status"])
	require.Nil(t, decoded["action_process"])
	require.Equal(t, map[string]any{"business_name": "Acme"}, decoded["business"])
	user := decoded["assigned_user"].(map[string]any)
	require.Equal(t, "Test", user["first_name"])
	require.Nil(t, user["last_name"])
}

func TestActionToResponse_NoAssignee(t *testing.T) {
	raw, err := json.Marshal(ActionToResponse(&action.Action{ID: 1, StatusName: strPtr("Completed")}))
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Nil(t, decoded["assigned_user"])
	require.Nil(t, decoded["business_id"])
	require.Equal(t, "Completed", decoded["status_name"])
	require.Equal(t, map[string]any{"name": "Completed"}, decoded["status"])
}

func TestStatusesToOptions(t *testing.T) {
	options := StatusesToOptions([]action.Status{{Slug: "completed", Name: "Completed"}})
	require.Len(t, options, 1)
	require.Equal(t, "completed", options[0].Value)
	require.Equal(t, "Completed", options[0].Label)
}
