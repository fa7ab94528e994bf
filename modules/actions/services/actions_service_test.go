package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/iota-uz/iota-actions/modules/actions/domain/entities/action"
	"github.com/iota-uz/iota-actions/pkg/repo"
)

type mockActionRepo struct {
	actions      []*action.Action
	total        int64
	byStatus     map[string]int64
	listErr      error
	countErr     error
	listCalls    []action.FindParams
	lastCount    *action.FindParams
	created      []*action.Action
	statuses     []action.Status
	pagedListing bool
}

func (m *mockActionRepo) List(ctx context.Context, params *action.FindParams) ([]*action.Action, error) {
	m.listCalls = append(m.listCalls, *params)
	if m.listErr != nil {
		return nil, m.listErr
	}
	if !m.pagedListing {
		return m.actions, nil
	}
	if params.Offset >= len(m.actions) {
		return nil, nil
	}
	end := params.Offset + params.Limit
	if end > len(m.actions) {
		end = len(m.actions)
	}
	return m.actions[params.Offset:end], nil
}

func (m *mockActionRepo) Count(ctx context.Context, params *action.FindParams) (int64, error) {
	m.lastCount = params
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.total, nil
}

func (m *mockActionRepo) CountByStatus(ctx context.Context, slug string) (int64, error) {
	return m.byStatus[slug], nil
}

func (m *mockActionRepo) Statuses(ctx context.Context) ([]action.Status, error) {
	return m.statuses, nil
}

func (m *mockActionRepo) Create(ctx context.Context, a *action.Action) error {
	m.created = append(m.created, a)
	return nil
}

func strPtr(v string) *string { return &v }

func TestActionsService_List_NormalizesParamsAndAggregatesCounts(t *testing.T) {
	repository := &mockActionRepo{
		actions:  []*action.Action{{ID: 1}, {ID: 2}},
		total:    21,
		byStatus: map[string]int64{action.StatusCompleted: 5, action.StatusOutstanding: 16},
	}
	svc := NewActionsService(repository, 10, 100)

	result, err := svc.List(context.Background(), &ListParams{
		Page:          0,
		PerPage:       0,
		SortField:     "due_at",
		SortDirection: "ASC",
		Search:        "vat",
		Status:        "outstanding",
		Assigned:      "ann",
	})
	require.NoError(t, err)
	require.Len(t, repository.listCalls, 1)

	params := repository.listCalls[0]
	require.Equal(t, 10, params.Limit)
	require.Equal(t, 0, params.Offset)
	require.Equal(t, action.SortBy{Field: action.SortFieldDueAt, Direction: repo.SortAsc}, params.SortBy)
	require.Equal(t, "vat", params.Search)
	require.Equal(t, "outstanding", params.Status)
	require.Equal(t, "ann", params.Assigned)
	require.Equal(t, "vat", repository.lastCount.Search)

	require.Equal(t, int64(21), result.Total)
	require.Equal(t, 3, result.TotalPages)
	require.Equal(t, int64(5), result.TotalCompleted)
	require.Equal(t, int64(16), result.TotalOutstanding)
	require.Equal(t, 1, result.Page)
	require.Equal(t, 10, result.PerPage)
	require.Len(t, result.Actions, 2)
}

func TestActionsService_List_ClampsPerPageAndComputesOffset(t *testing.T) {
	repository := &mockActionRepo{}
	svc := NewActionsService(repository, 10, 100)

	result, err := svc.List(context.Background(), &ListParams{Page: 3, PerPage: 500})
	require.NoError(t, err)
	require.Equal(t, 100, repository.listCalls[0].Limit)
	require.Equal(t, 200, repository.listCalls[0].Offset)
	require.Equal(t, action.SortBy{Field: action.SortFieldID, Direction: repo.SortDesc}, repository.listCalls[0].SortBy)
	require.Equal(t, 1, result.TotalPages)
	require.Equal(t, 3, result.Page)
}

func TestActionsService_List_HugePageKeepsOffsetInRange(t *testing.T) {
	repository := &mockActionRepo{}
	svc := NewActionsService(repository, 10, 100)

	result, err := svc.List(context.Background(), &ListParams{Page: 1_000_000_000_000_000_000, PerPage: 10})
	require.NoError(t, err)
	find := repository.listCalls[0]
	require.Positive(t, find.Offset)
	require.Equal(t, (result.Page-1)*find.Limit, find.Offset)
}

func TestActionsService_List_WrapsRepositoryErrors(t *testing.T) {
	svc := NewActionsService(&mockActionRepo{listErr: errors.New("db down")}, 10, 100)
	_, err := svc.List(context.Background(), nil)
	require.ErrorContains(t, err, "list actions: db down")

	svc = NewActionsService(&mockActionRepo{countErr: errors.New("timeout")}, 10, 100)
	_, err = svc.List(context.Background(), nil)
	require.ErrorContains(t, err, "count actions: timeout")
}

func TestTotalPages(t *testing.T) {
	require.Equal(t, 1, TotalPages(0, 10))
	require.Equal(t, 1, TotalPages(10, 10))
	require.Equal(t, 2, TotalPages(11, 10))
	require.Equal(t, 1, TotalPages(5, 0))
}

func TestActionsService_Create_RequiresPayload(t *testing.T) {
	repository := &mockActionRepo{}
	svc := NewActionsService(repository, 10, 100)
	require.Error(t, svc.Create(context.Background(), nil))
	require.NoError(t, svc.Create(context.Background(), &action.Action{Description: "x"}))
	require.Len(t, repository.created, 1)
}

func TestActionsService_Export_WritesWorkbook(t *testing.T) {
	due := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	done := due.Add(24 * time.Hour)
	first, last := "Ann", "Lee"
	repository := &mockActionRepo{actions: []*action.Action{
		{
			ID:                 7,
			Business:           &action.Business{ID: 1, Name: strPtr("Acme")},
			Process:            strPtr("VAT"),
			ProcessDescription: strPtr("VAT return"),
			Description:        "File VAT",
			DueAt:              due,
			CompletedAt:        &done,
			StatusSlug:         action.StatusCompleted,
			StatusName:         strPtr("Completed"),
			AssignedUser:       &action.User{ID: 3, FirstName: &first, LastName: &last},
		},
		{
			ID:          8,
			Process:     strPtr("PAYE"),
			Description: "Run payroll",
			DueAt:       due,
			StatusSlug:  action.StatusOutstanding,
		},
	}}
	svc := NewActionsService(repository, 10, 100)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), &ListParams{Page: 4, PerPage: 5, Status: "completed"}, &buf))

	require.Len(t, repository.listCalls, 1)
	require.Equal(t, exportBatchSize, repository.listCalls[0].Limit)
	require.Equal(t, 0, repository.listCalls[0].Offset)
	require.Equal(t, "completed", repository.listCalls[0].Status)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ExportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"ID", "Business", "Process", "Description", "Due", "Completed", "Status", "Assigned to"}, rows[0])
	require.Equal(t, []string{"7", "Acme", "VAT return", "File VAT", "2024-03-01 09:30", "2024-03-02 09:30", "Completed", "Ann Lee"}, rows[1])
	require.Equal(t, "8", rows[2][0])
	require.Equal(t, "PAYE", rows[2][2])
	require.Equal(t, "Run payroll", rows[2][3])
}

func TestActionsService_Export_ReadsInBatches(t *testing.T) {
	actions := make([]*action.Action, exportBatchSize+3)
	for i := range actions {
		actions[i] = &action.Action{ID: int64(i + 1), Description: "a"}
	}
	repository := &mockActionRepo{actions: actions, pagedListing: true}
	svc := NewActionsService(repository, 10, 100)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), nil, &buf))
	require.Len(t, repository.listCalls, 2)
	require.Equal(t, exportBatchSize, repository.listCalls[1].Offset)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(ExportSheet)
	require.NoError(t, err)
	require.Len(t, rows, exportBatchSize+4)
}
