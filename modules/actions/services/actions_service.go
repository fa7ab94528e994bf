package services

import (
	"context"
	"io"

	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"

	"github.com/iota-uz/iota-actions/modules/actions/domain/entities/action"
	"github.com/iota-uz/iota-actions/pkg/composables"
)

const (
	ExportSheet     = "Actions"
	exportBatchSize = 500
	exportTimeFmt   = "2006-01-02 15:04"
)

var exportHeader = []any{"ID", "Business", "Process", "Description", "Due", "Completed", "Status", "Assigned to"}

type ListParams struct {
	Page          int
	PerPage       int
	SortField     string
	SortDirection string
	Search        string
	Status        string
	Assigned      string
}

type ListResult struct {
	Actions          []*action.Action
	Total            int64
	TotalPages       int
	TotalCompleted   int64
	TotalOutstanding int64
	Page             int
	PerPage          int
}

type ActionsService struct {
	repo        action.Repository
	pageSize    int
	maxPageSize int
}

func NewActionsService(repo action.Repository, pageSize, maxPageSize int) *ActionsService {
	return &ActionsService{
		repo:        repo,
		pageSize:    pageSize,
		maxPageSize: maxPageSize,
	}
}

func (s *ActionsService) findParams(params *ListParams) (*action.FindParams, composables.PaginationParams) {
	if params == nil {
		params = &ListParams{}
	}
	pagination := composables.NewPagination(params.Page, params.PerPage, s.pageSize, s.maxPageSize)
	return &action.FindParams{
		Limit:    pagination.Limit,
		Offset:   pagination.Offset,
		SortBy:   action.NewSortBy(params.SortField, params.SortDirection),
		Search:   params.Search,
		Status:   params.Status,
		Assigned: params.Assigned,
	}, pagination
}

// TotalPages is never less than one so an empty result still renders a first page.
func TotalPages(total int64, perPage int) int {
	if perPage < 1 || total <= 0 {
		return 1
	}
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if pages < 1 {
		return 1
	}
	return pages
}

func (s *ActionsService) List(ctx context.Context, params *ListParams) (*ListResult, error) {
	findParams, pagination := s.findParams(params)

	actions, err := s.repo.List(ctx, findParams)
	if err != nil {
		return nil, errors.Wrap(err, "list actions")
	}
	total, err := s.repo.Count(ctx, findParams)
	if err != nil {
		return nil, errors.Wrap(err, "count actions")
	}
	completed, err := s.repo.CountByStatus(ctx, action.StatusCompleted)
	if err != nil {
		return nil, errors.Wrap(err, "count completed actions")
	}
	outstanding, err := s.repo.CountByStatus(ctx, action.StatusOutstanding)
	if err != nil {
		return nil, errors.Wrap(err, "count outstanding actions")
	}

	return &ListResult{
		Actions:          actions,
		Total:            total,
		TotalPages:       TotalPages(total, pagination.Limit),
		TotalCompleted:   completed,
		TotalOutstanding: outstanding,
		Page:             pagination.Page,
		PerPage:          pagination.Limit,
	}, nil
}

func (s *ActionsService) Statuses(ctx context.Context) ([]action.Status, error) {
	statuses, err := s.repo.Statuses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list statuses")
	}
	return statuses, nil
}

func (s *ActionsService) Create(ctx context.Context, a *action.Action) error {
	if a == nil {
		return errors.New("action payload is required")
	}
	return s.repo.Create(ctx, a)
}

// Export writes every action matching the filters to w as an xlsx workbook.
// Page and PerPage are ignored.
func (s *ActionsService) Export(ctx context.Context, params *ListParams, w io.Writer) error {
	findParams, _ := s.findParams(params)
	findParams.Limit = exportBatchSize
	findParams.Offset = 0

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return errors.Wrap(err, "rename sheet")
	}
	sw, err := f.NewStreamWriter(ExportSheet)
	if err != nil {
		return errors.Wrap(err, "open stream writer")
	}
	if err := sw.SetRow("A1", exportHeader); err != nil {
		return errors.Wrap(err, "write header")
	}

	rowNum := 2
	for {
		batch, err := s.repo.List(ctx, findParams)
		if err != nil {
			return errors.Wrap(err, "list actions for export")
		}
		for _, a := range batch {
			cell, err := excelize.CoordinatesToCellName(1, rowNum)
			if err != nil {
				return err
			}
			if err := sw.SetRow(cell, exportRow(a)); err != nil {
				return errors.Wrapf(err, "write row %d", rowNum)
			}
			rowNum++
		}
		if len(batch) < findParams.Limit {
			break
		}
		findParams.Offset += findParams.Limit
	}

	if err := sw.Flush(); err != nil {
		return errors.Wrap(err, "flush workbook")
	}
	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "write workbook")
	}
	return nil
}

func exportRow(a *action.Action) []any {
	completed := ""
	if a.CompletedAt != nil {
		completed = a.CompletedAt.Format(exportTimeFmt)
	}
	assigned := ""
	if a.AssignedUser != nil {
		assigned = a.AssignedUser.FullName()
	}
	return []any{
		a.ID,
		a.BusinessName(),
		a.ProcessLabel(),
		a.Description,
		a.DueAt.Format(exportTimeFmt),
		completed,
		a.StatusLabel(),
		assigned,
	}
}
