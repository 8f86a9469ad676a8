package mock

import (
	"context"

	"github.com/fwojciec/margins"
)

var _ margins.ExportService = (*ExportService)(nil)

type ExportService struct {
	CreateExportFn   func(ctx context.Context, export *margins.Export) error
	FindExportByIDFn func(ctx context.Context, id string) (*margins.Export, error)
	FindExportsFn    func(ctx context.Context, filter margins.ExportFilter) ([]*margins.Export, error)
	DeleteExportFn   func(ctx context.Context, id string) error
}

func (s *ExportService) CreateExport(ctx context.Context, export *margins.Export) error {
	return s.CreateExportFn(ctx, export)
}

func (s *ExportService) FindExportByID(ctx context.Context, id string) (*margins.Export, error) {
	return s.FindExportByIDFn(ctx, id)
}

func (s *ExportService) FindExports(ctx context.Context, filter margins.ExportFilter) ([]*margins.Export, error) {
	return s.FindExportsFn(ctx, filter)
}

func (s *ExportService) DeleteExport(ctx context.Context, id string) error {
	return s.DeleteExportFn(ctx, id)
}
