package tables

import (
	"context"

	"github.com/Domenick1991/restobooking/internal/domain"
	"github.com/Domenick1991/restobooking/internal/repository"
)

type TableUseCase interface {
	List(ctx context.Context) ([]domain.Table, error)
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
}

type Cache interface {
	GetTables(ctx context.Context) ([]domain.Table, error)
	SetTables(ctx context.Context, tables []domain.Table) error
}

// TableService is the read-only registry of physical tables. The table
// set is provisioned by an external admin process, so the list is a
// good cache candidate.
type TableService struct {
	repo  repository.TableRepository
	cache Cache
}

func NewTableService(repo repository.TableRepository, cache Cache) *TableService {
	return &TableService{repo: repo, cache: cache}
}

func (s *TableService) List(ctx context.Context) ([]domain.Table, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetTables(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	tables, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetTables(ctx, tables)
	}
	return tables, nil
}

func (s *TableService) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	return s.repo.GetByID(ctx, id)
}

var _ TableUseCase = (*TableService)(nil)
