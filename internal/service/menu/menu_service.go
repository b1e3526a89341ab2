package menu

import (
	"context"
	"errors"

	"github.com/Domenick1991/restobooking/internal/domain"
	"github.com/Domenick1991/restobooking/internal/repository"
)

type MenuUseCase interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	AddItem(ctx context.Context, name string, priceCents int64) (*domain.MenuItem, error)
}

type Cache interface {
	GetMenu(ctx context.Context) ([]domain.MenuItem, error)
	SetMenu(ctx context.Context, items []domain.MenuItem) error
	InvalidateMenu(ctx context.Context) error
}

type MenuService struct {
	repo  repository.MenuRepository
	cache Cache
}

func NewMenuService(repo repository.MenuRepository, cache Cache) *MenuService {
	return &MenuService{repo: repo, cache: cache}
}

func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetMenu(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetMenu(ctx, items)
	}
	return items, nil
}

func (s *MenuService) AddItem(ctx context.Context, name string, priceCents int64) (*domain.MenuItem, error) {
	if name == "" {
		return nil, errors.New("item name is required")
	}
	if priceCents < 0 {
		return nil, errors.New("price must not be negative")
	}

	if _, err := s.repo.GetByName(ctx, name); err == nil {
		return nil, domain.ErrDuplicateItem
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	item := domain.MenuItem{Name: name, PriceCents: priceCents}
	if err := s.repo.Create(ctx, &item); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateMenu(ctx)
	}
	return &item, nil
}

var _ MenuUseCase = (*MenuService)(nil)
