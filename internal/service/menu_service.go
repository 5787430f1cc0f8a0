package service

import (
	"context"
	"fmt"
	"time"

	"harsha-hotel/internal/ident"
	"harsha-hotel/internal/model"
	"harsha-hotel/internal/repository"

	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	menuRepo repository.MenuRepository
	logger   zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(menuRepo repository.MenuRepository, logger zerolog.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		logger:   logger.With().Str("service", "menu").Logger(),
	}
}

// List retrieves all menu items.
func (s *menuService) List(ctx context.Context) ([]model.MenuItem, error) {
	items, err := s.menuRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list menu items")
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	s.logger.Debug().Int("count", len(items)).Msg("retrieved menu items")

	return items, nil
}

// Add creates a new menu item and returns its generated id. Fields are
// stored as provided: absent name, price or rating fall back to zero
// values rather than being rejected.
func (s *menuService) Add(ctx context.Context, req *model.MenuItemRequest) (string, error) {
	if req == nil {
		return "", fmt.Errorf("menu item request is nil")
	}

	item := &model.MenuItem{
		ID:          ident.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Rating:      req.Rating,
		CreatedAt:   time.Now(),
	}

	if err := s.menuRepo.Insert(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("item_id", item.ID).Msg("failed to add menu item")
		return "", fmt.Errorf("failed to add menu item: %w", err)
	}

	s.logger.Info().
		Str("item_id", item.ID).
		Str("name", item.Name).
		Msg("menu item added")

	return item.ID, nil
}
