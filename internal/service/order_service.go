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

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	menuRepo  repository.MenuRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Place creates a new order for an existing menu item. The referenced item
// must exist at placement time; its name is snapshotted into the order and
// never recomputed afterwards. Absent table_no defaults to "Takeaway",
// absent qty to 1.
func (s *orderService) Place(ctx context.Context, req *model.OrderRequest) (string, error) {
	if req == nil {
		return "", fmt.Errorf("order request is nil")
	}

	item, err := s.menuRepo.GetByID(ctx, req.ItemID)
	if err != nil {
		s.logger.Error().Err(err).Str("item_id", req.ItemID).Msg("failed to look up menu item")
		return "", fmt.Errorf("failed to look up menu item: %w", err)
	}

	if item == nil {
		s.logger.Warn().Str("item_id", req.ItemID).Msg("order rejected: unknown menu item")
		return "", model.ErrInvalidItem
	}

	tableNo := model.DefaultTableNo
	if req.TableNo != nil {
		tableNo = *req.TableNo
	}

	qty := model.DefaultQty
	if req.Qty != nil {
		qty = *req.Qty
	}

	order := &model.Order{
		ID:        ident.New(),
		ItemID:    item.ID,
		ItemName:  item.Name,
		Qty:       qty,
		TableNo:   tableNo,
		Served:    false,
		CreatedAt: time.Now(),
	}

	if err := s.orderRepo.Insert(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to place order")
		return "", fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Str("item_name", order.ItemName).
		Int("qty", order.Qty).
		Str("table_no", order.TableNo).
		Msg("order placed")

	return order.ID, nil
}

// List retrieves all orders, served and unserved.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	s.logger.Debug().Int("count", len(orders)).Msg("retrieved orders")

	return orders, nil
}

// AggregateUnserved returns the total unserved quantity per item name.
func (s *orderService) AggregateUnserved(ctx context.Context) ([]model.AggregatedOrder, error) {
	aggregates, err := s.orderRepo.AggregateUnserved(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to aggregate unserved orders")
		return nil, fmt.Errorf("failed to aggregate unserved orders: %w", err)
	}

	s.logger.Debug().Int("groups", len(aggregates)).Msg("aggregated unserved orders")

	return aggregates, nil
}
