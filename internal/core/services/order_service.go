package services

import (
	"context"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	portsrepo "github.com/bvtvshop/inventory_backend/internal/core/ports/repositories"
	portssvc "github.com/bvtvshop/inventory_backend/internal/core/ports/services"
)

// orderService serves read-only order lookups for customer return prefill.
// Orders are written by the storefront, never here.
type orderService struct {
	BaseService
	orderRepo portsrepo.OrderRepositoryFacade
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade) portssvc.OrderSvcFacade {
	return &orderService{orderRepo: orderRepo}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

func (s *orderService) ListOrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListOrdersByCustomer(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders", "customer_id", customerID)
		return nil, err
	}
	return orders, nil
}
