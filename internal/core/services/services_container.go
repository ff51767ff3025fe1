package services

import (
	portsrepo "github.com/bvtvshop/inventory_backend/internal/core/ports/repositories"
	portssvc "github.com/bvtvshop/inventory_backend/internal/core/ports/services"
	"github.com/bvtvshop/inventory_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(repos.UserRepo, cfg)

	container.ProductUnit = NewProductUnitService(repos.ProductUnitRepo)
	container.Warehouse = NewWarehouseService(repos.WarehouseRepo)
	container.Profile = NewProfileService(repos.ProfileRepo)
	container.Order = NewOrderService(repos.OrderRepo)

	container.Ledger = NewLedgerService(repos.MovementRepo, repos.ProductUnitRepo, repos.WarehouseRepo)
	container.Document = NewDocumentService(repos.DocumentRepo, repos.ProductUnitRepo, repos.WarehouseRepo, repos.ProfileRepo, repos.OrderRepo)
	container.Posting = NewPostingService(repos.DocumentRepo, repos.MovementRepo, repos.ProductUnitRepo)

	return container
}
