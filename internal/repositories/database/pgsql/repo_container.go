package pgsql

import (
	portsrepo "github.com/bvtvshop/inventory_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	movementRepo := newPgxMovementRepository(dbPool)
	documentRepo := newPgxDocumentRepository(dbPool)
	productUnitRepo := newPgxProductUnitRepository(dbPool)
	warehouseRepo := newPgxWarehouseRepository(dbPool)
	profileRepo := newPgxProfileRepository(dbPool)
	orderRepo := newPgxOrderRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		MovementRepo:    movementRepo,
		DocumentRepo:    documentRepo,
		ProductUnitRepo: productUnitRepo,
		WarehouseRepo:   warehouseRepo,
		ProfileRepo:     profileRepo,
		OrderRepo:       orderRepo,
		UserRepo:        userRepo,
	}
}
