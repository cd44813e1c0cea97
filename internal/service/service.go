package service

import (
	"github.com/jbaylon/stashbot/internal/pg"
	"github.com/jbaylon/stashbot/internal/repo"
	"github.com/jbaylon/stashbot/internal/service/catalogservice"
	"github.com/jbaylon/stashbot/internal/service/inventoryservice"
	"github.com/jbaylon/stashbot/internal/service/ledgerservice"
	"github.com/jbaylon/stashbot/internal/service/purchaseservice"
	"github.com/jbaylon/stashbot/internal/service/topupservice"
	"github.com/jbaylon/stashbot/internal/service/userservice"
	"github.com/jbaylon/stashbot/pkg/auth"
	"github.com/jbaylon/stashbot/pkg/ident"
)

type Services struct {
	UserService      *userservice.Service
	LedgerService    *ledgerservice.Service
	InventoryService *inventoryservice.Service
	CatalogService   *catalogservice.Service
	TopupService     *topupservice.Service
	PurchaseService  *purchaseservice.Service
}

func New(repos *repo.Repositories, txManager pg.TXManager, jwtService auth.JWTServiceInterface, admins topupservice.AdminChecker, idGen ident.Generator, presetAmounts []int64) *Services {
	ledgerService := ledgerservice.New(repos.UserRepo)
	inventoryService := inventoryservice.New(repos.StockRepo)
	userService := userservice.New(repos.UserRepo, jwtService)
	catalogService := catalogservice.New(repos.CatalogRepo)
	topupService := topupservice.New(repos.TopupRepo, ledgerService, admins, idGen, txManager, presetAmounts)
	purchaseService := purchaseservice.New(repos.CatalogRepo, repos.PurchaseRepo, ledgerService, inventoryService, idGen, txManager)

	return &Services{
		UserService:      userService,
		LedgerService:    ledgerService,
		InventoryService: inventoryService,
		CatalogService:   catalogService,
		TopupService:     topupService,
		PurchaseService:  purchaseService,
	}
}
