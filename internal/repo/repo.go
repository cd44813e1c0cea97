package repo

import (
	"github.com/jbaylon/stashbot/internal/pg"
	catalogrepo "github.com/jbaylon/stashbot/internal/repo/catalog-repo"
	purchaserepo "github.com/jbaylon/stashbot/internal/repo/purchase-repo"
	stockrepo "github.com/jbaylon/stashbot/internal/repo/stock-repo"
	topuprepo "github.com/jbaylon/stashbot/internal/repo/topup-repo"
	userrepo "github.com/jbaylon/stashbot/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo     *userrepo.Repository
	CatalogRepo  *catalogrepo.Repository
	StockRepo    *stockrepo.Repository
	PurchaseRepo *purchaserepo.Repository
	TopupRepo    *topuprepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		CatalogRepo:  catalogrepo.New(conn),
		StockRepo:    stockrepo.New(conn),
		PurchaseRepo: purchaserepo.New(conn),
		TopupRepo:    topuprepo.New(conn),
	}
}
