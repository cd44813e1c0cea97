package handlers

import (
	"net/http"

	_ "github.com/jbaylon/stashbot/docs"
	adminhandlers "github.com/jbaylon/stashbot/internal/handlers/admin"
	cataloghandlers "github.com/jbaylon/stashbot/internal/handlers/catalog"
	purchasehandlers "github.com/jbaylon/stashbot/internal/handlers/purchase"
	topuphandlers "github.com/jbaylon/stashbot/internal/handlers/topup"
	userhandlers "github.com/jbaylon/stashbot/internal/handlers/user"
	"github.com/jbaylon/stashbot/internal/service"
	"github.com/jbaylon/stashbot/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type UserHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	GetCategories(w http.ResponseWriter, r *http.Request)
	GetProducts(w http.ResponseWriter, r *http.Request)
	GetVariants(w http.ResponseWriter, r *http.Request)
}

type TopupHandler interface {
	CreateTopup(w http.ResponseWriter, r *http.Request)
	AttachProof(w http.ResponseWriter, r *http.Request)
}

type PurchaseHandler interface {
	Purchase(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetPendingTopups(w http.ResponseWriter, r *http.Request)
	ApproveTopup(w http.ResponseWriter, r *http.Request)
	RejectTopup(w http.ResponseWriter, r *http.Request)
	CreateCategory(w http.ResponseWriter, r *http.Request)
	CreateProduct(w http.ResponseWriter, r *http.Request)
	CreateVariant(w http.ResponseWriter, r *http.Request)
	UploadStock(w http.ResponseWriter, r *http.Request)
	DeactivateProduct(w http.ResponseWriter, r *http.Request)
	DeactivateVariant(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	UserHandler     UserHandler
	CatalogHandler  CatalogHandler
	TopupHandler    TopupHandler
	PurchaseHandler PurchaseHandler
	AdminHandler    AdminHandler

	jwtService auth.JWTServiceInterface
	admins     auth.AdminChecker
}

func New(s *service.Services, jwtService auth.JWTServiceInterface, admins auth.AdminChecker, gatewaySecret string) *Handlers {
	return &Handlers{
		UserHandler:     userhandlers.New(s.UserService, gatewaySecret),
		CatalogHandler:  cataloghandlers.New(s.CatalogService, s.InventoryService),
		TopupHandler:    topuphandlers.New(s.TopupService),
		PurchaseHandler: purchasehandlers.New(s.PurchaseService),
		AdminHandler:    adminhandlers.New(s.TopupService, s.CatalogService, s.InventoryService),
		jwtService:      jwtService,
		admins:          admins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.UserHandler.Register)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))

			r.Route("/user", func(r chi.Router) {
				r.Get("/balance", h.UserHandler.GetBalance)
				r.Post("/topups", h.TopupHandler.CreateTopup)
				r.Post("/topups/{id}/proof", h.TopupHandler.AttachProof)
				r.Post("/purchase", h.PurchaseHandler.Purchase)
				r.Get("/purchases", h.PurchaseHandler.GetHistory)
			})
			r.Route("/catalog", func(r chi.Router) {
				r.Get("/categories", h.CatalogHandler.GetCategories)
				r.Get("/categories/{id}/products", h.CatalogHandler.GetProducts)
				r.Get("/products/{id}/variants", h.CatalogHandler.GetVariants)
			})
			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminMiddleware(h.admins))

				r.Get("/topups", h.AdminHandler.GetPendingTopups)
				r.Post("/topups/{id}/approve", h.AdminHandler.ApproveTopup)
				r.Post("/topups/{id}/reject", h.AdminHandler.RejectTopup)
				r.Post("/categories", h.AdminHandler.CreateCategory)
				r.Post("/products", h.AdminHandler.CreateProduct)
				r.Post("/products/{id}/deactivate", h.AdminHandler.DeactivateProduct)
				r.Post("/variants", h.AdminHandler.CreateVariant)
				r.Post("/variants/{id}/deactivate", h.AdminHandler.DeactivateVariant)
				r.Post("/variants/{id}/stock", h.AdminHandler.UploadStock)
			})
		})
	})

	return r
}
