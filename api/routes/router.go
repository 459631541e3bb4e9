package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inventoryhub/inventory-backend/api/controllers"
	"github.com/inventoryhub/inventory-backend/api/middleware"
	itemsvc "github.com/inventoryhub/inventory-backend/internal/items"
	suppliersvc "github.com/inventoryhub/inventory-backend/internal/suppliers"
	"github.com/inventoryhub/inventory-backend/pkg/config"
	"github.com/inventoryhub/inventory-backend/pkg/db"
	"github.com/inventoryhub/inventory-backend/pkg/logger"
	"github.com/inventoryhub/inventory-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	mtr *metrics.Metrics,
	itemService itemsvc.Service,
	supplierService suppliersvc.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.HTTP.AllowedOrigins),
	)
	if mtr != nil {
		r.Use(mtr.Middleware())
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, logg))
	})

	if mtr != nil {
		r.Get("/metrics", mtr.Handler().ServeHTTP)
	}

	r.Get("/view-items/", controllers.ViewItems(itemService, logg))
	r.Post("/add-item/", controllers.AddItem(itemService, logg))
	r.Put("/update-item/{item_id}", controllers.UpdateItem(itemService, logg))
	r.Delete("/delete-item/{item_id}", controllers.DeleteItem(itemService, logg))

	r.Get("/view-suppliers/", controllers.ViewSuppliers(supplierService, logg))
	r.Post("/add-supplier/", controllers.AddSupplier(supplierService, logg))
	r.Put("/update-supplier/{supplier_id}", controllers.UpdateSupplier(supplierService, logg))
	r.Delete("/delete-supplier/{supplier_id}", controllers.DeleteSupplier(supplierService, logg))

	return r
}
