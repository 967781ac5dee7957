package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	exportHandler "github.com/MrJamesThe3rd/angsur/internal/http/export"
	"github.com/MrJamesThe3rd/angsur/internal/http/importcsv"
	"github.com/MrJamesThe3rd/angsur/internal/http/insights"
	installmentHandler "github.com/MrJamesThe3rd/angsur/internal/http/installment"
)

func New(
	installmentsV1 *installmentHandler.Handler,
	insightsV1 *insights.Handler,
	importV1 *importcsv.Handler,
	exportV1 *exportHandler.Handler,
	authSecret string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		if authSecret != "" {
			r.Use(RequireToken(authSecret))
		}

		r.Route("/installments", func(r chi.Router) {
			installmentsV1.Routes(r)
		})

		r.Route("/insights", insightsV1.Routes)

		r.Route("/import", importV1.Routes)

		r.Get("/export", exportV1.ExportCSV)
	})

	return router
}
