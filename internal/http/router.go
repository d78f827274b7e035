package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/akiramoriyama0316-alt/money-tracker/internal/http/events"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/http/exportcsv"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/http/goal"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/http/importcsv"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/http/summary"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/http/transaction"
)

func New(
	transactionsV1 *transaction.Handler,
	goalV1 *goal.Handler,
	summaryV1 *summary.Handler,
	importV1 *importcsv.Handler,
	exportV1 *exportcsv.Handler,
	eventsV1 *events.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/goal", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			goalV1.Routes(r)
		})

		r.Route("/summary", summaryV1.Routes)

		r.Route("/import", importV1.Routes)

		r.Route("/export", exportV1.Routes)

		r.Route("/events", eventsV1.Routes)
	})

	return router
}
