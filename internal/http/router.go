package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/oselabs/cfopilot/internal/auth"
	"github.com/oselabs/cfopilot/internal/http/authapi"
	"github.com/oselabs/cfopilot/internal/http/budget"
	"github.com/oselabs/cfopilot/internal/http/card"
	"github.com/oselabs/cfopilot/internal/http/identity"
	"github.com/oselabs/cfopilot/internal/http/insight"
	"github.com/oselabs/cfopilot/internal/http/invoice"
	appmw "github.com/oselabs/cfopilot/internal/http/middleware"
	"github.com/oselabs/cfopilot/internal/http/payments"
	"github.com/oselabs/cfopilot/internal/http/proposal"
	"github.com/oselabs/cfopilot/internal/http/transaction"
)

func New(
	issuer *auth.TokenIssuer,
	authV1 *authapi.Handler,
	budgetsV1 *budget.Handler,
	proposalsV1 *proposal.Handler,
	transactionsV1 *transaction.Handler,
	cardsV1 *card.Handler,
	invoicesV1 *invoice.Handler,
	insightsV1 *insight.Handler,
	paymentsV1 *payments.Handler,
	identityV1 *identity.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		// Unauthenticated: login issues the token, the webhook is verified
		// by the provider signature instead.
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Post("/payments/webhook", paymentsV1.Webhook)

		r.Group(func(r chi.Router) {
			r.Use(appmw.Authenticate(issuer))

			r.Route("/budgets", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				budgetsV1.Routes(r)
			})

			r.Route("/proposals", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				proposalsV1.Routes(r)
			})

			r.Route("/transactions", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				transactionsV1.Routes(r)
			})

			r.Route("/cards", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				cardsV1.Routes(r)
			})

			r.Route("/invoices", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				invoicesV1.Routes(r)
			})

			r.Route("/insights", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				insightsV1.Routes(r)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				paymentsV1.Routes(r)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				identityV1.Routes(r)
			})
		})
	})

	return router
}
