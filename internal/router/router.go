package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/onlyyes/ProposalService/internal/handlers"
	"github.com/onlyyes/ProposalService/internal/middleware"
	"go.uber.org/zap"
)

// NewRouter создаёт и настраивает маршрутизатор
func NewRouter(handler *handlers.Handler, logger *zap.Logger, trustedSubnet string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.LoggingMiddleware(logger)) // Подключаем логирование
	r.Use(middleware.GzipMiddleware)            // Gzip-сжатие

	r.Post("/api/proposals", handler.CreateProposal)
	r.Get("/api/proposals/{slug}", handler.GetProposal)
	r.Post("/api/proposals/{slug}/view", handler.RecordView)
	r.Post("/api/proposals/{slug}/accept", handler.AcceptProposal)
	r.Get("/api/status/{id}", handler.GetStatus)

	r.Post("/api/payment/create-order", handler.CreatePaymentOrder)
	r.Post("/api/payment/verify", handler.VerifyPayment)

	r.Get("/ping", handler.Ping)

	// Внутренняя админка: только из доверенной подсети
	r.Group(func(r chi.Router) {
		r.Use(middleware.TrustedSubnetMiddleware(trustedSubnet, logger))
		r.Get("/api/internal/stats", handler.InternalStats)
	})

	return r
}
