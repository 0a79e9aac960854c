package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/onlyyes/ProposalService/internal/handlers"
	"github.com/onlyyes/ProposalService/internal/model"
	"github.com/onlyyes/ProposalService/internal/payment"
	"github.com/onlyyes/ProposalService/internal/service"
	"github.com/onlyyes/ProposalService/internal/util"
	"go.uber.org/zap"
)

func setupBenchHandler() (*handlers.Handler, *service.ProposalService) {
	store := util.NewProposalStore("")
	gateway := payment.NewClient(payment.NewConfig("key", "bench-secret", "http://unused", 1000, "INR"))
	logger, _ := zap.NewDevelopment()
	svc := service.NewProposalService(nil, store, gateway, logger, "in-memory", 1000)
	return handlers.NewHandler(svc, "http://localhost:8080", logger), svc
}

func BenchmarkCreateProposal(b *testing.B) {
	handler, _ := setupBenchHandler()
	body := `{"yourName":"Sam","partnerName":"Lee","loveMessage":"Be mine?"}`

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/proposals", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.CreateProposal(rec, req)
	}
}

func BenchmarkGetProposal(b *testing.B) {
	handler, svc := setupBenchHandler()

	id, _ := svc.CreateDraft(context.Background(), &model.CreateProposalRequest{
		YourName:    "Sam",
		PartnerName: "Lee",
		LoveMessage: "Be mine?",
	})
	slug, _ := svc.MarkPublished(context.Background(), &model.VerifyPaymentRequest{
		OrderID:    "order_1",
		PaymentID:  "pay_1",
		Signature:  payment.GenerateSignature("order_1", "pay_1", "bench-secret"),
		ProposalID: id,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/proposals/"+slug, nil)
	// Добавляем chi-параметр вручную
	ctx := chi.NewRouteContext()
	ctx.URLParams.Add("slug", slug)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, ctx))

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rec := httptest.NewRecorder()
		handler.GetProposal(rec, req.Clone(req.Context()))
	}
}

func BenchmarkRecordView(b *testing.B) {
	handler, svc := setupBenchHandler()

	id, _ := svc.CreateDraft(context.Background(), &model.CreateProposalRequest{
		YourName:    "Sam",
		PartnerName: "Lee",
		LoveMessage: "Be mine?",
	})
	status, _ := svc.GetStatus(context.Background(), id)

	req := httptest.NewRequest(http.MethodPost, "/api/proposals/"+status.Slug+"/view", nil)
	ctx := chi.NewRouteContext()
	ctx.URLParams.Add("slug", status.Slug)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, ctx))

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rec := httptest.NewRecorder()
		handler.RecordView(rec, req.Clone(req.Context()))
	}
}
