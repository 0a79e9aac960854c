package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/onlyyes/ProposalService/internal/handlers"
	"github.com/onlyyes/ProposalService/internal/payment"
	"github.com/onlyyes/ProposalService/internal/service"
	"github.com/onlyyes/ProposalService/internal/util"
	"go.uber.org/zap"
)

// ExampleHandler_CreateProposal демонстрирует создание черновика признания.
func ExampleHandler_CreateProposal() {
	store := util.NewProposalStore("")
	gateway := payment.NewClient(payment.NewConfig("key", "example-secret", "http://unused", 1000, "INR"))
	logger, _ := zap.NewDevelopment()
	svc := service.NewProposalService(nil, store, gateway, logger, "in-memory", 1000)

	h := handlers.NewHandler(svc, "http://localhost:8080", logger)

	body := `{"yourName":"Sam","partnerName":"Lee","loveMessage":"Be mine?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/proposals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.CreateProposal(rec, req)
	resp := rec.Result()
	defer resp.Body.Close()

	var result map[string]string
	_ = json.NewDecoder(resp.Body).Decode(&result)

	fmt.Println(resp.StatusCode)
	fmt.Println(result["id"] != "")

	// Output:
	// 201
	// true
}
