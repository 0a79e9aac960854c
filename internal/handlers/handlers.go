package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/onlyyes/ProposalService/internal/model"
	"github.com/onlyyes/ProposalService/internal/service"
	"go.uber.org/zap"
)

// Handler связывает HTTP-слой с сервисом жизненного цикла признаний.
type Handler struct {
	Service *service.ProposalService
	Logger  *zap.Logger
	BaseURL string
}

// NewHandler создаёт новый Handler.
func NewHandler(svc *service.ProposalService, baseURL string, logger *zap.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  logger,
		BaseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(res http.ResponseWriter, status int, payload interface{}) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	if err := json.NewEncoder(res).Encode(payload); err != nil {
		h.Logger.Error("Не удалось записать ответ", zap.Error(err))
	}
}

func (h *Handler) writeError(res http.ResponseWriter, status int, msg string) {
	h.writeJSON(res, status, errorResponse{Error: msg})
}

// CreateProposal принимает содержимое признания и создаёт черновик.
func (h *Handler) CreateProposal(res http.ResponseWriter, req *http.Request) {
	var body model.CreateProposalRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.writeError(res, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.Service.CreateDraft(req.Context(), &body)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			h.writeError(res, http.StatusBadRequest, vErr.Error())
			return
		}
		h.Logger.Error("Не удалось создать черновик", zap.Error(err))
		h.writeError(res, http.StatusInternalServerError, "Failed to create proposal")
		return
	}

	h.writeJSON(res, http.StatusCreated, model.CreateProposalResponse{ID: id})
}

// GetProposal возвращает опубликованное признание по слагу.
// Неоплаченное и несуществующее дают одинаковый 404.
func (h *Handler) GetProposal(res http.ResponseWriter, req *http.Request) {
	slug := chi.URLParam(req, "slug")
	if slug == "" {
		h.writeError(res, http.StatusBadRequest, "Missing slug in URL")
		return
	}

	p, err := h.Service.ResolvePublic(req.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.writeError(res, http.StatusNotFound, "Proposal not found")
			return
		}
		h.Logger.Error("Не удалось получить признание", zap.String("slug", slug), zap.Error(err))
		h.writeError(res, http.StatusInternalServerError, "Failed to fetch proposal")
		return
	}

	h.writeJSON(res, http.StatusOK, model.NewProposalResponse(p))
}

// RecordView инкрементирует счётчик просмотров. Ответ всегда 204:
// сбой телеметрии не должен ломать просмотр страницы.
func (h *Handler) RecordView(res http.ResponseWriter, req *http.Request) {
	slug := chi.URLParam(req, "slug")
	if slug != "" {
		h.Service.RecordView(req.Context(), slug)
	}
	res.WriteHeader(http.StatusNoContent)
}

// AcceptProposal помечает признание принятым.
func (h *Handler) AcceptProposal(res http.ResponseWriter, req *http.Request) {
	slug := chi.URLParam(req, "slug")
	if slug == "" {
		h.writeError(res, http.StatusBadRequest, "Missing slug in URL")
		return
	}

	err := h.Service.MarkAccepted(req.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			h.writeError(res, http.StatusNotFound, "Proposal not found")
		case errors.Is(err, service.ErrInvalidState):
			h.writeError(res, http.StatusConflict, "Proposal is not published")
		default:
			h.Logger.Error("Не удалось пометить признание принятым",
				zap.String("slug", slug), zap.Error(err))
			h.writeError(res, http.StatusInternalServerError, "Failed to accept proposal")
		}
		return
	}

	h.writeJSON(res, http.StatusOK, map[string]bool{"success": true})
}

// GetStatus возвращает проекцию статуса для создателя.
func (h *Handler) GetStatus(res http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	if id == "" {
		h.writeError(res, http.StatusBadRequest, "Missing ID in URL")
		return
	}

	status, err := h.Service.GetStatus(req.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.writeError(res, http.StatusNotFound, "Proposal not found")
			return
		}
		h.Logger.Error("Не удалось получить статус", zap.String("id", id), zap.Error(err))
		h.writeError(res, http.StatusInternalServerError, "Failed to fetch status")
		return
	}

	h.writeJSON(res, http.StatusOK, status)
}

// CreatePaymentOrder создаёт платёжный ордер для черновика.
func (h *Handler) CreatePaymentOrder(res http.ResponseWriter, req *http.Request) {
	var body model.PaymentOrderRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.writeError(res, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.Service.CreateOrder(req.Context(), body.ProposalID)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.writeError(res, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, service.ErrNotFound):
			h.writeError(res, http.StatusNotFound, "Proposal not found")
		default:
			h.Logger.Error("Не удалось создать ордер", zap.Error(err))
			h.writeError(res, http.StatusInternalServerError, "Failed to create payment order")
		}
		return
	}

	h.writeJSON(res, http.StatusOK, order)
}

// VerifyPayment проверяет подписанный результат оплаты и публикует признание.
func (h *Handler) VerifyPayment(res http.ResponseWriter, req *http.Request) {
	var body model.VerifyPaymentRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.writeError(res, http.StatusBadRequest, "Invalid request body")
		return
	}

	slug, err := h.Service.MarkPublished(req.Context(), &body)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.writeError(res, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, service.ErrPaymentVerification):
			h.writeError(res, http.StatusBadRequest, "Invalid payment signature")
		case errors.Is(err, service.ErrNotFound):
			h.writeError(res, http.StatusNotFound, "Proposal not found")
		default:
			h.Logger.Error("Не удалось применить оплату", zap.Error(err))
			h.writeError(res, http.StatusInternalServerError, "Payment verification failed")
		}
		return
	}

	h.writeJSON(res, http.StatusOK, model.VerifyPaymentResponse{
		Success:  true,
		Slug:     slug,
		ShareURL: h.BaseURL + "/p/" + slug,
		Message:  "Payment verified successfully",
	})
}

// InternalStats возвращает агрегаты и список признаний для админки.
// Доступ ограничивает trusted-subnet middleware на уровне роутера.
func (h *Handler) InternalStats(res http.ResponseWriter, req *http.Request) {
	overview, err := h.Service.AdminOverview(req.Context())
	if err != nil {
		h.Logger.Error("Не удалось собрать статистику", zap.Error(err))
		h.writeError(res, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}

	h.writeJSON(res, http.StatusOK, overview)
}

// Ping проверяет доступность хранилища.
func (h *Handler) Ping(res http.ResponseWriter, req *http.Request) {
	if err := h.Service.Ping(req.Context()); err != nil {
		h.writeError(res, http.StatusInternalServerError, "Storage unavailable")
		return
	}
	res.WriteHeader(http.StatusOK)
}
