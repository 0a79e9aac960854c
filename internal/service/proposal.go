package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/onlyyes/ProposalService/internal/model"
	"github.com/onlyyes/ProposalService/internal/payment"
	"github.com/onlyyes/ProposalService/internal/storage"
	"github.com/onlyyes/ProposalService/internal/util"
	"go.uber.org/zap"
)

// MaxPhotos ограничивает количество фотографий в одном признании.
const MaxPhotos = 10

// Repository определяет методы хранилища, нужные сервису.
type Repository interface {
	SaveProposal(ctx context.Context, p *model.Proposal) error
	GetByID(ctx context.Context, id string) (*model.Proposal, error)
	GetBySlug(ctx context.Context, slug string, onlyPaid bool) (*model.Proposal, error)
	MarkPaid(ctx context.Context, id string) (string, error)
	MarkAccepted(ctx context.Context, slug string) (bool, error)
	IncrementViews(ctx context.Context, slug string) error
	ListAll(ctx context.Context) ([]*model.Proposal, error)
	Stats(ctx context.Context) (total int, paid int, views int, err error)
	Ping(ctx context.Context) error
}

// ProposalService управляет жизненным циклом признания:
// Draft -> Published (после проверенной оплаты) -> Accepted.
type ProposalService struct {
	Repo    Repository
	Store   storage.Storage
	Gateway payment.Gateway
	Logger  *zap.Logger
	Mode    string
	Price   int64 // цена публикации в минорных единицах
}

// NewProposalService создаёт сервис жизненного цикла признаний.
func NewProposalService(repo Repository, store storage.Storage, gateway payment.Gateway, logger *zap.Logger, mode string, price int64) *ProposalService {
	return &ProposalService{
		Repo:    repo,
		Store:   store,
		Gateway: gateway,
		Logger:  logger,
		Mode:    mode,
		Price:   price,
	}
}

// CreateDraft создаёт черновик и возвращает внутренний идентификатор.
// Наружу для публичной ссылки уходит слаг, но создателю нужен именно id:
// им он ходит на оплату и страницу статуса.
func (s *ProposalService) CreateDraft(ctx context.Context, req *model.CreateProposalRequest) (string, error) {
	if strings.TrimSpace(req.YourName) == "" {
		return "", requiredField("yourName")
	}
	if strings.TrimSpace(req.PartnerName) == "" {
		return "", requiredField("partnerName")
	}
	if strings.TrimSpace(req.LoveMessage) == "" {
		return "", requiredField("loveMessage")
	}
	if len(req.Photos) > MaxPhotos {
		return "", &ValidationError{Field: "photos", Reason: "at most 10 photos allowed"}
	}

	p := &model.Proposal{
		Slug:           util.GenerateSlug(),
		YourName:       req.YourName,
		PartnerName:    req.PartnerName,
		SpecialDate:    req.SpecialDate,
		LoveMessage:    req.LoveMessage,
		FavoriteMemory: req.FavoriteMemory,
		FutureDreams:   req.FutureDreams,
		Photos:         req.Photos,
		MusicURL:       req.MusicURL,
		CreatedAt:      time.Now(),
	}

	if s.Mode == "database" {
		if err := s.Repo.SaveProposal(ctx, p); err != nil {
			return "", err
		}
		return p.ID, nil
	}
	s.Store.Save(p)
	return p.ID, nil
}

// CreateOrder создаёт платёжный ордер для существующего черновика.
func (s *ProposalService) CreateOrder(ctx context.Context, proposalID string) (*model.PaymentOrderResponse, error) {
	if proposalID == "" {
		return nil, requiredField("proposalId")
	}

	// Ордер только под реально существующий черновик
	if _, err := s.getByID(ctx, proposalID); err != nil {
		return nil, err
	}

	order, err := s.Gateway.CreateOrder(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	return &model.PaymentOrderResponse{
		OrderID:    order.ID,
		Amount:     order.Amount,
		Currency:   order.Currency,
		ProposalID: proposalID,
	}, nil
}

// MarkPublished проверяет подписанный результат оплаты и переводит
// признание в состояние Published. Идемпотентно: повторная проверка
// того же валидного результата снова возвращает слаг без ошибки.
func (s *ProposalService) MarkPublished(ctx context.Context, claim *model.VerifyPaymentRequest) (string, error) {
	if claim.OrderID == "" {
		return "", requiredField("razorpay_order_id")
	}
	if claim.PaymentID == "" {
		return "", requiredField("razorpay_payment_id")
	}
	if claim.Signature == "" {
		return "", requiredField("razorpay_signature")
	}
	if claim.ProposalID == "" {
		return "", requiredField("proposalId")
	}

	// Единственные ворота публикации — подпись шлюза
	if !s.Gateway.VerifyClaim(claim.OrderID, claim.PaymentID, claim.Signature) {
		return "", ErrPaymentVerification
	}

	if s.Mode == "database" {
		slug, err := s.Repo.MarkPaid(ctx, claim.ProposalID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return "", ErrNotFound
			}
			return "", err
		}
		return slug, nil
	}

	slug, ok := s.Store.MarkPaid(claim.ProposalID)
	if !ok {
		return "", ErrNotFound
	}
	return slug, nil
}

// ResolvePublic возвращает признание по слагу, только если оно оплачено.
// Неоплаченное и несуществующее снаружи выглядят одинаково: ErrNotFound.
func (s *ProposalService) ResolvePublic(ctx context.Context, slug string) (*model.Proposal, error) {
	if s.Mode == "database" {
		p, err := s.Repo.GetBySlug(ctx, slug, true)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return p, nil
	}

	p, ok := s.Store.GetBySlug(slug, true)
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// RecordView увеличивает счётчик просмотров. Телеметрия, а не граница
// доступа: счётчик не завязан на оплату, а ошибки не доходят до зрителя.
func (s *ProposalService) RecordView(ctx context.Context, slug string) {
	if s.Mode == "database" {
		if err := s.Repo.IncrementViews(ctx, slug); err != nil {
			s.Logger.Error("Не удалось увеличить счётчик просмотров",
				zap.String("slug", slug), zap.Error(err))
		}
		return
	}
	if !s.Store.IncrementViews(slug) {
		s.Logger.Warn("Просмотр несуществующего признания", zap.String("slug", slug))
	}
}

// MarkAccepted помечает опубликованное признание принятым.
// Повторные вызовы — no-op: клиент может ретраить запрос.
func (s *ProposalService) MarkAccepted(ctx context.Context, slug string) error {
	if s.Mode == "database" {
		p, err := s.Repo.GetBySlug(ctx, slug, false)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		if !p.IsPaid {
			return ErrInvalidState
		}
		if p.IsAccepted {
			return nil
		}
		_, err = s.Repo.MarkAccepted(ctx, slug)
		return err
	}

	p, ok := s.Store.GetBySlug(slug, false)
	if !ok {
		return ErrNotFound
	}
	if !p.IsPaid {
		return ErrInvalidState
	}
	s.Store.MarkAccepted(slug, time.Now())
	return nil
}

// GetStatus возвращает проекцию для страницы статуса создателя.
// Никакой авторизации сверх знания id: id и есть «пароль» создателя.
func (s *ProposalService) GetStatus(ctx context.Context, id string) (*model.StatusResponse, error) {
	p, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.NewStatusResponse(p), nil
}

// AdminOverview возвращает агрегаты и полный список признаний.
// Выручка считается как оплаченные записи умножить на цену публикации.
func (s *ProposalService) AdminOverview(ctx context.Context) (*model.AdminOverviewResponse, error) {
	var (
		total, paid, views int
		proposals          []*model.Proposal
		err                error
	)

	if s.Mode == "database" {
		total, paid, views, err = s.Repo.Stats(ctx)
		if err != nil {
			return nil, err
		}
		proposals, err = s.Repo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
	} else {
		total, paid, views = s.Store.Stats()
		proposals = s.Store.List()
	}

	resp := &model.AdminOverviewResponse{
		Stats: model.AdminStats{
			TotalProposals: total,
			PaidProposals:  paid,
			TotalViews:     views,
			TotalRevenue:   int64(paid) * s.Price,
		},
		Proposals: make([]*model.ProposalResponse, 0, len(proposals)),
	}
	for _, p := range proposals {
		resp.Proposals = append(resp.Proposals, model.NewProposalResponse(p))
	}
	return resp, nil
}

// Ping проверяет доступность хранилища.
func (s *ProposalService) Ping(ctx context.Context) error {
	if s.Mode != "database" {
		return nil // Ping актуален только для database
	}
	return s.Repo.Ping(ctx)
}

func (s *ProposalService) getByID(ctx context.Context, id string) (*model.Proposal, error) {
	if s.Mode == "database" {
		p, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return p, nil
	}

	p, ok := s.Store.GetByID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}
