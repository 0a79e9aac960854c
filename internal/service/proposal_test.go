package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/onlyyes/ProposalService/internal/model"
	"github.com/onlyyes/ProposalService/internal/payment"
	"github.com/onlyyes/ProposalService/internal/repositories/mocks"
	"github.com/onlyyes/ProposalService/internal/service"
	"github.com/onlyyes/ProposalService/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const testSecret = "test-gateway-secret"

func newMemoryService() *service.ProposalService {
	store := util.NewProposalStore("")
	gateway := payment.NewClient(payment.NewConfig("key", testSecret, "http://unused", 1000, "INR"))
	logger, _ := zap.NewDevelopment()
	return service.NewProposalService(nil, store, gateway, logger, "in-memory", 1000)
}

func validDraft() *model.CreateProposalRequest {
	return &model.CreateProposalRequest{
		YourName:    "Sam",
		PartnerName: "Lee",
		LoveMessage: "Be mine?",
	}
}

func validClaim(proposalID string) *model.VerifyPaymentRequest {
	return &model.VerifyPaymentRequest{
		OrderID:    "order_1",
		PaymentID:  "pay_1",
		Signature:  payment.GenerateSignature("order_1", "pay_1", testSecret),
		ProposalID: proposalID,
	}
}

func TestCreateDraft_Defaults(t *testing.T) {
	svc := newMemoryService()

	id, err := svc.CreateDraft(context.Background(), validDraft())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	status, err := svc.GetStatus(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, status.IsPaid)
	assert.False(t, status.IsAccepted)
	assert.Nil(t, status.AcceptedAt)
	assert.Zero(t, status.ViewsCount)
	assert.Len(t, status.Slug, util.SlugLength)
}

func TestCreateDraft_Validation(t *testing.T) {
	svc := newMemoryService()

	cases := []struct {
		name string
		req  *model.CreateProposalRequest
	}{
		{"empty yourName", &model.CreateProposalRequest{PartnerName: "Lee", LoveMessage: "hi"}},
		{"empty partnerName", &model.CreateProposalRequest{YourName: "Sam", LoveMessage: "hi"}},
		{"empty loveMessage", &model.CreateProposalRequest{YourName: "Sam", PartnerName: "Lee"}},
		{"whitespace only", &model.CreateProposalRequest{YourName: "  ", PartnerName: "Lee", LoveMessage: "hi"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateDraft(context.Background(), tc.req)
			var vErr *service.ValidationError
			assert.True(t, errors.As(err, &vErr), "ожидалась ValidationError, получено %v", err)
		})
	}
}

func TestCreateDraft_TooManyPhotos(t *testing.T) {
	svc := newMemoryService()

	req := validDraft()
	for i := 0; i <= service.MaxPhotos; i++ {
		req.Photos = append(req.Photos, fmt.Sprintf("data:image/jpeg;base64,photo%d", i))
	}

	_, err := svc.CreateDraft(context.Background(), req)
	var vErr *service.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "photos", vErr.Field)
}

func TestMarkPublished_InvalidSignature(t *testing.T) {
	svc := newMemoryService()

	id, err := svc.CreateDraft(context.Background(), validDraft())
	require.NoError(t, err)

	claim := validClaim(id)
	claim.Signature = "deadbeef"

	_, err = svc.MarkPublished(context.Background(), claim)
	assert.ErrorIs(t, err, service.ErrPaymentVerification)

	// Черновик так и не опубликован
	status, err := svc.GetStatus(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, status.IsPaid)
}

func TestMarkPublished_Idempotent(t *testing.T) {
	svc := newMemoryService()

	id, err := svc.CreateDraft(context.Background(), validDraft())
	require.NoError(t, err)

	slug1, err := svc.MarkPublished(context.Background(), validClaim(id))
	require.NoError(t, err)

	// Клиентский ретрай того же валидного результата — не ошибка
	slug2, err := svc.MarkPublished(context.Background(), validClaim(id))
	require.NoError(t, err)
	assert.Equal(t, slug1, slug2)
}

func TestMarkPublished_UnknownProposal(t *testing.T) {
	svc := newMemoryService()

	_, err := svc.MarkPublished(context.Background(), validClaim("missing-id"))
	assert.ErrorIs(t, err, service.ErrNotFound)
}

// Неоплаченный и несуществующий слаг дают одну и ту же ошибку
func TestResolvePublic_UnpaidIndistinguishable(t *testing.T) {
	svc := newMemoryService()

	id, err := svc.CreateDraft(context.Background(), validDraft())
	require.NoError(t, err)

	status, err := svc.GetStatus(context.Background(), id)
	require.NoError(t, err)

	_, errUnpaid := svc.ResolvePublic(context.Background(), status.Slug)
	_, errMissing := svc.ResolvePublic(context.Background(), "nosuchslug")

	assert.ErrorIs(t, errUnpaid, service.ErrNotFound)
	assert.ErrorIs(t, errMissing, service.ErrNotFound)
	assert.Equal(t, errUnpaid, errMissing)
}

func TestMarkAccepted_RequiresPublished(t *testing.T) {
	svc := newMemoryService()

	id, err := svc.CreateDraft(context.Background(), validDraft())
	require.NoError(t, err)

	status, err := svc.GetStatus(context.Background(), id)
	require.NoError(t, err)

	err = svc.MarkAccepted(context.Background(), status.Slug)
	assert.ErrorIs(t, err, service.ErrInvalidState)

	err = svc.MarkAccepted(context.Background(), "nosuchslug")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

// Сквозной сценарий: черновик -> оплата -> публикация -> принятие
func TestLifecycle_EndToEnd(t *testing.T) {
	svc := newMemoryService()
	ctx := context.Background()

	id, err := svc.CreateDraft(ctx, &model.CreateProposalRequest{
		YourName:    "Sam",
		PartnerName: "Lee",
		LoveMessage: "Be mine?",
	})
	require.NoError(t, err)

	status, err := svc.GetStatus(ctx, id)
	require.NoError(t, err)
	assert.False(t, status.IsPaid)

	slug, err := svc.MarkPublished(ctx, validClaim(id))
	require.NoError(t, err)
	assert.Equal(t, status.Slug, slug)

	status, err = svc.GetStatus(ctx, id)
	require.NoError(t, err)
	assert.True(t, status.IsPaid)
	assert.False(t, status.IsAccepted)

	p, err := svc.ResolvePublic(ctx, slug)
	require.NoError(t, err)
	assert.Equal(t, "Be mine?", p.LoveMessage)

	svc.RecordView(ctx, slug)
	svc.RecordView(ctx, slug)

	require.NoError(t, svc.MarkAccepted(ctx, slug))

	status, err = svc.GetStatus(ctx, id)
	require.NoError(t, err)
	assert.True(t, status.IsAccepted)
	require.NotNil(t, status.AcceptedAt)
	assert.Equal(t, 2, status.ViewsCount)

	// Повторное принятие ничего не меняет
	firstAccepted := *status.AcceptedAt
	require.NoError(t, svc.MarkAccepted(ctx, slug))

	status, err = svc.GetStatus(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, firstAccepted, *status.AcceptedAt)
}

func TestAdminOverview(t *testing.T) {
	svc := newMemoryService()
	ctx := context.Background()

	id1, err := svc.CreateDraft(ctx, validDraft())
	require.NoError(t, err)
	_, err = svc.CreateDraft(ctx, validDraft())
	require.NoError(t, err)

	slug, err := svc.MarkPublished(ctx, validClaim(id1))
	require.NoError(t, err)
	svc.RecordView(ctx, slug)

	overview, err := svc.AdminOverview(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, overview.Stats.TotalProposals)
	assert.Equal(t, 1, overview.Stats.PaidProposals)
	assert.Equal(t, 1, overview.Stats.TotalViews)
	assert.Equal(t, int64(1000), overview.Stats.TotalRevenue)
	assert.Len(t, overview.Proposals, 2)
}

// Режим database: репозиторий за gomock
func newDatabaseService(t *testing.T) (*service.ProposalService, *mocks.MockProposalRepositoryInterface) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProposalRepositoryInterface(ctrl)
	gateway := payment.NewClient(payment.NewConfig("key", testSecret, "http://unused", 1000, "INR"))
	logger, _ := zap.NewDevelopment()
	svc := service.NewProposalService(repo, nil, gateway, logger, "database", 1000)
	return svc, repo
}

func TestMarkPublished_Database(t *testing.T) {
	svc, repo := newDatabaseService(t)

	repo.EXPECT().
		MarkPaid(gomock.Any(), "prop-1").
		Return("slug-1", nil)

	slug, err := svc.MarkPublished(context.Background(), validClaim("prop-1"))
	require.NoError(t, err)
	assert.Equal(t, "slug-1", slug)
}

func TestResolvePublic_Database_NotFound(t *testing.T) {
	svc, repo := newDatabaseService(t)

	repo.EXPECT().
		GetBySlug(gomock.Any(), "missing", true).
		Return(nil, fmt.Errorf("proposal not found: %w", pgx.ErrNoRows))

	_, err := svc.ResolvePublic(context.Background(), "missing")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestMarkAccepted_Database_AlreadyAccepted(t *testing.T) {
	svc, repo := newDatabaseService(t)

	accepted := &model.Proposal{Slug: "slug-1", IsPaid: true, IsAccepted: true}
	repo.EXPECT().
		GetBySlug(gomock.Any(), "slug-1", false).
		Return(accepted, nil)
	// MarkAccepted репозитория не вызывается: состояние уже достигнуто

	err := svc.MarkAccepted(context.Background(), "slug-1")
	assert.NoError(t, err)
}

func TestRecordView_Database_SwallowsErrors(t *testing.T) {
	svc, repo := newDatabaseService(t)

	repo.EXPECT().
		IncrementViews(gomock.Any(), "slug-1").
		Return(errors.New("connection refused"))

	// Ошибка телеметрии не должна долетать до вызывающего
	svc.RecordView(context.Background(), "slug-1")
}
