package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/onlyyes/ProposalService/internal/database"
	"github.com/onlyyes/ProposalService/internal/model"
)

// ProposalRepositoryInterface определяет методы репозитория признаний.
type ProposalRepositoryInterface interface {
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

// ProposalRepository реализует ProposalRepositoryInterface с использованием PostgreSQL.
type ProposalRepository struct {
	DB database.DBInterface
}

// NewProposalRepository создаёт новый экземпляр ProposalRepository.
func NewProposalRepository(db database.DBInterface) *ProposalRepository {
	return &ProposalRepository{DB: db}
}

const proposalColumns = `id::text, slug, your_name, partner_name, special_date,
       love_message, favorite_memory, future_dreams, photos, music_url,
       is_paid, is_accepted, accepted_at, views_count, created_at`

// SaveProposal сохраняет черновик в базу данных.
// Идентификатор выдаёт БД, created_at фиксируется здесь.
func (r *ProposalRepository) SaveProposal(ctx context.Context, p *model.Proposal) error {
	query := `INSERT INTO proposals
              (slug, your_name, partner_name, special_date, love_message,
               favorite_memory, future_dreams, photos, music_url,
               is_paid, is_accepted, views_count, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, FALSE, FALSE, 0, $10)
              RETURNING id::text`

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query,
		p.Slug, p.YourName, p.PartnerName, p.SpecialDate, p.LoveMessage,
		p.FavoriteMemory, p.FutureDreams, p.Photos, p.MusicURL, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("database insert error: %w", err)
	}
	return nil
}

// GetByID извлекает признание по внутреннему идентификатору.
func (r *ProposalRepository) GetByID(ctx context.Context, id string) (*model.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE id = $1::uuid`
	return r.scanOne(r.DB.(*database.DB).Pool.QueryRow(ctx, query, id))
}

// GetBySlug извлекает признание по слагу. При onlyPaid=true неоплаченная
// запись неотличима от отсутствующей: обе дают pgx.ErrNoRows.
func (r *ProposalRepository) GetBySlug(ctx context.Context, slug string, onlyPaid bool) (*model.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE slug = $1`
	if onlyPaid {
		query += ` AND is_paid = TRUE`
	}
	return r.scanOne(r.DB.(*database.DB).Pool.QueryRow(ctx, query, slug))
}

// MarkPaid помечает признание оплаченным и возвращает его слаг.
// UPDATE без guard-условия: повторный вызов оставляет is_paid = TRUE.
func (r *ProposalRepository) MarkPaid(ctx context.Context, id string) (string, error) {
	query := `UPDATE proposals SET is_paid = TRUE WHERE id = $1::uuid RETURNING slug`
	var slug string
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query, id).Scan(&slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("proposal not found: %w", err)
		}
		return "", fmt.Errorf("database error: %w", err)
	}
	return slug, nil
}

// MarkAccepted помечает признание принятым. Guard is_accepted = FALSE
// гарантирует, что accepted_at выставляется ровно один раз даже при
// конкурирующих запросах. Возвращает false, если записи нет вовсе.
func (r *ProposalRepository) MarkAccepted(ctx context.Context, slug string) (bool, error) {
	query := `UPDATE proposals
              SET is_accepted = TRUE, accepted_at = now()
              WHERE slug = $1 AND is_accepted = FALSE`
	tag, err := r.DB.(*database.DB).Pool.Exec(ctx, query, slug)
	if err != nil {
		return false, fmt.Errorf("database update error: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	// Ноль обновлённых строк: либо уже принято, либо записи нет
	var exists bool
	err = r.DB.(*database.DB).Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM proposals WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("database query error: %w", err)
	}
	return exists, nil
}

// IncrementViews атомарно увеличивает счётчик просмотров на единицу.
// Именно инкремент на стороне БД, а не read-modify-write: параллельные
// зрители не должны терять просмотры.
func (r *ProposalRepository) IncrementViews(ctx context.Context, slug string) error {
	query := `UPDATE proposals SET views_count = views_count + 1 WHERE slug = $1`
	_, err := r.DB.(*database.DB).Pool.Exec(ctx, query, slug)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

// ListAll возвращает все признания, новые сверху.
func (r *ProposalRepository) ListAll(ctx context.Context) ([]*model.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals ORDER BY created_at DESC`
	rows, err := r.DB.(*database.DB).Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query proposals: %w", err)
	}
	defer rows.Close()

	var results []*model.Proposal
	for rows.Next() {
		p := &model.Proposal{}
		err := rows.Scan(
			&p.ID, &p.Slug, &p.YourName, &p.PartnerName, &p.SpecialDate,
			&p.LoveMessage, &p.FavoriteMemory, &p.FutureDreams, &p.Photos, &p.MusicURL,
			&p.IsPaid, &p.IsAccepted, &p.AcceptedAt, &p.ViewsCount, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, p)
	}

	return results, nil
}

// Stats возвращает агрегаты для админки одним запросом.
func (r *ProposalRepository) Stats(ctx context.Context) (total int, paid int, views int, err error) {
	query := `SELECT COUNT(*),
                     COUNT(*) FILTER (WHERE is_paid),
                     COALESCE(SUM(views_count), 0)
              FROM proposals`
	err = r.DB.(*database.DB).Pool.QueryRow(ctx, query).Scan(&total, &paid, &views)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to query stats: %w", err)
	}
	return total, paid, views, nil
}

// Ping проверяет доступность базы данных.
func (r *ProposalRepository) Ping(ctx context.Context) error {
	_, err := r.DB.(*database.DB).Pool.Exec(ctx, "SELECT 1")
	return err
}

func (r *ProposalRepository) scanOne(row pgx.Row) (*model.Proposal, error) {
	p := &model.Proposal{}
	err := row.Scan(
		&p.ID, &p.Slug, &p.YourName, &p.PartnerName, &p.SpecialDate,
		&p.LoveMessage, &p.FavoriteMemory, &p.FutureDreams, &p.Photos, &p.MusicURL,
		&p.IsPaid, &p.IsAccepted, &p.AcceptedAt, &p.ViewsCount, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("proposal not found: %w", err)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return p, nil
}
