package storage

import (
	"time"

	"github.com/onlyyes/ProposalService/internal/model"
)

// Storage определяет интерфейс для работы с хранилищем признаний
// в режимах file и in-memory.
type Storage interface {
	// Save сохраняет новый черновик и выдаёт ему идентификатор.
	Save(p *model.Proposal)
	// GetBySlug возвращает признание по слагу; при onlyPaid=true
	// неоплаченные записи неотличимы от отсутствующих.
	GetBySlug(slug string, onlyPaid bool) (*model.Proposal, bool)
	// GetByID возвращает признание по внутреннему идентификатору.
	GetByID(id string) (*model.Proposal, bool)
	// MarkPaid помечает запись оплаченной и возвращает её слаг.
	MarkPaid(id string) (string, bool)
	// MarkAccepted помечает запись принятой; повторные вызовы — no-op.
	MarkAccepted(slug string, acceptedAt time.Time) bool
	// IncrementViews увеличивает счётчик просмотров на единицу.
	IncrementViews(slug string) bool
	// List возвращает все признания, новые сверху.
	List() []*model.Proposal
	// Stats возвращает агрегаты: всего, оплаченных, суммарные просмотры.
	Stats() (total int, paid int, views int)
}
