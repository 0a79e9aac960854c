package util

import (
	"encoding/json"
	"log"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/onlyyes/ProposalService/internal/model"
)

// journalRecord представляет структуру записи признания в файле.
type journalRecord struct {
	ID             string     `json:"id"`
	Slug           string     `json:"slug"`
	YourName       string     `json:"your_name"`
	PartnerName    string     `json:"partner_name"`
	SpecialDate    string     `json:"special_date,omitempty"`
	LoveMessage    string     `json:"love_message"`
	FavoriteMemory string     `json:"favorite_memory,omitempty"`
	FutureDreams   string     `json:"future_dreams,omitempty"`
	Photos         []string   `json:"photos,omitempty"`
	MusicURL       string     `json:"music_url,omitempty"`
	IsPaid         bool       `json:"is_paid"`
	IsAccepted     bool       `json:"is_accepted"`
	AcceptedAt     *time.Time `json:"accepted_at,omitempty"`
	ViewsCount     int        `json:"views_count"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ProposalStore provides a thread-safe in-memory proposal storage
// с журналом в файле для режима file.
type ProposalStore struct {
	byID   map[string]*model.Proposal
	bySlug map[string]*model.Proposal
	mutex  sync.RWMutex
	file   string
}

// NewProposalStore initializes a new ProposalStore.
func NewProposalStore(file string) *ProposalStore {
	store := &ProposalStore{
		byID:   make(map[string]*model.Proposal),
		bySlug: make(map[string]*model.Proposal),
		file:   file,
	}

	// Загружаем данные из файла
	if err := store.LoadFromFile(); err != nil {
		log.Printf("Ошибка загрузки из файла: %v", err)
	}

	return store
}

// Save сохраняет новый черновик. Идентификатор выдаётся здесь,
// как это делает БД в режиме database.
func (s *ProposalStore) Save(p *model.Proposal) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	stored := clone(p)
	s.byID[stored.ID] = stored
	s.bySlug[stored.Slug] = stored

	s.appendLocked(stored)
}

// GetBySlug возвращает признание по слагу. При onlyPaid=true неоплаченные
// записи неотличимы от отсутствующих.
func (s *ProposalStore) GetBySlug(slug string, onlyPaid bool) (*model.Proposal, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	p, exists := s.bySlug[slug]
	if !exists || (onlyPaid && !p.IsPaid) {
		return nil, false
	}
	return clone(p), true
}

// GetByID возвращает признание по внутреннему идентификатору.
func (s *ProposalStore) GetByID(id string) (*model.Proposal, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	p, exists := s.byID[id]
	if !exists {
		return nil, false
	}
	return clone(p), true
}

// MarkPaid помечает признание оплаченным. Повторный вызов — no-op.
func (s *ProposalStore) MarkPaid(id string) (string, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	p, exists := s.byID[id]
	if !exists {
		return "", false
	}
	if !p.IsPaid {
		p.IsPaid = true
		s.appendLocked(p)
	}
	return p.Slug, true
}

// MarkAccepted помечает признание принятым. accepted_at выставляется
// ровно один раз, повторные вызовы ничего не меняют.
func (s *ProposalStore) MarkAccepted(slug string, acceptedAt time.Time) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	p, exists := s.bySlug[slug]
	if !exists {
		return false
	}
	if !p.IsAccepted {
		p.IsAccepted = true
		at := acceptedAt
		p.AcceptedAt = &at
		s.appendLocked(p)
	}
	return true
}

// IncrementViews увеличивает счётчик просмотров на единицу.
func (s *ProposalStore) IncrementViews(slug string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	p, exists := s.bySlug[slug]
	if !exists {
		return false
	}
	p.ViewsCount++
	s.appendLocked(p)
	return true
}

// List возвращает все признания, новые сверху.
func (s *ProposalStore) List() []*model.Proposal {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	results := make([]*model.Proposal, 0, len(s.byID))
	for _, p := range s.byID {
		results = append(results, clone(p))
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results
}

// Stats возвращает агрегаты: всего записей, оплаченных, суммарные просмотры.
func (s *ProposalStore) Stats() (total int, paid int, views int) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, p := range s.byID {
		total++
		if p.IsPaid {
			paid++
		}
		views += p.ViewsCount
	}
	return total, paid, views
}

// LoadFromFile загружает журнал при старте сервера.
// Записи с одинаковым id перекрывают друг друга, последняя выигрывает.
func (s *ProposalStore) LoadFromFile() error {
	if s.file == "" {
		return nil
	}

	file, err := os.Open(s.file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Файл ещё не создан, это не ошибка
		}
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)

	for {
		var rec journalRecord
		if err := decoder.Decode(&rec); err != nil {
			break
		}
		p := fromRecord(&rec)
		if old, ok := s.byID[p.ID]; ok {
			delete(s.bySlug, old.Slug)
		}
		s.byID[p.ID] = p
		s.bySlug[p.Slug] = p
	}

	log.Printf("Загружено %d признаний из файла %s", len(s.byID), s.file)
	return nil
}

// appendLocked добавляет актуальное состояние записи в журнал.
// Вызывается только под мьютексом.
func (s *ProposalStore) appendLocked(p *model.Proposal) {
	if s.file == "" {
		return
	}

	file, err := os.OpenFile(s.file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("Ошибка сохранения в файл: %v", err)
		return
	}
	defer file.Close()

	data, err := json.Marshal(toRecord(p))
	if err != nil {
		log.Printf("Ошибка сериализации записи: %v", err)
		return
	}

	if _, err := file.WriteString(string(data) + "\n"); err != nil {
		log.Printf("Ошибка сохранения в файл: %v", err)
	}
}

func clone(p *model.Proposal) *model.Proposal {
	c := *p
	if p.Photos != nil {
		c.Photos = append([]string(nil), p.Photos...)
	}
	if p.AcceptedAt != nil {
		at := *p.AcceptedAt
		c.AcceptedAt = &at
	}
	return &c
}

func toRecord(p *model.Proposal) *journalRecord {
	return &journalRecord{
		ID:             p.ID,
		Slug:           p.Slug,
		YourName:       p.YourName,
		PartnerName:    p.PartnerName,
		SpecialDate:    p.SpecialDate,
		LoveMessage:    p.LoveMessage,
		FavoriteMemory: p.FavoriteMemory,
		FutureDreams:   p.FutureDreams,
		Photos:         p.Photos,
		MusicURL:       p.MusicURL,
		IsPaid:         p.IsPaid,
		IsAccepted:     p.IsAccepted,
		AcceptedAt:     p.AcceptedAt,
		ViewsCount:     p.ViewsCount,
		CreatedAt:      p.CreatedAt,
	}
}

func fromRecord(rec *journalRecord) *model.Proposal {
	return &model.Proposal{
		ID:             rec.ID,
		Slug:           rec.Slug,
		YourName:       rec.YourName,
		PartnerName:    rec.PartnerName,
		SpecialDate:    rec.SpecialDate,
		LoveMessage:    rec.LoveMessage,
		FavoriteMemory: rec.FavoriteMemory,
		FutureDreams:   rec.FutureDreams,
		Photos:         rec.Photos,
		MusicURL:       rec.MusicURL,
		IsPaid:         rec.IsPaid,
		IsAccepted:     rec.IsAccepted,
		AcceptedAt:     rec.AcceptedAt,
		ViewsCount:     rec.ViewsCount,
		CreatedAt:      rec.CreatedAt,
	}
}
