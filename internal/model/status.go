package model

import "time"

// StatusResponse представляет проекцию для страницы статуса создателя.
// Полный текст признания и фотографии сюда не попадают.
type StatusResponse struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	PartnerName string     `json:"partnerName"`
	IsPaid      bool       `json:"isPaid"`
	IsAccepted  bool       `json:"isAccepted"`
	AcceptedAt  *time.Time `json:"acceptedAt"`
	ViewsCount  int        `json:"viewsCount"`
}

// NewStatusResponse собирает проекцию статуса из записи БД.
func NewStatusResponse(p *Proposal) *StatusResponse {
	return &StatusResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		PartnerName: p.PartnerName,
		IsPaid:      p.IsPaid,
		IsAccepted:  p.IsAccepted,
		AcceptedAt:  p.AcceptedAt,
		ViewsCount:  p.ViewsCount,
	}
}
