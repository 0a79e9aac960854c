package model

import "time"

// CreateProposalRequest представляет структуру запроса на создание признания.
type CreateProposalRequest struct {
	YourName       string   `json:"yourName"`
	PartnerName    string   `json:"partnerName"`
	SpecialDate    string   `json:"specialDate,omitempty"`
	LoveMessage    string   `json:"loveMessage"`
	FavoriteMemory string   `json:"favoriteMemory,omitempty"`
	FutureDreams   string   `json:"futureDreams,omitempty"`
	Photos         []string `json:"photos,omitempty"`
	MusicURL       string   `json:"musicUrl,omitempty"`
}

// CreateProposalResponse представляет структуру ответа с идентификатором черновика.
type CreateProposalResponse struct {
	ID string `json:"id"`
}

// ProposalResponse представляет публичное представление опубликованного признания.
type ProposalResponse struct {
	ID             string     `json:"id"`
	Slug           string     `json:"slug"`
	YourName       string     `json:"yourName"`
	PartnerName    string     `json:"partnerName"`
	SpecialDate    string     `json:"specialDate,omitempty"`
	LoveMessage    string     `json:"loveMessage"`
	FavoriteMemory string     `json:"favoriteMemory,omitempty"`
	FutureDreams   string     `json:"futureDreams,omitempty"`
	Photos         []string   `json:"photos"`
	MusicURL       string     `json:"musicUrl,omitempty"`
	IsPaid         bool       `json:"isPaid"`
	IsAccepted     bool       `json:"isAccepted"`
	AcceptedAt     *time.Time `json:"acceptedAt"`
	ViewsCount     int        `json:"viewsCount"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// NewProposalResponse собирает публичное представление из записи БД.
func NewProposalResponse(p *Proposal) *ProposalResponse {
	photos := p.Photos
	if photos == nil {
		photos = []string{}
	}
	return &ProposalResponse{
		ID:             p.ID,
		Slug:           p.Slug,
		YourName:       p.YourName,
		PartnerName:    p.PartnerName,
		SpecialDate:    p.SpecialDate,
		LoveMessage:    p.LoveMessage,
		FavoriteMemory: p.FavoriteMemory,
		FutureDreams:   p.FutureDreams,
		Photos:         photos,
		MusicURL:       p.MusicURL,
		IsPaid:         p.IsPaid,
		IsAccepted:     p.IsAccepted,
		AcceptedAt:     p.AcceptedAt,
		ViewsCount:     p.ViewsCount,
		CreatedAt:      p.CreatedAt,
	}
}
