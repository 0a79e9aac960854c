package model

import "time"

// Proposal представляет запись признания в базе данных.
type Proposal struct {
	tableName      struct{}   `pg:"proposals"`
	ID             string     `pg:"id,notnull,pk"`
	Slug           string     `pg:"slug,notnull,unique"`
	YourName       string     `pg:"your_name,notnull"`
	PartnerName    string     `pg:"partner_name,notnull"`
	SpecialDate    string     `pg:"special_date"`
	LoveMessage    string     `pg:"love_message,notnull"`
	FavoriteMemory string     `pg:"favorite_memory"`
	FutureDreams   string     `pg:"future_dreams"`
	Photos         []string   `pg:"photos,array"`
	MusicURL       string     `pg:"music_url"`
	IsPaid         bool       `pg:"is_paid,default:false"`
	IsAccepted     bool       `pg:"is_accepted,default:false"`
	AcceptedAt     *time.Time `pg:"accepted_at"`
	ViewsCount     int        `pg:"views_count,default:0"`
	CreatedAt      time.Time  `pg:"created_at,default:now()"`
}
