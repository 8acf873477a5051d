package model

import "time"

type Mapping struct {
	ShortCode string    `db:"short_code" json:"short_code"`
	LongURL   string    `db:"long_url" json:"long_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
