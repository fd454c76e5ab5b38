package domain

import "time"

type Sponsor struct {
	ID          string    `json:"id"`
	SponsorName string    `json:"sponsorName"`
	Logo        string    `json:"logo"`
	Website     string    `json:"website"`
	CreatedAt   time.Time `json:"createdAt"`
}

type SponsorInput struct {
	SponsorName string `validate:"required,max=255"`
	Logo        string
	Website     string `validate:"omitempty,url"`
}
