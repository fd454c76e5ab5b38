package domain

import (
	"io"
	"time"
)

type EventGift struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	GiftName  string    `json:"giftName"`
	Quantity  int       `json:"quantity"`
	Images    []string  `json:"images"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type GiftInput struct {
	EventID  string `validate:"required"`
	GiftName string `validate:"required,max=255"`
	Quantity int    `validate:"gte=0"`
	Images   []Upload
	// KeepImages lists already stored image URLs to retain on update.
	KeepImages []string
}

// Upload is a file received from a multipart form.
type Upload struct {
	Filename string
	Size     int64
	Content  io.Reader
}
