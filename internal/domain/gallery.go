package domain

import (
	"context"
	"time"
)

// Collection names in the hosted store
const (
	CollectionPhotos          = "photos"
	CollectionAutomations     = "automations"
	CollectionContactMessages = "contact_messages"
)

// GalleryItem is what a gallery page renders: an image card ordered by recency.
type GalleryItem interface {
	ItemID() string
	CreatedAtTime() time.Time
}

// Photo is a portfolio photograph (table photos)
type Photo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p Photo) ItemID() string           { return p.ID }
func (p Photo) CreatedAtTime() time.Time { return p.CreatedAt }

// Automation is an n8n workflow showcase (table automations)
type Automation struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ImageURL    string    `json:"image_url"`
	Tools       []string  `json:"tools"`
	CreatedAt   time.Time `json:"created_at"`
}

func (a Automation) ItemID() string           { return a.ID }
func (a Automation) CreatedAtTime() time.Time { return a.CreatedAt }

// PhotoRepository reads the photos collection, most recent first.
type PhotoRepository interface {
	FetchAll(ctx context.Context) ([]Photo, error)
}

// AutomationRepository reads the automations collection, most recent first.
type AutomationRepository interface {
	FetchAll(ctx context.Context) ([]Automation, error)
}
