package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service is an admin-curated catalog category.
type Service struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ServicePost advertises a provider's offering under one catalog service.
type ServicePost struct {
	ID         uuid.UUID       `json:"id"`         // The Global Unique Identifier (GUID) for the post.
	ProviderID uuid.UUID       `json:"providerId"` // Owning service provider.
	ServiceID  uuid.UUID       `json:"serviceId"`  // Catalog category the post is listed under.
	Message    string          `json:"message"`    // Free-text pitch shown to consumers.
	Price      decimal.Decimal `json:"price"`      // Asking price.
	ImageURL   string          `json:"imageUrl"`   // Durable URL returned by the media store.
	Ratings    []Rating        `json:"ratings"`    // One entry per consumer, append-only.
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Rating is a single consumer's score on a post.
type Rating struct {
	ConsumerID uuid.UUID `json:"consumerId"`
	Stars      int       `json:"stars"`
	CreatedAt  time.Time `json:"createdAt"`
}

const (
	MinRatingStars = 1
	MaxRatingStars = 5
)

// RatingCount returns the number of rating entries on the post.
func (p *ServicePost) RatingCount() int {
	return len(p.Ratings)
}

// RatingSum returns the total number of stars.
func (p *ServicePost) RatingSum() int {
	sum := 0
	for _, r := range p.Ratings {
		sum += r.Stars
	}

	return sum
}

// AverageRating returns the mean stars, or zero for an unrated post.
func (p *ServicePost) AverageRating() float64 {
	if len(p.Ratings) == 0 {
		return 0
	}

	return float64(p.RatingSum()) / float64(len(p.Ratings))
}

// HasRatingFrom reports whether the consumer already rated the post.
func (p *ServicePost) HasRatingFrom(consumerID uuid.UUID) bool {
	for _, r := range p.Ratings {
		if r.ConsumerID == consumerID {
			return true
		}
	}

	return false
}
