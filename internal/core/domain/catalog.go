package domain

import (
	"errors"
	"time"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubCategoryNotFound = errors.New("sub-category not found")
	ErrCarouselNotFound    = errors.New("carousel not found")
	ErrPostcodeNotFound    = errors.New("postcode not found")
	ErrPostcodeExists      = errors.New("postcode already exists")
)

// Category is a top-level product grouping.
type Category struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	IsActive    bool      `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// SubCategory belongs to exactly one Category.
type SubCategory struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	CategoryID  string    `json:"category_id" bson:"category_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	IsActive    bool      `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// Carousel is a storefront banner slide.
type Carousel struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title,omitempty" bson:"title,omitempty"`
	ImageURL  string    `json:"image_url" bson:"image_url"`
	Link      string    `json:"link,omitempty" bson:"link,omitempty"`
	Position  int       `json:"position" bson:"position"`
	IsActive  bool      `json:"is_active" bson:"is_active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Postcode marks a delivery area as serviceable or not. Code is unique.
type Postcode struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Code          string    `json:"code" bson:"code"`
	City          string    `json:"city,omitempty" bson:"city,omitempty"`
	DeliveryDays  int       `json:"delivery_days" bson:"delivery_days"`
	IsServiceable bool      `json:"is_serviceable" bson:"is_serviceable"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
