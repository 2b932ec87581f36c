package ports

import (
	"context"

	"github.com/velora/storefront-admin/internal/core/domain"
)

// CategoryInput carries the writable fields of a category.
type CategoryInput struct {
	Name        string
	Description string
	ImageURL    string
	IsActive    bool
}

// SubCategoryInput carries the writable fields of a sub-category.
type SubCategoryInput struct {
	CategoryID  string
	Name        string
	Description string
	ImageURL    string
	IsActive    bool
}

// CarouselInput carries the writable fields of a carousel slide.
type CarouselInput struct {
	Title    string
	ImageURL string
	Link     string
	Position int
	IsActive bool
}

// PostcodeInput carries the writable fields of a postcode entry.
type PostcodeInput struct {
	Code          string
	City          string
	DeliveryDays  int
	IsServiceable bool
}

// CatalogService exposes the storefront catalog CRUD surface.
type CatalogService interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	CreateCategory(ctx context.Context, in CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, in CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListSubCategories(ctx context.Context, categoryID string) ([]*domain.SubCategory, error)
	GetSubCategory(ctx context.Context, id string) (*domain.SubCategory, error)
	CreateSubCategory(ctx context.Context, in SubCategoryInput) (*domain.SubCategory, error)
	UpdateSubCategory(ctx context.Context, id string, in SubCategoryInput) (*domain.SubCategory, error)
	DeleteSubCategory(ctx context.Context, id string) error

	ListCarousels(ctx context.Context) ([]*domain.Carousel, error)
	GetCarousel(ctx context.Context, id string) (*domain.Carousel, error)
	CreateCarousel(ctx context.Context, in CarouselInput) (*domain.Carousel, error)
	UpdateCarousel(ctx context.Context, id string, in CarouselInput) (*domain.Carousel, error)
	DeleteCarousel(ctx context.Context, id string) error

	ListPostcodes(ctx context.Context) ([]*domain.Postcode, error)
	CheckPostcode(ctx context.Context, code string) (*domain.Postcode, error)
	CreatePostcode(ctx context.Context, in PostcodeInput) (*domain.Postcode, error)
	UpdatePostcode(ctx context.Context, code string, in PostcodeInput) (*domain.Postcode, error)
	DeletePostcode(ctx context.Context, code string) error
}
