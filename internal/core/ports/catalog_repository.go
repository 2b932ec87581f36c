package ports

import (
	"context"

	"github.com/velora/storefront-admin/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id string) error
}

// SubCategoryRepository defines persistence operations for sub-categories.
type SubCategoryRepository interface {
	// List returns all sub-categories, optionally scoped to one category.
	List(ctx context.Context, categoryID string) ([]*domain.SubCategory, error)
	FindByID(ctx context.Context, id string) (*domain.SubCategory, error)
	Create(ctx context.Context, sc *domain.SubCategory) (*domain.SubCategory, error)
	Update(ctx context.Context, sc *domain.SubCategory) error
	Delete(ctx context.Context, id string) error
}

// CarouselRepository defines persistence operations for carousel slides.
type CarouselRepository interface {
	List(ctx context.Context) ([]*domain.Carousel, error)
	FindByID(ctx context.Context, id string) (*domain.Carousel, error)
	Create(ctx context.Context, cr *domain.Carousel) (*domain.Carousel, error)
	Update(ctx context.Context, cr *domain.Carousel) error
	Delete(ctx context.Context, id string) error
}

// PostcodeRepository defines persistence operations for serviceable postcodes.
// Postcodes are addressed by their unique area code throughout. Create must
// map a unique-index violation on code to domain.ErrPostcodeExists.
type PostcodeRepository interface {
	List(ctx context.Context) ([]*domain.Postcode, error)
	FindByCode(ctx context.Context, code string) (*domain.Postcode, error)
	Create(ctx context.Context, p *domain.Postcode) (*domain.Postcode, error)
	Update(ctx context.Context, p *domain.Postcode) error
	Delete(ctx context.Context, code string) error
}
