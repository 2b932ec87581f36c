package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/velora/storefront-admin/internal/core/domain"
	"github.com/velora/storefront-admin/internal/core/ports"
)

// CatalogService orchestrates CRUD for categories, sub-categories, carousels
// and serviceable postcodes.
type CatalogService struct {
	categories    ports.CategoryRepository
	subCategories ports.SubCategoryRepository
	carousels     ports.CarouselRepository
	postcodes     ports.PostcodeRepository
	log           zerolog.Logger
}

func NewCatalogService(
	categories ports.CategoryRepository,
	subCategories ports.SubCategoryRepository,
	carousels ports.CarouselRepository,
	postcodes ports.PostcodeRepository,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		categories:    categories,
		subCategories: subCategories,
		carousels:     carousels,
		postcodes:     postcodes,
		log:           log,
	}
}

// --- Categories ---

func (s *CatalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CatalogService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CatalogService) CreateCategory(ctx context.Context, in ports.CategoryInput) (*domain.Category, error) {
	now := time.Now().UTC()
	created, err := s.categories.Create(ctx, &domain.Category{
		Name:        in.Name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		IsActive:    in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("category_id", created.ID).Str("name", created.Name).Msg("category created")
	return created, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, in ports.CategoryInput) (*domain.Category, error) {
	existing, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = in.Name
	existing.Description = in.Description
	existing.ImageURL = in.ImageURL
	existing.IsActive = in.IsActive
	existing.UpdatedAt = time.Now().UTC()
	if err := s.categories.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("category_id", id).Msg("category deleted")
	return nil
}

// --- Sub-categories ---

func (s *CatalogService) ListSubCategories(ctx context.Context, categoryID string) ([]*domain.SubCategory, error) {
	return s.subCategories.List(ctx, categoryID)
}

func (s *CatalogService) GetSubCategory(ctx context.Context, id string) (*domain.SubCategory, error) {
	return s.subCategories.FindByID(ctx, id)
}

// CreateSubCategory requires the parent category to exist.
func (s *CatalogService) CreateSubCategory(ctx context.Context, in ports.SubCategoryInput) (*domain.SubCategory, error) {
	if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
		return nil, fmt.Errorf("create sub-category: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.subCategories.Create(ctx, &domain.SubCategory{
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		IsActive:    in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("sub_category_id", created.ID).Str("category_id", in.CategoryID).Msg("sub-category created")
	return created, nil
}

func (s *CatalogService) UpdateSubCategory(ctx context.Context, id string, in ports.SubCategoryInput) (*domain.SubCategory, error) {
	existing, err := s.subCategories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.CategoryID != "" && in.CategoryID != existing.CategoryID {
		if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
			return nil, fmt.Errorf("update sub-category: %w", err)
		}
		existing.CategoryID = in.CategoryID
	}
	existing.Name = in.Name
	existing.Description = in.Description
	existing.ImageURL = in.ImageURL
	existing.IsActive = in.IsActive
	existing.UpdatedAt = time.Now().UTC()
	if err := s.subCategories.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *CatalogService) DeleteSubCategory(ctx context.Context, id string) error {
	return s.subCategories.Delete(ctx, id)
}

// --- Carousels ---

func (s *CatalogService) ListCarousels(ctx context.Context) ([]*domain.Carousel, error) {
	return s.carousels.List(ctx)
}

func (s *CatalogService) GetCarousel(ctx context.Context, id string) (*domain.Carousel, error) {
	return s.carousels.FindByID(ctx, id)
}

func (s *CatalogService) CreateCarousel(ctx context.Context, in ports.CarouselInput) (*domain.Carousel, error) {
	now := time.Now().UTC()
	return s.carousels.Create(ctx, &domain.Carousel{
		Title:     in.Title,
		ImageURL:  in.ImageURL,
		Link:      in.Link,
		Position:  in.Position,
		IsActive:  in.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *CatalogService) UpdateCarousel(ctx context.Context, id string, in ports.CarouselInput) (*domain.Carousel, error) {
	existing, err := s.carousels.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Title = in.Title
	existing.ImageURL = in.ImageURL
	existing.Link = in.Link
	existing.Position = in.Position
	existing.IsActive = in.IsActive
	existing.UpdatedAt = time.Now().UTC()
	if err := s.carousels.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *CatalogService) DeleteCarousel(ctx context.Context, id string) error {
	return s.carousels.Delete(ctx, id)
}

// --- Postcodes ---

func (s *CatalogService) ListPostcodes(ctx context.Context) ([]*domain.Postcode, error) {
	return s.postcodes.List(ctx)
}

// CheckPostcode reports serviceability for a delivery area code.
func (s *CatalogService) CheckPostcode(ctx context.Context, code string) (*domain.Postcode, error) {
	return s.postcodes.FindByCode(ctx, code)
}

func (s *CatalogService) CreatePostcode(ctx context.Context, in ports.PostcodeInput) (*domain.Postcode, error) {
	now := time.Now().UTC()
	created, err := s.postcodes.Create(ctx, &domain.Postcode{
		Code:          in.Code,
		City:          in.City,
		DeliveryDays:  in.DeliveryDays,
		IsServiceable: in.IsServiceable,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("postcode", created.Code).Msg("postcode created")
	return created, nil
}

func (s *CatalogService) UpdatePostcode(ctx context.Context, code string, in ports.PostcodeInput) (*domain.Postcode, error) {
	existing, err := s.postcodes.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	existing.City = in.City
	existing.DeliveryDays = in.DeliveryDays
	existing.IsServiceable = in.IsServiceable
	existing.UpdatedAt = time.Now().UTC()
	if err := s.postcodes.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *CatalogService) DeletePostcode(ctx context.Context, code string) error {
	return s.postcodes.Delete(ctx, code)
}
