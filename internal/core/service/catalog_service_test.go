package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/velora/storefront-admin/internal/core/domain"
	"github.com/velora/storefront-admin/internal/core/ports"
)

type stubCategoryRepo struct {
	categories map[string]*domain.Category
	nextID     int
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	if c, ok := r.categories[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	r.nextID++
	c.ID = "cat_" + string(rune('0'+r.nextID))
	clone := *c
	r.categories[c.ID] = &clone
	return c, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *domain.Category) error {
	if _, ok := r.categories[c.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	clone := *c
	r.categories[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

type stubSubCategoryRepo struct {
	subCategories map[string]*domain.SubCategory
	nextID        int
}

func newStubSubCategoryRepo() *stubSubCategoryRepo {
	return &stubSubCategoryRepo{subCategories: make(map[string]*domain.SubCategory)}
}

func (r *stubSubCategoryRepo) List(_ context.Context, categoryID string) ([]*domain.SubCategory, error) {
	var out []*domain.SubCategory
	for _, sc := range r.subCategories {
		if categoryID == "" || sc.CategoryID == categoryID {
			out = append(out, sc)
		}
	}
	return out, nil
}

func (r *stubSubCategoryRepo) FindByID(_ context.Context, id string) (*domain.SubCategory, error) {
	if sc, ok := r.subCategories[id]; ok {
		clone := *sc
		return &clone, nil
	}
	return nil, domain.ErrSubCategoryNotFound
}

func (r *stubSubCategoryRepo) Create(_ context.Context, sc *domain.SubCategory) (*domain.SubCategory, error) {
	r.nextID++
	sc.ID = "sub_" + string(rune('0'+r.nextID))
	clone := *sc
	r.subCategories[sc.ID] = &clone
	return sc, nil
}

func (r *stubSubCategoryRepo) Update(_ context.Context, sc *domain.SubCategory) error {
	if _, ok := r.subCategories[sc.ID]; !ok {
		return domain.ErrSubCategoryNotFound
	}
	clone := *sc
	r.subCategories[sc.ID] = &clone
	return nil
}

func (r *stubSubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.subCategories[id]; !ok {
		return domain.ErrSubCategoryNotFound
	}
	delete(r.subCategories, id)
	return nil
}

type stubPostcodeRepo struct {
	postcodes map[string]*domain.Postcode // keyed by code
}

func newStubPostcodeRepo() *stubPostcodeRepo {
	return &stubPostcodeRepo{postcodes: make(map[string]*domain.Postcode)}
}

func (r *stubPostcodeRepo) List(_ context.Context) ([]*domain.Postcode, error) {
	out := make([]*domain.Postcode, 0, len(r.postcodes))
	for _, p := range r.postcodes {
		out = append(out, p)
	}
	return out, nil
}

func (r *stubPostcodeRepo) FindByCode(_ context.Context, code string) (*domain.Postcode, error) {
	if p, ok := r.postcodes[code]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrPostcodeNotFound
}

func (r *stubPostcodeRepo) Create(_ context.Context, p *domain.Postcode) (*domain.Postcode, error) {
	if _, exists := r.postcodes[p.Code]; exists {
		return nil, domain.ErrPostcodeExists
	}
	p.ID = "pc_" + p.Code
	clone := *p
	r.postcodes[p.Code] = &clone
	return p, nil
}

func (r *stubPostcodeRepo) Update(_ context.Context, p *domain.Postcode) error {
	if _, ok := r.postcodes[p.Code]; !ok {
		return domain.ErrPostcodeNotFound
	}
	clone := *p
	r.postcodes[p.Code] = &clone
	return nil
}

func (r *stubPostcodeRepo) Delete(_ context.Context, code string) error {
	if _, ok := r.postcodes[code]; !ok {
		return domain.ErrPostcodeNotFound
	}
	delete(r.postcodes, code)
	return nil
}

type stubCarouselRepo struct {
	carousels map[string]*domain.Carousel
	nextID    int
}

func newStubCarouselRepo() *stubCarouselRepo {
	return &stubCarouselRepo{carousels: make(map[string]*domain.Carousel)}
}

func (r *stubCarouselRepo) List(_ context.Context) ([]*domain.Carousel, error) {
	out := make([]*domain.Carousel, 0, len(r.carousels))
	for _, cr := range r.carousels {
		out = append(out, cr)
	}
	return out, nil
}

func (r *stubCarouselRepo) FindByID(_ context.Context, id string) (*domain.Carousel, error) {
	if cr, ok := r.carousels[id]; ok {
		clone := *cr
		return &clone, nil
	}
	return nil, domain.ErrCarouselNotFound
}

func (r *stubCarouselRepo) Create(_ context.Context, cr *domain.Carousel) (*domain.Carousel, error) {
	r.nextID++
	cr.ID = "car_" + string(rune('0'+r.nextID))
	clone := *cr
	r.carousels[cr.ID] = &clone
	return cr, nil
}

func (r *stubCarouselRepo) Update(_ context.Context, cr *domain.Carousel) error {
	if _, ok := r.carousels[cr.ID]; !ok {
		return domain.ErrCarouselNotFound
	}
	clone := *cr
	r.carousels[cr.ID] = &clone
	return nil
}

func (r *stubCarouselRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.carousels[id]; !ok {
		return domain.ErrCarouselNotFound
	}
	delete(r.carousels, id)
	return nil
}

func newTestCatalog() (*CatalogService, *stubCategoryRepo, *stubSubCategoryRepo, *stubPostcodeRepo) {
	categories := newStubCategoryRepo()
	subCategories := newStubSubCategoryRepo()
	postcodes := newStubPostcodeRepo()
	svc := NewCatalogService(categories, subCategories, newStubCarouselRepo(), postcodes, zerolog.Nop())
	return svc, categories, subCategories, postcodes
}

func TestCatalogService_CreateSubCategory_RequiresParent(t *testing.T) {
	svc, _, _, _ := newTestCatalog()

	_, err := svc.CreateSubCategory(context.Background(), ports.SubCategoryInput{
		CategoryID: "missing",
		Name:       "Mugs",
	})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected category-not-found, got %v", err)
	}
}

func TestCatalogService_CreateSubCategory_Success(t *testing.T) {
	svc, _, subCategories, _ := newTestCatalog()

	parent, err := svc.CreateCategory(context.Background(), ports.CategoryInput{Name: "Kitchen", IsActive: true})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	sc, err := svc.CreateSubCategory(context.Background(), ports.SubCategoryInput{
		CategoryID: parent.ID,
		Name:       "Mugs",
		IsActive:   true,
	})
	if err != nil {
		t.Fatalf("create sub-category failed: %v", err)
	}
	if sc.CategoryID != parent.ID {
		t.Fatalf("sub-category bound to %s, want %s", sc.CategoryID, parent.ID)
	}
	if len(subCategories.subCategories) != 1 {
		t.Fatalf("expected persisted sub-category")
	}
}

func TestCatalogService_UpdateCategory(t *testing.T) {
	svc, categories, _, _ := newTestCatalog()

	created, err := svc.CreateCategory(context.Background(), ports.CategoryInput{Name: "Kitchen", IsActive: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateCategory(context.Background(), created.ID, ports.CategoryInput{Name: "Kitchenware", IsActive: false})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Kitchenware" || updated.IsActive {
		t.Fatalf("unexpected updated category: %+v", updated)
	}
	if categories.categories[created.ID].Name != "Kitchenware" {
		t.Fatalf("update not persisted")
	}
}

func TestCatalogService_UpdateCategory_NotFound(t *testing.T) {
	svc, _, _, _ := newTestCatalog()

	if _, err := svc.UpdateCategory(context.Background(), "missing", ports.CategoryInput{Name: "X"}); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected category-not-found, got %v", err)
	}
}

func TestCatalogService_GetCarousel(t *testing.T) {
	svc, _, _, _ := newTestCatalog()

	created, err := svc.CreateCarousel(context.Background(), ports.CarouselInput{Title: "Sale", ImageURL: "https://cdn/x.png", Position: 1, IsActive: true})
	if err != nil {
		t.Fatalf("create carousel failed: %v", err)
	}

	got, err := svc.GetCarousel(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get carousel failed: %v", err)
	}
	if got.Title != "Sale" || got.ImageURL != "https://cdn/x.png" {
		t.Fatalf("unexpected carousel: %+v", got)
	}

	if _, err := svc.GetCarousel(context.Background(), "missing"); !errors.Is(err, domain.ErrCarouselNotFound) {
		t.Fatalf("expected carousel-not-found, got %v", err)
	}
}

func TestCatalogService_DeletePostcode_ByCode(t *testing.T) {
	svc, _, _, postcodes := newTestCatalog()

	if _, err := svc.CreatePostcode(context.Background(), ports.PostcodeInput{Code: "4000"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeletePostcode(context.Background(), "4000"); err != nil {
		t.Fatalf("delete by code failed: %v", err)
	}
	if len(postcodes.postcodes) != 0 {
		t.Fatalf("postcode not removed")
	}
	if err := svc.DeletePostcode(context.Background(), "4000"); !errors.Is(err, domain.ErrPostcodeNotFound) {
		t.Fatalf("expected postcode-not-found, got %v", err)
	}
}

func TestCatalogService_CheckPostcode(t *testing.T) {
	svc, _, _, _ := newTestCatalog()

	if _, err := svc.CreatePostcode(context.Background(), ports.PostcodeInput{Code: "4000", City: "Brisbane", IsServiceable: true}); err != nil {
		t.Fatalf("create postcode failed: %v", err)
	}

	p, err := svc.CheckPostcode(context.Background(), "4000")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !p.IsServiceable {
		t.Fatalf("expected serviceable postcode")
	}

	if _, err := svc.CheckPostcode(context.Background(), "9999"); !errors.Is(err, domain.ErrPostcodeNotFound) {
		t.Fatalf("expected postcode-not-found, got %v", err)
	}
}

func TestCatalogService_CreatePostcode_Duplicate(t *testing.T) {
	svc, _, _, _ := newTestCatalog()

	if _, err := svc.CreatePostcode(context.Background(), ports.PostcodeInput{Code: "4000"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreatePostcode(context.Background(), ports.PostcodeInput{Code: "4000"}); !errors.Is(err, domain.ErrPostcodeExists) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}
