package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velora/storefront-admin/internal/core/domain"
)

const (
	collectionCategories    = "categories"
	collectionSubCategories = "subcategories"
	collectionCarousels     = "carousels"
	collectionPostcodes     = "postcodes"
)

// Catalog documents are stored with a hex string _id assigned at insert time
// so domain structs round-trip through bson without a separate document type.

// --- Categories ---

type CategoryRepository struct {
	col *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{col: db.Collection(collectionCategories)}
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	var out []*domain.Category
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return out, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	var c domain.Category
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	c.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// --- Sub-categories ---

type SubCategoryRepository struct {
	col *mongo.Collection
}

func NewSubCategoryRepository(db *mongo.Database) *SubCategoryRepository {
	return &SubCategoryRepository{col: db.Collection(collectionSubCategories)}
}

func (r *SubCategoryRepository) List(ctx context.Context, categoryID string) ([]*domain.SubCategory, error) {
	filter := bson.M{}
	if categoryID != "" {
		filter["category_id"] = categoryID
	}
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list sub-categories: %w", err)
	}
	var out []*domain.SubCategory
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode sub-categories: %w", err)
	}
	return out, nil
}

func (r *SubCategoryRepository) FindByID(ctx context.Context, id string) (*domain.SubCategory, error) {
	var sc domain.SubCategory
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&sc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSubCategoryNotFound
		}
		return nil, fmt.Errorf("find sub-category: %w", err)
	}
	return &sc, nil
}

func (r *SubCategoryRepository) Create(ctx context.Context, sc *domain.SubCategory) (*domain.SubCategory, error) {
	sc.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, sc); err != nil {
		return nil, fmt.Errorf("insert sub-category: %w", err)
	}
	return sc, nil
}

func (r *SubCategoryRepository) Update(ctx context.Context, sc *domain.SubCategory) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": sc.ID}, sc)
	if err != nil {
		return fmt.Errorf("update sub-category: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSubCategoryNotFound
	}
	return nil
}

func (r *SubCategoryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete sub-category: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSubCategoryNotFound
	}
	return nil
}

// --- Carousels ---

type CarouselRepository struct {
	col *mongo.Collection
}

func NewCarouselRepository(db *mongo.Database) *CarouselRepository {
	return &CarouselRepository{col: db.Collection(collectionCarousels)}
}

func (r *CarouselRepository) List(ctx context.Context) ([]*domain.Carousel, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list carousels: %w", err)
	}
	var out []*domain.Carousel
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode carousels: %w", err)
	}
	return out, nil
}

func (r *CarouselRepository) FindByID(ctx context.Context, id string) (*domain.Carousel, error) {
	var cr domain.Carousel
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&cr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCarouselNotFound
		}
		return nil, fmt.Errorf("find carousel: %w", err)
	}
	return &cr, nil
}

func (r *CarouselRepository) Create(ctx context.Context, cr *domain.Carousel) (*domain.Carousel, error) {
	cr.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, cr); err != nil {
		return nil, fmt.Errorf("insert carousel: %w", err)
	}
	return cr, nil
}

func (r *CarouselRepository) Update(ctx context.Context, cr *domain.Carousel) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": cr.ID}, cr)
	if err != nil {
		return fmt.Errorf("update carousel: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCarouselNotFound
	}
	return nil
}

func (r *CarouselRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete carousel: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCarouselNotFound
	}
	return nil
}

// --- Postcodes ---

type PostcodeRepository struct {
	col *mongo.Collection
}

func NewPostcodeRepository(db *mongo.Database) *PostcodeRepository {
	return &PostcodeRepository{col: db.Collection(collectionPostcodes)}
}

func (r *PostcodeRepository) List(ctx context.Context) ([]*domain.Postcode, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "code", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list postcodes: %w", err)
	}
	var out []*domain.Postcode
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode postcodes: %w", err)
	}
	return out, nil
}

func (r *PostcodeRepository) FindByCode(ctx context.Context, code string) (*domain.Postcode, error) {
	var p domain.Postcode
	if err := r.col.FindOne(ctx, bson.M{"code": code}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostcodeNotFound
		}
		return nil, fmt.Errorf("find postcode: %w", err)
	}
	return &p, nil
}

func (r *PostcodeRepository) Create(ctx context.Context, p *domain.Postcode) (*domain.Postcode, error) {
	p.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrPostcodeExists
		}
		return nil, fmt.Errorf("insert postcode: %w", err)
	}
	return p, nil
}

func (r *PostcodeRepository) Update(ctx context.Context, p *domain.Postcode) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("update postcode: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostcodeNotFound
	}
	return nil
}

// Delete removes a postcode by its area code, the key every other postcode
// operation addresses by.
func (r *PostcodeRepository) Delete(ctx context.Context, code string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"code": code})
	if err != nil {
		return fmt.Errorf("delete postcode: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostcodeNotFound
	}
	return nil
}
