package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/velora/storefront-admin/internal/core/domain"
)

const collectionAccounts = "accounts"

// AccountRepository implements ports.AccountRepository using MongoDB.
type AccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(collectionAccounts)}
}

type mongoAccount struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FirstName    string             `bson:"first_name"`
	LastName     string             `bson:"last_name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Phone        string             `bson:"phone"`
	Address      string             `bson:"address,omitempty"`
	City         string             `bson:"city,omitempty"`
	State        string             `bson:"state,omitempty"`
	Postcode     string             `bson:"postcode,omitempty"`
	Designation  string             `bson:"designation,omitempty"`
	IsConfirmed  bool               `bson:"is_confirmed"`
	IsActive     bool               `bson:"is_active"`
	ConfirmOTP   string             `bson:"confirm_otp,omitempty"`
	OTPTries     int                `bson:"otp_tries"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	doc := mongoAccount{
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Phone:        account.Phone,
		Address:      account.Address,
		City:         account.City,
		State:        account.State,
		Postcode:     account.Postcode,
		Designation:  account.Designation,
		IsConfirmed:  account.IsConfirmed,
		IsActive:     account.IsActive,
		ConfirmOTP:   account.ConfirmOTP,
		OTPTries:     account.OTPTries,
		CreatedAt:    account.CreatedAt.Unix(),
		UpdatedAt:    account.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	created := *account
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AccountRepository) FindByPhone(ctx context.Context, phone string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"phone": phone})
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	var ma mongoAccount
	if err := r.coll.FindOne(ctx, filter).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return toDomainAccount(&ma), nil
}

// UpdateByEmail applies a partial update; nil fields in update are skipped.
func (r *AccountRepository) UpdateByEmail(ctx context.Context, email string, update domain.AccountUpdate) error {
	set := bson.M{"updated_at": time.Now().UTC().Unix()}
	if update.IsConfirmed != nil {
		set["is_confirmed"] = *update.IsConfirmed
	}
	if update.ConfirmOTP != nil {
		set["confirm_otp"] = *update.ConfirmOTP
	}
	if update.OTPTries != nil {
		set["otp_tries"] = *update.OTPTries
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func toDomainAccount(ma *mongoAccount) *domain.Account {
	return &domain.Account{
		ID:           ma.ID.Hex(),
		FirstName:    ma.FirstName,
		LastName:     ma.LastName,
		Email:        ma.Email,
		PasswordHash: ma.PasswordHash,
		Phone:        ma.Phone,
		Address:      ma.Address,
		City:         ma.City,
		State:        ma.State,
		Postcode:     ma.Postcode,
		Designation:  ma.Designation,
		IsConfirmed:  ma.IsConfirmed,
		IsActive:     ma.IsActive,
		ConfirmOTP:   ma.ConfirmOTP,
		OTPTries:     ma.OTPTries,
		CreatedAt:    unixToTime(ma.CreatedAt),
		UpdatedAt:    unixToTime(ma.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
