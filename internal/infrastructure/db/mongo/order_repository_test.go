package mongo

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/velora/storefront-admin/internal/core/domain"
)

func TestOrderRepository_Create_DuplicateIdempotencyKey(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unique index loser maps to order exists", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: orders index: idempotency_key_1",
		}))
		repo := &OrderRepository{col: mt.Coll}

		err := repo.Create(context.Background(), &domain.Order{
			OrderNumber:    "ORD-AAAA1111",
			IdempotencyKey: "key-1",
			Status:         domain.OrderPlaced,
		})
		if !errors.Is(err, domain.ErrOrderExists) {
			mt.Fatalf("expected order-exists, got %v", err)
		}
	})
}
