package mongo

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/velora/storefront-admin/internal/core/domain"
)

func TestAccountRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("id comes from the insert result, no follow-up query", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := &AccountRepository{coll: mt.Coll}

		created, err := repo.Create(context.Background(), &domain.Account{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@x.com",
			Phone:     "5550100",
			IsActive:  true,
		})
		if err != nil {
			mt.Fatalf("create failed: %v", err)
		}
		if len(created.ID) != 24 {
			mt.Fatalf("expected hex object id, got %q", created.ID)
		}
		if created.Email != "jane@x.com" {
			mt.Fatalf("account fields lost: %+v", created)
		}

		evt := mt.GetStartedEvent()
		if evt == nil || evt.CommandName != "insert" {
			mt.Fatalf("expected a single insert command, got %+v", evt)
		}
		if extra := mt.GetStartedEvent(); extra != nil {
			mt.Fatalf("create issued a follow-up %s command", extra.CommandName)
		}
	})

	mt.Run("duplicate key maps to account exists", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))
		repo := &AccountRepository{coll: mt.Coll}

		_, err := repo.Create(context.Background(), &domain.Account{Email: "jane@x.com", Phone: "5550100"})
		if !errors.Is(err, domain.ErrAccountExists) {
			mt.Fatalf("expected account-exists, got %v", err)
		}
	})
}
