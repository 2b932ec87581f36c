package ports

import (
	"context"

	"github.com/velora/storefront-admin/internal/core/domain"
)

// AccountRepository is the persistence boundary for admin accounts.
//
// Create must map the store's unique-index violation to
// domain.ErrAccountExists: the pre-checks in the service are a UX nicety, the
// index is the real uniqueness guarantee under concurrent registration.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByPhone(ctx context.Context, phone string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	UpdateByEmail(ctx context.Context, email string, update domain.AccountUpdate) error
}
