package store

import (
	"context"

	"sportsbook_api/internal/domain"
)

// UserStore persists user accounts and wallet balances.
type UserStore interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, id uint) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// DepositStore persists deposit requests and performs the approval
// transition. ApproveDeposit must credit the wallet and flip the
// status pending -> approved as one atomic unit: a request that is
// already approved returns ErrDepositNotPending and leaves the wallet
// untouched, no matter how many callers race on the same id.
type DepositStore interface {
	CreateDeposit(ctx context.Context, req *domain.DepositRequest) error
	ApproveDeposit(ctx context.Context, requestID uint) (*domain.DepositRequest, error)
	ListPendingDeposits(ctx context.Context) ([]domain.DepositRequest, error)
}

// Store is the full storage boundary of the service.
type Store interface {
	UserStore
	DepositStore
}
