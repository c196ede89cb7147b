package store

import (
	"context"
	"errors"

	"sportsbook_api/internal/domain"

	"gorm.io/gorm"
)

// GormStore implements Store on top of a GORM database handle.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open database handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// CreateUser inserts a new user. The username is checked explicitly so
// a duplicate maps to ErrUsernameTaken; the unique index backs it up
// against races.
func (s *GormStore) CreateUser(ctx context.Context, user *domain.User) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&domain.User{}).
		Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrUsernameTaken
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// GetUserByID fetches a user by primary key.
func (s *GormStore) GetUserByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername fetches a user by username.
func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateDeposit inserts a new deposit request in state pending.
func (s *GormStore) CreateDeposit(ctx context.Context, req *domain.DepositRequest) error {
	req.Status = domain.DepositPending
	return s.db.WithContext(ctx).Create(req).Error
}

// ApproveDeposit flips a pending request to approved and credits the
// owner's wallet inside one transaction. The status update is
// conditional on the current status, so of two racing approvals only
// one sees a row affected; the other rolls back without touching the
// wallet.
func (s *GormStore) ApproveDeposit(ctx context.Context, requestID uint) (*domain.DepositRequest, error) {
	var req domain.DepositRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&req, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDepositNotFound
			}
			return err
		}
		res := tx.Model(&domain.DepositRequest{}).
			Where("id = ? AND status = ?", requestID, domain.DepositPending).
			Update("status", domain.DepositApproved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrDepositNotPending
		}
		if err := tx.Model(&domain.User{}).Where("id = ?", req.UserID).
			Update("wallet", gorm.Expr("wallet + ?", req.Amount)).Error; err != nil {
			return err
		}
		req.Status = domain.DepositApproved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListPendingDeposits returns all requests still awaiting approval,
// oldest first.
func (s *GormStore) ListPendingDeposits(ctx context.Context) ([]domain.DepositRequest, error) {
	var reqs []domain.DepositRequest
	if err := s.db.WithContext(ctx).
		Where("status = ?", domain.DepositPending).
		Order("created_at asc").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}
