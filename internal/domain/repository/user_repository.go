package repository

import (
	"github.com/sanish-bhagat/Health-Sathi/internal/domain/entity"

	"gorm.io/gorm"
)

// UserRepository is the users collection of the local store.
// All methods take the database handle (or an open transaction) as the
// first argument so usecases control the transaction boundary.
type UserRepository interface {
	// Create inserts a new user. Fails with ErrDuplicateKey if the id
	// or email is already taken.
	Create(db *gorm.DB, user *entity.User) error

	// Save inserts or fully replaces the user by primary key.
	Save(db *gorm.DB, user *entity.User) error

	// FindByID returns the user or (nil, nil) when absent.
	FindByID(db *gorm.DB, id string) (*entity.User, error)

	// FindByEmail looks up the unique email index. Returns (nil, nil)
	// when no user has that email.
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)

	// FindByRole scans the role index.
	FindByRole(db *gorm.DB, role entity.UserRole) ([]entity.User, error)

	FindAll(db *gorm.DB) ([]entity.User, error)

	// MergeUpdate atomically reads the user, shallow-merges fields over
	// it, and writes the result back. Fields absent from the update are
	// preserved. Fails with ErrNotFound if no user has that id.
	MergeUpdate(db *gorm.DB, id string, fields map[string]any) error
}
