package repository

import (
	"errors"

	"github.com/sanish-bhagat/Health-Sathi/internal/domain/entity"
	domainRepo "github.com/sanish-bhagat/Health-Sathi/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return translate(db.Create(user).Error)
}

func (r *userRepository) Save(db *gorm.DB, user *entity.User) error {
	return translate(db.Save(user).Error)
}

func (r *userRepository) FindByID(db *gorm.DB, id string) (*entity.User, error) {
	var user entity.User
	err := db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) FindByRole(db *gorm.DB, role entity.UserRole) ([]entity.User, error) {
	var users []entity.User
	err := db.Where("role = ?", role).Order("name ASC, id ASC").Find(&users).Error
	if err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (r *userRepository) FindAll(db *gorm.DB) ([]entity.User, error) {
	var users []entity.User
	err := db.Order("created_at ASC, id ASC").Find(&users).Error
	if err != nil {
		return nil, translate(err)
	}
	return users, nil
}

// MergeUpdate runs the read-modify-write as one transaction: other
// operations never observe the state between the read and the write.
func (r *userRepository) MergeUpdate(db *gorm.DB, id string, fields map[string]any) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		var existing entity.User
		if err := tx.Where("id = ?", id).First(&existing).Error; err != nil {
			return err
		}
		return tx.Model(&entity.User{}).Where("id = ?", id).Updates(fields).Error
	})
	return translate(err)
}
