package repository

import (
	"context"

	"github.com/strongDoorknob/moodsy/internal/entity"

	"gorm.io/gorm"
)

// UserRepository defines the interface for account data operations.
type UserRepository interface {
	CreateWithProfile(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpgradeToPro(ctx context.Context, userID uint) (*entity.UserProfile, error)
}

// NewUserRepository creates a new GORM-based user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

type userRepository struct {
	db *gorm.DB
}

// CreateWithProfile inserts the user and its profile in one transaction.
func (r *userRepository) CreateWithProfile(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user.Profile = nil
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		profile := &entity.UserProfile{UserID: user.ID}
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		user.Profile = profile
		return nil
	})
}

// FindByEmail retrieves a user and its profile by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).Preload("Profile").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID retrieves a user and its profile by ID.
func (r *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).Preload("Profile").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpgradeToPro sets is_pro on the user's profile. Returns gorm.ErrRecordNotFound
// when the user has no profile.
func (r *userRepository) UpgradeToPro(ctx context.Context, userID uint) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			return err
		}
		return tx.Model(&profile).Update("is_pro", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
