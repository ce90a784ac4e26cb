package repository

import (
	"context"
	"fmt"

	"blogapp/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, bool, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	FindByEmail(ctx context.Context, email string, limit, offset int) ([]*models.User, int64, error)
	Delete(ctx context.Context, id uint) error
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Omit("Posts").Create(user).Error
	if isUniqueViolation(err) {
		return fmt.Errorf("user email %q: %w", user.Email, ErrDuplicateKey)
	}
	return err
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Model(user).
		Select("name", "email", "password", "about").
		Updates(user).Error
	if isUniqueViolation(err) {
		return fmt.Errorf("user email %q: %w", user.Email, ErrDuplicateKey)
	}
	return err
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, bool, error) {
	return findByID[models.User](ctx, r.db, id)
}

func (r *userRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error
	return users, err
}

func (r *userRepository) FindByEmail(ctx context.Context, email string, limit, offset int) ([]*models.User, int64, error) {
	var (
		users []*models.User
		total int64
	)
	q := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	return users, total, err
}

// Delete removes the user together with its posts and their comments.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deletePostsWhere(tx, "user_id = ?", id); err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}
