package repository

import (
	"context"

	"blogapp/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, id uint) (*models.Category, bool, error)
	FindAll(ctx context.Context) ([]*models.Category, error)
	Delete(ctx context.Context, id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Omit("Posts").Create(category).Error
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Model(category).
		Select("title", "description").
		Updates(category).Error
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*models.Category, bool, error) {
	return findByID[models.Category](ctx, r.db, id)
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	return categories, err
}

// Delete removes the category together with its posts and their comments.
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deletePostsWhere(tx, "category_id = ?", id); err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, id).Error
	})
}
