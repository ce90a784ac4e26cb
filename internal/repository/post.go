package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"blogapp/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// postSortColumns maps the sort fields accepted by the API to columns.
var postSortColumns = map[string]string{
	"postId":    "id",
	"id":        "id",
	"title":     "title",
	"content":   "content",
	"imageName": "image_name",
	"date":      "date",
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id uint) (*models.Post, bool, error)
	FindByUser(ctx context.Context, userID uint) ([]*models.Post, error)
	FindByCategory(ctx context.Context, categoryID uint) ([]*models.Post, error)
	SearchByTitle(ctx context.Context, keyword string) ([]*models.Post, error)
	List(ctx context.Context, page PageRequest) ([]*models.Post, int64, error)
	Delete(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// withOwners preloads the author and category embedded in every post response.
func (r *postRepository) withOwners(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("User").Preload("Category")
}

// Create inserts the post row only; User and Category are referenced by id.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error
}

// Update writes the mutable columns of a post: title, content and image name.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Model(post).
		Omit(clause.Associations).
		Select("title", "content", "image_name").
		Updates(post).Error
}

// FindByID loads a post with its owners and comments.
func (r *postRepository) FindByID(ctx context.Context, id uint) (*models.Post, bool, error) {
	var post models.Post
	err := r.withOwners(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("comments.id ASC") }).
		First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &post, true, nil
}

func (r *postRepository) FindByUser(ctx context.Context, userID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.withOwners(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) FindByCategory(ctx context.Context, categoryID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.withOwners(ctx).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&posts).Error
	return posts, err
}

// SearchByTitle matches keyword as a case-insensitive substring of the title.
func (r *postRepository) SearchByTitle(ctx context.Context, keyword string) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.withOwners(ctx).
		Where(`LOWER(title) LIKE LOWER(?) ESCAPE '\'`, "%"+escapeLike(keyword)+"%").
		Order("id ASC").
		Find(&posts).Error
	return posts, err
}

// List returns one sorted page of posts and the total number of posts.
func (r *postRepository) List(ctx context.Context, page PageRequest) ([]*models.Post, int64, error) {
	column, ok := postSortColumns[page.SortBy]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrInvalidSortField, page.SortBy)
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	desc := !page.Ascending
	var posts []*models.Post
	err := r.withOwners(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc}).
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// Delete removes the post and its comments.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// escapeLike makes s match literally inside a LIKE pattern escaped with '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// IsSortablePostField reports whether posts can be listed in order of field.
func IsSortablePostField(field string) bool {
	_, ok := postSortColumns[field]
	return ok
}
