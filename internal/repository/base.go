// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateKey is returned when a write violates a unique constraint.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrInvalidSortField is returned when a listing is sorted by an unknown field.
var ErrInvalidSortField = errors.New("invalid sort field")

// PageRequest selects one page of an ordered result set. PageNumber is zero-based.
type PageRequest struct {
	PageNumber int
	PageSize   int
	SortBy     string
	Ascending  bool
}

// Offset returns the number of rows skipped before the page.
func (p PageRequest) Offset() int {
	return p.PageNumber * p.PageSize
}

// findByID loads a single row by primary key. A missing row is reported with found=false and no error.
func findByID[T any](ctx context.Context, db *gorm.DB, id uint, preloads ...string) (*T, bool, error) {
	var out T
	q := db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	err := q.First(&out, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &out, true, nil
}

// isUniqueViolation recognises unique constraint failures from Postgres and SQLite.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// deletePostsWhere removes the posts matched by query and their comments inside tx.
func deletePostsWhere(tx *gorm.DB, query string, args ...interface{}) error {
	postIDs := tx.Table("posts").Select("id").Where(query, args...)
	if err := tx.Exec("DELETE FROM comments WHERE post_id IN (?)", postIDs).Error; err != nil {
		return err
	}
	return tx.Exec("DELETE FROM posts WHERE "+query, args...).Error
}
