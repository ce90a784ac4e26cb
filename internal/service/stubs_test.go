package service

import (
	"context"
	"errors"
	"testing"

	"blogapp/internal/models"
	"blogapp/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn      func(context.Context, *models.User) error
	updateFn      func(context.Context, *models.User) error
	findByIDFn    func(context.Context, uint) (*models.User, bool, error)
	findAllFn     func(context.Context) ([]*models.User, error)
	findByEmailFn func(context.Context, string, int, int) ([]*models.User, int64, error)
	deleteFn      func(context.Context, uint) error
}

func (s *userRepoStub) Create(ctx context.Context, u *models.User) error { return s.createFn(ctx, u) }
func (s *userRepoStub) Update(ctx context.Context, u *models.User) error { return s.updateFn(ctx, u) }
func (s *userRepoStub) FindByID(ctx context.Context, id uint) (*models.User, bool, error) {
	return s.findByIDFn(ctx, id)
}
func (s *userRepoStub) FindAll(ctx context.Context) ([]*models.User, error) { return s.findAllFn(ctx) }
func (s *userRepoStub) FindByEmail(ctx context.Context, email string, limit, offset int) ([]*models.User, int64, error) {
	return s.findByEmailFn(ctx, email, limit, offset)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(_ context.Context, _ *models.User) error { return nil },
		updateFn: func(_ context.Context, _ *models.User) error { return nil },
		findByIDFn: func(_ context.Context, id uint) (*models.User, bool, error) {
			return &models.User{ID: id, Name: "someone"}, true, nil
		},
		findAllFn: func(_ context.Context) ([]*models.User, error) { return nil, nil },
		findByEmailFn: func(_ context.Context, _ string, _, _ int) ([]*models.User, int64, error) {
			return nil, 0, nil
		},
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// categoryRepoStub is a stub for repository.CategoryRepository.
type categoryRepoStub struct {
	createFn   func(context.Context, *models.Category) error
	updateFn   func(context.Context, *models.Category) error
	findByIDFn func(context.Context, uint) (*models.Category, bool, error)
	findAllFn  func(context.Context) ([]*models.Category, error)
	deleteFn   func(context.Context, uint) error
}

func (s *categoryRepoStub) Create(ctx context.Context, c *models.Category) error {
	return s.createFn(ctx, c)
}
func (s *categoryRepoStub) Update(ctx context.Context, c *models.Category) error {
	return s.updateFn(ctx, c)
}
func (s *categoryRepoStub) FindByID(ctx context.Context, id uint) (*models.Category, bool, error) {
	return s.findByIDFn(ctx, id)
}
func (s *categoryRepoStub) FindAll(ctx context.Context) ([]*models.Category, error) {
	return s.findAllFn(ctx)
}
func (s *categoryRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		createFn: func(_ context.Context, _ *models.Category) error { return nil },
		updateFn: func(_ context.Context, _ *models.Category) error { return nil },
		findByIDFn: func(_ context.Context, id uint) (*models.Category, bool, error) {
			return &models.Category{ID: id, Title: "General"}, true, nil
		},
		findAllFn: func(_ context.Context) ([]*models.Category, error) { return nil, nil },
		deleteFn:  func(_ context.Context, _ uint) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn         func(context.Context, *models.Post) error
	updateFn         func(context.Context, *models.Post) error
	findByIDFn       func(context.Context, uint) (*models.Post, bool, error)
	findByUserFn     func(context.Context, uint) ([]*models.Post, error)
	findByCategoryFn func(context.Context, uint) ([]*models.Post, error)
	searchByTitleFn  func(context.Context, string) ([]*models.Post, error)
	listFn           func(context.Context, repository.PageRequest) ([]*models.Post, int64, error)
	deleteFn         func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, p *models.Post) error { return s.createFn(ctx, p) }
func (s *postRepoStub) Update(ctx context.Context, p *models.Post) error { return s.updateFn(ctx, p) }
func (s *postRepoStub) FindByID(ctx context.Context, id uint) (*models.Post, bool, error) {
	return s.findByIDFn(ctx, id)
}
func (s *postRepoStub) FindByUser(ctx context.Context, userID uint) ([]*models.Post, error) {
	return s.findByUserFn(ctx, userID)
}
func (s *postRepoStub) FindByCategory(ctx context.Context, categoryID uint) ([]*models.Post, error) {
	return s.findByCategoryFn(ctx, categoryID)
}
func (s *postRepoStub) SearchByTitle(ctx context.Context, keyword string) ([]*models.Post, error) {
	return s.searchByTitleFn(ctx, keyword)
}
func (s *postRepoStub) List(ctx context.Context, page repository.PageRequest) ([]*models.Post, int64, error) {
	return s.listFn(ctx, page)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, _ *models.Post) error { return nil },
		updateFn: func(_ context.Context, _ *models.Post) error { return nil },
		findByIDFn: func(_ context.Context, id uint) (*models.Post, bool, error) {
			return &models.Post{ID: id, Title: "existing"}, true, nil
		},
		findByUserFn:     func(_ context.Context, _ uint) ([]*models.Post, error) { return nil, nil },
		findByCategoryFn: func(_ context.Context, _ uint) ([]*models.Post, error) { return nil, nil },
		searchByTitleFn:  func(_ context.Context, _ string) ([]*models.Post, error) { return nil, nil },
		listFn: func(_ context.Context, _ repository.PageRequest) ([]*models.Post, int64, error) {
			return nil, 0, nil
		},
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn   func(context.Context, *models.Comment) error
	findByIDFn func(context.Context, uint) (*models.Comment, bool, error)
	deleteFn   func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) FindByID(ctx context.Context, id uint) (*models.Comment, bool, error) {
	return s.findByIDFn(ctx, id)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
		findByIDFn: func(_ context.Context, id uint) (*models.Comment, bool, error) {
			return &models.Comment{ID: id, PostID: 1}, true, nil
		},
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) *models.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	return appErr
}

// assertNotFoundError asserts that err is an AppError with code NOT_FOUND and the given message.
func assertNotFoundError(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.Equal(t, message, appErr.Message)
}

func notFoundUser(_ context.Context, _ uint) (*models.User, bool, error) { return nil, false, nil }

func notFoundCategory(_ context.Context, _ uint) (*models.Category, bool, error) {
	return nil, false, nil
}

func notFoundPost(_ context.Context, _ uint) (*models.Post, bool, error) { return nil, false, nil }
