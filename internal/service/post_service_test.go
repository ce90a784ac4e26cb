package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"blogapp/internal/cache"
	"blogapp/internal/dto"
	"blogapp/internal/models"
	"blogapp/internal/repository"
	"blogapp/internal/validation"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostService(posts *postRepoStub, users *userRepoStub, categories *categoryRepoStub) *PostService {
	return NewPostService(posts, users, categories, validation.New())
}

func TestPostService_CreatePost(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	var saved *models.Post
	posts := noopPostRepo()
	posts.createFn = func(_ context.Context, p *models.Post) error {
		saved = p
		p.ID = 9
		return nil
	}
	svc := newPostService(posts, noopUserRepo(), noopCategoryRepo())
	svc.now = func() time.Time { return fixed }

	out, err := svc.CreatePost(context.Background(), 1, 2, dto.PostDTO{
		PostID:    77,
		Title:     "Hello",
		Content:   "World",
		ImageName: "ignored.png",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, uint(9), out.PostID)
	assert.Equal(t, models.DefaultImageName, out.ImageName)
	assert.Equal(t, fixed, out.Date)
	require.NotNil(t, out.User)
	require.NotNil(t, out.Category)
	assert.Equal(t, uint(1), out.User.ID)
	assert.Equal(t, uint(2), out.Category.CategoryID)
	assert.NotNil(t, out.Comments)
	assert.Empty(t, out.Comments)
}

func TestPostService_CreatePost_MissingOwner(t *testing.T) {
	tests := []struct {
		name       string
		users      func() *userRepoStub
		categories func() *categoryRepoStub
		message    string
	}{
		{
			name: "missing user",
			users: func() *userRepoStub {
				r := noopUserRepo()
				r.findByIDFn = notFoundUser
				return r
			},
			categories: noopCategoryRepo,
			message:    "User with given id 1 not found!",
		},
		{
			name:  "missing category",
			users: noopUserRepo,
			categories: func() *categoryRepoStub {
				r := noopCategoryRepo()
				r.findByIDFn = notFoundCategory
				return r
			},
			message: "Category with given id 2 not found!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := noopPostRepo()
			posts.createFn = func(_ context.Context, _ *models.Post) error {
				t.Fatal("post must not be written when an owner is missing")
				return nil
			}
			svc := newPostService(posts, tt.users(), tt.categories())

			_, err := svc.CreatePost(context.Background(), 1, 2, dto.PostDTO{Title: "Hello"})
			assertNotFoundError(t, err, tt.message)
		})
	}
}

func TestPostService_CreatePost_RequiresTitle(t *testing.T) {
	svc := newPostService(noopPostRepo(), noopUserRepo(), noopCategoryRepo())
	_, err := svc.CreatePost(context.Background(), 1, 2, dto.PostDTO{Content: "no title"})
	appErr := assertValidationError(t, err)
	assert.Equal(t, "title:must not be empty.", appErr.Details())
}

func TestPostService_UpdatePost(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	posts := noopPostRepo()
	posts.findByIDFn = func(_ context.Context, id uint) (*models.Post, bool, error) {
		return &models.Post{
			ID:         id,
			Title:      "Old",
			Content:    "old",
			ImageName:  "old.png",
			Date:       created,
			UserID:     1,
			User:       models.User{ID: 1, Name: "Alice"},
			CategoryID: 2,
			Category:   models.Category{ID: 2, Title: "News"},
		}, true, nil
	}
	var saved *models.Post
	posts.updateFn = func(_ context.Context, p *models.Post) error {
		saved = p
		return nil
	}
	svc := newPostService(posts, noopUserRepo(), noopCategoryRepo())

	out, err := svc.UpdatePost(context.Background(), 3, dto.PostDTO{Title: "New", Content: "new", ImageName: "new.png"})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "New", out.Title)
	assert.Equal(t, "new.png", out.ImageName)
	assert.Equal(t, created, out.Date)
	assert.Equal(t, uint(1), out.User.ID)
	assert.Equal(t, uint(2), out.Category.CategoryID)

	out, err = svc.UpdatePost(context.Background(), 3, dto.PostDTO{Title: "Newer"})
	require.NoError(t, err)
	assert.Equal(t, "old.png", out.ImageName)

	posts.findByIDFn = notFoundPost
	_, err = svc.UpdatePost(context.Background(), 3, dto.PostDTO{Title: "New"})
	assertNotFoundError(t, err, "Post with given id 3 not found!")
}

func TestPostService_GetAllPosts(t *testing.T) {
	all := make([]*models.Post, 7)
	for i := range all {
		all[i] = &models.Post{ID: uint(i + 1), Title: "post"}
	}

	var got repository.PageRequest
	posts := noopPostRepo()
	posts.listFn = func(_ context.Context, page repository.PageRequest) ([]*models.Post, int64, error) {
		got = page
		start := page.Offset()
		if start > len(all) {
			start = len(all)
		}
		end := start + page.PageSize
		if end > len(all) {
			end = len(all)
		}
		return all[start:end], int64(len(all)), nil
	}
	svc := newPostService(posts, noopUserRepo(), noopCategoryRepo())
	ctx := context.Background()

	tests := []struct {
		name      string
		query     PageQuery
		wantCount int
		wantLast  bool
		wantAsc   bool
	}{
		{"first page", PageQuery{PageNumber: 0, PageSize: 3, SortBy: "postId", SortDir: "asc"}, 3, false, true},
		{"last page", PageQuery{PageNumber: 2, PageSize: 3, SortBy: "postId", SortDir: "ASC"}, 1, true, true},
		{"descending", PageQuery{PageNumber: 1, PageSize: 3, SortBy: "title", SortDir: "desc"}, 3, false, false},
		{"unknown direction sorts descending", PageQuery{PageNumber: 0, PageSize: 3, SortBy: "title", SortDir: "sideways"}, 3, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.GetAllPosts(ctx, tt.query)
			require.NoError(t, err)
			assert.Len(t, page.Posts, tt.wantCount)
			assert.Equal(t, int64(7), page.TotalElements)
			assert.Equal(t, 3, page.TotalPages)
			assert.Equal(t, tt.wantLast, page.LastPage)
			assert.Equal(t, tt.query.PageNumber, page.PageNumber)
			assert.Equal(t, tt.query.PageSize, page.PageSize)
			assert.Equal(t, tt.wantAsc, got.Ascending)
			assert.Equal(t, tt.query.SortBy, got.SortBy)
		})
	}
}

func TestPostService_GetAllPosts_Rejects(t *testing.T) {
	posts := noopPostRepo()
	listed := false
	posts.listFn = func(_ context.Context, _ repository.PageRequest) ([]*models.Post, int64, error) {
		listed = true
		return nil, 0, repository.ErrInvalidSortField
	}
	svc := newPostService(posts, noopUserRepo(), noopCategoryRepo())
	ctx := context.Background()

	_, err := svc.GetAllPosts(ctx, PageQuery{PageSize: 3, SortBy: "password", SortDir: "asc"})
	appErr := assertValidationError(t, err)
	assert.Equal(t, "sortBy:unknown sort field password.", appErr.Details())
	assert.False(t, listed, "unknown sort fields are rejected before querying")

	_, err = svc.GetAllPosts(ctx, PageQuery{PageNumber: -1, PageSize: 0, SortBy: "postId"})
	appErr = assertValidationError(t, err)
	assert.Len(t, appErr.Fields, 2)
}

func TestPostService_EmptyListing(t *testing.T) {
	svc := newPostService(noopPostRepo(), noopUserRepo(), noopCategoryRepo())

	page, err := svc.GetAllPosts(context.Background(), PageQuery{PageSize: 3, SortBy: "postId", SortDir: "asc"})
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Zero(t, page.TotalPages)
	assert.True(t, page.LastPage)
}

func TestPostService_OwnerListings(t *testing.T) {
	posts := noopPostRepo()
	posts.findByUserFn = func(_ context.Context, userID uint) ([]*models.Post, error) {
		return []*models.Post{{ID: 1, UserID: userID}}, nil
	}
	posts.findByCategoryFn = func(_ context.Context, categoryID uint) ([]*models.Post, error) {
		return []*models.Post{{ID: 2, CategoryID: categoryID}, {ID: 3, CategoryID: categoryID}}, nil
	}
	users := noopUserRepo()
	categories := noopCategoryRepo()
	svc := newPostService(posts, users, categories)
	ctx := context.Background()

	byUser, err := svc.GetPostsByUser(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	byCategory, err := svc.GetPostsByCategory(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	users.findByIDFn = notFoundUser
	_, err = svc.GetPostsByUser(ctx, 4)
	assertNotFoundError(t, err, "User with given id 4 not found!")

	categories.findByIDFn = notFoundCategory
	_, err = svc.GetPostsByCategory(ctx, 5)
	assertNotFoundError(t, err, "Category with given id 5 not found!")
}

func TestPostService_DeletePost(t *testing.T) {
	boom := errors.New("boom")
	posts := noopPostRepo()
	posts.deleteFn = func(_ context.Context, _ uint) error { return boom }
	svc := newPostService(posts, noopUserRepo(), noopCategoryRepo())

	assert.ErrorIs(t, svc.DeletePost(context.Background(), 1), boom)

	posts.findByIDFn = notFoundPost
	assertNotFoundError(t, svc.DeletePost(context.Background(), 1), "Post with given id 1 not found!")
}

func TestPostService_GetPostByID_UsesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = cache.Close() })

	loads := 0
	posts := noopPostRepo()
	posts.findByIDFn = func(_ context.Context, id uint) (*models.Post, bool, error) {
		loads++
		return &models.Post{
			ID:       id,
			Title:    "Cached",
			Comments: []models.Comment{{ID: 1, Content: "hi", PostID: id}},
		}, true, nil
	}
	posts.updateFn = func(_ context.Context, _ *models.Post) error { return nil }
	svc := newPostService(posts, noopUserRepo(), noopCategoryRepo())
	ctx := context.Background()

	first, err := svc.GetPostByID(ctx, 6)
	require.NoError(t, err)
	second, err := svc.GetPostByID(ctx, 6)
	require.NoError(t, err)

	assert.Equal(t, 1, loads)
	assert.Equal(t, first.Title, second.Title)
	require.Len(t, second.Comments, 1)
	assert.True(t, mr.Exists(cache.PostKey(6)))

	_, err = svc.UpdatePost(ctx, 6, dto.PostDTO{Title: "Changed"})
	require.NoError(t, err)
	assert.False(t, mr.Exists(cache.PostKey(6)))

	posts.findByIDFn = notFoundPost
	_, err = svc.GetPostByID(ctx, 7)
	assertNotFoundError(t, err, "Post with given id 7 not found!")
	assert.False(t, mr.Exists(cache.PostKey(7)))
}
