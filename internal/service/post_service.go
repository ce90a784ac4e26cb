package service

import (
	"context"
	"errors"
	"time"

	"blogapp/internal/cache"
	"blogapp/internal/dto"
	"blogapp/internal/middleware"
	"blogapp/internal/models"
	"blogapp/internal/observability"
	"blogapp/internal/repository"
	"blogapp/internal/validation"

	"go.opentelemetry.io/otel/attribute"
)

type PostService struct {
	postRepo     repository.PostRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	validate     *validation.Validator
	now          func() time.Time
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	v *validation.Validator,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		validate:     v,
		now:          time.Now,
	}
}

// CreatePost stores a new post for an existing user and category. The image
// name starts as the default and the date is set to now.
func (s *PostService) CreatePost(ctx context.Context, userID, categoryID uint, in dto.PostDTO) (out dto.PostDTO, err error) {
	ctx, span := observability.StartSpan(ctx, "PostService", "CreatePost",
		attribute.Int64("user.id", int64(userID)),
		attribute.Int64("category.id", int64(categoryID)),
	)
	defer func() { observability.EndSpan(span, err) }()

	if err := s.validate.Struct(in); err != nil {
		return dto.PostDTO{}, err
	}

	user, found, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return dto.PostDTO{}, err
	}
	if !found {
		return dto.PostDTO{}, models.NewNotFoundError("User", userID)
	}
	category, found, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return dto.PostDTO{}, err
	}
	if !found {
		return dto.PostDTO{}, models.NewNotFoundError("Category", categoryID)
	}

	post := dto.PostFromDTO(in)
	post.ID = 0
	post.ImageName = models.DefaultImageName
	post.Date = s.now()
	post.UserID = user.ID
	post.User = *user
	post.CategoryID = category.ID
	post.Category = *category
	if err := s.postRepo.Create(ctx, &post); err != nil {
		return dto.PostDTO{}, err
	}

	observability.PostsCreated.Inc()
	middleware.Logger.InfoContext(ctx, "post created",
		"post_id", post.ID,
		"user_id", userID,
		"category_id", categoryID,
	)
	return dto.PostToDTO(&post), nil
}

// UpdatePost overwrites title, content and image name. An empty image name keeps the current one.
func (s *PostService) UpdatePost(ctx context.Context, id uint, in dto.PostDTO) (out dto.PostDTO, err error) {
	ctx, span := observability.StartSpan(ctx, "PostService", "UpdatePost", attribute.Int64("post.id", int64(id)))
	defer func() { observability.EndSpan(span, err) }()

	if err := s.validate.Struct(in); err != nil {
		return dto.PostDTO{}, err
	}

	post, err := s.mustFind(ctx, id)
	if err != nil {
		return dto.PostDTO{}, err
	}

	post.Title = in.Title
	post.Content = in.Content
	if in.ImageName != "" {
		post.ImageName = in.ImageName
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return dto.PostDTO{}, err
	}

	cache.Invalidate(ctx, cache.PostKey(id))
	return dto.PostToDTO(post), nil
}

// GetPostByID returns a post with its owners and comments.
func (s *PostService) GetPostByID(ctx context.Context, id uint) (dto.PostDTO, error) {
	var out dto.PostDTO
	err := cache.Aside(ctx, cache.PostKey(id), &out, cache.PostTTL, func() error {
		post, err := s.mustFind(ctx, id)
		if err != nil {
			return err
		}
		out = dto.PostToDTO(post)
		return nil
	})
	if err != nil {
		return dto.PostDTO{}, err
	}
	return out, nil
}

// GetAllPosts returns one sorted page of posts with pagination metadata.
func (s *PostService) GetAllPosts(ctx context.Context, q PageQuery) (out dto.PostResponse, err error) {
	ctx, span := observability.StartSpan(ctx, "PostService", "GetAllPosts",
		attribute.Int("page.number", q.PageNumber),
		attribute.Int("page.size", q.PageSize),
		attribute.String("page.sort_by", q.SortBy),
	)
	defer func() { observability.EndSpan(span, err) }()

	if err := validatePage(q.PageNumber, q.PageSize); err != nil {
		return dto.PostResponse{}, err
	}
	if !repository.IsSortablePostField(q.SortBy) {
		return dto.PostResponse{}, unknownSortField(q.SortBy)
	}

	posts, total, err := s.postRepo.List(ctx, repository.PageRequest{
		PageNumber: q.PageNumber,
		PageSize:   q.PageSize,
		SortBy:     q.SortBy,
		Ascending:  q.Ascending(),
	})
	if errors.Is(err, repository.ErrInvalidSortField) {
		return dto.PostResponse{}, unknownSortField(q.SortBy)
	}
	if err != nil {
		return dto.PostResponse{}, err
	}

	totalPages, last := pageMeta(total, q.PageNumber, q.PageSize)
	return dto.PostResponse{
		Posts:         dto.PostsToDTO(posts),
		PageNumber:    q.PageNumber,
		PageSize:      q.PageSize,
		TotalElements: total,
		TotalPages:    totalPages,
		LastPage:      last,
	}, nil
}

// SearchPosts returns every post whose title contains keyword, ignoring case.
func (s *PostService) SearchPosts(ctx context.Context, keyword string) ([]dto.PostDTO, error) {
	posts, err := s.postRepo.SearchByTitle(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return dto.PostsToDTO(posts), nil
}

func (s *PostService) GetPostsByUser(ctx context.Context, userID uint) ([]dto.PostDTO, error) {
	_, found, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, models.NewNotFoundError("User", userID)
	}

	posts, err := s.postRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.PostsToDTO(posts), nil
}

func (s *PostService) GetPostsByCategory(ctx context.Context, categoryID uint) ([]dto.PostDTO, error) {
	_, found, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, models.NewNotFoundError("Category", categoryID)
	}

	posts, err := s.postRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return dto.PostsToDTO(posts), nil
}

// DeletePost removes the post and its comments.
func (s *PostService) DeletePost(ctx context.Context, id uint) (err error) {
	ctx, span := observability.StartSpan(ctx, "PostService", "DeletePost", attribute.Int64("post.id", int64(id)))
	defer func() { observability.EndSpan(span, err) }()

	if _, err := s.mustFind(ctx, id); err != nil {
		return err
	}
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}

	cache.Invalidate(ctx, cache.PostKey(id))
	middleware.Logger.InfoContext(ctx, "post deleted", "post_id", id)
	return nil
}

func unknownSortField(field string) error {
	return models.NewFieldValidationError(models.FieldError{
		Field:   "sortBy",
		Message: "unknown sort field " + field,
	})
}

func (s *PostService) mustFind(ctx context.Context, id uint) (*models.Post, error) {
	post, found, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, models.NewNotFoundError("Post", id)
	}
	return post, nil
}
