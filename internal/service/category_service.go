package service

import (
	"context"

	"blogapp/internal/cache"
	"blogapp/internal/dto"
	"blogapp/internal/middleware"
	"blogapp/internal/models"
	"blogapp/internal/observability"
	"blogapp/internal/repository"
	"blogapp/internal/validation"
)

type CategoryService struct {
	categoryRepo repository.CategoryRepository
	validate     *validation.Validator
	// legacyUpdate copies the description into the title on update.
	legacyUpdate bool
}

func NewCategoryService(categoryRepo repository.CategoryRepository, v *validation.Validator, legacyUpdate bool) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, validate: v, legacyUpdate: legacyUpdate}
}

func (s *CategoryService) CreateCategory(ctx context.Context, in dto.CategoryDTO) (dto.CategoryDTO, error) {
	if err := s.validate.Struct(in); err != nil {
		return dto.CategoryDTO{}, err
	}

	category := dto.CategoryFromDTO(in)
	category.ID = 0
	if err := s.categoryRepo.Create(ctx, &category); err != nil {
		return dto.CategoryDTO{}, err
	}

	cache.Invalidate(ctx, cache.CategoriesAllKey)
	middleware.Logger.InfoContext(ctx, "category created", "category_id", category.ID)
	return dto.CategoryToDTO(&category), nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, in dto.CategoryDTO) (out dto.CategoryDTO, err error) {
	ctx, span := observability.StartSpan(ctx, "CategoryService", "UpdateCategory")
	defer func() { observability.EndSpan(span, err) }()

	if err := s.validate.Struct(in); err != nil {
		return dto.CategoryDTO{}, err
	}

	category, err := s.mustFind(ctx, id)
	if err != nil {
		return dto.CategoryDTO{}, err
	}

	category.Title = in.CategoryTitle
	if s.legacyUpdate {
		category.Title = in.CategoryDescription
	}
	category.Description = in.CategoryDescription
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return dto.CategoryDTO{}, err
	}

	cache.Invalidate(ctx, cache.CategoriesAllKey)
	cache.InvalidatePosts(ctx)
	return dto.CategoryToDTO(category), nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint) (dto.CategoryDTO, error) {
	category, err := s.mustFind(ctx, id)
	if err != nil {
		return dto.CategoryDTO{}, err
	}
	return dto.CategoryToDTO(category), nil
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	var out []dto.CategoryDTO
	err := cache.Aside(ctx, cache.CategoriesAllKey, &out, cache.ListTTL, func() error {
		categories, err := s.categoryRepo.FindAll(ctx)
		if err != nil {
			return err
		}
		out = dto.CategoriesToDTO(categories)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteCategory removes the category along with its posts and their comments.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) (err error) {
	ctx, span := observability.StartSpan(ctx, "CategoryService", "DeleteCategory")
	defer func() { observability.EndSpan(span, err) }()

	if _, err := s.mustFind(ctx, id); err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	cache.Invalidate(ctx, cache.CategoriesAllKey)
	cache.InvalidatePosts(ctx)
	middleware.Logger.InfoContext(ctx, "category deleted", "category_id", id)
	return nil
}

func (s *CategoryService) mustFind(ctx context.Context, id uint) (*models.Category, error) {
	category, found, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, models.NewNotFoundError("Category", id)
	}
	return category, nil
}
