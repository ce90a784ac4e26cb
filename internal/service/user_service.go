package service

import (
	"context"
	"errors"

	"blogapp/internal/cache"
	"blogapp/internal/dto"
	"blogapp/internal/middleware"
	"blogapp/internal/models"
	"blogapp/internal/observability"
	"blogapp/internal/repository"
	"blogapp/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
	validate *validation.Validator
}

func NewUserService(userRepo repository.UserRepository, v *validation.Validator) *UserService {
	return &UserService{userRepo: userRepo, validate: v}
}

func (s *UserService) CreateUser(ctx context.Context, in dto.UserDTO) (out dto.UserDTO, err error) {
	ctx, span := observability.StartSpan(ctx, "UserService", "CreateUser")
	defer func() { observability.EndSpan(span, err) }()

	if err := s.validate.Struct(in); err != nil {
		return dto.UserDTO{}, err
	}

	user := dto.UserFromDTO(in)
	user.ID = 0
	if err := s.userRepo.Create(ctx, &user); err != nil {
		return dto.UserDTO{}, duplicateEmail(err)
	}

	middleware.Logger.InfoContext(ctx, "user created", "user_id", user.ID)
	return dto.UserToDTO(&user), nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, in dto.UserDTO) (out dto.UserDTO, err error) {
	ctx, span := observability.StartSpan(ctx, "UserService", "UpdateUser")
	defer func() { observability.EndSpan(span, err) }()

	if err := s.validate.Struct(in); err != nil {
		return dto.UserDTO{}, err
	}

	user, err := s.mustFind(ctx, id)
	if err != nil {
		return dto.UserDTO{}, err
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Password = in.Password
	user.About = in.About
	if err := s.userRepo.Update(ctx, user); err != nil {
		return dto.UserDTO{}, duplicateEmail(err)
	}

	// Posts embed their author.
	cache.InvalidatePosts(ctx)
	return dto.UserToDTO(user), nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (dto.UserDTO, error) {
	user, err := s.mustFind(ctx, id)
	if err != nil {
		return dto.UserDTO{}, err
	}
	return dto.UserToDTO(user), nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.UsersToDTO(users), nil
}

// GetUsersByEmail returns one page of the users registered under email.
func (s *UserService) GetUsersByEmail(ctx context.Context, email string, pageNumber, pageSize int) (dto.UserPage, error) {
	if err := validatePage(pageNumber, pageSize); err != nil {
		return dto.UserPage{}, err
	}

	users, total, err := s.userRepo.FindByEmail(ctx, email, pageSize, pageNumber*pageSize)
	if err != nil {
		return dto.UserPage{}, err
	}

	totalPages, last := pageMeta(total, pageNumber, pageSize)
	return dto.UserPage{
		Users:         dto.UsersToDTO(users),
		PageNumber:    pageNumber,
		PageSize:      pageSize,
		TotalElements: total,
		TotalPages:    totalPages,
		LastPage:      last,
	}, nil
}

// DeleteUser removes the user along with its posts and their comments.
func (s *UserService) DeleteUser(ctx context.Context, id uint) (err error) {
	ctx, span := observability.StartSpan(ctx, "UserService", "DeleteUser")
	defer func() { observability.EndSpan(span, err) }()

	if _, err := s.mustFind(ctx, id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	cache.InvalidatePosts(ctx)
	middleware.Logger.InfoContext(ctx, "user deleted", "user_id", id)
	return nil
}

func (s *UserService) mustFind(ctx context.Context, id uint) (*models.User, error) {
	user, found, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, models.NewNotFoundError("User", id)
	}
	return user, nil
}

func duplicateEmail(err error) error {
	if errors.Is(err, repository.ErrDuplicateKey) {
		return models.NewFieldValidationError(models.FieldError{
			Field:   "email",
			Message: "Email is already registered",
		})
	}
	return err
}
