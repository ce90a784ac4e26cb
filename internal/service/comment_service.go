package service

import (
	"context"

	"blogapp/internal/cache"
	"blogapp/internal/dto"
	"blogapp/internal/models"
	"blogapp/internal/repository"
	"blogapp/internal/validation"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	validate    *validation.Validator
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	v *validation.Validator,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		validate:    v,
	}
}

func (s *CommentService) CreateComment(ctx context.Context, postID uint, in dto.CommentDTO) (dto.CommentDTO, error) {
	if err := s.validate.Struct(in); err != nil {
		return dto.CommentDTO{}, err
	}

	_, found, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return dto.CommentDTO{}, err
	}
	if !found {
		return dto.CommentDTO{}, models.NewNotFoundError("Post", postID)
	}

	comment := &models.Comment{
		Content: in.Content,
		PostID:  postID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return dto.CommentDTO{}, err
	}

	cache.Invalidate(ctx, cache.PostKey(postID))
	return dto.CommentToDTO(comment), nil
}

func (s *CommentService) DeleteComment(ctx context.Context, id uint) error {
	comment, found, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return models.NewNotFoundError("Comment", id)
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return err
	}

	cache.Invalidate(ctx, cache.PostKey(comment.PostID))
	return nil
}
