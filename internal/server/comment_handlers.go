package server

import (
	"blogapp/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/comments/createComment/:postId
// @Summary Comment on a post
// @Tags comments
// @Accept json
// @Produce json
// @Param postId path int true "Post ID"
// @Param request body dto.CommentDTO true "Comment"
// @Success 201 {object} dto.CommentDTO
// @Failure 400 {object} models.ExceptionResponse
// @Failure 404 {string} string
// @Router /comments/createComment/{postId} [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return err
	}

	var in dto.CommentDTO
	if err := parseBody(c, &in); err != nil {
		return err
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), postID, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// DeleteComment handles DELETE /api/comments/deleteComment/:commentId
// @Summary Delete comment
// @Tags comments
// @Produce plain
// @Param commentId path int true "Comment ID"
// @Success 200 {string} string
// @Failure 404 {string} string
// @Router /comments/deleteComment/{commentId} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return err
	}

	if err := s.commentService.DeleteComment(c.UserContext(), commentID); err != nil {
		return err
	}
	return c.SendString("Comment deleted successfully")
}
