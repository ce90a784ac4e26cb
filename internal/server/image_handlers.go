package server

import (
	"fmt"

	"blogapp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// UploadPostImage handles POST /api/post/uploadImage/:postId
// @Summary Upload the image of a post
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Param postId path int true "Post ID"
// @Param image formData file true "Image file"
// @Success 200 {object} dto.PostDTO
// @Failure 400 {object} models.ExceptionResponse
// @Failure 404 {string} string
// @Router /post/uploadImage/{postId} [post]
func (s *Server) UploadPostImage(c *fiber.Ctx) error {
	ctx := c.UserContext()
	postID, err := parseID(c, "postId")
	if err != nil {
		return err
	}

	post, err := s.postService.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return models.NewFieldValidationError(models.FieldError{Field: "image", Message: "must not be empty"})
	}
	if limit := int64(s.maxUploadBytes()); fh.Size > limit {
		return models.NewFieldValidationError(models.FieldError{
			Field:   "image",
			Message: fmt.Sprintf("size must be at most %d MB", limit>>20),
		})
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	name, err := s.fileService.Upload(ctx, fh.Filename, f)
	if err != nil {
		return err
	}

	post.ImageName = name
	updated, err := s.postService.UpdatePost(ctx, postID, post)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// DownloadImage handles GET /api/post/downloadImage/:fileName
// @Summary Download a stored image
// @Tags posts
// @Produce image/jpeg
// @Param fileName path string true "Stored file name"
// @Success 200 {file} binary
// @Failure 404 {string} string
// @Router /post/downloadImage/{fileName} [get]
func (s *Server) DownloadImage(c *fiber.Ctx) error {
	f, contentType, err := s.fileService.Open(c.Params("fileName"))
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, contentType)
	return c.SendStream(f)
}
