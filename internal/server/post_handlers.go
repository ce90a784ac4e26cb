package server

import (
	"blogapp/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/post/user/:userId/category/:categoryId/createPost
// @Summary Create post
// @Tags posts
// @Accept json
// @Produce json
// @Param userId path int true "Author ID"
// @Param categoryId path int true "Category ID"
// @Param request body dto.PostDTO true "Post"
// @Success 201 {object} dto.PostDTO
// @Failure 400 {object} models.ExceptionResponse
// @Failure 404 {string} string
// @Router /post/user/{userId}/category/{categoryId}/createPost [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	categoryID, err := parseID(c, "categoryId")
	if err != nil {
		return err
	}

	var in dto.PostDTO
	if err := parseBody(c, &in); err != nil {
		return err
	}

	post, err := s.postService.CreatePost(c.UserContext(), userID, categoryID, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPostsByUser handles GET /api/post/user/:userId
// @Summary List posts of a user
// @Tags posts
// @Produce json
// @Param userId path int true "Author ID"
// @Success 200 {array} dto.PostDTO
// @Failure 404 {string} string
// @Router /post/user/{userId} [get]
func (s *Server) GetPostsByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	posts, err := s.postService.GetPostsByUser(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

// GetPostsByCategory handles GET /api/post/category/:categoryId
// @Summary List posts in a category
// @Tags posts
// @Produce json
// @Param categoryId path int true "Category ID"
// @Success 200 {array} dto.PostDTO
// @Failure 404 {string} string
// @Router /post/category/{categoryId} [get]
func (s *Server) GetPostsByCategory(c *fiber.Ctx) error {
	categoryID, err := parseID(c, "categoryId")
	if err != nil {
		return err
	}

	posts, err := s.postService.GetPostsByCategory(c.UserContext(), categoryID)
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

// UpdatePost handles PUT /api/post/updatepost/:postId
// @Summary Update post
// @Tags posts
// @Accept json
// @Produce json
// @Param postId path int true "Post ID"
// @Param request body dto.PostDTO true "Post"
// @Success 200 {object} dto.PostDTO
// @Failure 400 {object} models.ExceptionResponse
// @Failure 404 {string} string
// @Router /post/updatepost/{postId} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return err
	}

	var in dto.PostDTO
	if err := parseBody(c, &in); err != nil {
		return err
	}

	post, err := s.postService.UpdatePost(c.UserContext(), postID, in)
	if err != nil {
		return err
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/post/post/:postId
// @Summary Delete post with its comments
// @Tags posts
// @Produce plain
// @Param postId path int true "Post ID"
// @Success 200 {string} string
// @Failure 404 {string} string
// @Router /post/post/{postId} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return err
	}

	if err := s.postService.DeletePost(c.UserContext(), postID); err != nil {
		return err
	}
	return c.SendString("Post deleted successfully!")
}

// GetAllPosts handles GET /api/post/getAllPosts
// @Summary List posts page by page
// @Tags posts
// @Produce json
// @Param pageNumber query int false "Zero-based page number" default(0)
// @Param pageSize query int false "Page size" default(3)
// @Param sortBy query string false "Sort field" default(postId)
// @Param sortDir query string false "asc or desc" default(asc)
// @Success 200 {object} dto.PostResponse
// @Failure 400 {object} models.ExceptionResponse
// @Router /post/getAllPosts [get]
func (s *Server) GetAllPosts(c *fiber.Ctx) error {
	q, err := parsePageQuery(c)
	if err != nil {
		return err
	}

	page, err := s.postService.GetAllPosts(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// GetPostByID handles GET /api/post/getPostById/:postId
// @Summary Get post with comments
// @Tags posts
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {object} dto.PostDTO
// @Failure 404 {string} string
// @Router /post/getPostById/{postId} [get]
func (s *Server) GetPostByID(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return err
	}

	post, err := s.postService.GetPostByID(c.UserContext(), postID)
	if err != nil {
		return err
	}
	return c.JSON(post)
}

// SearchPosts handles GET /api/post/getPostByTitle/:keyword
// @Summary Search posts by title
// @Tags posts
// @Produce json
// @Param keyword path string true "Title substring"
// @Success 200 {array} dto.PostDTO
// @Router /post/getPostByTitle/{keyword} [get]
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	posts, err := s.postService.SearchPosts(c.UserContext(), c.Params("keyword"))
	if err != nil {
		return err
	}
	return c.JSON(posts)
}
