// Package dto holds the request/response shapes of the API and the explicit
// conversions between them and the persisted models.
package dto

import (
	"time"

	"blogapp/internal/models"
)

// UserDTO is the transfer shape of a User.
type UserDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name" validate:"required,min=4" msg:"min=User name must be greater than 4 characters"`
	Email    string `json:"email" validate:"required,email" msg:"email=Email is not valid!"`
	Password string `json:"password" validate:"required" msg:"required=must not be null"`
	About    string `json:"about" validate:"required" msg:"required=must not be null"`
}

// CategoryDTO is the transfer shape of a Category.
type CategoryDTO struct {
	CategoryID          uint   `json:"categoryId"`
	CategoryTitle       string `json:"categoryTitle" validate:"required,min=4"`
	CategoryDescription string `json:"categoryDescription" validate:"required,min=10"`
}

// CommentDTO is the transfer shape of a Comment.
type CommentDTO struct {
	ID      uint   `json:"id"`
	Content string `json:"content" validate:"required"`
}

// PostDTO is the transfer shape of a Post with its owners embedded.
type PostDTO struct {
	PostID    uint         `json:"postId"`
	Title     string       `json:"title" validate:"required"`
	Content   string       `json:"content"`
	ImageName string       `json:"imageName"`
	Date      time.Time    `json:"date"`
	Category  *CategoryDTO `json:"category" validate:"-"`
	User      *UserDTO     `json:"user" validate:"-"`
	Comments  []CommentDTO `json:"comments"`
}

// PostResponse is one page of posts plus its pagination metadata.
type PostResponse struct {
	Posts         []PostDTO `json:"posts"`
	PageNumber    int       `json:"pageNumber"`
	PageSize      int       `json:"pageSize"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	LastPage      bool      `json:"lastPage"`
}

// UserPage is one page of users matched by email.
type UserPage struct {
	Users         []UserDTO `json:"users"`
	PageNumber    int       `json:"pageNumber"`
	PageSize      int       `json:"pageSize"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	LastPage      bool      `json:"lastPage"`
}

// UserToDTO converts a User. The password is carried over as stored.
func UserToDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		About:    u.About,
	}
}

// UserFromDTO builds a User from its transfer shape.
func UserFromDTO(d UserDTO) models.User {
	return models.User{
		ID:       d.ID,
		Name:     d.Name,
		Email:    d.Email,
		Password: d.Password,
		About:    d.About,
	}
}

func UsersToDTO(users []*models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, UserToDTO(u))
	}
	return out
}

func CategoryToDTO(c *models.Category) CategoryDTO {
	return CategoryDTO{
		CategoryID:          c.ID,
		CategoryTitle:       c.Title,
		CategoryDescription: c.Description,
	}
}

func CategoryFromDTO(d CategoryDTO) models.Category {
	return models.Category{
		ID:          d.CategoryID,
		Title:       d.CategoryTitle,
		Description: d.CategoryDescription,
	}
}

func CategoriesToDTO(categories []*models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryToDTO(c))
	}
	return out
}

func CommentToDTO(c *models.Comment) CommentDTO {
	return CommentDTO{ID: c.ID, Content: c.Content}
}

func CommentsToDTO(comments []models.Comment) []CommentDTO {
	out := make([]CommentDTO, 0, len(comments))
	for i := range comments {
		out = append(out, CommentToDTO(&comments[i]))
	}
	return out
}

// PostToDTO converts a Post. Owners are embedded only when they were loaded.
func PostToDTO(p *models.Post) PostDTO {
	out := PostDTO{
		PostID:    p.ID,
		Title:     p.Title,
		Content:   p.Content,
		ImageName: p.ImageName,
		Date:      p.Date,
		Comments:  CommentsToDTO(p.Comments),
	}
	if p.Category.ID != 0 {
		c := CategoryToDTO(&p.Category)
		out.Category = &c
	}
	if p.User.ID != 0 {
		u := UserToDTO(&p.User)
		out.User = &u
	}
	return out
}

// PostFromDTO copies the writable scalar fields of a post. Owners, date and
// comments are assigned by the service.
func PostFromDTO(d PostDTO) models.Post {
	return models.Post{
		ID:        d.PostID,
		Title:     d.Title,
		Content:   d.Content,
		ImageName: d.ImageName,
	}
}

func PostsToDTO(posts []*models.Post) []PostDTO {
	out := make([]PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, PostToDTO(p))
	}
	return out
}
