package testutil

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"blogapp/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateUser inserts a user with a unique email derived from name.
func CreateUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	u := &models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@example.com", name),
		Password: "secret",
		About:    "about " + name,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// CreateCategory inserts a category.
func CreateCategory(t *testing.T, db *gorm.DB, title string) *models.Category {
	t.Helper()
	c := &models.Category{Title: title, Description: "Everything about " + title}
	require.NoError(t, db.Create(c).Error)
	return c
}

// CreatePost inserts a post owned by user under category.
func CreatePost(t *testing.T, db *gorm.DB, user *models.User, category *models.Category, title string) *models.Post {
	t.Helper()
	p := &models.Post{
		Title:      title,
		Content:    "content of " + title,
		ImageName:  models.DefaultImageName,
		Date:       time.Now().UTC(),
		UserID:     user.ID,
		CategoryID: category.ID,
	}
	require.NoError(t, db.Omit("User", "Category", "Comments").Create(p).Error)
	return p
}

// CreateComment inserts a comment on post.
func CreateComment(t *testing.T, db *gorm.DB, post *models.Post, content string) *models.Comment {
	t.Helper()
	c := &models.Comment{Content: content, PostID: post.ID}
	require.NoError(t, db.Create(c).Error)
	return c
}

// PNGBytes encodes a small solid-colour PNG.
func PNGBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
