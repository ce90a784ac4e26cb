// Package seed populates the database with demo blog content for development.
package seed

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"blogapp/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds blog entities with fake content and persists them.
type Factory struct {
	db    *gorm.DB
	faker *gofakeit.Faker
	now   func() time.Time
	// suffix keeps generated emails unique within one run
	next int
}

// NewFactory returns a Factory writing to db. A zero seed picks a random one.
func NewFactory(db *gorm.DB, seed int64) *Factory {
	return &Factory{
		db:    db,
		faker: gofakeit.New(seed),
		now:   time.Now,
	}
}

// BuildUser returns an unsaved user. Names are always long enough to pass request validation.
func (f *Factory) BuildUser(overrides ...func(*models.User)) *models.User {
	f.next++
	first := f.faker.FirstName()
	last := f.faker.LastName()
	u := &models.User{
		Name:     fmt.Sprintf("%s %s", first, last),
		Email:    fmt.Sprintf("%s.%s%d@example.com", emailPart(first), emailPart(last), f.next),
		Password: f.faker.Password(true, true, true, false, false, 12),
		About:    f.faker.Sentence(10),
	}
	for _, override := range overrides {
		override(u)
	}
	return u
}

// BuildCategory returns an unsaved category.
func (f *Factory) BuildCategory(title string) *models.Category {
	return &models.Category{
		Title:       title,
		Description: f.faker.Sentence(8),
	}
}

// BuildPost returns an unsaved post dated within the last maxDays.
func (f *Factory) BuildPost(user *models.User, category *models.Category, maxDays int) *models.Post {
	if maxDays <= 0 {
		maxDays = 90
	}
	back := time.Duration(f.faker.Number(0, maxDays*24*60)) * time.Minute
	return &models.Post{
		Title:      f.faker.Sentence(5),
		Content:    f.faker.Paragraph(2, 4, 12, "\n\n"),
		ImageName:  models.DefaultImageName,
		Date:       f.now().Add(-back).UTC(),
		UserID:     user.ID,
		CategoryID: category.ID,
	}
}

// BuildComment returns an unsaved comment on post.
func (f *Factory) BuildComment(post *models.Post) *models.Comment {
	return &models.Comment{
		Content: f.faker.Sentence(f.faker.Number(4, 16)),
		PostID:  post.ID,
	}
}

func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	u := f.BuildUser(overrides...)
	if err := f.db.Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (f *Factory) CreateCategory(title string) (*models.Category, error) {
	c := f.BuildCategory(title)
	if err := f.db.Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// CreatePosts persists posts in a single batch without touching their owners.
func (f *Factory) CreatePosts(posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	return f.db.Omit("User", "Category", "Comments").Create(&posts).Error
}

func (f *Factory) CreateComments(comments []*models.Comment) error {
	if len(comments) == 0 {
		return nil
	}
	return f.db.Create(&comments).Error
}

// emailPart lowercases s and keeps only ASCII letters and digits.
func emailPart(s string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
}
