package seed

import (
	"context"
	"fmt"

	"blogapp/internal/middleware"
	"blogapp/internal/models"

	"gorm.io/gorm"
)

// Options control how much demo content Seed creates.
type Options struct {
	NumUsers        int
	PostsPerUser    int
	CommentsPerPost int
	MaxDays         int
	Clean           bool
	// RandSeed makes the generated content reproducible when non-zero.
	RandSeed int64
}

// DefaultOptions is a small but browsable data set.
var DefaultOptions = Options{
	NumUsers:        8,
	PostsPerUser:    5,
	CommentsPerPost: 3,
	MaxDays:         90,
}

// CategoryTitles are created once per seeding run.
var CategoryTitles = []string{
	"Programming", "Travel", "Food", "Music", "Science", "Books", "Photography", "Fitness",
}

// Result counts what a seeding run wrote.
type Result struct {
	Users      int
	Categories int
	Posts      int
	Comments   int
}

// Seed writes users, categories, posts and comments inside one transaction.
func Seed(ctx context.Context, db *gorm.DB, opts Options) (Result, error) {
	var res Result
	middleware.Logger.InfoContext(ctx, "seeding database",
		"users", opts.NumUsers, "posts_per_user", opts.PostsPerUser, "clean", opts.Clean)

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if opts.Clean {
			if err := ClearAll(tx); err != nil {
				return err
			}
		}

		f := NewFactory(tx, opts.RandSeed)

		users := make([]*models.User, 0, opts.NumUsers)
		for i := 0; i < opts.NumUsers; i++ {
			u, err := f.CreateUser()
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}
			users = append(users, u)
		}
		res.Users = len(users)

		categories := make([]*models.Category, 0, len(CategoryTitles))
		for _, title := range CategoryTitles {
			c, err := f.CreateCategory(title)
			if err != nil {
				return fmt.Errorf("create category %q: %w", title, err)
			}
			categories = append(categories, c)
		}
		res.Categories = len(categories)

		posts := make([]*models.Post, 0, len(users)*opts.PostsPerUser)
		for _, u := range users {
			for i := 0; i < opts.PostsPerUser; i++ {
				c := categories[f.faker.Number(0, len(categories)-1)]
				posts = append(posts, f.BuildPost(u, c, opts.MaxDays))
			}
		}
		if err := f.CreatePosts(posts); err != nil {
			return fmt.Errorf("create posts: %w", err)
		}
		res.Posts = len(posts)

		comments := make([]*models.Comment, 0, len(posts)*opts.CommentsPerPost)
		for _, p := range posts {
			for i := 0; i < opts.CommentsPerPost; i++ {
				comments = append(comments, f.BuildComment(p))
			}
		}
		if err := f.CreateComments(comments); err != nil {
			return fmt.Errorf("create comments: %w", err)
		}
		res.Comments = len(comments)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	middleware.Logger.InfoContext(ctx, "database seeded",
		"users", res.Users, "categories", res.Categories, "posts", res.Posts, "comments", res.Comments)
	return res, nil
}

// ClearAll removes every row, children first.
func ClearAll(db *gorm.DB) error {
	for _, model := range []any{&models.Comment{}, &models.Post{}, &models.Category{}, &models.User{}} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

// IsEmpty reports whether no users exist yet.
func IsEmpty(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}
