// Command seed fills the configured database with demo blog content.
package main

import (
	"context"
	"flag"
	"log"

	"blogapp/internal/config"
	"blogapp/internal/database"
	"blogapp/internal/seed"
)

func main() {
	opts := seed.DefaultOptions
	flag.IntVar(&opts.NumUsers, "users", opts.NumUsers, "Number of users to create")
	flag.IntVar(&opts.PostsPerUser, "posts", opts.PostsPerUser, "Posts per user")
	flag.IntVar(&opts.CommentsPerPost, "comments", opts.CommentsPerPost, "Comments per post")
	flag.IntVar(&opts.MaxDays, "days", opts.MaxDays, "Spread post dates over this many past days")
	flag.BoolVar(&opts.Clean, "clean", false, "Delete all existing rows before seeding")
	flag.Int64Var(&opts.RandSeed, "rand-seed", 0, "Seed for reproducible content (0 = random)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	res, err := seed.Seed(context.Background(), db, opts)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded %d users, %d categories, %d posts, %d comments",
		res.Users, res.Categories, res.Posts, res.Comments)
}
