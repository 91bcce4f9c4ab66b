package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers   int
	NumPosts   int
	MaxDays    int
	SkipBcrypt bool
}

// Seed populates the database with test data: a mesh of users following
// each other, posts with a realistic created_at spread, and engagement
// (likes and comments) on those posts.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	f := NewFactory(db, opts)
	// #nosec G404: acceptable for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if opts.NumUsers <= 0 {
		return fmt.Errorf("at least one user is required, got %d", opts.NumUsers)
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("✓ %d test users created", len(users))

	follows, err := seedFollowMesh(f, r, users)
	if err != nil {
		return fmt.Errorf("failed to create follow mesh: %w", err)
	}
	log.Printf("✓ %d follow edges created", follows)

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[r.Intn(len(users))]
		posts = append(posts, f.BuildPost(author))
	}
	if err := f.CreatePostsBatch(posts); err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	likes, comments, err := seedEngagement(f, r, users, posts)
	if err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}
	log.Printf("✓ %d likes and %d comments created", likes, comments)

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

// ClearAll truncates every seeded table. Destructive; development only.
func ClearAll(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE comments, likes, posts, user_follows, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

// seedFollowMesh gives every user a handful of followees picked at
// random, skipping self-edges and duplicates.
func seedFollowMesh(f *Factory, r *rand.Rand, users []*models.User) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}
	created := 0
	for _, follower := range users {
		seen := map[uint]bool{follower.ID: true}
		targets := 1 + r.Intn(minInt(5, len(users)-1))
		for len(seen) <= targets {
			followee := users[r.Intn(len(users))]
			if seen[followee.ID] {
				continue
			}
			seen[followee.ID] = true
			if err := f.CreateFollow(follower, followee); err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

// seedEngagement scatters likes and comments over the seeded posts.
// Each like comes from a distinct user per post so the unique index holds.
func seedEngagement(f *Factory, r *rand.Rand, users []*models.User, posts []*models.Post) (int, int, error) {
	likes, comments := 0, 0
	for _, post := range posts {
		perm := r.Perm(len(users))
		numLikes := r.Intn(minInt(8, len(users)) + 1)
		for i := 0; i < numLikes; i++ {
			if err := f.CreateLike(users[perm[i]], post); err != nil {
				return likes, comments, err
			}
			likes++
		}
		numComments := r.Intn(4)
		for i := 0; i < numComments; i++ {
			commenter := users[r.Intn(len(users))]
			if _, err := f.CreateComment(commenter, post); err != nil {
				return likes, comments, err
			}
			comments++
		}
	}
	return likes, comments, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
