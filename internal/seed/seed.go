package seed

import (
	"fmt"
	"log"

	"quill/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumGroups   int
	NumPosts    int
	ShouldClean bool
}

// DefaultOptions returns a sensible preset for local development.
func DefaultOptions() Options {
	return Options{
		NumUsers:  25,
		NumGroups: 6,
		NumPosts:  200,
	}
}

// Seed populates the database with demo users, groups, posts, comments, and a
// follow mesh so listings, profiles, and feeds all have content.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database: %d users, %d groups, %d posts...", opts.NumUsers, opts.NumGroups, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Printf("Warning: could not clear all existing data, continuing anyway: %v", err)
		}
	}

	f := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("%d users created", len(users))

	groups := make([]*models.Group, 0, opts.NumGroups)
	for i := 0; i < opts.NumGroups; i++ {
		group, err := f.CreateGroup()
		if err != nil {
			return fmt.Errorf("failed to create groups: %w", err)
		}
		groups = append(groups, group)
	}
	log.Printf("%d groups created", len(groups))

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[f.rnd.Intn(len(users))]
		// Roughly a third of posts stay ungrouped.
		var group *models.Group
		if len(groups) > 0 && f.rnd.Intn(3) != 0 {
			group = groups[f.rnd.Intn(len(groups))]
		}
		posts = append(posts, f.BuildPost(author, group, 90))
	}
	if err := f.CreatePostsBatch(posts); err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", len(posts))

	comments := 0
	for _, post := range posts {
		for i := f.rnd.Intn(4); i > 0; i-- {
			commenter := users[f.rnd.Intn(len(users))]
			if _, err := f.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("failed to create comments: %w", err)
			}
			comments++
		}
	}
	log.Printf("%d comments created", comments)

	follows := 0
	for _, user := range users {
		for i := f.rnd.Intn(6); i > 0; i-- {
			author := users[f.rnd.Intn(len(users))]
			if err := f.CreateFollow(user, author); err != nil {
				return fmt.Errorf("failed to create follows: %w", err)
			}
			if user.ID != author.ID {
				follows++
			}
		}
	}
	log.Printf("%d follow edges created", follows)

	log.Println("Seeding complete")
	return nil
}

// clearData removes seeded rows child-first so foreign keys never block.
func clearData(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.Comment{},
		&models.Follow{},
		&models.Post{},
		&models.Group{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
