package seed

import (
	"fmt"
	"log"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with a demo social graph.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) (*Seeder, error) {
	factory, err := NewFactory(db)
	if err != nil {
		return nil, err
	}
	return &Seeder{db: db, factory: factory}, nil
}

// ClearAll wipes all application data. Children go first since referential
// integrity is procedural, not enforced by the database.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []any{
		&models.Reaction{},
		&models.Comment{},
		&models.Post{},
		&models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

// Run creates numUsers accounts and numPosts posts, then sprinkles comments
// and reactions across them.
func (s *Seeder) Run(numUsers, numPosts int) error {
	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("Created %d users", len(users))

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[s.factory.rng.Intn(len(users))]
		post, err := s.factory.CreatePost(author)
		if err != nil {
			return fmt.Errorf("create post: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("Created %d posts", len(posts))

	var comments, reactions int
	for _, post := range posts {
		for i := 0; i < s.factory.rng.Intn(4); i++ {
			commenter := users[s.factory.rng.Intn(len(users))]
			if _, err := s.factory.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("create comment: %w", err)
			}
			comments++
		}

		// One reaction per (user, post): walk a shuffled user list and take
		// a prefix, so no pair repeats.
		order := s.factory.rng.Perm(len(users))
		take := s.factory.rng.Intn(len(users) + 1)
		for _, idx := range order[:take] {
			like := s.factory.rng.Intn(100) < 70
			if err := s.factory.CreateReaction(users[idx], post, like); err != nil {
				return fmt.Errorf("create reaction: %w", err)
			}
			reactions++
		}
	}
	log.Printf("Created %d comments and %d reactions", comments, reactions)

	return nil
}
