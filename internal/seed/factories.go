// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"pulse/internal/gravatar"
	"pulse/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	return &Factory{db: db, r: rand.New(rand.NewSource(seed))}
}

// CreateUser persists a user with a faked identity. All seeded users share
// the password "password" so demo logins are predictable.
func (f *Factory) CreateUser() (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	email := gofakeit.Email()
	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    email,
		Password: string(hashed),
		Avatar:   gravatar.URL(email),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("seed user: %w", err)
	}
	return user, nil
}

// CreatePost persists a post authored by the given user with a creation
// time spread over the past maxDays days.
func (f *Factory) CreatePost(user *models.User, maxDays int) (*models.Post, error) {
	if maxDays <= 0 {
		maxDays = 30
	}
	post := &models.Post{
		Text:   gofakeit.Sentence(12),
		Name:   user.Name,
		Avatar: user.Avatar,
		UserID: user.ID,
	}
	post.CreatedAt = time.Now().
		Add(-time.Duration(f.r.Intn(maxDays)) * 24 * time.Hour).
		Add(-time.Duration(f.r.Intn(24)) * time.Hour).
		Add(-time.Duration(f.r.Intn(60)) * time.Minute)

	if err := f.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("seed post: %w", err)
	}
	return post, nil
}

// CreateComment persists a comment by the given user on the given post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		Text:   gofakeit.Sentence(8),
		Name:   user.Name,
		Avatar: user.Avatar,
		UserID: user.ID,
		PostID: post.ID,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("seed comment: %w", err)
	}
	return comment, nil
}

// CreateLike persists a like by the given user on the given post, skipping
// silently when the membership already exists.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	var count int64
	if err := f.db.Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", user.ID, post.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return f.db.Create(&models.Like{UserID: user.ID, PostID: post.ID}).Error
}

// Run populates the database with a small social mesh: users, posts,
// likes and comments.
func Run(db *gorm.DB, users, postsPerUser int) error {
	f := NewFactory(db)

	seeded := make([]*models.User, 0, users)
	for i := 0; i < users; i++ {
		u, err := f.CreateUser()
		if err != nil {
			return err
		}
		seeded = append(seeded, u)
	}

	var posts []*models.Post
	for _, u := range seeded {
		for i := 0; i < postsPerUser; i++ {
			p, err := f.CreatePost(u, 30)
			if err != nil {
				return err
			}
			posts = append(posts, p)
		}
	}

	for _, p := range posts {
		for _, u := range seeded {
			if u.ID == p.UserID {
				continue
			}
			if f.r.Intn(3) == 0 {
				if err := f.CreateLike(u, p); err != nil {
					return err
				}
			}
			if f.r.Intn(4) == 0 {
				if _, err := f.CreateComment(u, p); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
