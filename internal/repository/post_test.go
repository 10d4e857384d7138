package repository

import (
	"context"
	"testing"
	"time"

	"pulse/internal/database"
	"pulse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func createTestPost(t *testing.T, repo PostRepository, userID uint, text string) *models.Post {
	t.Helper()

	post := &models.Post{
		Text:   text,
		Name:   "Test User",
		UserID: userID,
	}
	require.NoError(t, repo.Create(context.Background(), post))
	return post
}

func TestPostRepository_LikeUnlike(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := createTestPost(t, repo, 1, "a post worth liking twice")

	require.NoError(t, repo.Like(ctx, 2, post.ID))

	// Liking twice must fail without growing the like set.
	err := repo.Like(ctx, 2, post.ID)
	assert.True(t, models.HasCode(err, models.CodeAlreadyLiked))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, got.Likes, 1)
	assert.Equal(t, uint(2), got.Likes[0].UserID)

	require.NoError(t, repo.Unlike(ctx, 2, post.ID))

	got, err = repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Likes)

	// Unliking without a prior like must fail.
	err = repo.Unlike(ctx, 2, post.ID)
	assert.True(t, models.HasCode(err, models.CodeNotLiked))
}

func TestPostRepository_LikeRemovesOnlyCaller(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := createTestPost(t, repo, 1, "two users like this post")

	require.NoError(t, repo.Like(ctx, 2, post.ID))
	require.NoError(t, repo.Like(ctx, 3, post.ID))

	require.NoError(t, repo.Unlike(ctx, 2, post.ID))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, got.Likes, 1)
	assert.Equal(t, uint(3), got.Likes[0].UserID)
}

func TestPostRepository_ReLikeAfterUnlike(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := createTestPost(t, repo, 1, "liked, unliked, liked again")

	require.NoError(t, repo.Like(ctx, 2, post.ID))
	require.NoError(t, repo.Unlike(ctx, 2, post.ID))
	require.NoError(t, repo.Like(ctx, 2, post.ID))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, got.Likes, 1)
}

func TestPostRepository_Comments(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := createTestPost(t, repo, 1, "a post with some comments")

	comment := &models.Comment{
		Text:   "first comment",
		Name:   "Commenter",
		UserID: 2,
		PostID: post.ID,
	}
	require.NoError(t, repo.AddComment(ctx, comment))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "first comment", got.Comments[0].Text)

	require.NoError(t, repo.RemoveComment(ctx, post.ID, comment.ID))

	got, err = repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Comments)

	// Removing again, or removing with the wrong post, must fail.
	err = repo.RemoveComment(ctx, post.ID, comment.ID)
	assert.True(t, models.HasCode(err, models.CodeCommentNotFound))
}

func TestPostRepository_RemoveComment_WrongPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := createTestPost(t, repo, 1, "the post that owns the comment")
	other := createTestPost(t, repo, 1, "an unrelated second post")

	comment := &models.Comment{Text: "hi", Name: "Commenter", UserID: 2, PostID: post.ID}
	require.NoError(t, repo.AddComment(ctx, comment))

	err := repo.RemoveComment(ctx, other.ID, comment.ID)
	assert.True(t, models.HasCode(err, models.CodeCommentNotFound))

	// The comment survives the mismatched removal.
	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, got.Comments, 1)
}

func TestPostRepository_ListOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, text := range []string{"the oldest post of all", "the middle post of all", "the newest post of all"} {
		post := &models.Post{Text: text, Name: "Test User", UserID: 1}
		require.NoError(t, repo.Create(ctx, post))
		require.NoError(t, db.Model(post).Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "the newest post of all", posts[0].Text)
	assert.Equal(t, "the oldest post of all", posts[2].Text)
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), 404)
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestPostRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := createTestPost(t, repo, 1, "a post about to disappear")

	require.NoError(t, repo.Delete(ctx, post.ID))

	_, err := repo.GetByID(ctx, post.ID)
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}
