package repository

import (
	"context"
	"fmt"
	"testing"

	"quill/internal/database"
	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var sqliteDBCounter int

// setupSQLiteDB opens an in-memory database with foreign keys enforced so the
// referential actions declared on the models are exercised for real.
func setupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqliteDBCounter++
	dsn := fmt.Sprintf("file:reftest%d?mode=memory&cache=shared&_foreign_keys=on", sqliteDBCounter)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))

	return db
}

func seedAuthorWithPost(t *testing.T, db *gorm.DB, username string) (*models.User, *models.Post) {
	t.Helper()

	user := &models.User{Username: username}
	require.NoError(t, db.Create(user).Error)

	post := &models.Post{Text: "hello", AuthorID: user.ID}
	require.NoError(t, db.Create(post).Error)

	return user, post
}

func TestGroupDelete_NullsPostGroupID(t *testing.T) {
	db := setupSQLiteDB(t)
	ctx := context.Background()

	group := &models.Group{Title: "Prose", Slug: "prose"}
	require.NoError(t, db.Create(group).Error)

	author, _ := seedAuthorWithPost(t, db, "leo")
	post := &models.Post{Text: "grouped", AuthorID: author.ID, GroupID: &group.ID}
	require.NoError(t, db.Create(post).Error)

	groups := NewGroupRepository(db)
	require.NoError(t, groups.Delete(ctx, group.ID))

	var survivor models.Post
	require.NoError(t, db.First(&survivor, post.ID).Error)
	assert.Nil(t, survivor.GroupID)
	assert.Equal(t, "grouped", survivor.Text)
}

func TestPostDelete_CascadesComments(t *testing.T) {
	db := setupSQLiteDB(t)
	ctx := context.Background()

	author, post := seedAuthorWithPost(t, db, "leo")
	comment := &models.Comment{Text: "nice", AuthorID: author.ID, PostID: post.ID}
	require.NoError(t, db.Create(comment).Error)

	posts := NewPostRepository(db)
	require.NoError(t, posts.Delete(ctx, post.ID))

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUserDelete_CascadesPostsCommentsAndFollows(t *testing.T) {
	db := setupSQLiteDB(t)
	ctx := context.Background()

	author, post := seedAuthorWithPost(t, db, "leo")
	reader := &models.User{Username: "sonya"}
	require.NoError(t, db.Create(reader).Error)

	require.NoError(t, db.Create(&models.Comment{Text: "!", AuthorID: reader.ID, PostID: post.ID}).Error)
	require.NoError(t, db.Create(&models.Follow{UserID: reader.ID, AuthorID: author.ID}).Error)

	users := NewUserRepository(db)
	require.NoError(t, users.Delete(ctx, author.ID))

	var posts, comments, follows int64
	require.NoError(t, db.Model(&models.Post{}).Where("author_id = ?", author.ID).Count(&posts).Error)
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&comments).Error)
	require.NoError(t, db.Model(&models.Follow{}).Where("author_id = ?", author.ID).Count(&follows).Error)
	assert.Zero(t, posts)
	assert.Zero(t, comments)
	assert.Zero(t, follows)

	// The commenter's own account is untouched.
	var remaining models.User
	assert.NoError(t, db.First(&remaining, reader.ID).Error)
}

func TestFollowUniqueIndex_RejectsDuplicateEdge(t *testing.T) {
	db := setupSQLiteDB(t)
	ctx := context.Background()

	author, _ := seedAuthorWithPost(t, db, "leo")
	reader := &models.User{Username: "sonya"}
	require.NoError(t, db.Create(reader).Error)

	follows := NewFollowRepository(db)
	require.NoError(t, follows.Create(ctx, &models.Follow{UserID: reader.ID, AuthorID: author.ID}))

	err := follows.Create(ctx, &models.Follow{UserID: reader.ID, AuthorID: author.ID})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Opposite direction is a distinct edge and must be allowed.
	assert.NoError(t, follows.Create(ctx, &models.Follow{UserID: author.ID, AuthorID: reader.ID}))
}
