package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"quill/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPostRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &models.Post{Text: "first post", AuthorID: 1}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "posts"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(ctx, post)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_ListAll_OrdersNewestFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "posts" ORDER BY pub_date DESC, id DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "author_id", "pub_date"}).
			AddRow(2, "newer", 1, now).
			AddRow(1, "older", 1, now.Add(-time.Hour)))

	// Preload Author
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "leo"))

	posts, err := repo.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, "newer", posts[0].Text)
	assert.Equal(t, "older", posts[1].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_ListByGroupID_FiltersByGroup(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE group_id = \$1 ORDER BY pub_date DESC, id DESC`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "author_id", "group_id"}).
			AddRow(1, "in group", 1, 7))

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "leo"))
	mock.ExpectQuery(`SELECT \* FROM "groups" WHERE "groups"\."id" = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug"}).AddRow(7, "prose"))

	posts, err := repo.ListByGroupID(ctx, 7)
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_ListFeed_JoinsFollowGraph(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT .* FROM "posts" JOIN follows ON follows\.author_id = posts\.author_id WHERE follows\.user_id = \$1 ORDER BY posts\.pub_date DESC, posts\.id DESC`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "author_id"}).
			AddRow(5, "followed author post", 9))

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(9, "hasnoname"))

	posts, err := repo.ListFeed(ctx, 3)
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "followed author post", posts[0].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_CountByAuthorID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "posts" WHERE author_id = \$1`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountByAuthorID(ctx, 4)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
