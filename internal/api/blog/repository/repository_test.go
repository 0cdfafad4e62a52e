package blogRepository

import (
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	blogs "BlogNest/internal/api/blog"
	"BlogNest/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return New(sqlx.NewDb(db, "postgres"), logger), mock
}

var blogColumns = []string{
	"id", "title", "body", "thumbnail_url", "author",
	"author_username", "blog_category", "created_at", "updated_at",
}

func TestGetBlogByID(t *testing.T) {
	repo, mock := newMockRepository(t)

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	now := time.Now()
	rows := sqlmock.NewRows(blogColumns).
		AddRow("blog-1", "Title", "Body", "", "user-1", "alice", "cat-1", now, now)

	mock.ExpectQuery("SELECT(.|\n)+FROM blogs b(.|\n)+WHERE b.id").
		WithArgs("blog-1").
		WillReturnRows(rows)

	blog, err := client.Blogs.GetBlogByID(context.Background(), "blog-1")
	require.NoError(t, err)
	assert.Equal(t, "blog-1", blog.ID)
	assert.Equal(t, "alice", blog.AuthorUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBlogByID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT(.|\n)+FROM blogs b(.|\n)+WHERE b.id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err = client.Blogs.GetBlogByID(context.Background(), "missing")
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllBlogs_SearchReturnsTotal(t *testing.T) {
	repo, mock := newMockRepository(t)

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	now := time.Now()

	mock.ExpectQuery(`SELECT COUNT\(\*\)(.|\n)+FROM blogs b(.|\n)+ILIKE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	rows := sqlmock.NewRows(blogColumns).
		AddRow("blog-1", "Go tips", "Body one", "", "user-1", "alice", "cat-1", now, now).
		AddRow("blog-2", "More Go", "Body two", "", "user-2", "bob", "cat-1", now, now)

	mock.ExpectQuery("SELECT(.|\n)+FROM blogs b(.|\n)+ORDER BY b.created_at DESC(.|\n)+LIMIT").
		WillReturnRows(rows)

	result, total, err := client.Blogs.GetAllBlogs(context.Background(), "go", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, result, 2)
	assert.Equal(t, "Go tips", result[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBlog_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	mock.ExpectExec("UPDATE blogs").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = client.Blogs.UpdateBlog(context.Background(), entity.Blog{ID: "missing", Title: "x"})
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBlog_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	mock.ExpectExec("DELETE FROM blogs").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = client.Blogs.DeleteBlog(context.Background(), "missing")
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBlogWithComments_Transaction(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM comments").
		WithArgs("blog-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM blogs").
		WithArgs("blog-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	client, err := repo.NewClient(true)
	require.NoError(t, err)

	require.NoError(t, client.Comments.DeleteCommentsByBlog(context.Background(), "blog-1"))
	require.NoError(t, client.Blogs.DeleteBlog(context.Background(), "blog-1"))
	require.NoError(t, client.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCommentsByBlog_ZeroRows(t *testing.T) {
	repo, mock := newMockRepository(t)

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	mock.ExpectExec("DELETE FROM comments").
		WithArgs("blog-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	// A post without comments deletes cleanly.
	err = client.Comments.DeleteCommentsByBlog(context.Background(), "blog-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCategoryByID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT(.|\n)+FROM blog_categories(.|\n)+WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err = client.Categories.GetCategoryByID(context.Background(), "missing")
	assert.ErrorIs(t, err, blogs.ErrCategoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCommentsByBlog(t *testing.T) {
	repo, mock := newMockRepository(t)

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "body", "author", "author_username", "blog_id", "created_at"}).
		AddRow("c-1", "first", "user-2", "bob", "blog-1", now).
		AddRow("c-2", "second", "user-3", "carol", "blog-1", now)

	mock.ExpectQuery("SELECT(.|\n)+FROM comments c(.|\n)+WHERE c.blog_id").
		WithArgs("blog-1").
		WillReturnRows(rows)

	comments, err := client.Comments.GetCommentsByBlog(context.Background(), "blog-1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "bob", comments[0].AuthorUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}
