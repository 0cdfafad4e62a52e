package authRepository

import (
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"BlogNest/internal/api/auth"
	"BlogNest/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
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

func TestCreateUser(t *testing.T) {
	repo, mock := newMockRepository(t)

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("user-1", "alice", "hashed", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = client.Users.CreateUser(context.Background(), entity.User{
		ID:        "user-1",
		Username:  "alice",
		Password:  "hashed",
		CreatedAt: time.Now(),
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newMockRepository(t)

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})

	err = client.Users.CreateUser(context.Background(), entity.User{
		ID:       "user-2",
		Username: "alice",
		Password: "hashed",
	})
	assert.ErrorIs(t, err, auth.ErrUsernameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUsername(t *testing.T) {
	repo, mock := newMockRepository(t)

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	createdAt := time.Now()
	rows := sqlmock.NewRows([]string{"id", "username", "password", "created_at"}).
		AddRow("user-1", "alice", "hashed", createdAt)

	mock.ExpectQuery("SELECT(.|\n)+FROM users(.|\n)+WHERE username").
		WithArgs("alice").
		WillReturnRows(rows)

	user, err := client.Users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hashed", user.Password)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT(.|\n)+FROM users(.|\n)+WHERE username").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err = client.Users.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT(.|\n)+FROM users(.|\n)+WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err = client.Users.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewClient_Transaction(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	client, err := repo.NewClient(true)
	require.NoError(t, err)
	assert.NoError(t, client.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
