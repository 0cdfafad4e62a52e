package postgres

import (
	"crypto/rand"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         VARCHAR(26) PRIMARY KEY,
	username   VARCHAR(50) NOT NULL UNIQUE,
	password   VARCHAR(200) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS blog_categories (
	id         VARCHAR(26) PRIMARY KEY,
	name       VARCHAR(100) NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS blogs (
	id            VARCHAR(26) PRIMARY KEY,
	title         VARCHAR(256) NOT NULL,
	body          TEXT NOT NULL,
	thumbnail_url TEXT NOT NULL DEFAULT '',
	author        VARCHAR(26) NOT NULL REFERENCES users (id),
	blog_category VARCHAR(26) NOT NULL REFERENCES blog_categories (id),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS comments (
	id         VARCHAR(26) PRIMARY KEY,
	body       TEXT NOT NULL,
	author     VARCHAR(26) NOT NULL REFERENCES users (id),
	blog_id    VARCHAR(26) NOT NULL REFERENCES blogs (id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_blogs_created_at ON blogs (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_comments_blog_id ON comments (blog_id);
`

var defaultCategories = []string{
	"Technology",
	"Lifestyle",
	"Travel",
	"Food",
	"Personal",
}

// Bootstrap creates the schema and seeds the category table once, only
// when it is empty.
func Bootstrap(db *sqlx.DB, log *logrus.Logger) error {
	if _, err := db.Exec(schema); err != nil {
		return err
	}

	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM blog_categories`); err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	for _, name := range defaultCategories {
		id, err := ulid.New(ulid.Timestamp(time.Now()), ulid.Monotonic(rand.Reader, 0))
		if err != nil {
			return err
		}

		if _, err := db.Exec(
			`INSERT INTO blog_categories (id, name, created_at) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING`,
			id.String(), name, time.Now(),
		); err != nil {
			return err
		}
	}

	log.WithField("categories", len(defaultCategories)).Info("Seeded blog categories")
	return nil
}
