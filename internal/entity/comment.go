package entity

import "time"

// Comment.Author and Comment.BlogID never change after creation.
type Comment struct {
	ID             string    `db:"id"`
	Body           string    `db:"body"`
	Author         string    `db:"author"`
	AuthorUsername string    `db:"author_username"`
	BlogID         string    `db:"blog_id"`
	CreatedAt      time.Time `db:"created_at"`
}
