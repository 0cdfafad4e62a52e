package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			title,
			body,
			thumbnail_url,
			author,
			blog_category,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:body,
			:thumbnail_url,
			:author,
			:blog_category,
			:created_at,
			:updated_at
		)
	`

	queryGetBlogByID = `
		SELECT
			b.id,
			b.title,
			b.body,
			b.thumbnail_url,
			b.author,
			u.username AS author_username,
			b.blog_category,
			b.created_at,
			b.updated_at
		FROM blogs b
		JOIN users u ON u.id = b.author
		WHERE b.id = :id
	`

	// Search is a case-insensitive OR across title, body and author
	// username; an empty search term matches everything.
	queryGetAllBlogs = `
		SELECT
			b.id,
			b.title,
			b.body,
			b.thumbnail_url,
			b.author,
			u.username AS author_username,
			b.blog_category,
			b.created_at,
			b.updated_at
		FROM blogs b
		JOIN users u ON u.id = b.author
		WHERE (
			:search = ''
			OR b.title ILIKE '%' || :search || '%'
			OR b.body ILIKE '%' || :search || '%'
			OR u.username ILIKE '%' || :search || '%'
		)
		ORDER BY b.created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountAllBlogs = `
		SELECT COUNT(*)
		FROM blogs b
		JOIN users u ON u.id = b.author
		WHERE (
			:search = ''
			OR b.title ILIKE '%' || :search || '%'
			OR b.body ILIKE '%' || :search || '%'
			OR u.username ILIKE '%' || :search || '%'
		)
	`

	queryGetBlogsByAuthor = `
		SELECT
			b.id,
			b.title,
			b.body,
			b.thumbnail_url,
			b.author,
			u.username AS author_username,
			b.blog_category,
			b.created_at,
			b.updated_at
		FROM blogs b
		JOIN users u ON u.id = b.author
		WHERE b.author = :author
		ORDER BY b.created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountBlogsByAuthor = `
		SELECT COUNT(*)
		FROM blogs
		WHERE author = :author
	`

	// thumbnail_url is always written as computed by the service (kept,
	// replaced or cleared); the other fields keep their value on empty
	// input.
	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = CASE WHEN :title = '' THEN title ELSE :title END,
			body = CASE WHEN :body = '' THEN body ELSE :body END,
			blog_category = CASE WHEN :blog_category = '' THEN blog_category ELSE :blog_category END,
			thumbnail_url = :thumbnail_url,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBlog = `
		DELETE FROM blogs
		WHERE id = :id
	`

	queryGetAllCategories = `
		SELECT
			id,
			name,
			created_at
		FROM blog_categories
		ORDER BY name ASC
	`

	queryGetCategoryByID = `
		SELECT
			id,
			name,
			created_at
		FROM blog_categories
		WHERE id = :id
	`

	queryCreateComment = `
		INSERT INTO comments (
			id,
			body,
			author,
			blog_id,
			created_at
		) VALUES (
			:id,
			:body,
			:author,
			:blog_id,
			:created_at
		)
	`

	queryGetCommentByID = `
		SELECT
			c.id,
			c.body,
			c.author,
			u.username AS author_username,
			c.blog_id,
			c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author
		WHERE c.id = :id
	`

	queryGetCommentsByBlog = `
		SELECT
			c.id,
			c.body,
			c.author,
			u.username AS author_username,
			c.blog_id,
			c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author
		WHERE c.blog_id = :blog_id
		ORDER BY c.created_at ASC
	`

	queryDeleteComment = `
		DELETE FROM comments
		WHERE id = :id
	`

	queryDeleteCommentsByBlog = `
		DELETE FROM comments
		WHERE blog_id = :blog_id
	`
)
