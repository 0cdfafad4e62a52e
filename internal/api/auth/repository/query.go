package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			username,
			password,
			created_at
		) VALUES (
			:id,
			:username,
			:password,
			:created_at
		)
	`

	queryGetUserByID = `
		SELECT
			id,
			username,
			password,
			created_at
		FROM users
		WHERE id = :id
	`

	queryGetUserByUsername = `
		SELECT
			id,
			username,
			password,
			created_at
		FROM users
		WHERE username = :username
	`
)
