package database

import "log"

// CreateTables creates all required tables in the database. Every statement
// is idempotent, so the bootstrap can run on every start before serving.
func CreateTables() {
	createUsersTable()
	createPostsTable()
}

func createUsersTable() {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`

	_, err := DB.Exec(query)
	if err != nil {
		log.Fatal("Failed to create users table:", err)
	}

	ensureUsersSchema()
	log.Println("Users table ready")
}

func createPostsTable() {
	query := `
	CREATE TABLE IF NOT EXISTS posts (
		id UUID PRIMARY KEY,
		title VARCHAR(100) NOT NULL,
		content TEXT NOT NULL,
		author_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		published BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`

	_, err := DB.Exec(query)
	if err != nil {
		log.Fatal("Failed to create posts table:", err)
	}

	ensurePostsSchema()
	log.Println("Posts table ready")
}

func ensureUsersSchema() {
	if _, err := DB.Exec(`CREATE INDEX IF NOT EXISTS users_created_at_idx ON users(created_at DESC)`); err != nil {
		log.Fatal("Failed to ensure users created_at index:", err)
	}
}

func ensurePostsSchema() {
	if _, err := DB.Exec(`CREATE INDEX IF NOT EXISTS posts_created_at_idx ON posts(created_at DESC)`); err != nil {
		log.Fatal("Failed to ensure posts created_at index:", err)
	}

	if _, err := DB.Exec(`CREATE INDEX IF NOT EXISTS posts_author_created_at_idx ON posts(author_id, created_at DESC)`); err != nil {
		log.Fatal("Failed to ensure posts author/created_at index:", err)
	}
}
