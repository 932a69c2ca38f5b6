package repository

import (
	"database/sql"

	"blogapi/internal/apperr"
	"blogapi/internal/models"

	"github.com/google/uuid"
)

const postColumns = "id, title, content, author_id, published, created_at, updated_at"

// PostRepository owns all SQL touching the posts table.
type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a new post. The foreign key on author_id is the real
// referential-integrity check; a violation surfaces as a bad request so no
// post row is ever written for a missing author.
func (r *PostRepository) Create(req models.CreatePostRequest, authorID uuid.UUID) (models.Post, error) {
	published := req.Published != nil && *req.Published

	query := `
		INSERT INTO posts (id, title, content, author_id, published)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + postColumns

	row := r.db.QueryRow(query, uuid.New(), req.Title, req.Content, authorID, published)

	post, err := scanPost(row)
	if err != nil {
		if pqErrorCode(err) == foreignKeyViolation {
			return models.Post{}, apperr.BadRequest("User with id %s does not exist", authorID)
		}
		return models.Post{}, apperr.Storage(err)
	}

	return post, nil
}

// FindByID returns the post or nil when absent.
func (r *PostRepository) FindByID(id uuid.UUID) (*models.Post, error) {
	row := r.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE id = $1`, id)

	post, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}

	return &post, nil
}

// Update applies a sparse patch in one statement; see UserRepository.Update.
func (r *PostRepository) Update(id uuid.UUID, req models.UpdatePostRequest) (*models.Post, error) {
	query := `
		UPDATE posts
		SET
			title = COALESCE($1, title),
			content = COALESCE($2, content),
			published = COALESCE($3, published),
			updated_at = NOW()
		WHERE id = $4
		RETURNING ` + postColumns

	row := r.db.QueryRow(query, req.Title, req.Content, req.Published, id)

	post, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}

	return &post, nil
}

// Delete removes the post. Returns true iff a row existed and was removed.
func (r *PostRepository) Delete(id uuid.UUID) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, apperr.Storage(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperr.Storage(err)
	}

	return affected > 0, nil
}

// List returns posts newest first, optionally restricted to published ones.
func (r *PostRepository) List(limit, offset int, publishedOnly bool) ([]models.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	if publishedOnly {
		query = `
		SELECT ` + postColumns + `
		FROM posts
		WHERE published = TRUE
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	}

	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

// FindByAuthor returns the author's posts newest first.
func (r *PostRepository) FindByAuthor(authorID uuid.UUID, limit, offset int) ([]models.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE author_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(query, authorID, limit, offset)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

func collectPosts(rows *sql.Rows) ([]models.Post, error) {
	posts := make([]models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}

	return posts, nil
}

func scanPost(s scanner) (models.Post, error) {
	var post models.Post
	err := s.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.AuthorID,
		&post.Published,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	return post, err
}
