package repository

import (
	"database/sql"

	"blogapi/internal/apperr"
	"blogapi/internal/models"

	"github.com/google/uuid"
)

const userColumns = "id, username, email, password_hash, created_at, updated_at"

// UserRepository owns all SQL touching the users table. It is stateless and
// safe for concurrent use; one instance is built per process.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and returns the stored row. The password is
// persisted exactly as provided; hashing is not this layer's concern.
func (r *UserRepository) Create(req models.CreateUserRequest) (models.User, error) {
	query := `
		INSERT INTO users (id, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns

	row := r.db.QueryRow(query, uuid.New(), req.Username, req.Email, req.Password)

	user, err := scanUser(row)
	if err != nil {
		if pqErrorCode(err) == uniqueViolation {
			return models.User{}, apperr.Conflict("User with this email already exists")
		}
		return models.User{}, apperr.Storage(err)
	}

	return user, nil
}

// FindByID returns the user or nil when absent. Absence is not an error.
func (r *UserRepository) FindByID(id uuid.UUID) (*models.User, error) {
	row := r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}

	return &user, nil
}

// FindByEmail looks a user up by exact email equality. Case sensitivity is
// whatever the column collation provides; no normalization happens here.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	row := r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email)

	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}

	return &user, nil
}

// Update applies a sparse patch in a single statement: absent fields keep
// their current values via COALESCE, so concurrent writers cannot be lost
// between a read and a write-back. Returns nil when the id does not exist.
func (r *UserRepository) Update(id uuid.UUID, req models.UpdateUserRequest) (*models.User, error) {
	query := `
		UPDATE users
		SET
			username = COALESCE($1, username),
			email = COALESCE($2, email),
			password_hash = COALESCE($3, password_hash),
			updated_at = NOW()
		WHERE id = $4
		RETURNING ` + userColumns

	row := r.db.QueryRow(query, req.Username, req.Email, req.Password, id)

	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		if pqErrorCode(err) == uniqueViolation {
			return nil, apperr.Conflict("User with this email already exists")
		}
		return nil, apperr.Storage(err)
	}

	return &user, nil
}

// Delete removes the user. Returns true iff a row existed and was removed.
func (r *UserRepository) Delete(id uuid.UUID) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, apperr.Storage(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperr.Storage(err)
	}

	return affected > 0, nil
}

// List returns users newest first with caller-supplied pagination. No upper
// bound on limit is enforced at this layer.
func (r *UserRepository) List(limit, offset int) ([]models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}

	return users, nil
}

func scanUser(s scanner) (models.User, error) {
	var user models.User
	err := s.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}
