package handlers

import (
	"net/http"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

const userColumnsQuery = `SELECT id, username, email, password_hash, created_at, updated_at FROM users WHERE email = $1`

func userRow(id uuid.UUID, username, email, passwordHash string, created, updated time.Time) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"}).
		AddRow(id.String(), username, email, passwordHash, created, updated)
}

func emptyUserRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"})
}

func TestCreateUserSuccess(t *testing.T) {
	mock, users, posts, cleanup := setupMockDB(t)
	defer cleanup()

	id := uuid.New()
	now := time.Now().UTC()

	mock.
		ExpectQuery(regexp.QuoteMeta(userColumnsQuery)).
		WithArgs("a@x.com").
		WillReturnRows(emptyUserRows())
	mock.
		ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (id, username, email, password_hash)`)).
		WithArgs(sqlmock.AnyArg(), "ann", "a@x.com", "secret123").
		WillReturnRows(userRow(id, "ann", "a@x.com", "secret123", now, now))

	router := newTestRouter(users, posts)
	resp := doJSON(t, router, http.MethodPost, "/api/users", map[string]string{
		"username": "ann",
		"email":    "a@x.com",
		"password": "secret123",
	})

	expectHTTP200(t, resp.Code)

	out := decodeBody(t, resp)
	if out["id"] != id.String() {
		t.Fatalf("expected id %s, got %#v", id, out["id"])
	}
	if out["username"] != "ann" {
		t.Fatalf("expected username ann, got %#v", out["username"])
	}
	if _, leaked := out["password"]; leaked {
		t.Fatalf("password leaked into response: %#v", out)
	}
	if _, leaked := out["password_hash"]; leaked {
		t.Fatalf("password_hash leaked into response: %#v", out)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestCreateUserDuplicateEmailConflict(t *testing.T) {
	mock, users, posts, cleanup := setupMockDB(t)
	defer cleanup()

	existing := uuid.New()
	now := time.Now().UTC()

	mock.
		ExpectQuery(regexp.QuoteMeta(userColumnsQuery)).
		WithArgs("a@x.com").
		WillReturnRows(userRow(existing, "ann", "a@x.com", "secret123", now, now))

	router := newTestRouter(users, posts)
	resp := doJSON(t, router, http.MethodPost, "/api/users", map[string]string{
		"username": "other",
		"email":    "a@x.com",
		"password": "hunter2secret",
	})

	envelope := expectErrorEnvelope(t, resp, http.StatusConflict)
	if !strings.Contains(envelope["message"].(string), "already exists") {
		t.Fatalf("unexpected message: %#v", envelope["message"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestCreateUserInvalidEmail(t *testing.T) {
	_, users, posts, cleanup := setupMockDB(t)
	defer cleanup()

	router := newTestRouter(users, posts)
	resp := doJSON(t, router, http.MethodPost, "/api/users", map[string]string{
		"username": "ann",
		"email":    "not-an-email",
		"password": "secret123",
	})

	envelope := expectErrorEnvelope(t, resp, http.StatusBadRequest)
	if !strings.Contains(envelope["message"].(string), "email") {
		t.Fatalf("expected email violation, got %#v", envelope["message"])
	}
}

func TestCreateUserMalformedBody(t *testing.T) {
	_, users, posts, cleanup := setupMockDB(t)
	defer cleanup()

	router := newTestRouter(users, posts)
	resp := doJSON(t, router, http.MethodPost, "/api/users", nil)

	envelope := expectErrorEnvelope(t, resp, http.StatusBadRequest)
	if envelope["message"] != "Invalid request body" {
		t.Fatalf("unexpected message: %#v", envelope["message"])
	}
}

func TestGetUserNotFound(t *testing.T) {
	mock, users, posts, cleanup := setupMockDB(t)
	defer cleanup()

	id := uuid.New()
	mock.
		ExpectQuery(`SELECT id, username, email, password_hash, created_at, updated_at FROM users WHERE id = \$1`).
		WithArgs(id.String()).
		WillReturnRows(emptyUserRows())

	router := newTestRouter(users, posts)
	resp := doJSON(t, router, http.MethodGet, "/api/users/"+id.String(), nil)

	expectErrorEnvelope(t, resp, http.StatusNotFound)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestGetUserInvalidID(t *testing.T) {
	_, users, posts, cleanup := setupMockDB(t)
	defer cleanup()

	router := newTestRouter(users, posts)
	resp := doJSON(t, router, http.MethodGet, "/api/users/not-a-uuid", nil)

	expectErrorEnvelope(t, resp, http.StatusBadRequest)
}

func TestUpdateUserPartialFields(t *testing.T) {
	mock, users, posts, cleanup := setupMockDB(t)
	defer cleanup()

	id := uuid.New()
	created := time.Now().UTC().Add(-time.Hour)
	updated := time.Now().UTC()

	// Only username travels; email and password stay NULL so the existing
	// column values win inside COALESCE.
	mock.
		ExpectQuery(`UPDATE users`).
		WithArgs("ann2", nil, nil, id.String()).
		WillReturnRows(userRow(id, "ann2", "a@x.com", "secret123", created, updated))

	router := newTestRouter(users, posts)
	resp := doJSON(t, router, http.MethodPut, "/api/users/"+id.String(), map[string]string{
		"username": "ann2",
	})

	expectHTTP200(t, resp.Code)

	out := decodeBody(t, resp)
	if out["username"] != "ann2" {
		t.Fatalf("expected updated username, got %#v", out["username"])
	}
	if out["email"] != "a@x.com" {
		t.Fatalf("expected email unchanged, got %#v", out["email"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestDeleteUserThenAgain(t *testing.T) {
	mock, users, posts, cleanup := setupMockDB(t)
	defer cleanup()

	id := uuid.New()
	mock.
		ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.
		ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	router := newTestRouter(users, posts)

	resp := doJSON(t, router, http.MethodDelete, "/api/users/"+id.String(), nil)
	expectHTTP200(t, resp.Code)
	out := decodeBody(t, resp)
	if out["message"] != "User deleted successfully" {
		t.Fatalf("unexpected message: %#v", out["message"])
	}

	resp = doJSON(t, router, http.MethodDelete, "/api/users/"+id.String(), nil)
	expectErrorEnvelope(t, resp, http.StatusNotFound)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestListUsersDefaults(t *testing.T) {
	mock, users, posts, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now().UTC()
	rows := emptyUserRows().
		AddRow(uuid.New().String(), "bea", "b@x.com", "pw", now, now).
		AddRow(uuid.New().String(), "ann", "a@x.com", "pw", now.Add(-time.Minute), now.Add(-time.Minute))

	mock.
		ExpectQuery(`FROM users\s+ORDER BY created_at DESC`).
		WithArgs(10, 0).
		WillReturnRows(rows)

	router := newTestRouter(users, posts)
	resp := doJSON(t, router, http.MethodGet, "/api/users", nil)

	expectHTTP200(t, resp.Code)
	list := decodeList(t, resp)
	if len(list) != 2 {
		t.Fatalf("expected 2 users, got %d", len(list))
	}
	if list[0]["username"] != "bea" {
		t.Fatalf("expected newest first, got %#v", list[0]["username"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestListUsersStorageErrorIsGeneric(t *testing.T) {
	mock, users, posts, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(`FROM users\s+ORDER BY created_at DESC`).
		WithArgs(10, 0).
		WillReturnError(errDriverDown)

	router := newTestRouter(users, posts)
	resp := doJSON(t, router, http.MethodGet, "/api/users", nil)

	envelope := expectErrorEnvelope(t, resp, http.StatusInternalServerError)
	if envelope["message"] != "Internal server error" {
		t.Fatalf("driver details leaked: %#v", envelope["message"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
