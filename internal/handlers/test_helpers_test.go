package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogapi/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

// errDriverDown stands in for any persistence-layer fault in tests.
var errDriverDown = errors.New("pq: connection refused")

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, *UserHandlers, *PostHandlers, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	cleanup := func() {
		_ = db.Close()
	}

	return mock, NewUserHandlers(userRepo), NewPostHandlers(postRepo, userRepo), cleanup
}

func newTestRouter(users *UserHandlers, posts *PostHandlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	users.Register(api.Group("/users"))
	posts.Register(api.Group("/posts"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json.Marshal: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	return out
}

func decodeList(t *testing.T, resp *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	return out
}

func mustStatus(t *testing.T, actual int, expected int) {
	t.Helper()
	if actual != expected {
		t.Fatalf("expected status %d, got %d", expected, actual)
	}
}

func expectHTTP200(t *testing.T, status int) {
	t.Helper()
	mustStatus(t, status, http.StatusOK)
}

// expectErrorEnvelope checks the {"error":{"message","code"}} shape and that
// the embedded code matches the HTTP status.
func expectErrorEnvelope(t *testing.T, resp *httptest.ResponseRecorder, status int) map[string]any {
	t.Helper()
	mustStatus(t, resp.Code, status)

	out := decodeBody(t, resp)
	envelope, ok := out["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error envelope, got %#v", out)
	}
	if int(envelope["code"].(float64)) != status {
		t.Fatalf("expected code=%d, got %#v", status, envelope["code"])
	}
	return envelope
}
