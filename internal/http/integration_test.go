package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "lendingapi/internal/http"
	"lendingapi/internal/library"
	"lendingapi/internal/store"
	"lendingapi/internal/testutil"
)

func setupRouter() http.Handler {
	svc := library.NewService(store.NewBookMemory(), store.NewMemberMemory())
	return apphttp.NewRouter(apphttp.RouterConfig{
		Service:   svc,
		JWTSecret: testutil.TestJWTSecret,
	})
}

func do(t *testing.T, router http.Handler, method, path string, body interface{}, token string) testutil.RecordResponse {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequestWithAuth(method, path, body, token))
	return testutil.RecordHTTPResponse(w)
}

func TestRouter_LendingFlow(t *testing.T) {
	router := setupRouter()
	token := testutil.GenerateTestToken(testutil.TestJWTSecret, "caller-1", "MEMBER")

	// Register a member.
	resp := do(t, router, http.MethodPost, "/api/members",
		map[string]string{"name": "Ada Lovelace", "email": "ada@example.com"}, token)
	require.Equal(t, http.StatusCreated, resp.Code)
	memberID := resp.Body["data"].(map[string]interface{})["id"].(string)

	// Create a book; it starts available.
	resp = do(t, router, http.MethodPost, "/api/books",
		map[string]string{"title": "Dune", "author": "Herbert", "isbn": "111"}, token)
	require.Equal(t, http.StatusCreated, resp.Code)
	book := resp.Body["data"].(map[string]interface{})
	bookID := book["id"].(string)
	assert.Equal(t, false, book["borrowed"])

	// Borrow it.
	resp = do(t, router, http.MethodPost, "/api/borrow/"+bookID+"/member/"+memberID, nil, token)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = do(t, router, http.MethodGet, "/api/books/"+bookID, nil, token)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, true, resp.Body["data"].(map[string]interface{})["borrowed"])

	// A second borrow conflicts.
	resp = do(t, router, http.MethodPost, "/api/borrow/"+bookID+"/member/"+memberID, nil, token)
	assert.Equal(t, http.StatusConflict, resp.Code)

	// Return it.
	resp = do(t, router, http.MethodPost, "/api/return/"+bookID, nil, token)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, false, resp.Body["data"].(map[string]interface{})["borrowed"])

	// A second return is a bad request.
	resp = do(t, router, http.MethodPost, "/api/return/"+bookID, nil, token)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRouter_DeleteFlow(t *testing.T) {
	router := setupRouter()
	token := testutil.GenerateTestToken(testutil.TestJWTSecret, "caller-1", "LIBRARIAN")

	resp := do(t, router, http.MethodDelete, "/api/books/no-such-id", nil, token)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = do(t, router, http.MethodPost, "/api/books",
		map[string]string{"title": "Dune", "author": "Herbert", "isbn": "111"}, token)
	require.Equal(t, http.StatusCreated, resp.Code)
	bookID := resp.Body["data"].(map[string]interface{})["id"].(string)

	resp = do(t, router, http.MethodDelete, "/api/books/"+bookID, nil, token)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = do(t, router, http.MethodGet, "/api/books/"+bookID, nil, token)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestRouter_DuplicateISBN(t *testing.T) {
	router := setupRouter()
	token := testutil.GenerateTestToken(testutil.TestJWTSecret, "caller-1", "LIBRARIAN")

	resp := do(t, router, http.MethodPost, "/api/books",
		map[string]string{"title": "Dune", "author": "Herbert", "isbn": "111"}, token)
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = do(t, router, http.MethodPost, "/api/books",
		map[string]string{"title": "Dune Copy", "author": "Herbert", "isbn": "111"}, token)
	assert.Equal(t, http.StatusConflict, resp.Code)
	errorBody := resp.Body["error"].(map[string]interface{})
	assert.Equal(t, "duplicate_resource", errorBody["code"])
}

func TestRouter_Auth(t *testing.T) {
	router := setupRouter()

	t.Run("missing token", func(t *testing.T) {
		resp := do(t, router, http.MethodGet, "/api/books", nil, "")
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := testutil.GenerateExpiredToken(testutil.TestJWTSecret, "caller-1", "MEMBER")
		resp := do(t, router, http.MethodGet, "/api/books", nil, token)
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := testutil.GenerateTestToken("other-secret", "caller-1", "MEMBER")
		resp := do(t, router, http.MethodGet, "/api/books", nil, token)
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("health probes stay open", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRouter_ValidationFailure(t *testing.T) {
	router := setupRouter()
	token := testutil.GenerateTestToken(testutil.TestJWTSecret, "caller-1", "MEMBER")

	resp := do(t, router, http.MethodPost, "/api/books",
		map[string]string{"title": "", "author": "Herbert", "isbn": ""}, token)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	errorBody := resp.Body["error"].(map[string]interface{})
	assert.Equal(t, "validation_failed", errorBody["code"])
	details := errorBody["details"].([]interface{})
	assert.Len(t, details, 2)
}
