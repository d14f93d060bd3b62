package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devnook/devnook-api/internal/api"
	"github.com/devnook/devnook-api/internal/auth"
	"github.com/devnook/devnook-api/internal/config"
	"github.com/devnook/devnook-api/internal/mocks"
	"github.com/devnook/devnook-api/internal/models"
	"github.com/devnook/devnook-api/internal/repository"
)

const testSecret = "test-secret"

type stubHealthChecker struct{ err error }

func (s stubHealthChecker) HealthCheck(ctx context.Context) error { return s.err }

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "3000"},
		Auth:   config.AuthConfig{Secret: testSecret, TokenTTL: time.Hour},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
	}
}

func setupTestRouter() (*gin.Engine, *mocks.MockBlogRepository, *mocks.MockCommentRepository, *mocks.MockWishlistRepository, *auth.Manager) {
	gin.SetMode(gin.TestMode)

	blogRepo := mocks.NewMockBlogRepository()
	commentRepo := mocks.NewMockCommentRepository()
	wishlistRepo := mocks.NewMockWishlistRepository()

	repos := &repository.Repositories{
		Blog:     blogRepo,
		Comment:  commentRepo,
		Wishlist: wishlistRepo,
	}

	cfg := testConfig()
	log := zerolog.Nop()
	router := api.NewRouter(repos, stubHealthChecker{}, cfg, log)
	tokens := auth.NewManager(&cfg.Auth)

	return router, blogRepo, commentRepo, wishlistRepo, tokens
}

func doJSON(router *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("Failed to decode body %q: %v", w.Body.String(), err)
	}
	return out
}

func TestLivenessEndpoint(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	w := doJSON(router, "GET", "/", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "Dev Nook Server Is Running" {
		t.Errorf("Unexpected liveness body: %q", w.Body.String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	w := doJSON(router, "GET", "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	response := decodeBody(t, w)
	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "devnook-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestCreateBlogReturnsInsertAck(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	w := doJSON(router, "POST", "/blogs", map[string]string{
		"title":             "Go Generics",
		"image":             "https://img.example.com/go.png",
		"category":          "go",
		"short_description": "Type parameters in practice",
		"long_description":  "A longer walk through generics.",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	response := decodeBody(t, w)
	if response["acknowledged"] != true {
		t.Errorf("Expected acknowledged insert, got %v", response)
	}
	if id, ok := response["insertedId"].(string); !ok || id == "" {
		t.Errorf("Expected a store-assigned id, got %v", response["insertedId"])
	}
}

func TestListBlogsNewestFirst(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	for _, title := range []string{"first post", "second post", "third post"} {
		w := doJSON(router, "POST", "/blogs", map[string]string{"title": title})
		if w.Code != http.StatusOK {
			t.Fatalf("Create failed with status %d", w.Code)
		}
	}

	w := doJSON(router, "GET", "/blogs", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var posts []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &posts); err != nil {
		t.Fatalf("Failed to decode posts: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("Expected 3 posts, got %d", len(posts))
	}
	if posts[0]["title"] != "third post" {
		t.Errorf("Expected newest post first, got %v", posts[0]["title"])
	}
	if posts[2]["title"] != "first post" {
		t.Errorf("Expected oldest post last, got %v", posts[2]["title"])
	}
}

func TestGetBlogByID(t *testing.T) {
	router, blogRepo, _, _, _ := setupTestRouter()

	w := doJSON(router, "POST", "/blogs", map[string]string{"title": "lookup target"})
	if w.Code != http.StatusOK {
		t.Fatalf("Create failed with status %d", w.Code)
	}
	id := blogRepo.Posts[0].ID.Hex()

	w = doJSON(router, "GET", "/blogs/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	response := decodeBody(t, w)
	if response["title"] != "lookup target" {
		t.Errorf("Expected fetched post, got %v", response)
	}
}

func TestGetBlogByIDInvalidIdentifier(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	w := doJSON(router, "GET", "/blogs/not-a-valid-objectid", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for malformed id, got %d", w.Code)
	}
	response := decodeBody(t, w)
	if response["error"] != "invalid identifier" {
		t.Errorf("Expected invalid identifier error, got %v", response["error"])
	}
}

func TestGetBlogByIDMissingDocument(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	w := doJSON(router, "GET", "/blogs/"+primitive.NewObjectID().Hex(), nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for unknown id, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "null" {
		t.Errorf("Expected null body for unknown id, got %q", w.Body.String())
	}
}

func TestUpdateBlogPartialFields(t *testing.T) {
	router, blogRepo, _, _, _ := setupTestRouter()

	w := doJSON(router, "POST", "/blogs", map[string]string{
		"title":             "old title",
		"image":             "https://img.example.com/old.png",
		"category":          "go",
		"short_description": "old short",
		"long_description":  "old long",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Create failed with status %d", w.Code)
	}
	id := blogRepo.Posts[0].ID.Hex()

	w = doJSON(router, "PATCH", "/blogs/"+id, map[string]string{
		"title":             "new title",
		"short_description": "new short",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	response := decodeBody(t, w)
	if response["matchedCount"] != float64(1) || response["modifiedCount"] != float64(1) {
		t.Errorf("Expected matched=1 modified=1, got %v", response)
	}

	w = doJSON(router, "GET", "/blogs/"+id, nil)
	fetched := decodeBody(t, w)
	if fetched["title"] != "new title" {
		t.Errorf("Expected updated title, got %v", fetched["title"])
	}
	if fetched["short_description"] != "new short" {
		t.Errorf("Expected updated short description, got %v", fetched["short_description"])
	}
	if fetched["category"] != "go" || fetched["long_description"] != "old long" {
		t.Errorf("Expected untouched fields to survive, got %v", fetched)
	}
}

func TestUpdateBlogUnknownIDIsNoOp(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	w := doJSON(router, "PATCH", "/blogs/"+primitive.NewObjectID().Hex(), map[string]string{
		"title": "does not matter",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for unknown id, got %d", w.Code)
	}
	response := decodeBody(t, w)
	if response["matchedCount"] != float64(0) || response["modifiedCount"] != float64(0) {
		t.Errorf("Expected zero counts, got %v", response)
	}
}

func TestUpdateBlogInvalidIdentifier(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	w := doJSON(router, "PATCH", "/blogs/nope", map[string]string{"title": "x"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestSearchBlogs(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	doJSON(router, "POST", "/blogs", map[string]string{
		"title":             "Rust Ownership",
		"short_description": "Borrow checker basics",
	})
	doJSON(router, "POST", "/blogs", map[string]string{
		"title":             "Go Channels",
		"short_description": "Concurrency patterns",
	})

	w := doJSON(router, "GET", "/search?text=Rust", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var posts []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &posts); err != nil {
		t.Fatalf("Failed to decode results: %v", err)
	}
	found := false
	for _, p := range posts {
		if p["title"] == "Rust Ownership" {
			found = true
		}
		if p["title"] == "Go Channels" {
			t.Errorf("Unexpected search hit: %v", p["title"])
		}
	}
	if !found {
		t.Errorf("Expected 'Rust Ownership' among results, got %v", posts)
	}
}

func TestSearchRequiresText(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	w := doJSON(router, "GET", "/search", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for missing text, got %d", w.Code)
	}
}

func TestCreateAndListComments(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	w := doJSON(router, "POST", "/comments", map[string]string{
		"id":      "post-123",
		"name":    "Ada",
		"email":   "ada@x.com",
		"comment": "Great write-up",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Create comment failed with status %d", w.Code)
	}

	doJSON(router, "POST", "/comments", map[string]string{
		"id":      "post-456",
		"name":    "Brian",
		"comment": "Different post",
	})

	w = doJSON(router, "GET", "/comments?id=post-123", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var comments []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &comments); err != nil {
		t.Fatalf("Failed to decode comments: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("Expected 1 comment for post-123, got %d", len(comments))
	}
	if comments[0]["comment"] != "Great write-up" {
		t.Errorf("Unexpected comment body: %v", comments[0])
	}
}

func sessionCookie(t *testing.T, tokens *auth.Manager, email string) *http.Cookie {
	t.Helper()
	token, err := tokens.Issue(&models.SessionUser{Email: email})
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return &http.Cookie{Name: auth.CookieName, Value: token}
}

func TestWishlistFilteredListingRequiresSession(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	w := doJSON(router, "GET", "/wishlist?email=a@x.com", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without cookie, got %d", w.Code)
	}
}

func TestWishlistFilteredListingRejectsInvalidToken(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	cookie := &http.Cookie{Name: auth.CookieName, Value: "garbage-token"}
	w := doJSON(router, "GET", "/wishlist?email=a@x.com", nil, cookie)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for invalid token, got %d", w.Code)
	}
}

func TestWishlistFilteredListingRejectsExpiredToken(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	// Same secret as the router, already-elapsed lifetime.
	expired := auth.NewManager(&config.AuthConfig{Secret: testSecret, TokenTTL: -time.Minute})
	cookie := sessionCookie(t, expired, "a@x.com")

	w := doJSON(router, "GET", "/wishlist?email=a@x.com", nil, cookie)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for expired token, got %d", w.Code)
	}
}

func TestWishlistFilteredListingMatchesIdentity(t *testing.T) {
	router, _, _, _, tokens := setupTestRouter()

	w := doJSON(router, "POST", "/wishlist", map[string]string{
		"user_email": "a@x.com",
		"title":      "Saved post",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Create wishlist entry failed with status %d: %s", w.Code, w.Body.String())
	}

	// Owner sees their entries.
	w = doJSON(router, "GET", "/wishlist?email=a@x.com", nil, sessionCookie(t, tokens, "a@x.com"))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for matching identity, got %d", w.Code)
	}
	var entries []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("Failed to decode entries: %v", err)
	}
	if len(entries) != 1 || entries[0]["title"] != "Saved post" {
		t.Errorf("Expected the saved entry, got %v", entries)
	}

	// A different identity asking for the same filter is rejected.
	w = doJSON(router, "GET", "/wishlist?email=a@x.com", nil, sessionCookie(t, tokens, "b@x.com"))
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for mismatched identity, got %d", w.Code)
	}
}

func TestWishlistUnfilteredListingBypassesGuard(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	doJSON(router, "POST", "/wishlist", map[string]string{"user_email": "a@x.com", "title": "one"})
	doJSON(router, "POST", "/wishlist", map[string]string{"user_email": "b@x.com", "title": "two"})

	// No filter, no cookie: the entire collection comes back.
	w := doJSON(router, "GET", "/wishlist", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 without filter, got %d", w.Code)
	}
	var entries []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("Failed to decode entries: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected all entries regardless of identity, got %d", len(entries))
	}
}

func TestWishlistCreateRejectsBadEmail(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	w := doJSON(router, "POST", "/wishlist", map[string]string{"title": "no owner"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for missing user_email, got %d", w.Code)
	}
}

func TestWishlistDelete(t *testing.T) {
	router, _, _, wishlistRepo, _ := setupTestRouter()

	doJSON(router, "POST", "/wishlist", map[string]string{"user_email": "a@x.com", "title": "doomed"})
	id := wishlistRepo.Entries[0].ID.Hex()

	w := doJSON(router, "DELETE", "/wishlist/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	response := decodeBody(t, w)
	if response["deletedCount"] != float64(1) {
		t.Errorf("Expected deletedCount=1, got %v", response)
	}

	w = doJSON(router, "GET", "/wishlist", nil)
	var entries []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &entries)
	if len(entries) != 0 {
		t.Errorf("Expected entry gone from listing, got %v", entries)
	}
}

func TestWishlistDeleteInvalidIdentifier(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	w := doJSON(router, "DELETE", "/wishlist/not-an-id", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestLoginSetsSessionCookie(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	w := doJSON(router, "POST", "/jwt", map[string]string{"email": "a@x.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	response := decodeBody(t, w)
	if response["success"] != true {
		t.Errorf("Expected success acknowledgment, got %v", response)
	}

	cookies := w.Result().Cookies()
	var session *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == auth.CookieName {
			session = cookie
		}
	}
	if session == nil {
		t.Fatalf("Expected session cookie to be set, got %v", cookies)
	}
	if !session.HttpOnly {
		t.Errorf("Expected HttpOnly session cookie")
	}
	if session.Value == "" {
		t.Errorf("Expected a signed token value")
	}
}

func TestLoginRequiresEmail(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	w := doJSON(router, "POST", "/jwt", map[string]string{"name": "no email"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 without email, got %d", w.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	w := doJSON(router, "POST", "/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	response := decodeBody(t, w)
	if response["success"] != true {
		t.Errorf("Expected success acknowledgment, got %v", response)
	}

	var session *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == auth.CookieName {
			session = cookie
		}
	}
	if session == nil {
		t.Fatalf("Expected clearing Set-Cookie header")
	}
	if session.Value != "" || session.MaxAge >= 0 {
		t.Errorf("Expected emptied, expired cookie, got value=%q maxAge=%d", session.Value, session.MaxAge)
	}
}
