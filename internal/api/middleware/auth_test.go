package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/accessihire/backend/internal/auth"
	"github.com/accessihire/backend/internal/models"
	appErr "github.com/accessihire/backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	users map[uuid.UUID]models.User
}

func (f *fakeUserStore) Create(ctx context.Context, u *models.User) error { return nil }

func (f *fakeUserStore) GetByID(ctx context.Context, id any, dest *models.User) error {
	uid, ok := id.(uuid.UUID)
	if !ok {
		return appErr.New(appErr.CodeInvalid, "bad id")
	}
	u, ok := f.users[uid]
	if !ok {
		return appErr.New(appErr.CodeNotFound, "record not found")
	}
	*dest = u
	return nil
}

func (f *fakeUserStore) Update(ctx context.Context, u *models.User) error { return nil }

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string, dest *models.User) error {
	return appErr.New(appErr.CodeNotFound, "user not found")
}

func (f *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func newAuthFixture(t *testing.T, ttl time.Duration) (*auth.TokenManager, *fakeUserStore, uuid.UUID) {
	t.Helper()
	tokens := auth.NewTokenManager("test-secret", ttl)
	id := uuid.New()
	store := &fakeUserStore{users: map[uuid.UUID]models.User{
		id: {ID: id, Name: "Ama", Email: "ama@example.com", IsActive: true},
	}}
	return tokens, store, id
}

func doAuthed(t *testing.T, tokens *auth.TokenManager, store *fakeUserStore, header string) (*httptest.ResponseRecorder, uuid.UUID) {
	t.Helper()
	var seen uuid.UUID
	handler := Auth(tokens, store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, seen
}

func errMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "error", body.Status)
	return body.Message
}

func TestAuthAcceptsValidToken(t *testing.T) {
	tokens, store, id := newAuthFixture(t, time.Hour)
	tok, err := tokens.Issue(id)
	require.NoError(t, err)

	rec, seen := doAuthed(t, tokens, store, "Bearer "+tok)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, id, seen)
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	tokens, store, _ := newAuthFixture(t, time.Hour)
	rec, _ := doAuthed(t, tokens, store, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Access denied. No token provided.", errMessage(t, rec))
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	tokens, store, id := newAuthFixture(t, -time.Minute)
	tok, err := tokens.Issue(id)
	require.NoError(t, err)

	rec, _ := doAuthed(t, tokens, store, "Bearer "+tok)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Token expired. Please login again.", errMessage(t, rec))
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	tokens, store, _ := newAuthFixture(t, time.Hour)
	rec, _ := doAuthed(t, tokens, store, "Bearer not.a.jwt")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid token.", errMessage(t, rec))
}

func TestAuthRejectsUnknownUser(t *testing.T) {
	tokens, store, _ := newAuthFixture(t, time.Hour)
	tok, err := tokens.Issue(uuid.New())
	require.NoError(t, err)

	rec, _ := doAuthed(t, tokens, store, "Bearer "+tok)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid token. User not found.", errMessage(t, rec))
}

func TestAuthRejectsInactiveUser(t *testing.T) {
	tokens, store, id := newAuthFixture(t, time.Hour)
	u := store.users[id]
	u.IsActive = false
	store.users[id] = u

	tok, err := tokens.Issue(id)
	require.NoError(t, err)

	rec, _ := doAuthed(t, tokens, store, "Bearer "+tok)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "User account is inactive.", errMessage(t, rec))
}
