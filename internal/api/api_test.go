package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adept_play/internal/auth"
	"adept_play/internal/ledger"
	"adept_play/internal/query"
	"adept_play/internal/store"
	"adept_play/internal/titlegen"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	st := store.New(store.NewMemoryBackend(), store.WithHashCost(bcrypt.MinCost))
	q := query.New(st)
	r := gin.New()
	Register(r, Services{
		Store:     st,
		Engine:    ledger.New(st, ledger.WithHashCost(bcrypt.MinCost)),
		Queries:   q,
		Gate:      auth.NewGate(st),
		Suggester: titlegen.NewSuggester(nil, nil, time.Second),
		JWTSecret: testSecret,
	})
	return r
}

func do(t *testing.T, r http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	out := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w, out
}

func login(t *testing.T, r http.Handler, path, username, password string) string {
	t.Helper()
	w, body := do(t, r, http.MethodPost, path, "", gin.H{"username": username, "password": password})
	require.Equal(t, http.StatusOK, w.Code, body)
	token, ok := body["token"].(string)
	require.True(t, ok)
	return token
}

func money(t *testing.T, v any) decimal.Decimal {
	t.Helper()
	s, ok := v.(string)
	require.True(t, ok, "expected decimal string, got %v", v)
	return decimal.RequireFromString(s)
}

func balanceOf(t *testing.T, r http.Handler, token string) decimal.Decimal {
	t.Helper()
	w, body := do(t, r, http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	return money(t, body["user"].(map[string]any)["walletBalance"])
}

func TestInstall(t *testing.T) {
	r := newRouter(t)

	w, body := do(t, r, http.MethodGet, "/install", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["installed"])

	w, _ = do(t, r, http.MethodPost, "/install", "", nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	_, body = do(t, r, http.MethodGet, "/install", "", nil)
	assert.Equal(t, true, body["installed"])

	w, body = do(t, r, http.MethodPost, "/install", "", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Already installed", body["error"])
}

func TestLoginIsRoleScoped(t *testing.T) {
	r := newRouter(t)

	w, body := do(t, r, http.MethodPost, "/user/login", "", gin.H{"username": "player1", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid credentials", body["error"])

	w, _ = do(t, r, http.MethodPost, "/user/login", "", gin.H{"username": "admin", "password": "admin123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = do(t, r, http.MethodPost, "/admin/login", "", gin.H{"username": "player1", "password": "password1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = do(t, r, http.MethodPost, "/user/login", "", gin.H{"username": "player1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	token := login(t, r, "/user/login", "player1", "password1")
	assert.True(t, balanceOf(t, r, token).Equal(decimal.NewFromInt(1000)))
}

func TestSignup(t *testing.T) {
	r := newRouter(t)

	w, body := do(t, r, http.MethodPost, "/user", "", gin.H{"username": "nova", "email": "nova@test.com", "password": "secret99"})
	require.Equal(t, http.StatusCreated, w.Code, body)
	user := body["user"].(map[string]any)
	assert.Equal(t, float64(4), user["id"])
	assert.True(t, money(t, user["walletBalance"]).Equal(decimal.NewFromInt(500)))
	assert.NotContains(t, user, "password")

	w, body = do(t, r, http.MethodPost, "/user", "", gin.H{"username": "nova", "email": "other@test.com", "password": "secret99"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "username already exists", body["error"])

	w, _ = do(t, r, http.MethodPost, "/user", "", gin.H{"username": "orbit", "email": "nova@test.com", "password": "secret99"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = do(t, r, http.MethodPost, "/user", "", gin.H{"username": "orbit", "email": "not-an-email", "password": "secret99"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	token := login(t, r, "/user/login", "nova", "secret99")
	w, body = do(t, r, http.MethodGet, "/wallet/transactions", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	txs := body["transactions"].([]any)
	require.Len(t, txs, 1)
	assert.Equal(t, "welcome_bonus", txs[0].(map[string]any)["category"])
}

func TestProtectedRoutes(t *testing.T) {
	r := newRouter(t)

	w, _ := do(t, r, http.MethodGet, "/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = do(t, r, http.MethodGet, "/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	player := login(t, r, "/user/login", "player1", "password1")
	w, _ = do(t, r, http.MethodGet, "/admin/stats", player, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := login(t, r, "/admin/login", "admin", "admin123")
	w, _ = do(t, r, http.MethodGet, "/tournaments/upcoming", admin, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = do(t, r, http.MethodGet, "/me", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJoinTournament(t *testing.T) {
	r := newRouter(t)
	token := login(t, r, "/user/login", "player1", "password1")

	w, body := do(t, r, http.MethodGet, "/tournaments/upcoming", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	upcoming := body["tournaments"].([]any)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "Valorant Vanguard Series", upcoming[0].(map[string]any)["title"])

	w, body = do(t, r, http.MethodPost, "/tournaments/2/join", token, nil)
	require.Equal(t, http.StatusOK, w.Code, body)
	assert.True(t, money(t, body["user"].(map[string]any)["walletBalance"]).Equal(decimal.NewFromInt(950)))

	w, body = do(t, r, http.MethodPost, "/tournaments/2/join", token, gin.H{"entryFee": "50"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "already joined this tournament", body["error"])
	assert.True(t, balanceOf(t, r, token).Equal(decimal.NewFromInt(950)))

	w, _ = do(t, r, http.MethodPost, "/tournaments/3/join", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code, "player1 already played the completed tournament")

	w, _ = do(t, r, http.MethodPost, "/tournaments/999/join", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, r, http.MethodPost, "/tournaments/abc/join", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	_, body = do(t, r, http.MethodGet, "/tournaments/mine", token, nil)
	mine := body["tournaments"].([]any)
	require.Len(t, mine, 2)
	assert.Equal(t, "BGMI Champions Cup", mine[0].(map[string]any)["title"])

	_, body = do(t, r, http.MethodGet, "/wallet/transactions", token, nil)
	txs := body["transactions"].([]any)
	require.NotEmpty(t, txs)
	latest := txs[0].(map[string]any)
	assert.Equal(t, "debit", latest["type"])
	assert.Equal(t, "entry_fee", latest["category"])
	assert.True(t, money(t, latest["amount"]).Equal(decimal.NewFromInt(50)))

	_, body = do(t, r, http.MethodGet, "/tournaments/upcoming", token, nil)
	assert.Len(t, body["tournaments"].([]any), 1)
}

func TestJoinInsufficientBalance(t *testing.T) {
	r := newRouter(t)
	admin := login(t, r, "/admin/login", "admin", "admin123")
	w, body := do(t, r, http.MethodPost, "/admin/tournaments", admin, gin.H{
		"title":     "High Rollers",
		"gameName":  "Valorant",
		"entryFee":  "5000",
		"prizePool": "20000",
		"matchTime": time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code, body)
	id := body["tournament"].(map[string]any)["id"]
	assert.Equal(t, float64(4), id)

	player := login(t, r, "/user/login", "player2", "password2")
	w, body = do(t, r, http.MethodPost, "/tournaments/4/join", player, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "insufficient balance", body["error"])
	assert.True(t, balanceOf(t, r, player).Equal(decimal.NewFromInt(500)))
}

func TestAdminTournamentLifecycle(t *testing.T) {
	r := newRouter(t)
	admin := login(t, r, "/admin/login", "admin", "admin123")
	player := login(t, r, "/user/login", "player2", "password2")

	w, body := do(t, r, http.MethodPost, "/admin/tournaments", admin, gin.H{"title": "", "gameName": "BGMI"})
	assert.Equal(t, http.StatusBadRequest, w.Code, body)

	w, _ = do(t, r, http.MethodPost, "/tournaments/1/join", player, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, body = do(t, r, http.MethodGet, "/admin/tournaments/1", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	participants := body["participants"].([]any)
	require.Len(t, participants, 1)
	assert.Equal(t, "player2", participants[0].(map[string]any)["username"])

	w, body = do(t, r, http.MethodPut, "/admin/tournaments/1/room", admin, gin.H{"roomId": "VAL999", "roomPassword": "go"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Live", body["tournament"].(map[string]any)["status"])

	w, _ = do(t, r, http.MethodPost, "/tournaments/1/join", login(t, r, "/user/login", "player1", "password1"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "live tournaments are closed for entry")

	w, body = do(t, r, http.MethodPost, "/admin/tournaments/1/winner", admin, gin.H{"winnerId": 2})
	require.Equal(t, http.StatusOK, w.Code, body)
	assert.Equal(t, "Completed", body["tournament"].(map[string]any)["status"])
	assert.Equal(t, float64(2), body["tournament"].(map[string]any)["winnerId"])
	// 500 - 100 entry + 1000 prize
	assert.True(t, balanceOf(t, r, player).Equal(decimal.NewFromInt(1400)))

	w, body = do(t, r, http.MethodPost, "/admin/tournaments/1/winner", admin, gin.H{"winnerId": 1})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "tournament already completed", body["error"])

	w, _ = do(t, r, http.MethodPut, "/admin/tournaments/1/room", admin, gin.H{"roomId": "X"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = do(t, r, http.MethodPost, "/admin/tournaments/2/winner", admin, gin.H{"winnerId": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, r, http.MethodGet, "/admin/tournaments/999", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminListings(t *testing.T) {
	r := newRouter(t)
	admin := login(t, r, "/admin/login", "admin", "admin123")

	w, body := do(t, r, http.MethodGet, "/admin/stats", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["totalUsers"])
	assert.Equal(t, float64(3), body["totalTournaments"])
	assert.True(t, money(t, body["totalPrizeDistributed"]).Equal(decimal.NewFromInt(400)))
	assert.True(t, money(t, body["totalRevenue"]).Equal(decimal.NewFromInt(80)))

	_, body = do(t, r, http.MethodGet, "/admin/users", admin, nil)
	assert.Equal(t, float64(2), body["total"])
	assert.Len(t, body["users"].([]any), 2)

	_, body = do(t, r, http.MethodGet, "/admin/users?page=2&page_size=1", admin, nil)
	users := body["users"].([]any)
	require.Len(t, users, 1)
	assert.Equal(t, "player2", users[0].(map[string]any)["username"])
	assert.Equal(t, float64(2), body["total_pages"])

	w, _ = do(t, r, http.MethodGet, "/admin/users?page=0", admin, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	_, body = do(t, r, http.MethodGet, "/admin/tournaments", admin, nil)
	ts := body["tournaments"].([]any)
	require.Len(t, ts, 3)
	assert.Equal(t, "BGMI Champions Cup", ts[0].(map[string]any)["title"])
}

func TestSuggestTitleFallsBack(t *testing.T) {
	r := newRouter(t)
	admin := login(t, r, "/admin/login", "admin", "admin123")

	w, body := do(t, r, http.MethodPost, "/admin/suggest-title", admin, gin.H{"gameName": "Apex"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Epic Apex Showdown", body["title"])

	w, _ = do(t, r, http.MethodPost, "/admin/suggest-title", admin, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChangePassword(t *testing.T) {
	r := newRouter(t)
	token := login(t, r, "/user/login", "player1", "password1")

	w, body := do(t, r, http.MethodPut, "/me/password", token, gin.H{"currentPassword": "nope", "newPassword": "fresh-secret"})
	assert.Equal(t, http.StatusUnauthorized, w.Code, body)

	w, _ = do(t, r, http.MethodPut, "/me/password", token, gin.H{"currentPassword": "password1", "newPassword": "fresh-secret"})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, r, http.MethodPost, "/user/login", "", gin.H{"username": "player1", "password": "password1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	login(t, r, "/user/login", "player1", "fresh-secret")
}

func TestResetRestoresSeedWithoutReusingIDs(t *testing.T) {
	r := newRouter(t)
	admin := login(t, r, "/admin/login", "admin", "admin123")

	w, _ := do(t, r, http.MethodPost, "/user", "", gin.H{"username": "nova", "email": "nova@test.com", "password": "secret99"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = do(t, r, http.MethodPost, "/admin/reset", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, r, http.MethodPost, "/user/login", "", gin.H{"username": "nova", "password": "secret99"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body := do(t, r, http.MethodPost, "/user", "", gin.H{"username": "nova", "email": "nova@test.com", "password": "secret99"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Greater(t, body["user"].(map[string]any)["id"].(float64), float64(4))
}

func TestPaginationBeyondLastPage(t *testing.T) {
	r := newRouter(t)
	admin := login(t, r, "/admin/login", "admin", "admin123")

	for _, path := range []string{
		"/admin/users?page=9223372036854775807&page_size=100",
		"/admin/tournaments?page=4611686018427387904&page_size=2",
		"/admin/users?page=3&page_size=1",
	} {
		var (
			w    *httptest.ResponseRecorder
			body map[string]any
		)
		require.NotPanics(t, func() { w, body = do(t, r, http.MethodGet, path, admin, nil) }, path)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Empty(t, firstList(body), path)
	}

	player := login(t, r, "/user/login", "player1", "password1")
	w, body := do(t, r, http.MethodGet, "/wallet/transactions?page=9223372036854775807", player, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["transactions"])
	assert.Equal(t, float64(2), body["total"])
}

// firstList returns the users or tournaments page from a listing response
func firstList(body map[string]any) []any {
	for _, key := range []string{"users", "tournaments"} {
		if v, ok := body[key].([]any); ok {
			return v
		}
	}
	return nil
}

func TestJoinWithEmptyChunkedBody(t *testing.T) {
	r := newRouter(t)
	token := login(t, r, "/user/login", "player2", "password2")

	req := httptest.NewRequest(http.MethodPost, "/tournaments/2/join", &bytes.Buffer{})
	req.ContentLength = -1 // Unknown length, as with chunked transfer encoding
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, balanceOf(t, r, token).Equal(decimal.NewFromInt(450)))

	w, _ = do(t, r, http.MethodPost, "/tournaments/1/join", token, "not an object")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
