package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"sportsbook_api/internal/config"
	"sportsbook_api/internal/domain"
	"sportsbook_api/internal/feed"
	"sportsbook_api/internal/middleware"
	"sportsbook_api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for handler tests. ApproveDeposit
// performs the same compare-and-swap on status as the gorm store.
type memStore struct {
	mu       sync.Mutex
	users    map[uint]*domain.User
	byName   map[string]uint
	deposits map[uint]*domain.DepositRequest
	nextUser uint
	nextDep  uint
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[uint]*domain.User),
		byName:   make(map[string]uint),
		deposits: make(map[uint]*domain.DepositRequest),
	}
}

func (m *memStore) CreateUser(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, taken := m.byName[user.Username]; taken {
		return store.ErrUsernameTaken
	}
	m.nextUser++
	user.ID = m.nextUser
	cp := *user
	m.users[user.ID] = &cp
	m.byName[user.Username] = user.ID
	return nil
}

func (m *memStore) GetUserByID(_ context.Context, id uint) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byName[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	cp := *m.users[id]
	return &cp, nil
}

func (m *memStore) CreateDeposit(_ context.Context, req *domain.DepositRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextDep++
	req.ID = m.nextDep
	req.Status = domain.DepositPending
	req.CreatedAt = time.Now().UnixMilli()
	cp := *req
	m.deposits[req.ID] = &cp
	return nil
}

func (m *memStore) ApproveDeposit(_ context.Context, requestID uint) (*domain.DepositRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	req, ok := m.deposits[requestID]
	if !ok {
		return nil, store.ErrDepositNotFound
	}
	if req.Status != domain.DepositPending {
		return nil, store.ErrDepositNotPending
	}
	req.Status = domain.DepositApproved
	if u, ok := m.users[req.UserID]; ok {
		u.Wallet += req.Amount
	}
	cp := *req
	return &cp, nil
}

func (m *memStore) ListPendingDeposits(_ context.Context) ([]domain.DepositRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.DepositRequest
	for _, req := range m.deposits {
		if req.Status == domain.DepositPending {
			out = append(out, *req)
		}
	}
	return out, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		Bank: config.BankDetails{
			BankName:      "FastMoney Bank",
			AccountName:   "FastMoney Games Pvt Ltd",
			AccountNumber: "1234567890",
			IFSC:          "FAST0001234",
			UPIID:         "fastmoney@upi",
			Note:          "Send UTR/reference number through support after payment.",
		},
	}
}

// newTestRouter wires the routes the way cmd/server does, minus the
// live feed, against the given store. Redis is left nil so wallet
// reads always hit the store.
func newTestRouter(st store.Store, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	odds := feed.DefaultOdds()
	r.POST("/api/auth/register", RegisterHandler(st))
	r.POST("/api/auth/login", LoginHandler(st, cfg))
	r.GET("/api/payment/manual-details", ManualDetailsHandler(cfg.Bank))
	r.GET("/api/sportsbook/odds", GetOddsHandler(odds))

	authed := r.Group("/api")
	authed.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	authed.GET("/wallet", GetWalletHandler(st, nil))
	authed.POST("/deposit/request", SubmitDepositHandler(st))

	admin := r.Group("/api/deposit")
	admin.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.RequireAdmin(st))
	admin.POST("/approve", ApproveDepositHandler(st, nil))
	admin.GET("/pending", ListPendingDepositsHandler(st))

	return r
}

// doJSON runs one request through the router and decodes the JSON body.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (int, map[string]any) {
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

	var decoded map[string]any
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w.Code, decoded
}

// registerAndLogin creates an account and returns its token.
func registerAndLogin(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	code, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"password": password,
		"email":    username + "@example.com",
	})
	require.Equal(t, http.StatusCreated, code)

	code, body := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, code)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// seedAdmin registers an account, promotes it to admin directly in the
// store, and returns its token.
func seedAdmin(t *testing.T, r *gin.Engine, st *memStore) string {
	t.Helper()
	token := registerAndLogin(t, r, "admin", "admin-pass-1")
	st.mu.Lock()
	st.users[st.byName["admin"]].Role = domain.RoleAdmin
	st.mu.Unlock()
	return token
}
