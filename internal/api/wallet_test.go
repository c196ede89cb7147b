package api

import (
	"net/http"
	"testing"
	"time"

	"sportsbook_api/internal/domain"
	"sportsbook_api/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWallet(t *testing.T) {
	r := newTestRouter(newMemStore(), testConfig())
	token := registerAndLogin(t, r, "alice", "password1")

	code, body := doJSON(t, r, http.MethodGet, "/api/wallet", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(domain.DefaultWallet), body["wallet"])
}

func TestGetWalletRequiresToken(t *testing.T) {
	r := newTestRouter(newMemStore(), testConfig())

	code, _ := doJSON(t, r, http.MethodGet, "/api/wallet", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = doJSON(t, r, http.MethodGet, "/api/wallet", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestGetWalletUnknownUser(t *testing.T) {
	cfg := testConfig()
	r := newTestRouter(newMemStore(), cfg)

	// Valid signature, but no such user row behind it.
	token, err := utils.GenerateJWT(999, cfg.JWTSecret, time.Hour)
	require.NoError(t, err)

	code, _ := doJSON(t, r, http.MethodGet, "/api/wallet", token, nil)
	assert.Equal(t, http.StatusNotFound, code)
}
