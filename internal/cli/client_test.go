package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	"github.com/SscSPs/journal_entry_store/internal/core/services"
	"github.com/SscSPs/journal_entry_store/internal/dto"
	"github.com/SscSPs/journal_entry_store/internal/handlers"
	"github.com/SscSPs/journal_entry_store/internal/platform/config"
	"github.com/SscSPs/journal_entry_store/internal/repositories/memory"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer serves the full API over a memory backend.
func newTestServer(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		IsProduction:        true,
		ProgramID:           domain.DefaultProgramID,
		RentLamportsPerByte: domain.DefaultLamportsPerByteYear,
		RentExemptionYears:  domain.DefaultExemptionYears,
		EnableAirdrop:       true,
		AirdropMaxLamports:  10_000_000_000,
		JWTSecret:           "cli-test-secret",
		JWTExpiryDuration:   time.Hour,
		SignatureMaxSkew:    5 * time.Minute,
		LoginRateLimit:      "1000-M",
	}
	container, err := services.NewServiceContainer(cfg, memory.NewRepositoryProvider())
	require.NoError(t, err)

	r := gin.New()
	require.NoError(t, handlers.RegisterRoutes(r, cfg, container))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv.URL + handlers.APIBasePath
}

// run executes journalctl with args and returns stdout.
func run(t *testing.T, server, keypair string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--server", server, "--keypair", keypair}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestJournalctl_EndToEnd(t *testing.T) {
	server := newTestServer(t)
	keypair := filepath.Join(t.TempDir(), "id.json")
	deposit := domain.DefaultRent().MinimumBalance(domain.JournalEntrySpace)

	pub, err := run(t, server, keypair, "keygen")
	require.NoError(t, err)
	pub = strings.TrimSpace(pub)

	got, err := run(t, server, keypair, "pubkey")
	require.NoError(t, err)
	assert.Equal(t, pub, strings.TrimSpace(got))

	_, err = run(t, server, keypair, "create", "-t", "day 1", "-m", "hello")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "want APIError, got %v", err)
	assert.Equal(t, http.StatusPaymentRequired, apiErr.Status)
	assert.Equal(t, "InsufficientFunds", apiErr.Body.Name)

	_, err = run(t, server, keypair, "airdrop", "--lamports", "100000000")
	require.NoError(t, err)

	out, err := run(t, server, keypair, "create", "-t", "day 1/a", "-m", "hello")
	require.NoError(t, err)
	var created dto.JournalEntryResponse
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, pub, created.Owner)
	assert.Equal(t, deposit, created.Lamports)

	out, err = run(t, server, keypair, "address", "-t", "day 1/a")
	require.NoError(t, err)
	var derived dto.DerivedAddressResponse
	require.NoError(t, json.Unmarshal([]byte(out), &derived))
	assert.Equal(t, created.Address, derived.Address)
	assert.Equal(t, created.Bump, derived.Bump)

	_, err = run(t, server, keypair, "update", "-t", "day 1/a", "-m", "updated")
	require.NoError(t, err)

	out, err = run(t, server, keypair, "get", "--address", created.Address)
	require.NoError(t, err)
	assert.Contains(t, out, `"message": "updated"`)

	out, err = run(t, server, keypair, "delete", "-t", "day 1/a")
	require.NoError(t, err)
	assert.Contains(t, out, `"refundedLamports": `)

	out, err = run(t, server, keypair, "balance")
	require.NoError(t, err)
	assert.Contains(t, out, `"lamports": 100000000`)

	_, err = run(t, server, keypair, "get", "-t", "day 1/a")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	require.NotNil(t, apiErr.Body.Code)
	assert.Equal(t, uint32(3012), *apiErr.Body.Code)
}

func TestJournalctl_Login(t *testing.T) {
	server := newTestServer(t)
	keypair := filepath.Join(t.TempDir(), "id.json")
	_, err := run(t, server, keypair, "keygen")
	require.NoError(t, err)

	out, err := run(t, server, keypair, "login")
	require.NoError(t, err)
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestJournalctl_ValidationError(t *testing.T) {
	server := newTestServer(t)
	keypair := filepath.Join(t.TempDir(), "id.json")
	_, err := run(t, server, keypair, "keygen")
	require.NoError(t, err)

	_, err = run(t, server, keypair, "create", "-t", strings.Repeat("x", 51), "-m", "m")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "TitleTooLong", apiErr.Body.Name)
	assert.Contains(t, apiErr.Error(), "code 6000")
}

func TestNewClient_RejectsRelativeURL(t *testing.T) {
	_, err := NewClient("localhost:8080", nil, nil)
	assert.Error(t, err)
}
