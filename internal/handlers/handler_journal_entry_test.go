package handlers_test

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/journal_entry_store/internal/apperrors"
	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	portssvc "github.com/SscSPs/journal_entry_store/internal/core/ports/services"
	"github.com/SscSPs/journal_entry_store/internal/dto"
	"github.com/SscSPs/journal_entry_store/internal/handlers"
	"github.com/SscSPs/journal_entry_store/internal/platform/config"
	"github.com/SscSPs/journal_entry_store/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalEntryService ---
type MockJournalEntryService struct {
	mock.Mock
}

func (m *MockJournalEntryService) GetJournalEntry(ctx context.Context, owner domain.PublicKey, title string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, owner, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalEntryService) GetJournalEntryByAddress(ctx context.Context, address domain.Address) (*domain.JournalEntry, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalEntryService) DeriveAddress(owner domain.PublicKey, title string) (domain.Address, uint8, error) {
	args := m.Called(owner, title)
	return args.Get(0).(domain.Address), args.Get(1).(uint8), args.Error(2)
}
func (m *MockJournalEntryService) CreateJournalEntry(ctx context.Context, owner domain.PublicKey, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, owner, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalEntryService) UpdateJournalEntry(ctx context.Context, owner domain.PublicKey, title string, req dto.UpdateJournalEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, owner, title, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalEntryService) DeleteJournalEntry(ctx context.Context, owner domain.PublicKey, title string) (domain.Address, int64, error) {
	args := m.Called(ctx, owner, title)
	return args.Get(0).(domain.Address), args.Get(1).(int64), args.Error(2)
}
// Ensure mock implements the interface
var _ portssvc.JournalEntrySvcFacade = (*MockJournalEntryService)(nil)

// --- Mock WalletService ---
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) GetWallet(ctx context.Context, owner domain.PublicKey) (*domain.Wallet, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}
func (m *MockWalletService) Airdrop(ctx context.Context, owner domain.PublicKey, lamports int64) (*domain.Wallet, error) {
	args := m.Called(ctx, owner, lamports)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

var _ portssvc.WalletSvcFacade = (*MockWalletService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// newTestConfig returns the settings RegisterRoutes reads.
func newTestConfig() *config.Config {
	return &config.Config{
		IsProduction:        true,
		ProgramID:           domain.DefaultProgramID,
		RentLamportsPerByte: domain.DefaultLamportsPerByteYear,
		RentExemptionYears:  domain.DefaultExemptionYears,
		EnableAirdrop:       true,
		AirdropMaxLamports:  10_000_000_000,
		JWTSecret:           testJWTSecret,
		JWTExpiryDuration:   time.Hour,
		SignatureMaxSkew:    5 * time.Minute,
		LoginRateLimit:      "1000-M",
	}
}

func ownerKey(seed byte) (ed25519.PrivateKey, domain.PublicKey) {
	priv := ed25519.NewKeyFromSeed(bytes.Repeat([]byte{seed}, ed25519.SeedSize))
	pk, _ := domain.PublicKeyFromEd25519(priv.Public().(ed25519.PublicKey))
	return priv, pk
}

// --- Test Suite ---
type JournalEntryHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockEntries *MockJournalEntryService
	mockWallet  *MockWalletService
	mockAuth    *MockAuthService
	owner       domain.PublicKey
	entry       *domain.JournalEntry
}

func (suite *JournalEntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockEntries = new(MockJournalEntryService)
	suite.mockWallet = new(MockWalletService)
	suite.mockAuth = new(MockAuthService)

	err := handlers.RegisterRoutes(suite.router, newTestConfig(), &portssvc.ServiceContainer{
		JournalEntry: suite.mockEntries,
		Wallet:       suite.mockWallet,
		Auth:         suite.mockAuth,
	})
	suite.Require().NoError(err)

	_, suite.owner = ownerKey(7)
	data, err := domain.EncodeJournalEntryAccount(suite.owner, "hello", "world")
	suite.Require().NoError(err)
	suite.entry = &domain.JournalEntry{
		Address:  domain.Address{9, 9, 9},
		Owner:    suite.owner,
		Title:    "hello",
		Message:  "world",
		Bump:     254,
		Lamports: 3_521_760,
		Data:     data,
	}
}

// do sends a request authenticated with a bearer token for owner.
func (suite *JournalEntryHandlerTestSuite) do(method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	token, _, err := utils.GenerateJWT(suite.owner.String(), testJWTSecret, time.Hour, "", time.Now())
	suite.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *JournalEntryHandlerTestSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

// --- Test Cases ---

func (suite *JournalEntryHandlerTestSuite) TestCreateJournalEntry_Success() {
	req := dto.CreateJournalEntryRequest{Title: "hello", Message: "world"}
	suite.mockEntries.On("CreateJournalEntry", mock.Anything, suite.owner, req).Return(suite.entry, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/entries", req)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(suite.entry.Address.String(), resp.Address)
	suite.Equal(suite.owner.String(), resp.Owner)
	suite.Equal(domain.JournalEntrySpace, resp.Space)
	suite.Equal(int64(3_521_760), resp.Lamports)
	suite.mockEntries.AssertExpectations(suite.T())
}

func (suite *JournalEntryHandlerTestSuite) TestCreateJournalEntry_ErrorMapping() {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantName   string
		wantCode   uint32
	}{
		{"title too long", domain.ErrTitleTooLong, http.StatusBadRequest, "TitleTooLong", 6000},
		{"message too short", domain.ErrMessageTooShort, http.StatusBadRequest, "MessageTooShort", 6003},
		{"already exists", domain.ErrAlreadyExists, http.StatusConflict, "AlreadyExists", 0},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusPaymentRequired, "InsufficientFunds", domain.ErrInsufficientFunds.Code},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.mockEntries.On("CreateJournalEntry", mock.Anything, suite.owner, mock.Anything).Return(nil, tc.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/entries", dto.CreateJournalEntryRequest{Title: "t", Message: "m"})

			suite.Equal(tc.wantStatus, w.Code)
			resp := suite.decodeError(w)
			suite.Equal(tc.wantName, resp.Name)
			suite.Require().NotNil(resp.Code)
			suite.Equal(tc.wantCode, *resp.Code)
		})
	}
}

func (suite *JournalEntryHandlerTestSuite) TestCreateJournalEntry_InternalErrorHidden() {
	suite.mockEntries.On("CreateJournalEntry", mock.Anything, suite.owner, mock.Anything).
		Return(nil, errors.New("connection reset")).Once()

	w := suite.do(http.MethodPost, "/api/v1/entries", dto.CreateJournalEntryRequest{Title: "t", Message: "m"})

	suite.Equal(http.StatusInternalServerError, w.Code)
	resp := suite.decodeError(w)
	suite.Equal("Failed to create journal entry", resp.Error)
	suite.Nil(resp.Code)
}

func (suite *JournalEntryHandlerTestSuite) TestCreateJournalEntry_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/entries", bytes.NewBufferString("{not json"))
	token, _, _ := utils.GenerateJWT(suite.owner.String(), testJWTSecret, time.Hour, "", time.Now())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEntries.AssertNotCalled(suite.T(), "CreateJournalEntry")
}

func (suite *JournalEntryHandlerTestSuite) TestGetJournalEntry_NotFound() {
	suite.mockEntries.On("GetJournalEntry", mock.Anything, suite.owner, "missing").Return(nil, domain.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/entries/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	resp := suite.decodeError(w)
	suite.Equal("NotFound", resp.Name)
	suite.Equal(uint32(3012), *resp.Code)
}

func (suite *JournalEntryHandlerTestSuite) TestGetJournalEntry_EscapedTitle() {
	suite.mockEntries.On("GetJournalEntry", mock.Anything, suite.owner, "2024/05 notes").Return(suite.entry, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/entries/2024%2F05%20notes", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.mockEntries.AssertExpectations(suite.T())
}

func (suite *JournalEntryHandlerTestSuite) TestUpdateJournalEntry_Forbidden() {
	req := dto.UpdateJournalEntryRequest{Message: "new"}
	suite.mockEntries.On("UpdateJournalEntry", mock.Anything, suite.owner, "hello", req).Return(nil, domain.ErrOwnerMismatch).Once()

	w := suite.do(http.MethodPut, "/api/v1/entries/hello", req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal(uint32(2006), *suite.decodeError(w).Code)
}

func (suite *JournalEntryHandlerTestSuite) TestUpdateJournalEntry_Success() {
	req := dto.UpdateJournalEntryRequest{Message: "new"}
	updated := *suite.entry
	updated.Message = "new"
	suite.mockEntries.On("UpdateJournalEntry", mock.Anything, suite.owner, "hello", req).Return(&updated, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/entries/hello", req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("new", resp.Message)
}

func (suite *JournalEntryHandlerTestSuite) TestDeleteJournalEntry_Success() {
	suite.mockEntries.On("DeleteJournalEntry", mock.Anything, suite.owner, "hello").
		Return(suite.entry.Address, int64(3_521_760), nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/entries/hello", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DeleteJournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(3_521_760), resp.RefundedLamports)
	suite.Equal("0.00352176", resp.RefundedSOL.String())
}

func (suite *JournalEntryHandlerTestSuite) TestHome_ProgramInfo() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/", nil))

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.JSONEq(`{
		"programId": "`+domain.DefaultProgramID+`",
		"entrySpace": 378,
		"entryDepositLamports": 3521760,
		"maxTitleBytes": 50,
		"maxMessageBytes": 280
	}`, w.Body.String())
}

func (suite *JournalEntryHandlerTestSuite) TestEntries_RequireAuthentication() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/entries/hello", nil))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockEntries.AssertNotCalled(suite.T(), "GetJournalEntry")
}

func (suite *JournalEntryHandlerTestSuite) TestGetJournalEntryAccount_Public() {
	suite.mockEntries.On("GetJournalEntryByAddress", mock.Anything, suite.entry.Address).Return(suite.entry, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+suite.entry.Address.String(), nil))

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *JournalEntryHandlerTestSuite) TestGetJournalEntryAccount_InvalidAddress() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/0OIl", nil))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEntries.AssertNotCalled(suite.T(), "GetJournalEntryByAddress")
}

func (suite *JournalEntryHandlerTestSuite) TestDeriveAddress() {
	suite.mockEntries.On("DeriveAddress", suite.owner, "hello").Return(suite.entry.Address, uint8(254), nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/addresses/"+suite.owner.String()+"/hello", nil))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DerivedAddressResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(suite.entry.Address.String(), resp.Address)
	suite.Equal(uint8(254), resp.Bump)
}

func (suite *JournalEntryHandlerTestSuite) TestAirdrop_Disabled() {
	suite.mockWallet.On("Airdrop", mock.Anything, suite.owner, int64(100)).
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.do(http.MethodPost, "/api/v1/wallet/airdrop", dto.AirdropRequest{Lamports: 100})

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *JournalEntryHandlerTestSuite) TestLogin() {
	resp := &dto.LoginResponse{Token: "tok", Owner: suite.owner.String()}
	req := dto.LoginRequest{Owner: suite.owner.String(), Timestamp: 1, Signature: "sig"}
	suite.mockAuth.On("Login", mock.Anything, req).Return(resp, nil).Once()

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Contains(w.Body.String(), `"token":"tok"`)
}

func (suite *JournalEntryHandlerTestSuite) TestLogin_InvalidOwnerRejectedByBinding() {
	body := `{"owner":"not-a-key","timestamp":1,"signature":"sig"}`
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(body)))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAuth.AssertNotCalled(suite.T(), "Login")
}

// --- Run Test Suite ---
func TestJournalEntryHandler(t *testing.T) {
	suite.Run(t, new(JournalEntryHandlerTestSuite))
}
