package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fintracc/finance_tracker_app/internal/apperrors"
	"github.com/fintracc/finance_tracker_app/internal/core/domain"
	portssvc "github.com/fintracc/finance_tracker_app/internal/core/ports/services"
	"github.com/fintracc/finance_tracker_app/internal/dto"
	"github.com/fintracc/finance_tracker_app/internal/handlers"
	"github.com/fintracc/finance_tracker_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, sessionID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, sessionID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, sessionID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, sessionID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, sessionID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockTransactionService) GetTransactionsSummary(ctx context.Context, sessionID string) (*domain.TransactionSummary, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionSummary), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock CategoryService ---

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, sessionID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, sessionID string, categoryID string) error {
	args := m.Called(ctx, sessionID, categoryID)
	return args.Error(0)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Test Suite Setup ---

const testCookieName = "sessionId"

func newTestConfig() *config.Config {
	return &config.Config{
		SessionCookieName:   testCookieName,
		SessionCookieMaxAge: 168 * time.Hour,
		CORSAllowedOrigins:  []string{"http://localhost:3000"},
		WriteRateLimit:      "1000-S", // effectively unlimited in tests
	}
}

type TransactionHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockTransactionService *MockTransactionService
	mockCategoryService    *MockCategoryService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockTransactionService = new(MockTransactionService)
	suite.mockCategoryService = new(MockCategoryService)

	handlers.RegisterRoutes(suite.router, newTestConfig(), &portssvc.ServiceContainer{
		Transaction: suite.mockTransactionService,
		Category:    suite.mockCategoryService,
	})
}

func (suite *TransactionHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sessionCookie(value string) *http.Cookie {
	return &http.Cookie{Name: testCookieName, Value: value}
}

// --- Create ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MintsSessionCookie() {
	var mintedSession string
	suite.mockTransactionService.On("CreateTransaction",
		mock.Anything,
		mock.MatchedBy(func(sid string) bool {
			mintedSession = sid
			return sid != ""
		}),
		mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
			return r.Title == "Salary" &&
				r.Amount.Equal(decimal.NewFromInt(1000)) &&
				r.Type == domain.Credit &&
				r.CategoryID == nil
		}),
	).Return(&domain.Transaction{TransactionID: uuid.NewString()}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/transactions",
		strings.NewReader(`{"title":"Salary","amount":1000,"type":"credit"}`))
	req.Header.Set("Content-Type", "application/json")

	w := suite.serve(req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Empty(w.Body.String())

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookieName {
			cookie = c
		}
	}
	suite.Require().NotNil(cookie, "expected a minted session cookie")
	suite.Equal(mintedSession, cookie.Value)
	suite.Equal("/", cookie.Path)
	suite.Equal(7*24*3600, cookie.MaxAge)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ReusesExistingSession() {
	sessionID := uuid.NewString()
	suite.mockTransactionService.On("CreateTransaction", mock.Anything, sessionID, mock.Anything).
		Return(&domain.Transaction{TransactionID: uuid.NewString()}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/transactions",
		strings.NewReader(`{"title":"Groceries","amount":500,"type":"debit"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(sessionCookie(sessionID))

	w := suite.serve(req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Empty(w.Result().Cookies(), "no new cookie should be set when one is presented")
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MissingTitleFailsValidation() {
	req := httptest.NewRequest(http.MethodPost, "/transactions",
		strings.NewReader(`{"amount":1000,"type":"credit"}`))
	req.Header.Set("Content-Type", "application/json")

	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp dto.ValidationErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Validation error", resp.Message)
	suite.NotEmpty(resp.Issues)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "CreateTransaction")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InvalidTypeFailsValidation() {
	req := httptest.NewRequest(http.MethodPost, "/transactions",
		strings.NewReader(`{"title":"X","amount":10,"type":"transfer"}`))
	req.Header.Set("Content-Type", "application/json")

	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp dto.ValidationErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Issues, 1)
	suite.Equal("type", resp.Issues[0].Field)
	suite.Equal("oneof", resp.Issues[0].Rule)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "CreateTransaction")
}

// --- List ---

func (suite *TransactionHandlerTestSuite) TestListTransactions_RequiresSession() {
	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)

	w := suite.serve(req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_DefaultParams() {
	sessionID := uuid.NewString()
	expected := &dto.ListTransactionsResponse{
		Data: []dto.TransactionResponse{
			{ID: uuid.NewString(), Title: "A", Amount: decimal.NewFromInt(1000), SessionID: sessionID, CreatedAt: time.Now().UTC()},
		},
		Pagination: dto.PaginationResponse{Page: 1, Limit: 10, Total: 1, TotalPages: 1},
	}

	suite.mockTransactionService.On("ListTransactions", mock.Anything, sessionID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.SortBy == "date" && p.Order == "desc" && p.Page == 1 && p.Limit == 10
		}),
	).Return(expected, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	req.AddCookie(sessionCookie(sessionID))

	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Data, 1)
	suite.Equal(int64(1), resp.Pagination.Total)
	suite.Equal(int64(1), resp.Pagination.TotalPages)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_FilterParamsPassedThrough() {
	sessionID := uuid.NewString()
	categoryID := uuid.NewString()

	suite.mockTransactionService.On("ListTransactions", mock.Anything, sessionID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Type == "debit" &&
				p.MinValue != nil && *p.MinValue == 0 &&
				p.CategoryID != nil && *p.CategoryID == categoryID &&
				p.SortBy == "value" && p.Order == "asc" &&
				p.Page == 2 && p.Limit == 5
		}),
	).Return(&dto.ListTransactionsResponse{
		Data:       []dto.TransactionResponse{},
		Pagination: dto.PaginationResponse{Page: 2, Limit: 5},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet,
		"/transactions?type=debit&minValue=0&categoryId="+categoryID+"&sortBy=value&order=asc&page=2&limit=5", nil)
	req.AddCookie(sessionCookie(sessionID))

	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_InvalidParamsRejected() {
	sessionID := uuid.NewString()

	cases := map[string]string{
		"sortBy":       "/transactions?sortBy=invalid",
		"order":        "/transactions?order=sideways",
		"limitTooHigh": "/transactions?limit=101",
		"limitZero":    "/transactions?limit=0",
		"pageZero":     "/transactions?page=0",
		"badDate":      "/transactions?startDate=yesterday",
		"badCategory":  "/transactions?categoryId=not-a-uuid",
	}

	for name, url := range cases {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		req.AddCookie(sessionCookie(sessionID))

		w := suite.serve(req)

		suite.Equal(http.StatusBadRequest, w.Code, "case %s", name)

		var resp dto.ValidationErrorResponse
		suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp), "case %s", name)
		suite.Equal("Validation error", resp.Message, "case %s", name)
	}

	suite.mockTransactionService.AssertNotCalled(suite.T(), "ListTransactions")
}

// --- Get by id ---

func (suite *TransactionHandlerTestSuite) TestGetTransaction_Found() {
	sessionID := uuid.NewString()
	transactionID := uuid.NewString()
	txn := &domain.Transaction{
		TransactionID: transactionID,
		Title:         "Salary",
		Amount:        decimal.NewFromInt(1000),
		SessionID:     sessionID,
		CreatedAt:     time.Now().UTC(),
	}

	suite.mockTransactionService.On("GetTransactionByID", mock.Anything, sessionID, transactionID).
		Return(txn, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/transactions/"+transactionID, nil)
	req.AddCookie(sessionCookie(sessionID))

	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.GetTransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.Transaction)
	suite.Equal(transactionID, resp.Transaction.ID)
	suite.True(resp.Transaction.Amount.Equal(decimal.NewFromInt(1000)))
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_MissReturnsNullNot404() {
	sessionID := uuid.NewString()
	transactionID := uuid.NewString()

	suite.mockTransactionService.On("GetTransactionByID", mock.Anything, sessionID, transactionID).
		Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/transactions/"+transactionID, nil)
	req.AddCookie(sessionCookie(sessionID))

	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"transaction":null`)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_MalformedIDRejected() {
	req := httptest.NewRequest(http.MethodGet, "/transactions/not-a-uuid", nil)
	req.AddCookie(sessionCookie(uuid.NewString()))

	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "GetTransactionByID")
}

// --- Summary ---

func (suite *TransactionHandlerTestSuite) TestGetSummary() {
	sessionID := uuid.NewString()

	suite.mockTransactionService.On("GetTransactionsSummary", mock.Anything, sessionID).
		Return(&domain.TransactionSummary{Amount: decimal.NewFromInt(500)}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/transactions/summary", nil)
	req.AddCookie(sessionCookie(sessionID))

	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.SummaryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Summary.Amount.Equal(decimal.NewFromInt(500)))
}

func (suite *TransactionHandlerTestSuite) TestGetSummary_RequiresSession() {
	req := httptest.NewRequest(http.MethodGet, "/transactions/summary", nil)

	w := suite.serve(req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "GetTransactionsSummary")
}

// --- Run Test Suite ---

func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
