package portfolios

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"roboadvisor/pkg/response"
)

type mockPortfolioService struct {
	mock.Mock
}

func (m *mockPortfolioService) CreatePortfolio(ctx context.Context, input Portfolio) (Portfolio, error) {
	args := m.Called(ctx, input)
	portfolio, _ := args.Get(0).(Portfolio)
	return portfolio, args.Error(1)
}

func (m *mockPortfolioService) UpdatePortfolio(ctx context.Context, input Portfolio) (Portfolio, error) {
	args := m.Called(ctx, input)
	portfolio, _ := args.Get(0).(Portfolio)
	return portfolio, args.Error(1)
}

func (m *mockPortfolioService) DeletePortfolio(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPortfolioService) GetPortfolioByID(ctx context.Context, id int64) (Portfolio, error) {
	args := m.Called(ctx, id)
	portfolio, _ := args.Get(0).(Portfolio)
	return portfolio, args.Error(1)
}

func (m *mockPortfolioService) ListPortfolios(ctx context.Context) ([]Portfolio, error) {
	args := m.Called(ctx)
	portfolios, _ := args.Get(0).([]Portfolio)
	return portfolios, args.Error(1)
}

func setupRouter(service PortfolioService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPortfolioHandler(service)
	h.RegisterRoutes(r.Group("/"))
	return r
}

func TestPortfolioHandler_CreatePortfolio_Success(t *testing.T) {
	svc := new(mockPortfolioService)
	r := setupRouter(svc)

	expected := Portfolio{ID: 1, Name: "Retirement", Description: "long horizon"}
	svc.On("CreatePortfolio", mock.Anything, mock.MatchedBy(func(input Portfolio) bool {
		return input.Name == "Retirement" && input.Description == "long horizon"
	})).Return(expected, nil)

	reqBody := `{"name":"Retirement","description":"long horizon"}`
	req := httptest.NewRequest(http.MethodPost, "/portfolios", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "portfolio created", resp.Message)
	require.False(t, resp.CreatedAt.IsZero())

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, 1, data["id"])
	require.Equal(t, "Retirement", data["name"])

	svc.AssertExpectations(t)
}

func TestPortfolioHandler_CreatePortfolio_InvalidPayload(t *testing.T) {
	svc := new(mockPortfolioService)
	r := setupRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/portfolios", strings.NewReader(`{"description":"no name"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "invalid request payload", resp.Message)

	svc.AssertNotCalled(t, "CreatePortfolio", mock.Anything, mock.Anything)
}

func TestPortfolioHandler_CreatePortfolio_BlankName(t *testing.T) {
	svc := new(mockPortfolioService)
	r := setupRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/portfolios", strings.NewReader(`{"name":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "name must not be empty", resp.Message)

	svc.AssertNotCalled(t, "CreatePortfolio", mock.Anything, mock.Anything)
}

func TestPortfolioHandler_ListPortfolios_Success(t *testing.T) {
	svc := new(mockPortfolioService)
	r := setupRouter(svc)

	items := []Portfolio{
		{ID: 1, Name: "Growth"},
		{ID: 2, Name: "Income"},
	}
	svc.On("ListPortfolios", mock.Anything).Return(items, nil)

	req := httptest.NewRequest(http.MethodGet, "/portfolios", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "portfolios listed", resp.Message)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, 2, data["total"])

	list, ok := data["items"].([]any)
	require.True(t, ok)
	require.Len(t, list, 2)

	svc.AssertExpectations(t)
}

func TestPortfolioHandler_GetPortfolio_NotFound(t *testing.T) {
	svc := new(mockPortfolioService)
	r := setupRouter(svc)

	svc.On("GetPortfolioByID", mock.Anything, int64(99)).Return(Portfolio{}, ErrPortfolioNotFound)

	req := httptest.NewRequest(http.MethodGet, "/portfolios/99", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "portfolio not found", resp.Message)

	svc.AssertExpectations(t)
}

func TestPortfolioHandler_UpdatePortfolio_InvalidID(t *testing.T) {
	svc := new(mockPortfolioService)
	r := setupRouter(svc)

	req := httptest.NewRequest(http.MethodPut, "/portfolios/abc", strings.NewReader(`{"name":"Growth"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "invalid portfolio id", resp.Message)

	svc.AssertNotCalled(t, "UpdatePortfolio", mock.Anything, mock.Anything)
}

func TestPortfolioHandler_DeletePortfolio_NotFound(t *testing.T) {
	svc := new(mockPortfolioService)
	r := setupRouter(svc)

	svc.On("DeletePortfolio", mock.Anything, int64(42)).Return(ErrPortfolioNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/portfolios/42", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "portfolio not found", resp.Message)

	svc.AssertExpectations(t)
}
