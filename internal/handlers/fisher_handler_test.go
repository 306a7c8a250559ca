package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/GiulianoD/vports/internal/models"
	"github.com/GiulianoD/vports/internal/repository"
	"github.com/GiulianoD/vports/internal/services"
)

// MockFisherService is a mock implementation of FisherService for testing
type MockFisherService struct {
	mock.Mock
}

func (m *MockFisherService) Submit(ctx context.Context, in services.FisherInput) (*models.FisherProfile, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FisherProfile), args.Error(1)
}

func (m *MockFisherService) List(ctx context.Context, f repository.Filter) ([]models.FisherProfile, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FisherProfile), args.Error(1)
}

func (m *MockFisherService) GetByID(ctx context.Context, id int64) (*models.FisherProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FisherProfile), args.Error(1)
}

func (m *MockFisherService) Review(ctx context.Context, id int64, in services.ReviewInput) (*models.FisherProfile, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FisherProfile), args.Error(1)
}

func fisherRouter(service services.FisherService) *gin.Engine {
	router := gin.New()
	h := NewFisherHandler(service)
	router.POST("/api/pescadores", h.Submit)
	router.GET("/api/pescadores", h.List)
	router.GET("/api/pescadores/export", h.Export)
	router.GET("/api/pescadores/:id", h.GetByID)
	router.PATCH("/api/pescadores/:id/status", h.Review)
	return router
}

func TestFisherSubmitEndpoint_Created(t *testing.T) {
	mockService := new(MockFisherService)
	router := fisherRouter(mockService)

	stored := &models.FisherProfile{ID: 1, NomeCompleto: "Maria das Dores", Status: models.StatusPending}
	mockService.On("Submit", mock.Anything, mock.MatchedBy(func(in services.FisherInput) bool {
		return in.NomeCompleto == "Maria das Dores" &&
			in.Filiacoes.Sindicato != nil && *in.Filiacoes.Sindicato == "Sindipesca" &&
			in.Filiacoes.Colonia == nil
	})).Return(stored, nil)

	payload := `{
		"nome_completo": "Maria das Dores",
		"genero": "Feminino",
		"raca": "Parda",
		"idade": 42,
		"membros_familia": 4,
		"uf": "BA",
		"municipio": "Ilhéus",
		"local_pesca": "Baía",
		"artes": ["Tarrafa"],
		"filiacoes": {"sindicato": "Sindipesca", "associacao": null, "colonia": null}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/pescadores", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Cadastro de pescador(a) realizado com sucesso")
	mockService.AssertExpectations(t)
}

func TestFisherSubmitEndpoint_MalformedJSON(t *testing.T) {
	mockService := new(MockFisherService)
	router := fisherRouter(mockService)

	req := httptest.NewRequest(http.MethodPost, "/api/pescadores", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Submit")
}

func TestFisherSubmitEndpoint_OutOfRangeRejectedAtBinding(t *testing.T) {
	mockService := new(MockFisherService)
	router := fisherRouter(mockService)

	req := httptest.NewRequest(http.MethodPost, "/api/pescadores", strings.NewReader(`{"idade": 5}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "Idade")
	mockService.AssertNotCalled(t, "Submit")
}

func TestFisherSubmitEndpoint_RegistryRejection(t *testing.T) {
	mockService := new(MockFisherService)
	router := fisherRouter(mockService)

	mockService.On("Submit", mock.Anything, mock.Anything).
		Return(nil, services.ErrInvalidInput)

	// Binding passes; the município does not belong to the chosen UF, which
	// only the registry check in the service catches.
	payload := `{
		"nome_completo": "Maria das Dores",
		"genero": "Feminino",
		"raca": "Parda",
		"idade": 42,
		"membros_familia": 4,
		"uf": "ES",
		"municipio": "Belém",
		"local_pesca": "Baía",
		"artes": ["Tarrafa"],
		"filiacoes": {"sindicato": null, "associacao": null, "colonia": null}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/pescadores", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	mockService.AssertExpectations(t)
}

func TestFisherReviewEndpoint_NotFound(t *testing.T) {
	mockService := new(MockFisherService)
	router := fisherRouter(mockService)

	mockService.On("Review", mock.Anything, int64(7), mock.Anything).
		Return(nil, services.ErrFisherNotFound)

	payload := `{"status":"rejected","review_note":"dados incompletos"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/pescadores/7/status", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFisherExportEndpoint_JSON(t *testing.T) {
	mockService := new(MockFisherService)
	router := fisherRouter(mockService)

	mockService.On("List", mock.Anything, repository.Filter{}).Return([]models.FisherProfile{
		{ID: 1, NomeCompleto: "Maria"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/pescadores/export", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "pescadores-")
	// Raw array, not the success envelope
	assert.True(t, strings.HasPrefix(strings.TrimSpace(w.Body.String()), "["))
}
