package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahatanar/StudentSpace/internal/app/models"
	"github.com/ahatanar/StudentSpace/internal/app/models/dto"
	"github.com/ahatanar/StudentSpace/internal/pkg/apperrors"
)

// fakeHeatmapService returns canned responses per term.
type fakeHeatmapService struct {
	lastQuery dto.HeatmapQuery
	pingErr   error
}

func (f *fakeHeatmapService) BuildHeatmap(ctx context.Context, query dto.HeatmapQuery) (*dto.HeatmapResponse, error) {
	f.lastQuery = query
	if query.Term == "209901" {
		return nil, apperrors.NewDatasetNotFoundError("no dataset for term 209901")
	}
	count := 0
	return &dto.HeatmapResponse{
		Term:             query.Term,
		Campus:           "Oshawa",
		TotalSections:    0,
		HeatmapData:      map[string]map[string]int{"Monday": {"09:00": 0}},
		TimeSlots:        []string{"09:00"},
		Interval:         30,
		RawSectionsCount: &count,
	}, nil
}

func (f *fakeHeatmapService) ListTerms(ctx context.Context) ([]models.DatasetInfo, error) {
	return []models.DatasetInfo{{Term: "202601", SectionCount: 42}}, nil
}

func (f *fakeHeatmapService) Ping(ctx context.Context) error { return f.pingErr }

func newTestRouter(svc *fakeHeatmapService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewHeatmapController(svc)
	router.GET("/health", controller.Health)
	v1 := router.Group("/api/v1")
	v1.GET("/heatmap", controller.GetHeatmap)
	v1.GET("/heatmap/terms", controller.ListTerms)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestGetHeatmap(t *testing.T) {
	t.Run("returns the computed heatmap", func(t *testing.T) {
		svc := &fakeHeatmapService{}
		router := newTestRouter(svc)

		w, body := doRequest(t, router, "/api/v1/heatmap?term=202601&interval=15&include_raw=true")
		assert.Equal(t, http.StatusOK, w.Code)

		data := body["data"].(map[string]interface{})
		assert.Equal(t, "202601", data["term"])
		assert.Equal(t, "Oshawa", data["campus"])

		assert.Equal(t, "202601", svc.lastQuery.Term)
		assert.Equal(t, 15, svc.lastQuery.Interval)
		assert.True(t, svc.lastQuery.IncludeRaw)
	})

	t.Run("unknown term maps to 404 with the dataset code", func(t *testing.T) {
		router := newTestRouter(&fakeHeatmapService{})

		w, body := doRequest(t, router, "/api/v1/heatmap?term=209901")
		assert.Equal(t, http.StatusNotFound, w.Code)

		errBody := body["error"].(map[string]interface{})
		assert.Equal(t, string(dto.ErrorCodeDatasetNotFound), errBody["code"])
	})

	t.Run("interval above one day is rejected before the service runs", func(t *testing.T) {
		svc := &fakeHeatmapService{}
		router := newTestRouter(svc)

		w, body := doRequest(t, router, "/api/v1/heatmap?interval=5000")
		assert.Equal(t, http.StatusBadRequest, w.Code)

		errBody := body["error"].(map[string]interface{})
		assert.Equal(t, string(dto.ErrorCodeValidationFailed), errBody["code"])
		assert.Empty(t, svc.lastQuery.Term)
	})

	t.Run("non-numeric interval fails binding", func(t *testing.T) {
		router := newTestRouter(&fakeHeatmapService{})

		w, body := doRequest(t, router, "/api/v1/heatmap?interval=soon")
		assert.Equal(t, http.StatusBadRequest, w.Code)

		errBody := body["error"].(map[string]interface{})
		assert.Equal(t, string(dto.ErrorCodeValidationFailed), errBody["code"])
	})
}

func TestListTerms(t *testing.T) {
	router := newTestRouter(&fakeHeatmapService{})

	w, body := doRequest(t, router, "/api/v1/heatmap/terms")
	assert.Equal(t, http.StatusOK, w.Code)

	data := body["data"].(map[string]interface{})
	terms := data["terms"].([]interface{})
	require.Len(t, terms, 1)
	first := terms[0].(map[string]interface{})
	assert.Equal(t, "202601", first["term"])
	assert.Equal(t, float64(42), first["sectionCount"])
}

func TestHealth(t *testing.T) {
	t.Run("healthy when the source answers", func(t *testing.T) {
		router := newTestRouter(&fakeHeatmapService{})

		w, body := doRequest(t, router, "/health")
		assert.Equal(t, http.StatusOK, w.Code)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "healthy", data["status"])
	})

	t.Run("unavailable when the source is down", func(t *testing.T) {
		router := newTestRouter(&fakeHeatmapService{pingErr: apperrors.ErrDatasetUnavailable})

		w, body := doRequest(t, router, "/health")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		errBody := body["error"].(map[string]interface{})
		assert.Equal(t, string(dto.ErrorCodeExternalServiceError), errBody["code"])
	})
}
