package audit

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"ecotrack/audit-portal/audit-portal-backend/internal/branding"
	"ecotrack/audit-portal/audit-portal-backend/internal/history"
	"ecotrack/audit-portal/audit-portal-backend/internal/storage"
)

func newTestRouter(t *testing.T, analyzer Analyzer) (*gin.Engine, *history.Repository) {
	gin.SetMode(gin.TestMode)

	store, err := storage.NewFileStore(t.TempDir(), zap.NewNop())
	assert.NoError(t, err)

	historyRepo := history.NewRepository(store, zap.NewNop())
	brandingService := branding.NewService(store, zap.NewNop())
	handler := NewHandler(newTestService(analyzer), historyRepo, brandingService)

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"), func(*gin.Context) string { return "user-1" })
	return router, historyRepo
}

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestSubmitRoutePersistsToHistory(t *testing.T) {
	mockAnalyzer := new(MockAnalyzer)
	mockAnalyzer.On("Analyze", mock.Anything, mock.Anything, mock.Anything).
		Return(&RawReport{BusinessName: "Acme Bakery"}, nil)

	router, historyRepo := newTestRouter(t, mockAnalyzer)

	body, contentType := multipartUpload(t, "usage.csv", []byte("month,kwh\nJan,500"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/audits", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	// The route, not the assembly pipeline, owns persistence
	list, err := historyRepo.ListFor("user-1")
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Acme Bakery", list[0].BusinessName)
}

func TestSubmitRouteRejectedUploadLeavesHistoryEmpty(t *testing.T) {
	mockAnalyzer := new(MockAnalyzer)
	router, historyRepo := newTestRouter(t, mockAnalyzer)

	body, contentType := multipartUpload(t, "virus.exe", []byte{0x4d, 0x5a})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/audits", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	mockAnalyzer.AssertNotCalled(t, "Analyze")

	list, err := historyRepo.ListFor("user-1")
	assert.NoError(t, err)
	assert.Empty(t, list)
}
