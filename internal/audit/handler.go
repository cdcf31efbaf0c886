package audit

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ecotrack/audit-portal/audit-portal-backend/internal/branding"
	"ecotrack/audit-portal/audit-portal-backend/internal/export"
	"ecotrack/audit-portal/audit-portal-backend/internal/history"
	"ecotrack/audit-portal/audit-portal-backend/internal/progress"
)

// maxUploadBytes bounds uploaded documents at 20 MB.
const maxUploadBytes = 20 << 20

type Handler struct {
	service  *Service
	history  *history.Repository
	branding *branding.Service
	ticker   *progress.Ticker
}

func NewHandler(service *Service, history *history.Repository, branding *branding.Service) *Handler {
	return &Handler{
		service:  service,
		history:  history,
		branding: branding,
		ticker:   progress.NewTicker(),
	}
}

// RegisterRoutes mounts the audit routes. The group is expected to carry
// session middleware that resolves the owner.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, ownerID func(*gin.Context) string) {
	audits := rg.Group("/audits")
	{
		audits.POST("", h.Submit(ownerID))
		audits.GET("", h.List(ownerID))
		audits.GET("/progress", h.Progress)
		audits.GET("/:id", h.Get(ownerID))
		audits.DELETE("/:id", h.Delete(ownerID))
		audits.GET("/:id/export", h.Export(ownerID))
	}
}

// Progress reports the state of the in-flight analysis, polled by the
// upload view while Submit runs.
func (h *Handler) Progress(c *gin.Context) {
	c.JSON(http.StatusOK, h.ticker.Snapshot())
}

func (h *Handler) Submit(ownerID func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}
		if file.Size > maxUploadBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds 20MB limit"})
			return
		}

		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		req := SubmitRequest{
			FileName: file.Filename,
			MimeType: file.Header.Get("Content-Type"),
			Data:     data,
			OwnerID:  ownerID(c),
		}
		if loc := parseLocation(c.PostForm("lat"), c.PostForm("lng")); loc != nil {
			req.Location = loc
		}

		h.ticker.Start()
		done := make(chan struct{})
		go func() {
			t := time.NewTicker(800 * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					h.ticker.Advance()
				}
			}
		}()

		result, err := h.service.Submit(c.Request.Context(), req)
		close(done)
		if err == nil {
			if appendErr := h.history.Append(result); appendErr != nil {
				err = appendErr
			}
		}
		if err != nil {
			h.ticker.Reset()
			var analysisErr *AnalysisError
			switch {
			case errors.Is(err, ErrUnsupportedFormat):
				c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
			case errors.As(err, &analysisErr):
				c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		h.ticker.Complete()
		c.JSON(http.StatusCreated, result)
	}
}

func (h *Handler) List(ownerID func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		audits, err := h.history.ListFor(ownerID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, audits)
	}
}

func (h *Handler) Get(ownerID func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := h.history.Get(ownerID(c), c.Param("id"))
		if err != nil {
			if errors.Is(err, history.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "audit not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *Handler) Delete(ownerID func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.history.Remove(ownerID(c), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func (h *Handler) Export(ownerID func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := h.history.Get(ownerID(c), c.Param("id"))
		if err != nil {
			if errors.Is(err, history.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "audit not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		format := c.DefaultQuery("format", "pdf")
		filename := fmt.Sprintf("audit-%s.%s", result.ID, format)
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

		switch format {
		case "csv":
			c.Header("Content-Type", "text/csv")
			if err := export.WriteCSV(c.Writer, result); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
		case "xlsx":
			exporter := export.NewExcelExporter()
			defer exporter.Close()
			if err := exporter.Render(result); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			if err := exporter.WriteTo(c.Writer); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
		case "pdf":
			brand, err := h.branding.Get()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			gen := export.NewPDFGenerator(brand)
			if err := gen.Render(result); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.Header("Content-Type", "application/pdf")
			if err := gen.WriteTo(c.Writer); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported export format: " + format})
		}
	}
}

func parseLocation(latStr, lngStr string) *Location {
	if latStr == "" || lngStr == "" {
		return nil
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil
	}
	return &Location{Lat: lat, Lng: lng}
}
