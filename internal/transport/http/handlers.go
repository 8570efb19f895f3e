package http

import (
	"log/slog"
	nethttp "net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"cmicli/internal/config"
	apperrors "cmicli/internal/errors"
	"cmicli/internal/exporter"
	"cmicli/internal/extraction"
)

// Handler serves the dataset API: generated comparison documents plus
// an endpoint to convert a workbook on demand.
type Handler struct {
	paths     *config.Paths
	logger    *slog.Logger
	converter *extraction.Converter
	metrics   *Metrics
	validate  *validator.Validate
}

// NewHandler creates the dataset API handler.
func NewHandler(paths *config.Paths, logger *slog.Logger, metrics *Metrics) *Handler {
	return &Handler{
		paths:     paths,
		logger:    logger,
		converter: extraction.NewConverter(logger),
		metrics:   metrics,
		validate:  validator.New(),
	}
}

// DatasetInfo describes one generated dataset file.
type DatasetInfo struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// ListDatasets returns the generated dataset files.
func (h *Handler) ListDatasets(w nethttp.ResponseWriter, r *nethttp.Request) {
	entries, err := os.ReadDir(h.paths.DatasetsDir)
	if err != nil {
		render.Render(w, r, apperrors.NewErrorResponse(apperrors.ErrInternalServer))
		return
	}

	datasets := []DatasetInfo{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		datasets = append(datasets, DatasetInfo{
			Name:     entry.Name(),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	render.JSON(w, r, map[string]any{"datasets": datasets})
}

// GetDataset streams one generated dataset file.
func (h *Handler) GetDataset(w nethttp.ResponseWriter, r *nethttp.Request) {
	name := chi.URLParam(r, "name")
	if name != filepath.Base(name) || !strings.HasSuffix(name, ".json") {
		render.Render(w, r, apperrors.NewErrorResponse(apperrors.ErrInvalidRequest))
		return
	}

	path := h.paths.DatasetPath(name)
	if _, err := os.Stat(path); err != nil {
		render.Render(w, r, apperrors.NewErrorResponse(apperrors.NotFoundError(name)))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	nethttp.ServeFile(w, r, path)
}

// ConvertRequest asks for one workbook from the workbooks directory
// to be converted.
type ConvertRequest struct {
	Workbook string `json:"workbook" validate:"required"`
	Output   string `json:"output"`
}

// Bind implements render.Binder.
func (c *ConvertRequest) Bind(r *nethttp.Request) error {
	return nil
}

// Convert runs the market conversion pipeline for the requested
// workbook and writes the dataset.
func (h *Handler) Convert(w nethttp.ResponseWriter, r *nethttp.Request) {
	req := &ConvertRequest{}
	if err := render.Bind(r, req); err != nil {
		render.Render(w, r, apperrors.NewErrorResponse(apperrors.InvalidRequestWithError(err)))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		render.Render(w, r, apperrors.NewErrorResponse(apperrors.InvalidRequestWithError(err)))
		return
	}
	if req.Workbook != filepath.Base(req.Workbook) {
		render.Render(w, r, apperrors.NewErrorResponse(apperrors.ErrInvalidRequest))
		return
	}

	output := req.Output
	if output == "" {
		output = strings.TrimSuffix(req.Workbook, filepath.Ext(req.Workbook)) + ".json"
	}
	if output != filepath.Base(output) {
		render.Render(w, r, apperrors.NewErrorResponse(apperrors.ErrInvalidRequest))
		return
	}

	workbookPath := h.paths.WorkbookPath(req.Workbook)
	if _, err := os.Stat(workbookPath); err != nil {
		render.Render(w, r, apperrors.NewErrorResponse(apperrors.NotFoundError(req.Workbook)))
		return
	}

	start := time.Now()
	doc, err := h.converter.Convert(r.Context(), workbookPath)
	if err != nil {
		h.metrics.ConversionsTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(r.Context(), "conversion failed",
			slog.String("workbook", req.Workbook),
			slog.String("error", err.Error()))
		render.Render(w, r, apperrors.NewErrorResponse(apperrors.ConversionError(err)))
		return
	}

	datasetPath := h.paths.DatasetPath(output)
	if err := exporter.WriteJSON(datasetPath, doc); err != nil {
		h.metrics.ConversionsTotal.WithLabelValues("error").Inc()
		render.Render(w, r, apperrors.NewErrorResponse(apperrors.ConversionError(err)))
		return
	}

	h.metrics.ConversionsTotal.WithLabelValues("success").Inc()
	h.metrics.ConversionDuration.Observe(time.Since(start).Seconds())

	render.Status(r, nethttp.StatusCreated)
	render.JSON(w, r, map[string]any{
		"dataset":        output,
		"value_records":  len(doc.Data.Value.GeographySegmentMatrix),
		"volume_records": len(doc.Data.Volume.GeographySegmentMatrix),
	})
}

// Healthz reports liveness.
func (h *Handler) Healthz(w nethttp.ResponseWriter, r *nethttp.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}
