package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"landing_page_server/internal/generator"
	"landing_page_server/internal/metrics"
	"landing_page_server/internal/types"
	"landing_page_server/internal/utils"
)

// DownloadFilename is the attachment name used by the download endpoint.
const DownloadFilename = "landing-page.html"

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	logger          *slog.Logger
	metrics         *metrics.Recorder
	maxPromptLength int

	extract func(string) generator.Signals
	compose func(generator.Signals) (string, error)
}

// NewAPIHandler initializes a new API handler. A nil recorder disables
// metrics; maxPromptLength of 0 disables the length check.
func NewAPIHandler(logger *slog.Logger, recorder *metrics.Recorder, maxPromptLength int) *APIHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &APIHandler{
		logger:          logger,
		metrics:         recorder,
		maxPromptLength: maxPromptLength,
		extract:         generator.Extract,
		compose:         generator.Compose,
	}
}

// --- Structs for API Requests/Responses ---

type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

type GenerateResponse struct {
	HTML string `json:"html"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// --- API Handlers ---

// POST /api/generate
func (h *APIHandler) Generate(c *gin.Context) {
	file, ok := h.generate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, GenerateResponse{HTML: file.Content})
}

// POST /api/generate/download
func (h *APIHandler) Download(c *gin.Context) {
	file, ok := h.generate(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(file.Content))
}

// GET /health
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// generate validates the request and renders the page. When it returns
// false the error response has already been written.
func (h *APIHandler) generate(c *gin.Context) (types.GeneratedFile, bool) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.reject(c, http.StatusBadRequest, metrics.ReasonMissingPrompt, "Invalid request body")
		return types.GeneratedFile{}, false
	}
	if strings.TrimSpace(req.Prompt) == "" {
		h.reject(c, http.StatusBadRequest, metrics.ReasonMissingPrompt, "Prompt is required")
		return types.GeneratedFile{}, false
	}
	if h.maxPromptLength > 0 && utf8.RuneCountInString(req.Prompt) > h.maxPromptLength {
		h.reject(c, http.StatusBadRequest, metrics.ReasonTooLong, "Prompt is too long")
		return types.GeneratedFile{}, false
	}

	start := time.Now()
	signals := h.extract(req.Prompt)
	html, err := h.compose(signals)
	if err != nil {
		h.logger.Error("error generating landing page", "error", err, "request_id", requestID(c))
		h.reject(c, http.StatusInternalServerError, metrics.ReasonInternal, err.Error())
		return types.GeneratedFile{}, false
	}
	elapsed := time.Since(start)
	h.metrics.ObserveGeneration(string(signals.Scheme), signals.Sections.Names(), elapsed)

	h.logger.Info("generated landing page",
		"request_id", requestID(c),
		"product", signals.ProductName,
		"scheme", signals.Scheme,
		"sections", strings.Join(signals.Sections.Names(), ","),
		"bytes", len(html),
		"duration", elapsed,
	)
	return types.GeneratedFile{
		Filename: DownloadFilename,
		Type:     utils.DetermineFileType(DownloadFilename),
		Content:  html,
	}, true
}

func (h *APIHandler) reject(c *gin.Context, status int, reason, msg string) {
	h.metrics.IncRejected(reason)
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg})
}
