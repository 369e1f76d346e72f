// Package api exposes the statement parsing engine over HTTP. It is a thin
// boundary: input validation, error mapping and response encoding live here,
// extraction logic does not.
package api

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/cardlens/statement-parser/internal/config"
	"github.com/cardlens/statement-parser/internal/extractor"
	"github.com/cardlens/statement-parser/internal/parser"
	"github.com/cardlens/statement-parser/internal/writer"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Handler holds the HTTP handlers for the API.
type Handler struct {
	cfg    *config.Config
	engine *parser.Engine
	log    zerolog.Logger
}

// NewApp builds the fiber application with middleware and routes mounted.
func NewApp(cfg *config.Config, engine *parser.Engine, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "statement-parser",
		// Explicit size checks below produce the 413; the body limit only
		// guards against unbounded multipart overhead.
		BodyLimit:             int(cfg.Upload.MaxBytes()) + (1 << 20),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.Server.AllowedOrigins, ","),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}))
	app.Use(accessLog(log))

	h := &Handler{cfg: cfg, engine: engine, log: log}
	h.Register(app)
	return app
}

// Register mounts the API routes.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/health", h.Health)
	app.Post("/api/parse", h.Parse)
}

// Health reports service status and the supported issuer set.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":           "ok",
		"version":          Version,
		"supportedIssuers": parser.SupportedIssuers(),
	})
}

// Parse accepts a multipart PDF upload in form field "file" and returns the
// parsed statement. Rejections: 400 missing/empty file, 415 wrong media
// type, 413 oversized upload, 422 unreadable document. Extraction gaps are
// never rejections; they surface as placeholder values in a 200 response.
func (h *Handler) Parse(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "no file provided; upload a PDF in form field 'file'")
	}
	if fileHeader.Size == 0 {
		return respondError(c, fiber.StatusBadRequest, "uploaded file is empty")
	}
	if fileHeader.Size > h.cfg.Upload.MaxBytes() {
		return respondError(c, fiber.StatusRequestEntityTooLarge,
			"uploaded file exceeds the size limit")
	}
	if !isPDFUpload(fileHeader.Filename, fileHeader.Header.Get(fiber.HeaderContentType)) {
		return respondError(c, fiber.StatusUnsupportedMediaType, "only PDF statements are supported")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "could not read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "could not read uploaded file")
	}

	pages, err := extractor.ExtractText(data)
	if err != nil {
		h.log.Warn().Err(err).Str("file", fileHeader.Filename).Msg("text extraction failed")
		return respondError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	result := h.engine.Parse(pages)

	if c.Query("format") == "csv" {
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		w := &writer.CSVWriter{IncludeSummary: true}
		return w.Write(c, result)
	}

	return c.JSON(result)
}

// isPDFUpload accepts a .pdf extension or an explicit PDF content type; the
// extension check matters because browsers often send octet-stream.
func isPDFUpload(filename, contentType string) bool {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return true
	}
	return strings.HasPrefix(strings.ToLower(contentType), "application/pdf")
}

func respondError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// accessLog emits one structured log line per request.
func accessLog(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
