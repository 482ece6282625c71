package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"horse.fit/polyglot/internal/history"
	"horse.fit/polyglot/internal/langdetect"
	"horse.fit/polyglot/internal/translation"
)

type translateRequest struct {
	Provider string   `json:"provider"`
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Texts    []string `json:"texts"`
}

type translateResponse struct {
	Provider     string   `json:"provider"`
	Source       string   `json:"source"`
	Target       string   `json:"target"`
	Translations []string `json:"translations"`
	LatencyMS    int      `json:"latency_ms"`
}

type detectRequest struct {
	Texts  []string `json:"texts"`
	Engine string   `json:"engine"`
}

func (s *Server) handleProviders(c echo.Context) error {
	return success(c, map[string]any{
		"items":   translation.Names(),
		"default": translation.DefaultProvider(),
	})
}

func (s *Server) handleProviderLanguages(c echo.Context) error {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		return failValidation(c, map[string]string{"name": "is required"})
	}

	languages, err := translation.Languages(name)
	if err != nil {
		return failNotFound(c, err.Error())
	}
	return success(c, map[string]any{
		"provider":  strings.ToLower(name),
		"languages": languages,
	})
}

func (s *Server) handleTranslate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return failValidation(c, map[string]string{"body": "must be valid JSON"})
	}

	fieldErrors := map[string]string{}
	if strings.TrimSpace(req.Target) == "" {
		fieldErrors["target"] = "is required"
	}
	if len(req.Texts) == 0 {
		fieldErrors["texts"] = "at least one text is required"
	}
	for _, text := range req.Texts {
		if strings.TrimSpace(text) == "" {
			fieldErrors["texts"] = "texts must not be empty"
			break
		}
	}
	if len(fieldErrors) > 0 {
		return failValidation(c, fieldErrors)
	}

	translator, err := s.newTranslator(req.Provider, translation.Config{
		Source:  req.Source,
		Target:  req.Target,
		Timeout: s.opts.RequestTimeout,
		Proxies: s.opts.Proxies,
	})
	if err != nil {
		return s.vendorError(c, err)
	}

	started := time.Now()
	translations, err := translator.TranslateBatch(c.Request().Context(), req.Texts)
	if err != nil {
		return s.vendorError(c, err)
	}
	latencyMS := int(time.Since(started).Milliseconds())

	s.archiveTranslations(c, translator, req.Texts, translations, latencyMS)

	return success(c, translateResponse{
		Provider:     translator.Name(),
		Source:       translator.Source(),
		Target:       translator.Target(),
		Translations: translations,
		LatencyMS:    latencyMS,
	})
}

func (s *Server) handleDetect(c echo.Context) error {
	var req detectRequest
	if err := c.Bind(&req); err != nil {
		return failValidation(c, map[string]string{"body": "must be valid JSON"})
	}
	if len(req.Texts) == 0 {
		return failValidation(c, map[string]string{"texts": "at least one text is required"})
	}

	engine := strings.ToLower(strings.TrimSpace(req.Engine))
	switch engine {
	case "", "offline":
		return success(c, map[string]any{
			"engine":    "offline",
			"languages": langdetect.DetectBatchISO6391(req.Texts),
		})
	case "api":
		client, err := langdetect.NewClient(langdetect.Options{Timeout: s.opts.RequestTimeout})
		if err != nil {
			return s.vendorError(c, err)
		}
		codes, err := client.DetectBatch(c.Request().Context(), req.Texts)
		if err != nil {
			return s.vendorError(c, err)
		}
		return success(c, map[string]any{
			"engine":    "api",
			"languages": codes,
		})
	default:
		return failValidation(c, map[string]string{"engine": "must be offline or api"})
	}
}

func (s *Server) handleHistory(c echo.Context) error {
	if s.archive == nil {
		return failNotFound(c, "Translation history is not configured")
	}

	limit, err := parsePositiveInt(c.QueryParam("limit"), 50, 1, 500)
	if err != nil {
		return failValidation(c, map[string]string{"limit": err.Error()})
	}

	records, err := s.archive.Recent(c.Request().Context(), c.QueryParam("provider"), limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("query translation history failed")
		return internalError(c, "Failed to load translation history")
	}
	return success(c, map[string]any{
		"items": records,
	})
}

// archiveTranslations best-effort persists a finished request; failures are
// logged and never surface to the client.
func (s *Server) archiveTranslations(c echo.Context, translator translation.Translator, texts, translations []string, latencyMS int) {
	if s.archive == nil || len(texts) != len(translations) {
		return
	}
	for i := range texts {
		record := &history.Record{
			Provider:       translator.Name(),
			SourceLang:     translator.Source(),
			TargetLang:     translator.Target(),
			SourceText:     texts[i],
			TranslatedText: translations[i],
			LatencyMS:      &latencyMS,
		}
		if err := s.archive.Save(c.Request().Context(), record); err != nil {
			s.logger.Error().Err(err).Str("provider", translator.Name()).Msg("archive translation failed")
			return
		}
	}
}

// vendorError maps the adapter error taxonomy onto HTTP statuses: bad input
// and missing credentials are the caller's fault, vendor trouble is a bad
// gateway.
func (s *Server) vendorError(c echo.Context, err error) error {
	var cfgErr *translation.ConfigError
	if errors.As(err, &cfgErr) {
		return fail(c, http.StatusBadRequest, cfgErr.Error(), nil)
	}
	var notSupported *translation.NotSupportedError
	if errors.As(err, &notSupported) {
		return fail(c, http.StatusBadRequest, notSupported.Error(), nil)
	}
	var netErr *translation.NetworkError
	if errors.As(err, &netErr) {
		s.logger.Error().Err(err).Msg("vendor request failed")
		return fail(c, http.StatusBadGateway, netErr.Error(), nil)
	}
	var parseErr *translation.ParseError
	if errors.As(err, &parseErr) {
		s.logger.Error().Err(err).Msg("vendor response unreadable")
		return fail(c, http.StatusBadGateway, parseErr.Error(), nil)
	}
	if strings.Contains(err.Error(), "is not registered") {
		return fail(c, http.StatusBadRequest, err.Error(), nil)
	}
	s.logger.Error().Err(err).Msg("translation failed")
	return internalError(c, "Translation failed")
}

func parsePositiveInt(raw string, defaultValue, minValue, maxValue int) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("must be an integer")
	}
	if value < minValue || value > maxValue {
		return 0, fmt.Errorf("must be between %d and %d", minValue, maxValue)
	}
	return value, nil
}
