// Package server exposes the computation boundary as a JSON HTTP API for
// interactive front-ends. Handlers bind a request, run the pure engine, and
// map engine errors to coded JSON errors; no state is kept between requests.
package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pricelab/pricelab/internal/analysis"
	"github.com/pricelab/pricelab/internal/config"
	"github.com/pricelab/pricelab/pkg/output"
	"github.com/pricelab/pricelab/pkg/pricing"
	"github.com/pricelab/pricelab/pkg/survey"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger  *zap.Logger
	version string
}

// NewRouter constructs the gin router serving the analysis API.
func NewRouter(logger *zap.Logger, version string) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, version: trimmedVersion}

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.Use(Recovery())

	v1 := router.Group("/api/v1")
	{
		v1.POST("/analyze", h.analyze)
		v1.POST("/survey/moe", h.surveyMoe)
		v1.POST("/survey/psm", h.surveyPSM)
		v1.POST("/config/export", h.configExport)
		v1.GET("/version", h.versionInfo)
	}

	return router
}

// analyze handles POST /api/v1/analyze
func (h *handler) analyze(c *gin.Context) {
	start := time.Now()

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	scenario := req.Scenario()
	conf := config.Configuration{Scenarios: []config.Scenario{*scenario}}
	conf.ApplyDefaults()
	warnings := conf.ValidateConfiguration()

	result, err := analysis.AnalyzeScenario(h.logger, &conf.Scenarios[0])
	if err != nil {
		status, code := classifyError(err)
		h.respondError(c, status, code, err.Error())
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("analysis computed",
		zap.String("op", "server.analyze"),
		zap.String("scenario", conf.Scenarios[0].Name),
		zap.Int("gridPoints", result.Series.Len()),
		zap.Duration("duration", elapsed),
	)

	c.JSON(http.StatusOK, AnalyzeResponse{
		Analysis: result,
		Warnings: warnings,
		CSV:      output.CsvString([]analysis.Analysis{result}),
		Duration: elapsed.String(),
	})
}

// surveyMoe handles POST /api/v1/survey/moe
func (h *handler) surveyMoe(c *gin.Context) {
	var req SurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := analysis.RunSurvey(req.SurveyConfig())
	if err != nil {
		status, code := classifyError(err)
		h.respondError(c, status, code, err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// surveyPSM handles POST /api/v1/survey/psm
func (h *handler) surveyPSM(c *gin.Context) {
	var req PSMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	pmc, pme, err := survey.DerivePMCPME(req.Points)
	if err != nil {
		status, code := classifyError(err)
		h.respondError(c, status, code, err.Error())
		return
	}

	c.JSON(http.StatusOK, PSMResponse{PMC: pmc, PME: pme})
}

// configExport handles POST /api/v1/config/export and echoes a scenario
// payload as canonical YAML for download.
func (h *handler) configExport(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	yamlBytes, err := yaml.Marshal(payload)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "INVALID_CONFIG", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"configYaml": string(yamlBytes)})
}

// versionInfo handles GET /api/v1/version
func (h *handler) versionInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": h.version})
}

func (h *handler) respondError(c *gin.Context, status int, code, message string) {
	h.logger.Error("request failed",
		zap.String("op", "server.respondError"),
		zap.String("path", c.FullPath()),
		zap.Int("status", status),
		zap.String("code", code),
		zap.String("error", message),
	)

	c.JSON(status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// classifyError maps engine error types to HTTP statuses and machine-readable
// codes the front-end can translate into corrective messages.
func classifyError(err error) (int, string) {
	var degenerate *pricing.DegenerateRangeError
	if errors.As(err, &degenerate) {
		return http.StatusBadRequest, "DEGENERATE_RANGE"
	}

	var elasticity *pricing.InvalidElasticityError
	if errors.As(err, &elasticity) {
		return http.StatusBadRequest, "INVALID_ELASTICITY"
	}

	var sample *survey.InvalidSampleError
	if errors.As(err, &sample) {
		return http.StatusBadRequest, "INVALID_SAMPLE"
	}

	var intersection *survey.NoIntersectionError
	if errors.As(err, &intersection) {
		return http.StatusBadRequest, "NO_INTERSECTION"
	}

	var empty *pricing.EmptySeriesError
	if errors.As(err, &empty) {
		return http.StatusBadRequest, "EMPTY_SERIES"
	}

	return http.StatusInternalServerError, "INTERNAL_ERROR"
}
