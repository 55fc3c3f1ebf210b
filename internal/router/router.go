// Package router sets up the gin engine, its middlewares and the
// route registration for all API endpoints.
package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vedor-app/backend/internal/controllers"
	"github.com/vedor-app/backend/internal/httputil"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Router sets up the gin engine with all middlewares and routes.
func Router() (*gin.Engine, error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(MetricsMiddleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	AttachRoutes(r.Group(""))

	log.Info().Str("version", version).Msg("Router")

	return r, nil
}

// AttachRoutes attaches the API routes to the router group that is
// passed in.
func AttachRoutes(group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	// API v1 setup
	v1 := group.Group("/v1")
	{
		v1.GET("", GetV1)
		v1.OPTIONS("", OptionsV1)
	}

	controllers.RegisterCategoryRoutes(v1.Group("/categories"))
	controllers.RegisterBudgetRoutes(v1.Group("/budgets"))
	controllers.RegisterTransactionRoutes(v1.Group("/transactions"))
	controllers.RegisterSettingsRoutes(v1.Group("/settings"))
	controllers.RegisterMatchRuleRoutes(v1.Group("/match-rules"))
	controllers.RegisterImportRoutes(v1.Group("/import"))
	controllers.RegisterMonthRoutes(v1.Group("/months"))
	controllers.RegisterExportRoutes(v1.Group("/export"), version)
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Version string `json:"version" example:"https://example.com/api/version"` // Endpoint returning the version of the backend
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"` // Prometheus metrics endpoint
	V1      string `json:"v1" example:"https://example.com/api/v1"`           // List endpoint for all v1 endpoints
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	url := httputil.RequestHost(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Version: url + "/version",
			Metrics: url + "/metrics",
			V1:      url + "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version endpoint
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the backend
}

// GetVersion returns the API version object
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsVersion returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`     // URL of category list endpoint
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets"`           // URL of budget list endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of transaction list endpoint
	Settings     string `json:"settings" example:"https://example.com/api/v1/settings"`         // URL of settings endpoint
	MatchRules   string `json:"matchRules" example:"https://example.com/api/v1/match-rules"`    // URL of match rule list endpoint
	Import       string `json:"import" example:"https://example.com/api/v1/import"`             // URL of import endpoint
	Months       string `json:"months" example:"https://example.com/api/v1/months"`             // URL of month report endpoint
	Export       string `json:"export" example:"https://example.com/api/v1/export"`             // URL of export endpoint
}

// GetV1 returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	V1Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := httputil.RequestHost(c) + "/v1"

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Categories:   url + "/categories",
			Budgets:      url + "/budgets",
			Transactions: url + "/transactions",
			Settings:     url + "/settings",
			MatchRules:   url + "/match-rules",
			Import:       url + "/import",
			Months:       url + "/months",
			Export:       url + "/export",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
