// Package httpapi wires the Gin engine: middleware, fallbacks, the health
// and metrics endpoints, optional Swagger UI, and the sentiment route.
//
// Middleware order:
//  1. OpenTelemetry server spans
//  2. RequestID
//  3. RedactingLogger
//  4. Recovery
//  5. Body size limit
//  6. Metrics
//  7. Gzip (optional)
//  8. CORS
//  9. Security headers
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/tbourn/go-sentiment-relay/internal/config"
	"github.com/tbourn/go-sentiment-relay/internal/http/handlers"
	"github.com/tbourn/go-sentiment-relay/internal/http/middleware"
	"github.com/tbourn/go-sentiment-relay/internal/textanalytics"

	// Registers the generated OpenAPI document with swag.
	_ "github.com/tbourn/go-sentiment-relay/docs"
)

var (
	corsMethods       = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsHeaders       = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsExposeHeaders = []string{"X-Request-ID", "Content-Length"}
)

// RegisterRoutes attaches middleware and endpoints to r. svc serves
// POST /api/analyze-sentiment; provider error details are exposed in
// responses only outside production.
func RegisterRoutes(r *gin.Engine, svc handlers.SentimentService, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{textanalytics.HeaderSubscriptionKey, "X-API-Key"},
	}))
	r.Use(middleware.Recovery())
	r.Use(limitBody(cfg.MaxBodyBytes))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.GzipEnabled {
		r.Use(ginGzip.Gzip(ginGzip.DefaultCompression, ginGzip.WithExcludedPaths([]string{"/metrics"})))
	}

	useCORS(r, cfg.CORS)

	// Analysis results are per-request and never cached.
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS: cfg.Security.EnableHSTS,
		HSTSMaxAge: cfg.Security.HSTSMaxAge,
		NoStore:    true,
	}))

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.MsgNotFound)
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.MsgMethodNotAllowed)
	})

	h := handlers.New(svc, !cfg.IsProduction())

	r.GET("/", h.Root)
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	api.POST("/analyze-sentiment", h.AnalyzeSentiment)
}

// useCORS installs gin-contrib/cors. An empty allowlist allows every origin
// and always answers with "Access-Control-Allow-Origin: *"; otherwise only
// listed origins are echoed back.
func useCORS(r *gin.Engine, cc config.CORSConfig) {
	if len(cc.AllowedOrigins) == 0 {
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     corsMethods,
			AllowHeaders:     corsHeaders,
			ExposeHeaders:    corsExposeHeaders,
			AllowCredentials: false, // must stay false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
		return
	}

	allowed := make(map[string]struct{}, len(cc.AllowedOrigins))
	for _, o := range cc.AllowedOrigins {
		allowed[o] = struct{}{}
	}
	r.Use(func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			if _, ok := allowed[origin]; ok {
				h := c.Writer.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
			}
		}
		c.Next()
	})
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cc.AllowedOrigins,
		AllowMethods:     corsMethods,
		AllowHeaders:     corsHeaders,
		ExposeHeaders:    corsExposeHeaders,
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
}

// limitBody caps request bodies at maxBytes; reads past the cap fail with
// *http.MaxBytesError. maxBytes <= 0 disables the cap.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
