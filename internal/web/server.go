// Package web gin server
package web

import (
	"context"
	"net"
	"net/http"
	"time"

	errors "github.com/Laisky/errors/v2"
	gmw "github.com/Laisky/gin-middlewares/v7"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/Laisky/weather-widget/internal/lookup"
	"github.com/Laisky/weather-widget/library/log"
)

const shutdownTimeout = 5 * time.Second

// Options wires the HTTP surface to its collaborators.
type Options struct {
	// Provider serves every /weather lookup.
	Provider lookup.Provider
	// Language is used when a request carries no lang parameter.
	Language string
	// MCP is mounted at /mcp when set.
	MCP http.Handler
	// Metrics enables the gin-middlewares metric endpoints.
	Metrics bool
	Logger  logSDK.Logger
}

// NewRouter builds the gin engine serving the weather API.
func NewRouter(opt Options) (*gin.Engine, error) {
	if opt.Provider == nil {
		return nil, errors.New("weather provider is required")
	}
	if _, err := lookup.MessagesFor(opt.Language); err != nil {
		return nil, errors.Wrap(err, "default language")
	}
	if opt.Logger == nil {
		opt.Logger = log.Logger
	}

	server := gin.New()
	server.Use(
		gin.Recovery(),
		gmw.NewLoggerMiddleware(
			gmw.WithLoggerMwColored(),
			gmw.WithLevel(opt.Logger.Level().String()),
			gmw.WithLogger(opt.Logger.Named("gin")),
		),
	)

	if opt.Metrics {
		if err := gmw.EnableMetric(server); err != nil {
			return nil, errors.Wrap(err, "enable metric server")
		}
	}

	server.GET("/health", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})

	h := &weatherHandler{
		provider: opt.Provider,
		language: opt.Language,
	}
	server.GET("/weather", h.Get)

	if opt.MCP != nil {
		server.Any("/mcp", gmw.FromStd(opt.MCP.ServeHTTP))
	}

	return server, nil
}

// RunServer serves handler on addr until ctx is done, then shuts down gracefully.
func RunServer(ctx context.Context, addr string, handler http.Handler) error {
	logger := log.Logger.Named("http")
	eg, egctx := errgroup.WithContext(ctx)

	httpSrv := &http.Server{
		Addr:    addr,
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		logger.Info("listening on http", zap.String("addr", addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "listen and serve")
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "shutdown")
		}
		return nil
	})

	return eg.Wait()
}
