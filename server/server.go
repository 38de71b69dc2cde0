package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"     // swagger embed files
	ginSwagger "github.com/swaggo/gin-swagger" // gin-swagger middleware
	"golang.org/x/sync/errgroup"

	"github.com/fieldworks/cropchat"
	"github.com/fieldworks/cropchat/server/docs"
)

// shutdownTimeout bounds how long in-flight requests may run once the
// server has been asked to stop.
const shutdownTimeout = time.Second * 30

// Server exposes the chatbot over HTTP. It serves the JSON API, the static
// chat page, and the swagger documentation from a single address.
type Server struct {
	bot       *cropchat.Bot
	addr      string
	staticDir string
	logger    *slog.Logger
	router    *gin.Engine
}

// New creates a Server answering with the given bot. The staticDir is
// served under /static with its index.html doubling as the landing page.
func New(bot *cropchat.Bot, addr, staticDir string, logger *slog.Logger) *Server {
	s := &Server{
		bot:       bot,
		addr:      addr,
		staticDir: staticDir,
		logger:    logger,
	}
	s.router = s.newRouter()
	return s
}

func (s *Server) newRouter() *gin.Engine {
	router := gin.New()
	router.Use(s.requestLogger(), s.recovery())

	// Any origin may call the API. The cors package refuses
	// AllowAllOrigins together with AllowCredentials, so allow-all is
	// spelled as a function.
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	docs.SwaggerInfo.BasePath = "/"

	api := router.Group("/api")
	{
		api.POST("/chat", s.chat)
		api.GET("/crops", s.crops)
	}
	router.GET("/health", s.health)

	router.Static("/static", s.staticDir)
	router.GET("/", s.index)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	return router
}

// Run serves HTTP on the configured address until ctx is canceled, then
// drains in-flight requests before returning.
func (s *Server) Run(ctx context.Context) error {
	logger := s.logger.With(
		slog.String("package", "server"),
		slog.String("function", "Run"),
	)

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("Serving HTTP", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		return nil
	})

	return group.Wait()
}

func (s *Server) index(c *gin.Context) {
	c.File(filepath.Join(s.staticDir, "index.html"))
}
