package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/docker/go-units"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rpzteam/students/internal/config"
	"github.com/rpzteam/students/internal/database"
	"github.com/rpzteam/students/internal/models"
	_ "github.com/rpzteam/students/internal/web/docs"
)

// StudentsDataBase is served by both database.DataBase and database.MemoryDataBase.
type StudentsDataBase interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error

	ListStudents(ctx context.Context, namePrefix string) ([]models.Student, error)
	CreateStudent(ctx context.Context, fields *models.StudentFields) (*models.Student, error)
	DeleteStudent(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
	UpdateStudent(ctx context.Context, criteria *database.Criteria, patch *models.StudentPatch) (*models.Student, error)
}

type server struct {
	config *config.Config
	logger *zap.Logger
	db     StudentsDataBase
}

func newServer(config *config.Config, logger *zap.Logger, db StudentsDataBase) *server {
	return &server{
		config: config,
		logger: logger,
		db:     db,
	}
}

func (s *server) router() (*gin.Engine, error) {
	maxBodySize, err := units.RAMInBytes(s.config.Server.MaxBodySize)
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid max body size %q", s.config.Server.MaxBodySize)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(requestID())
	r.Use(ginzap.Ginzap(s.logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(s.logger, true))
	r.Use(corsMiddleware(s.config))
	r.Use(limitBody(maxBodySize))
	r.Use(requestTimeout(s.config.Server.RequestTimeout))
	r.Use(handleErrors(s.logger))

	setupStudentsService(s, r)

	r.GET("/ping", s.ping)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r, nil
}

func (s *server) ping(c *gin.Context) {
	if err := s.db.Ping(c.Request.Context()); err != nil {
		s.logger.Warn("Database ping failed", zap.Error(err))
		c.String(http.StatusServiceUnavailable, "database unavailable")
		return
	}
	c.String(http.StatusOK, "pong "+fmt.Sprint(time.Now().Unix()))
}

// run serves until ctx is done, then drains in-flight requests.
func (s *server) run(ctx context.Context) error {
	r, err := s.router()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    s.config.Server.ListenAddress,
		Handler: r,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("Starting server", zap.String("bind_address", s.config.Server.ListenAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "Failed to listen")
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
		defer cancel()
		return errors.Wrap(srv.Shutdown(shutdownCtx), "Failed to shutdown server")
	})
	return g.Wait()
}
