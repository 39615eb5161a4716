package web

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rpzteam/students/internal/config"
	"github.com/rpzteam/students/internal/database"
	lf "github.com/rpzteam/students/internal/logfield"
)

func openDataBase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (StudentsDataBase, error) {
	logger = logger.With(lf.Module("database"))
	logger.Info("Opening database", lf.Driver(cfg.DataBase.Driver))

	if cfg.DataBase.Driver == config.DriverMemory {
		return database.NewMemoryDataBase(), nil
	}

	db, err := database.OpenDataBase(ctx, logger, database.Options{
		URI:            cfg.DataBase.URI,
		Name:           cfg.DataBase.Name,
		Collection:     cfg.DataBase.Collection,
		ConnectTimeout: cfg.DataBase.ConnectTimeout,
		ConnectRetries: cfg.DataBase.ConnectRetries,
	})
	if err != nil {
		return nil, errors.Wrap(err, "Failed to open database")
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		logger.Warn("Failed to ensure indexes", zap.Error(err))
	}
	return db, nil
}

// Run serves the students API until ctx is cancelled.
func Run(ctx context.Context, config *config.Config, logger *zap.Logger) error {
	logger.Info("Parsed config", zap.Any("config", config))

	db, err := openDataBase(ctx, config, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}()

	s := newServer(config, logger, db)
	return errors.Wrap(s.run(ctx), "Server failed")
}
