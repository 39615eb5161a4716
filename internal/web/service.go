package web

import (
	"go.uber.org/zap"

	"github.com/rpzteam/students/internal/config"
)

type webService struct {
	server *server
	config *config.Config
	log    *zap.Logger
}
