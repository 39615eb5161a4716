package config

import (
	"time"

	"github.com/pkg/errors"

	"github.com/rpzteam/students/pkg/conf"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	Server struct {
		ListenAddress   string
		MaxBodySize     string
		ShutdownTimeout time.Duration
		RequestTimeout  time.Duration
	}

	Cors struct {
		AllowOrigins []string
	}

	DataBase struct {
		Driver         string
		URI            string
		Name           string
		Collection     string
		ConnectTimeout time.Duration
		ConnectRetries uint64
	}

	Log struct {
		Mode string
		File string
	}
}

var defaults = map[string]interface{}{
	"Server.ListenAddress":    "127.0.0.1:3000",
	"Server.MaxBodySize":      "1MiB",
	"Server.ShutdownTimeout":  10 * time.Second,
	"Server.RequestTimeout":   time.Duration(0),
	"Cors.AllowOrigins":       []string{"*"},
	"DataBase.Driver":         DriverMongo,
	"DataBase.URI":            "mongodb://localhost:27017",
	"DataBase.Name":           "studentsdb",
	"DataBase.Collection":     "students",
	"DataBase.ConnectTimeout": 10 * time.Second,
	"DataBase.ConnectRetries": 5,
	"Log.Mode":                "dev",
	"Log.File":                "",
}

func ParseConfig(path string) (*Config, error) {
	config := &Config{}
	err := conf.ParseConfig(config,
		conf.EnvPrefix("STUDENTS"),
		conf.ConfigFile(path),
		conf.Defaults(defaults),
	)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to parse config")
	}

	switch config.DataBase.Driver {
	case DriverMongo, DriverMemory:
	default:
		return nil, errors.Errorf("Unknown database driver %q", config.DataBase.Driver)
	}
	return config, nil
}
