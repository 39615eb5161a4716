package config

import (
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	config, err := ParseConfig("")
	if err != nil {
		t.Fatal("Failed to parse config:", err)
	}

	if config.Server.ListenAddress != "127.0.0.1:3000" {
		t.Errorf("Invalid listen address: %q", config.Server.ListenAddress)
	}
	if config.DataBase.Name != "studentsdb" || config.DataBase.Driver != DriverMongo {
		t.Errorf("Invalid database config: %+v", config.DataBase)
	}
	if config.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Invalid shutdown timeout: %v", config.Server.ShutdownTimeout)
	}
	if len(config.Cors.AllowOrigins) != 1 || config.Cors.AllowOrigins[0] != "*" {
		t.Errorf("Invalid cors origins: %v", config.Cors.AllowOrigins)
	}
}

func TestParseConfigDriver(t *testing.T) {
	t.Setenv("STUDENTS_DATABASE_DRIVER", "memory")
	config, err := ParseConfig("")
	if err != nil {
		t.Fatal("Failed to parse config:", err)
	}
	if config.DataBase.Driver != DriverMemory {
		t.Errorf("Invalid driver: %q", config.DataBase.Driver)
	}

	t.Setenv("STUDENTS_DATABASE_DRIVER", "postgres")
	if _, err := ParseConfig(""); err == nil {
		t.Fatal("Expected error for unknown driver")
	}
}
