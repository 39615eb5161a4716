package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/rpzteam/students/internal/config"
	"github.com/rpzteam/students/internal/web"
	zlog "github.com/rpzteam/students/pkg/log"
)

func run(configPath string) error {
	conf, err := config.ParseConfig(configPath)
	if err != nil {
		return err
	}

	logger := zlog.Init(conf.Log.Mode, conf.Log.File)
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return web.Run(ctx, conf, logger)
}

func main() {
	var configPath string
	cmd := &cobra.Command{
		Use:          "studentsd",
		Short:        "Students REST API server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Path to the config")

	if err := cmd.Execute(); err != nil {
		log.Fatalf("%+v\n", err)
	}
}
