package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rpzteam/students/pkg/client/students"
)

var log *zap.Logger

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func unwrap[T any](value T, err error) T {
	check(err)
	return value
}

var (
	endpoint string
	output   string

	rootCmd = &cobra.Command{
		Use:          "studentctl",
		Short:        "Students API client",
		SilenceUsage: true,
	}
)

func newClient() (*students.Client, error) {
	return students.NewClient(endpoint)
}

func defaultEndpoint() string {
	if env := os.Getenv("STUDENTS_ENDPOINT"); len(env) > 0 {
		return env
	}
	return "http://127.0.0.1:3000"
}

func initLogging() {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.ConsoleSeparator = " "
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.StampMilli)
	log = unwrap(config.Build())
}

func initCommands() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", defaultEndpoint(), "API base url")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", formatJSON, "Output format: json or yaml")

	rootCmd.AddCommand(makeListCommand())
	rootCmd.AddCommand(makeCreateCommand())
	rootCmd.AddCommand(makeDeleteCommand())
	rootCmd.AddCommand(makeUpdateCommand())
}

func init() {
	initLogging()
	initCommands()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Command failed: %s\n", err.Error())
		os.Exit(1)
	}
}
