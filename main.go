package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"rowdb/table"
)

// cli is deliberately permissive about the filename: it is declared
// optional so kong never emits its own usage error for a missing
// argument. The fatal-startup message for a missing filename is ours
// to produce, not kong's.
var cli struct {
	Filename string `arg:"" optional:"" help:"Database file to open."`
}

func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		// A logger that fails to build is not fatal to the database
		// itself; fall back to discarding.
		return zap.NewNop()
	}
	return logger
}

func main() {
	kong.Parse(&cli)

	if cli.Filename == "" {
		fmt.Println("Must supply a database filename.")
		os.Exit(1)
	}

	logger := newLogger()

	tbl, err := table.Open(cli.Filename)
	if err != nil {
		fmt.Printf("Could not open file %s: %v\n", cli.Filename, err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("opened database", zap.String("filename", cli.Filename))

	code := runREPL(tbl, logger)
	logger.Sync()
	os.Exit(code)
}
