// Package main is the CLI entrypoint of the ASCVD risk service. It loads
// configuration, initializes logging and registers the serve subcommand.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ascvd/internal/config"
	"ascvd/pkg/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use: "ascvd",
	}

	// cobra exposes flags only during command execution, but the config is
	// needed before that to build the commands. The path flag is therefore
	// parsed twice: once here with the standard flag package, and once by
	// cobra so it shows up in help output.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
