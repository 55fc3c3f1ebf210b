package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/internal/repository"
	"github.com/vedor-app/backend/internal/router"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	dsn, ok := os.LookupEnv("DB_DSN")
	if !ok {
		// Create data directory for the default database location
		dataDir := filepath.Join(".", "data")
		if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
			log.Fatal().Msg(err.Error())
		}

		dsn = "data/backend.db?_pragma=foreign_keys(1)"
	}

	// Connect to the database. This also migrates all models.
	if err := models.Connect(dsn); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Seed example data on an empty database when requested
	if seed, ok := os.LookupEnv("SEED_DATA"); ok && seed == "true" {
		result, err := repository.SeedIfEmpty(models.DB)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		log.Info().
			Int("categories", result.Categories).
			Int("transactions", result.Transactions).
			Int("budgets", result.Budgets).
			Msg("Seed")
	}

	r, err := router.Router()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
