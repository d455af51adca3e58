package main

import (
	"os"

	"github.com/franciscosanchezn/best-before-api/internal/config"
	"github.com/franciscosanchezn/best-before-api/internal/database"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "best-before",
	Short: "Best Before API - tracks food items and their best-before dates",
	Long: `Best Before API stores food items with their best-before dates in a relational
database and serves them over HTTP, latest expiry first.

Running without a subcommand starts the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to a dotenv file to load before reading the environment")
}

// @title Best Before API
// @version 1.0
// @description Tracks food items and their best-before dates
// @host localhost:8080
// @BasePath /
func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("Command execution failed")
		os.Exit(1)
	}
}

// bootstrap runs the steps every subcommand shares: env file, logger and configuration
func bootstrap() (*config.Config, error) {
	loadDotenvFile()
	setUpLogger()

	conf, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log.SetLevel(conf.LogrusLevel())
	database.SetLogLevel(conf.LogrusLevel())
	return conf, nil
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(envFile); err != nil {
		log.WithField("file", envFile).Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "development")))
}

// loadConfig loads the application configuration from environment variables
func loadConfig() (*config.Config, error) {
	return config.LoadConfig()
}

// setupDatabase opens the shared connection pool and applies pending migrations
func setupDatabase(conf *config.Config) (*gorm.DB, error) {
	return database.Setup(conf.Database())
}
