package main

import (
	"time"

	"github.com/franciscosanchezn/best-before-api/internal/database"
	"github.com/franciscosanchezn/best-before-api/internal/services"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample foods when the database is empty",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	conf, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := setupDatabase(conf)
	if err != nil {
		return err
	}
	defer database.Close(db)

	pool, err := database.NewExecutorPool(db, conf.Database())
	if err != nil {
		return err
	}

	service := services.NewFoodService(pool, log.StandardLogger())
	inserted, err := services.SeedFoods(cmd.Context(), service, services.SampleFoods(time.Now()))
	if err != nil {
		return err
	}

	if inserted == 0 {
		log.Info("Database already seeded with initial data")
	} else {
		log.WithField("foods", inserted).Info("Database seeded successfully")
	}
	return nil
}
