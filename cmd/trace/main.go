package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tracehq/trace/internal/config"
	"github.com/tracehq/trace/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	dbConnString string
	verbose      bool
)

const version = "0.3.0"

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string (defaults to DB_* env vars)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "trace",
	Short: "Trace is a CLI tool for managing the Trace backend",
	Long:  `Trace is a CLI tool for running database migrations and maintenance tasks for the Trace project management backend.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Apply the database schema for all Trace tables, creating or altering them as needed.`,
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDatabase()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS citext").Error; err != nil {
			log.Fatalf("Failed to enable citext extension: %v", err)
		}

		models := []interface{}{
			&model.Profile{},
			&model.Organization{},
			&model.Membership{},
			&model.Invitation{},
			&model.Project{},
			&model.KanbanColumn{},
			&model.Sprint{},
			&model.Task{},
		}

		if err := db.AutoMigrate(models...); err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		fmt.Printf("Successfully migrated %d tables\n", len(models))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("trace version %s\n", version)
	},
}

func openDatabase() (*gorm.DB, error) {
	dsn := dbConnString
	if dsn == "" {
		dsn = config.Load().DSN()
	}

	logLevel := logger.Warn
	if verbose {
		logLevel = logger.Info
	}

	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
