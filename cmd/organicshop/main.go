package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sreeharigs/organicproduct/internal/service"
	"github.com/sreeharigs/organicproduct/internal/shell"
	"github.com/sreeharigs/organicproduct/pkg/config"
	"github.com/sreeharigs/organicproduct/pkg/database"
	"github.com/sreeharigs/organicproduct/pkg/logger"
	"github.com/sreeharigs/organicproduct/pkg/mailer"
)

var rootCmd = &cobra.Command{
	Use:   "organicshop",
	Short: "Certified organic produce marketplace",
	Long: `Organic Shop is a terminal marketplace for certified organic produce.

Sellers register with a Jaivik Bharat certificate and manage their product
listings through an expiry lifecycle. Buyers browse approved products, place
cash-on-delivery orders and leave feedback. Admins moderate listings and
manage the certificate registry.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func run() error {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.Env, cfg.AppName); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	log := logger.GetLogger()
	defer func() { _ = log.Sync() }()

	log.Info("Starting organic shop...", cfg.LogConfig()...)

	if err := database.InitDB(cfg); err != nil {
		log.Error("Failed to initialize database", zap.Error(err))
		return err
	}
	log.Info("Database connection established")

	db := database.GetDB()
	mail := mailer.New(cfg.SMTP)

	auth := service.NewAuthService(db, mail, []byte(cfg.JWT.SigningKey), cfg.JWT.ResetExpiry)
	buyers := service.NewBuyerService(db)
	sellers := service.NewSellerService(db)
	admins := service.NewAdminService(db)

	shell.New(auth, buyers, sellers, admins).Run()
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
