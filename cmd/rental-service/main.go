package main

import (
	"fmt"
	"os"
	"time"

	"github.com/driveease/rental-service/internal/auth"
	"github.com/driveease/rental-service/internal/config"
	"github.com/driveease/rental-service/internal/db"
	"github.com/driveease/rental-service/internal/excel"
	httphandler "github.com/driveease/rental-service/internal/http"
	"github.com/driveease/rental-service/internal/http/middleware"
	"github.com/driveease/rental-service/internal/logger"
	"github.com/driveease/rental-service/internal/mail"
	"github.com/driveease/rental-service/internal/pdf"
	"github.com/driveease/rental-service/internal/repository"
	"github.com/driveease/rental-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	userRepo := repository.NewUserRepository(database)
	providerRepo := repository.NewProviderRepository(database)
	contractRepo := repository.NewContractRepository(database)
	bookingRepo := repository.NewBookingRepository(database)
	requestRepo := repository.NewRequestRepository(database)
	contactRepo := repository.NewContactRepository(database)

	accessTTL, err := time.ParseDuration(cfg.Auth.AccessTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid JWT_ACCESS_TTL")
	}
	tokenIssuer := auth.NewIssuer(cfg.Auth.AccessSecret, accessTTL)
	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	mailer := mail.New(cfg.Mail)
	receiptGenerator := pdf.NewGenerator()
	excelGenerator := excel.NewGenerator()

	authService := service.NewAuthService(userRepo, tokenIssuer)
	adminService := service.NewAdminService(providerRepo, contractRepo)
	bookingService := service.NewBookingService(
		contractRepo,
		bookingRepo,
		requestRepo,
		userRepo,
		mailer,
		receiptGenerator,
		log,
	)
	contactService := service.NewContactService(contactRepo)
	reportService := service.NewReportService(bookingRepo, contractRepo, excelGenerator)

	handler := httphandler.NewHandler(authService, adminService, bookingService, contactService, reportService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.HTTP.FrontendOrigin, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting rental service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
