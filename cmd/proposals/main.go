package main

import (
	"net/http"

	"github.com/onlyyes/ProposalService/internal/config"
	"github.com/onlyyes/ProposalService/internal/database"
	"github.com/onlyyes/ProposalService/internal/handlers"
	"github.com/onlyyes/ProposalService/internal/payment"
	"github.com/onlyyes/ProposalService/internal/repositories"
	"github.com/onlyyes/ProposalService/internal/router"
	"github.com/onlyyes/ProposalService/internal/service"
	"github.com/onlyyes/ProposalService/internal/util"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Инициализация конфигурации
	cfg := config.NewConfig()

	// Жизненным циклом подключения к БД владеет main
	var repo *repositories.ProposalRepository
	if cfg.Mode == "database" {
		db, err := database.NewDB(cfg.DatabaseDSN, logger)
		if err != nil {
			logger.Fatal("Ошибка подключения к БД: ", zap.Error(err))
		}
		defer db.Close()

		if err := database.RunMigrations(cfg.DatabaseDSN, cfg.PgMigrationsPath, logger); err != nil {
			logger.Fatal("Ошибка применения миграций: ", zap.Error(err))
		}

		repo = repositories.NewProposalRepository(db)
	}

	// В режиме in-memory журнал на диск не пишем
	storePath := ""
	if cfg.Mode == "file" {
		storePath = cfg.FileStoragePath
	}
	store := util.NewProposalStore(storePath)

	gateway := payment.NewClient(payment.NewConfig(
		cfg.RazorpayKeyID,
		cfg.RazorpayKeySecret,
		cfg.RazorpayAPIUrl,
		cfg.ProposalPrice,
		cfg.ProposalCurrency,
	))

	svc := service.NewProposalService(repo, store, gateway, logger, cfg.Mode, cfg.ProposalPrice)

	handler := handlers.NewHandler(svc, cfg.BaseURL, logger)

	r := router.NewRouter(handler, logger, cfg.TrustedSubnet)

	logger.Info("Сервер запущен на ", zap.String("address", cfg.ServerAddress))

	var err error
	if cfg.EnableHTTPS {
		err = http.ListenAndServeTLS(cfg.ServerAddress, cfg.TLSCertPath, cfg.TLSKeyPath, r)
	} else {
		err = http.ListenAndServe(cfg.ServerAddress, r)
	}
	if err != nil {
		logger.Fatal("Ошибка при запуске сервера: ", zap.Error(err))
	}
}
