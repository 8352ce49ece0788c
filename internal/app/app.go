package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/tg-store/internal/config"
	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/repository/pgrepo"
	"github.com/fsdevblog/tg-store/internal/repository/redisrepo"
	"github.com/fsdevblog/tg-store/internal/service"
	"github.com/fsdevblog/tg-store/internal/transport/adnet"
	"github.com/fsdevblog/tg-store/internal/transport/api"
	"github.com/fsdevblog/tg-store/internal/transport/telegram"
	"github.com/fsdevblog/tg-store/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const settingsCacheTTL = 5 * time.Minute

const updateDedupTTL = 24 * time.Hour

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	redisClient, redisErr := redisrepo.Connect(notifyCtx, a.Config.RedisAddr)
	if redisErr != nil {
		return fmt.Errorf("app run: %s", redisErr.Error())
	}
	defer func() {
		_ = redisClient.Close()
	}()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	var offerSource service.OfferSource
	if a.Config.CPAGripUserID != "" {
		offerSource = adnet.NewCPAGrip(a.Config.CPAGripUserID, a.Config.CPAGripAPIKey)
	}

	services, sErr := service.Factory(service.FactoryArgs{
		UnitOfWork:    unitOfWork,
		Shortener:     adnet.NewShortest(a.Config.ShortestAPIToken),
		OfferSource:   offerSource,
		SettingsCache: redisrepo.NewSettingsCache(redisClient, settingsCacheTTL),
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:         a.Logger,
		AccountService: services.AccountService,
		OrderService:   services.OrderService,
		LedgerService:  services.LedgerService,
		RewardService:  services.RewardService,
		CatalogService: services.CatalogService,
		AdminService:   services.AdminService,
		AdminJWTSecret: []byte(a.Config.AdminJWTSecret),
	})

	dispatcher := telegram.NewDispatcher(telegram.DispatcherArgs{
		Bot:            telegram.New(a.Config.BotToken),
		AccountService: services.AccountService,
		RewardService:  services.RewardService,
		CatalogService: services.CatalogService,
		Logger:         a.Logger,
	})
	webhookHandler := telegram.NewWebhookHandler(telegram.WebhookHandlerArgs{
		Dispatcher:  dispatcher,
		Deduper:     redisrepo.NewUpdateDeduper(redisClient, updateDedupTTL),
		SecretToken: a.Config.BotWebhookSecret,
		Logger:      a.Logger,
	})
	router.POST(telegram.WebhookRoute, webhookHandler.Handle)

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

//nolint:funlen
func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[domain.RepositoryName]uow.RepositoryFactory{
		domain.AccountRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAccountRepository(dbtx)
		},
		domain.LedgerRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewLedgerRepository(dbtx)
		},
		domain.ProductRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewProductRepository(dbtx)
		},
		domain.InventoryRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewInventoryRepository(dbtx)
		},
		domain.OrderRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOrderRepository(dbtx)
		},
		domain.AdRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAdRepository(dbtx)
		},
		domain.LinkAdRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewLinkAdRepository(dbtx)
		},
		domain.ChannelRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewChannelRepository(dbtx)
		},
		domain.ReferralRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewReferralRepository(dbtx)
		},
		domain.SettingsRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewSettingsRepository(dbtx)
		},
		domain.StatsRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewStatsRepository(dbtx)
		},
	}

	for name, factoryFn := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factoryFn); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
