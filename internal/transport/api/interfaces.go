package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/repository/repoargs"
	"github.com/fsdevblog/tg-store/internal/service"
)

// AccountServicer интерфейс исключительно для моков.
type AccountServicer interface {
	RegisterContact(ctx context.Context, args service.RegisterContactArgs) (*domain.Account, bool, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.Account, error)
	SetBlocked(ctx context.Context, accountID int64, blocked bool) error
	ReferralStats(ctx context.Context, accountID int64) (*repoargs.ReferralStats, error)
}

type OrderServicer interface {
	Purchase(ctx context.Context, accountID int64, productID int64) (*domain.OrderReceipt, error)
	GetByAccountID(ctx context.Context, accountID int64) ([]domain.Order, error)
}

type LedgerServicer interface {
	History(ctx context.Context, accountID int64, limit uint) ([]domain.LedgerEntry, error)
}

type RewardServicer interface {
	RecordAdView(ctx context.Context, accountID int64, adID int64) error
	CompleteAdView(ctx context.Context, accountID int64, adID int64) (int64, error)
	RecordChannelJoin(ctx context.Context, accountID int64, channelID int64) (int64, error)
	GenerateLink(ctx context.Context, accountID int64, linkAdID int64) (*domain.LinkClick, error)
	VerifyLinkToken(ctx context.Context, token string) (int64, error)
}

type CatalogServicer interface {
	ActiveProducts(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id int64) (*domain.Product, error)
	ActiveAds(ctx context.Context) ([]domain.Ad, error)
	ActiveLinkAds(ctx context.Context) ([]domain.LinkAd, error)
	UnjoinedChannels(ctx context.Context, accountID int64) ([]domain.Channel, error)
}

type AdminServicer interface {
	Adjust(ctx context.Context, accountID int64, amount int64, description string) error
	AddProduct(ctx context.Context, args repoargs.ProductCreate) (*domain.Product, error)
	SetProductActive(ctx context.Context, productID int64, active bool) error
	AddInventory(ctx context.Context, productID int64, payloads []string) (int64, error)
	AddAd(ctx context.Context, args repoargs.AdCreate) (*domain.Ad, error)
	DeleteAd(ctx context.Context, adID int64) error
	AddLinkAd(ctx context.Context, args repoargs.LinkAdCreate) (*domain.LinkAd, error)
	ImportOffers(ctx context.Context, limit int, pointsReward int64) (int64, error)
	DeleteLinkAd(ctx context.Context, linkAdID int64) error
	AddChannel(ctx context.Context, args repoargs.ChannelCreate) (*domain.Channel, error)
	UpdateChannel(ctx context.Context, channelID int64, pointsReward int64, isActive bool) error
	DeleteChannel(ctx context.Context, channelID int64) error
	UpdateSetting(ctx context.Context, key string, value string) error
	Settings(ctx context.Context) ([]domain.Setting, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}
