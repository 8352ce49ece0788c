package domain

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks
type RepositoryName string

const (
	AccountRepoName   RepositoryName = "account"
	LedgerRepoName    RepositoryName = "ledger"
	ProductRepoName   RepositoryName = "product"
	InventoryRepoName RepositoryName = "inventory"
	OrderRepoName     RepositoryName = "order"
	AdRepoName        RepositoryName = "ad"
	LinkAdRepoName    RepositoryName = "link_ad"
	ChannelRepoName   RepositoryName = "channel"
	ReferralRepoName  RepositoryName = "referral"
	SettingsRepoName  RepositoryName = "settings"
	StatsRepoName     RepositoryName = "stats"
)

type AccountRepository interface {
	Create(ctx context.Context, args AccountCreate) (*Account, error)
	FindByID(ctx context.Context, id int64) (*Account, error)
	FindByTelegramID(ctx context.Context, telegramID int64) (*Account, error)
	FindByReferralCode(ctx context.Context, code string) (*Account, error)
	// AddPoints увеличивает баланс и total_earned на amount одним запросом.
	AddPoints(ctx context.Context, accountID int64, amount int64) error
	// SpendPoints уменьшает баланс и увеличивает total_spent. Условное обновление:
	// при нехватке баллов возвращает ErrInsufficientFunds, баланс не меняется.
	SpendPoints(ctx context.Context, accountID int64, amount int64) error
	TouchActivity(ctx context.Context, accountID int64) error
	SetBlocked(ctx context.Context, accountID int64, blocked bool) error
}

type LedgerRepository interface {
	Append(ctx context.Context, args LedgerAppend) (*LedgerEntry, error)
	GetByAccountID(ctx context.Context, accountID int64, limit uint) ([]LedgerEntry, error)
}

type ProductRepository interface {
	Create(ctx context.Context, args ProductCreate) (*Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	GetActive(ctx context.Context) ([]Product, error)
	// RegisterSale инкрементирует счетчик продаж и списывает одну единицу конечного
	// остатка. Возвращает ErrOutOfStock если конечный остаток исчерпан.
	RegisterSale(ctx context.Context, productID int64) error
	SetActive(ctx context.Context, id int64, active bool) error
}

type InventoryRepository interface {
	BulkAdd(ctx context.Context, productID int64, payloads []string) (int64, error)
	// Reserve атомарно помечает самую старую свободную единицу контента использованной.
	// Два конкурентных вызова никогда не получат одну и ту же единицу.
	Reserve(ctx context.Context, productID int64, accountID int64) (*InventoryUnit, error)
	CountAvailable(ctx context.Context, productID int64) (int64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, args OrderCreate) (*Order, error)
	CountByAccountProduct(ctx context.Context, accountID int64, productID int64) (int64, error)
	GetByAccountID(ctx context.Context, accountID int64) ([]Order, error)
}

type AdRepository interface {
	Create(ctx context.Context, args AdCreate) (*Ad, error)
	GetByID(ctx context.Context, id int64) (*Ad, error)
	GetActive(ctx context.Context) ([]Ad, error)
	RecordView(ctx context.Context, accountID int64, adID int64) error
	// CompletePendingView переводит последний незавершенный просмотр пары
	// (account, ad) в completed. Если такого просмотра нет - ErrAlreadyCompleted.
	CompletePendingView(ctx context.Context, accountID int64, adID int64, points int64) error
	IncrementViewCount(ctx context.Context, adID int64) error
	Delete(ctx context.Context, id int64) error
}

type LinkAdRepository interface {
	Create(ctx context.Context, args LinkAdCreate) (*LinkAd, error)
	GetByID(ctx context.Context, id int64) (*LinkAd, error)
	GetActive(ctx context.Context) ([]LinkAd, error)
	Delete(ctx context.Context, id int64) error
	CreateClick(ctx context.Context, args LinkClickCreate) (*LinkClick, error)
	FindClickByToken(ctx context.Context, token string) (*LinkClick, error)
	// HasVerifiedClick сообщает, начислялась ли уже награда паре (account, link ad).
	HasVerifiedClick(ctx context.Context, accountID int64, linkAdID int64) (bool, error)
	// VerifyClick помечает токен использованным. Несуществующий или уже
	// использованный токен - ErrInvalidToken.
	VerifyClick(ctx context.Context, token string, points int64) (*LinkClick, error)
	IncrementViewCount(ctx context.Context, linkAdID int64) error
}

type ChannelRepository interface {
	Create(ctx context.Context, args ChannelCreate) (*Channel, error)
	GetByID(ctx context.Context, id int64) (*Channel, error)
	GetActive(ctx context.Context) ([]Channel, error)
	GetUnjoined(ctx context.Context, accountID int64) ([]Channel, error)
	Update(ctx context.Context, id int64, pointsReward int64, isActive bool) error
	Delete(ctx context.Context, id int64) error
	// RecordJoin вставляет запись о вступлении. Дубликат пары (account, channel)
	// отсекается уникальным индексом на уровне БД - ErrAlreadyJoined.
	RecordJoin(ctx context.Context, accountID int64, channelID int64, points int64) error
	IncrementJoinCount(ctx context.Context, channelID int64) error
}

type ReferralRepository interface {
	Create(ctx context.Context, referrerID int64, referredID int64, points int64) (*Referral, error)
	StatsByReferrer(ctx context.Context, referrerID int64) (*ReferralStats, error)
}

type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	GetAll(ctx context.Context) ([]Setting, error)
	Set(ctx context.Context, key string, value string) error
}

type StatsRepository interface {
	Collect(ctx context.Context) (*Stats, error)
}
