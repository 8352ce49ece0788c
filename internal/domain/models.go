package domain

import (
	"time"
)

// Account хранит баланс баллов юзера телеграма. Инвариант: Points == TotalEarned - TotalSpent,
// Points >= 0.
type Account struct {
	ID           int64
	CreatedAt    time.Time
	LastActivity time.Time
	TelegramID   int64
	Username     string
	FirstName    string
	LastName     string
	Points       int64
	TotalEarned  int64
	TotalSpent   int64
	ReferralCode string
	ReferredBy   *int64
	IsBlocked    bool
}

// LedgerEntry запись журнала движения баллов. После записи не изменяется и не удаляется.
type LedgerEntry struct {
	ID          int64
	CreatedAt   time.Time
	AccountID   int64
	Reason      LedgerReason
	Amount      int64
	Description string
	ReferenceID *int64
}

type Product struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Name          string
	Description   string
	Price         int64
	StockQuantity int64 // -1 = не ограничено
	MaxPerUser    int64
	ContentMode   ContentMode
	FileRef       string // статичный контент для ContentModeGeneral
	IsOffer       bool
	OfferPrice    *int64
	OfferEndsAt   *time.Time
	IsActive      bool
	SalesCount    int64

	// AvailableUnits заполняется только при выборке товара с остатками контента.
	AvailableUnits int64
}

// InventoryUnit одноразовая единица контента (код, ссылка) товара с ContentModeUnique.
type InventoryUnit struct {
	ID        int64
	CreatedAt time.Time
	ProductID int64
	Payload   string
	IsUsed    bool
	UsedBy    *int64
	UsedAt    *time.Time
}

type Order struct {
	ID          int64
	CreatedAt   time.Time
	AccountID   int64
	ProductID   int64
	ProductName string
	PricePaid   int64
	Payload     string
}

type Ad struct {
	ID           int64
	CreatedAt    time.Time
	Title        string
	Description  string
	URL          string
	PointsReward int64
	IsActive     bool
	ViewCount    int64
}

type AdView struct {
	ID           int64
	CreatedAt    time.Time
	CompletedAt  *time.Time
	AccountID    int64
	AdID         int64
	Completed    bool
	PointsEarned int64
}

// LinkAd рекламная ссылка, выдаваемая через сервис сокращения ссылок.
type LinkAd struct {
	ID             int64
	CreatedAt      time.Time
	Title          string
	Description    string
	DestinationURL string
	PointsReward   int64
	IsActive       bool
	ViewCount      int64
}

// LinkClick выдается на каждую попытку перехода. Жизненный цикл токена:
// unclicked -> clicked -> verified, переходы односторонние.
type LinkClick struct {
	ID           int64
	CreatedAt    time.Time
	VerifiedAt   *time.Time
	AccountID    int64
	LinkAdID     int64
	Token        string
	ShortenedURL string
	Verified     bool
	PointsEarned int64
}

type Channel struct {
	ID           int64
	CreatedAt    time.Time
	TelegramID   string
	Username     string
	Title        string
	PointsReward int64
	IsActive     bool
	JoinCount    int64
}

type ChannelJoin struct {
	ID           int64
	CreatedAt    time.Time
	AccountID    int64
	ChannelID    int64
	PointsEarned int64
}

type Referral struct {
	ID           int64
	CreatedAt    time.Time
	ReferrerID   int64
	ReferredID   int64
	PointsEarned int64
}

type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

type Stats struct {
	TotalAccounts    int64
	ActiveToday      int64
	ActiveProducts   int64
	TotalOrders      int64
	TotalRevenue     int64
	CompletedAdViews int64
}
