package domain

import "time"

// LedgerReason категория движения баллов.
type LedgerReason string

const (
	ReasonPurchase      LedgerReason = "purchase"
	ReasonRefund        LedgerReason = "refund"
	ReasonAdView        LedgerReason = "ad_view"
	ReasonLinkAd        LedgerReason = "link_ad"
	ReasonChannelJoin   LedgerReason = "channel_join"
	ReasonReferral      LedgerReason = "referral"
	ReasonReferralBonus LedgerReason = "referral_bonus"
	ReasonAdminAdjust   LedgerReason = "admin_adjust"
)

type ContentMode string

const (
	// ContentModeUnique на каждую продажу потребляется одна единица контента.
	ContentModeUnique ContentMode = "unique"
	// ContentModeGeneral всем покупателям выдается один и тот же контент товара.
	ContentModeGeneral ContentMode = "general"
)

// OrderReceipt результат успешной покупки.
type OrderReceipt struct {
	OrderID     int64
	ProductName string
	PricePaid   int64
	Payload     string
}

// Ключи таблицы настроек. Значения сидируются миграцией и редактируются админом.
const (
	SettingPointsPerVideoAd     = "points_per_video_ad"
	SettingPointsPerLinkAd      = "points_per_link_ad"
	SettingPointsPerReferral    = "points_per_referral"
	SettingPointsForNewReferral = "points_for_new_referral"
	SettingCPAGripAPIKey        = "cpagrip_api_key"
	SettingCPAGripUserID        = "cpagrip_user_id"
	SettingShortestAPIKey       = "shortest_api_key"
	SettingWelcomeMessage       = "welcome_message"
	SettingStoreActive          = "store_active"
)

type AccountCreate struct {
	TelegramID   int64
	Username     string
	FirstName    string
	LastName     string
	ReferralCode string
	ReferredBy   *int64
}

// LedgerAppend аргументы добавления записи в журнал. Amount передается со знаком:
// положительный для начислений, отрицательный для списаний.
type LedgerAppend struct {
	AccountID   int64
	Reason      LedgerReason
	Amount      int64
	Description string
	ReferenceID *int64
}

type ProductCreate struct {
	Name          string
	Description   string
	Price         int64
	StockQuantity int64
	MaxPerUser    int64
	ContentMode   ContentMode
	FileRef       string
	IsOffer       bool
	OfferPrice    *int64
	OfferEndsAt   *time.Time
}

type OrderCreate struct {
	AccountID   int64
	ProductID   int64
	ProductName string
	PricePaid   int64
	Payload     string
}

type AdCreate struct {
	Title        string
	Description  string
	URL          string
	PointsReward int64
}

type LinkAdCreate struct {
	Title          string
	Description    string
	DestinationURL string
	PointsReward   int64
}

type LinkClickCreate struct {
	AccountID    int64
	LinkAdID     int64
	Token        string
	ShortenedURL string
}

type ChannelCreate struct {
	TelegramID   string
	Username     string
	Title        string
	PointsReward int64
}

type ReferralStats struct {
	Total       int64
	TotalPoints int64
}
