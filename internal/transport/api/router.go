package api

import (
	"time"

	"github.com/fsdevblog/tg-store/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup = "/api"

	UserRegisterRoute  = "/user/register"
	UserBalanceRoute   = "/user/:telegramID/balance"
	UserHistoryRoute   = "/user/:telegramID/history"
	UserOrdersRoute    = "/user/:telegramID/orders"
	UserReferralsRoute = "/user/:telegramID/referrals"

	ProductsRoute = "/store/products"
	ProductRoute  = "/store/products/:id"
	PurchaseRoute = "/store/purchase"

	AdsRoute         = "/rewards/ads"
	AdViewRoute      = "/rewards/ads/:id/view"
	AdCompleteRoute  = "/rewards/ads/:id/complete"
	LinksRoute       = "/rewards/links"
	LinkClickRoute   = "/rewards/links/:id/click"
	LinkVerifyRoute  = "/rewards/links/verify"
	ChannelsRoute    = "/rewards/channels"
	ChannelJoinRoute = "/rewards/channels/:id/join"

	AdminGroup          = "/admin"
	AdminAdjustRoute    = "/adjust"
	AdminBlockRoute     = "/accounts/:id/block"
	AdminProductsRoute  = "/products"
	AdminProductRoute   = "/products/:id"
	AdminInventoryRoute = "/products/:id/inventory"
	AdminAdsRoute       = "/ads"
	AdminAdRoute        = "/ads/:id"
	AdminLinksRoute     = "/links"
	AdminLinkImport     = "/links/import"
	AdminLinkRoute      = "/links/:id"
	AdminChannelsRoute  = "/channels"
	AdminChannelRoute   = "/channels/:id"
	AdminSettingsRoute  = "/settings"
	AdminStatsRoute     = "/stats"
)

type RouterArgs struct {
	Logger         *logrus.Logger
	AccountService AccountServicer
	OrderService   OrderServicer
	LedgerService  LedgerServicer
	RewardService  RewardServicer
	CatalogService CatalogServicer
	AdminService   AdminServicer
	AdminJWTSecret []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	if err := registerValidators(); err != nil && args.Logger != nil {
		args.Logger.WithError(err).Warn("custom validators are not registered")
	}

	usersHandler := NewUsersHandler(args.AccountService, args.OrderService, args.LedgerService)
	storeHandler := NewStoreHandler(args.CatalogService, args.OrderService, args.AccountService)
	rewardsHandler := NewRewardsHandler(args.RewardService, args.CatalogService, args.AccountService)
	adminHandler := NewAdminHandler(args.AdminService, args.AccountService)

	api := r.Group(RouteGroup)

	api.POST(UserRegisterRoute, usersHandler.Register)
	api.GET(UserBalanceRoute, usersHandler.Balance)
	api.GET(UserHistoryRoute, usersHandler.History)
	api.GET(UserOrdersRoute, usersHandler.Orders)
	api.GET(UserReferralsRoute, usersHandler.Referrals)

	api.GET(ProductsRoute, storeHandler.Index)
	api.GET(ProductRoute, storeHandler.Show)
	api.POST(PurchaseRoute, storeHandler.Purchase)

	api.GET(AdsRoute, rewardsHandler.Ads)
	api.POST(AdViewRoute, rewardsHandler.StartAdView)
	api.POST(AdCompleteRoute, rewardsHandler.CompleteAdView)
	api.GET(LinksRoute, rewardsHandler.Links)
	api.POST(LinkClickRoute, rewardsHandler.ClickLink)
	api.POST(LinkVerifyRoute, rewardsHandler.VerifyLink)
	api.GET(ChannelsRoute, rewardsHandler.Channels)
	api.POST(ChannelJoinRoute, rewardsHandler.JoinChannel)

	// ниже все роуты группы требуют админского JWT.
	admin := api.Group(AdminGroup, middlewares.AdminRequired(args.AdminJWTSecret))
	admin.POST(AdminAdjustRoute, adminHandler.Adjust)
	admin.POST(AdminBlockRoute, adminHandler.Block)
	admin.POST(AdminProductsRoute, adminHandler.CreateProduct)
	admin.PATCH(AdminProductRoute, adminHandler.UpdateProduct)
	admin.POST(AdminInventoryRoute, adminHandler.AddInventory)
	admin.POST(AdminAdsRoute, adminHandler.CreateAd)
	admin.DELETE(AdminAdRoute, adminHandler.DeleteAd)
	admin.POST(AdminLinksRoute, adminHandler.CreateLinkAd)
	admin.POST(AdminLinkImport, adminHandler.ImportOffers)
	admin.DELETE(AdminLinkRoute, adminHandler.DeleteLinkAd)
	admin.POST(AdminChannelsRoute, adminHandler.CreateChannel)
	admin.PATCH(AdminChannelRoute, adminHandler.UpdateChannel)
	admin.DELETE(AdminChannelRoute, adminHandler.DeleteChannel)
	admin.GET(AdminSettingsRoute, adminHandler.Settings)
	admin.PUT(AdminSettingsRoute, adminHandler.UpdateSetting)
	admin.GET(AdminStatsRoute, adminHandler.Stats)

	return r
}
