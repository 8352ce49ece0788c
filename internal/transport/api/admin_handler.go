package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/repository/repoargs"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AdminHandler struct {
	adminSvs   AdminServicer
	accountSvs AccountServicer
}

func NewAdminHandler(adminSvs AdminServicer, accountSvs AccountServicer) *AdminHandler {
	return &AdminHandler{
		adminSvs:   adminSvs,
		accountSvs: accountSvs,
	}
}

func (h *AdminHandler) bindJSON(c *gin.Context, params any) bool {
	if bindErr := c.ShouldBindJSON(params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
			return false
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return false
	}
	return true
}

type AdjustParams struct {
	TelegramID  int64  `binding:"required"               json:"telegram_id"`
	Amount      int64  `binding:"required"               json:"amount"`
	Description string `binding:"omitempty,max_bytes=500" json:"description"`
}

// Adjust POST RouteGroup + AdminGroup + AdminAdjustRoute. Ручная корректировка
// баланса, знак amount определяет направление.
func (h *AdminHandler) Adjust(c *gin.Context) {
	var params AdjustParams
	if !h.bindJSON(c, &params) {
		return
	}
	account, ok := resolveAccount(c, h.accountSvs, params.TelegramID)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.adminSvs.Adjust(reqCtx, account.ID, params.Amount, params.Description); err != nil {
		abortDomainErr(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

type BlockParams struct {
	Blocked bool `json:"blocked"`
}

// Block POST RouteGroup + AdminGroup + AdminBlockRoute.
func (h *AdminHandler) Block(c *gin.Context) {
	accountID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var params BlockParams
	if !h.bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.accountSvs.SetBlocked(reqCtx, accountID, params.Blocked); err != nil {
		abortDomainErr(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

type CreateProductParams struct {
	Name          string     `binding:"required,max_bytes=255" json:"name"`
	Description   string     `binding:"omitempty,max_bytes=2000" json:"description"`
	Price         int64      `binding:"required,gt=0"          json:"price"`
	StockQuantity int64      `binding:"gte=-1"                 json:"stock_quantity"`
	MaxPerUser    int64      `binding:"gte=0"                  json:"max_per_user"`
	ContentMode   string     `binding:"required,oneof=unique general" json:"content_mode"`
	FileRef       string     `binding:"omitempty,max_bytes=500" json:"file_ref"`
	IsOffer       bool       `json:"is_offer"`
	OfferPrice    *int64     `binding:"omitempty,gt=0"         json:"offer_price"`
	OfferEndsAt   *time.Time `json:"offer_ends_at"`
}

// CreateProduct POST RouteGroup + AdminGroup + AdminProductsRoute.
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var params CreateProductParams
	if !h.bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := h.adminSvs.AddProduct(reqCtx, repoargs.ProductCreate{
		Name:          params.Name,
		Description:   params.Description,
		Price:         params.Price,
		StockQuantity: params.StockQuantity,
		MaxPerUser:    params.MaxPerUser,
		ContentMode:   domain.ContentMode(params.ContentMode),
		FileRef:       params.FileRef,
		IsOffer:       params.IsOffer,
		OfferPrice:    params.OfferPrice,
		OfferEndsAt:   params.OfferEndsAt,
	})
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": productResponse(product)})
}

type UpdateProductParams struct {
	IsActive bool `json:"is_active"`
}

// UpdateProduct PATCH RouteGroup + AdminGroup + AdminProductRoute.
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	productID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var params UpdateProductParams
	if !h.bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.adminSvs.SetProductActive(reqCtx, productID, params.IsActive); err != nil {
		abortDomainErr(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

type AddInventoryParams struct {
	Payloads []string `binding:"required,min=1,max=1000,dive,required,max_bytes=2000" json:"payloads"`
}

// AddInventory POST RouteGroup + AdminGroup + AdminInventoryRoute. Пакетная
// загрузка единиц контента для unique товара.
func (h *AdminHandler) AddInventory(c *gin.Context) {
	productID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var params AddInventoryParams
	if !h.bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	inserted, err := h.adminSvs.AddInventory(reqCtx, productID, params.Payloads)
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"inserted": inserted})
}

type CreateAdParams struct {
	Title        string `binding:"required,max_bytes=255"  json:"title"`
	Description  string `binding:"omitempty,max_bytes=2000" json:"description"`
	URL          string `binding:"required,url"            json:"url"`
	PointsReward int64  `binding:"required,gt=0"           json:"points_reward"`
}

// CreateAd POST RouteGroup + AdminGroup + AdminAdsRoute.
func (h *AdminHandler) CreateAd(c *gin.Context) {
	var params CreateAdParams
	if !h.bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	ad, err := h.adminSvs.AddAd(reqCtx, repoargs.AdCreate{
		Title:        params.Title,
		Description:  params.Description,
		URL:          params.URL,
		PointsReward: params.PointsReward,
	})
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ad": AdResponseItem{
		ID:           ad.ID,
		Title:        ad.Title,
		Description:  ad.Description,
		URL:          ad.URL,
		PointsReward: ad.PointsReward,
	}})
}

// DeleteAd DELETE RouteGroup + AdminGroup + AdminAdRoute.
func (h *AdminHandler) DeleteAd(c *gin.Context) {
	adID, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.adminSvs.DeleteAd(reqCtx, adID); err != nil {
		abortDomainErr(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

type CreateLinkAdParams struct {
	Title          string `binding:"required,max_bytes=255"  json:"title"`
	Description    string `binding:"omitempty,max_bytes=2000" json:"description"`
	DestinationURL string `binding:"required,url"            json:"destination_url"`
	PointsReward   int64  `binding:"required,gt=0"           json:"points_reward"`
}

// CreateLinkAd POST RouteGroup + AdminGroup + AdminLinksRoute.
func (h *AdminHandler) CreateLinkAd(c *gin.Context) {
	var params CreateLinkAdParams
	if !h.bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	linkAd, err := h.adminSvs.AddLinkAd(reqCtx, repoargs.LinkAdCreate{
		Title:          params.Title,
		Description:    params.Description,
		DestinationURL: params.DestinationURL,
		PointsReward:   params.PointsReward,
	})
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"link": LinkAdResponseItem{
		ID:           linkAd.ID,
		Title:        linkAd.Title,
		Description:  linkAd.Description,
		PointsReward: linkAd.PointsReward,
	}})
}

type ImportOffersParams struct {
	Limit        int   `binding:"required,gt=0,lte=100" json:"limit"`
	PointsReward int64 `binding:"required,gt=0"         json:"points_reward"`
}

// ImportOffers POST RouteGroup + AdminGroup + AdminLinkImport. Импорт офферов
// из партнерской ленты в ссылочную рекламу.
func (h *AdminHandler) ImportOffers(c *gin.Context) {
	var params ImportOffersParams
	if !h.bindJSON(c, &params) {
		return
	}

	// импорт ходит во внешнюю сеть, стандартного таймаута мало
	reqCtx, cancel := context.WithTimeout(c, 30*time.Second) //nolint:mnd
	defer cancel()

	created, err := h.adminSvs.ImportOffers(reqCtx, params.Limit, params.PointsReward)
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"imported": created})
}

// DeleteLinkAd DELETE RouteGroup + AdminGroup + AdminLinkRoute.
func (h *AdminHandler) DeleteLinkAd(c *gin.Context) {
	linkAdID, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.adminSvs.DeleteLinkAd(reqCtx, linkAdID); err != nil {
		abortDomainErr(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

type CreateChannelParams struct {
	TelegramID   string `binding:"required,max_bytes=64"  json:"telegram_id"`
	Username     string `binding:"required,max_bytes=64"  json:"username"`
	Title        string `binding:"required,max_bytes=255" json:"title"`
	PointsReward int64  `binding:"required,gt=0"          json:"points_reward"`
}

// CreateChannel POST RouteGroup + AdminGroup + AdminChannelsRoute.
func (h *AdminHandler) CreateChannel(c *gin.Context) {
	var params CreateChannelParams
	if !h.bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	channel, err := h.adminSvs.AddChannel(reqCtx, repoargs.ChannelCreate{
		TelegramID:   params.TelegramID,
		Username:     params.Username,
		Title:        params.Title,
		PointsReward: params.PointsReward,
	})
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"channel": ChannelResponseItem{
		ID:           channel.ID,
		Username:     channel.Username,
		Title:        channel.Title,
		PointsReward: channel.PointsReward,
	}})
}

type UpdateChannelParams struct {
	PointsReward int64 `binding:"required,gt=0" json:"points_reward"`
	IsActive     bool  `json:"is_active"`
}

// UpdateChannel PATCH RouteGroup + AdminGroup + AdminChannelRoute.
func (h *AdminHandler) UpdateChannel(c *gin.Context) {
	channelID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var params UpdateChannelParams
	if !h.bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.adminSvs.UpdateChannel(reqCtx, channelID, params.PointsReward, params.IsActive); err != nil {
		abortDomainErr(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

// DeleteChannel DELETE RouteGroup + AdminGroup + AdminChannelRoute.
func (h *AdminHandler) DeleteChannel(c *gin.Context) {
	channelID, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.adminSvs.DeleteChannel(reqCtx, channelID); err != nil {
		abortDomainErr(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

// Settings GET RouteGroup + AdminGroup + AdminSettingsRoute.
func (h *AdminHandler) Settings(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	settings, err := h.adminSvs.Settings(reqCtx)
	if err != nil {
		abortDomainErr(c, err)
		return
	}

	response := make(map[string]string, len(settings))
	for _, setting := range settings {
		response[setting.Key] = setting.Value
	}
	c.JSON(http.StatusOK, gin.H{"settings": response})
}

type UpdateSettingParams struct {
	Key   string `binding:"required,max_bytes=64"  json:"key"`
	Value string `binding:"required,max_bytes=500" json:"value"`
}

// UpdateSetting PUT RouteGroup + AdminGroup + AdminSettingsRoute.
func (h *AdminHandler) UpdateSetting(c *gin.Context) {
	var params UpdateSettingParams
	if !h.bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.adminSvs.UpdateSetting(reqCtx, params.Key, params.Value); err != nil {
		abortDomainErr(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

// Stats GET RouteGroup + AdminGroup + AdminStatsRoute.
func (h *AdminHandler) Stats(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, err := h.adminSvs.Stats(reqCtx)
	if err != nil {
		abortDomainErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": gin.H{
		"total_accounts":     stats.TotalAccounts,
		"active_today":       stats.ActiveToday,
		"active_products":    stats.ActiveProducts,
		"total_orders":       stats.TotalOrders,
		"total_revenue":      stats.TotalRevenue,
		"completed_ad_views": stats.CompletedAdViews,
	}})
}
