package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RewardsHandler struct {
	rewardSvs  RewardServicer
	catalogSvs CatalogServicer
	accountSvs AccountServicer
}

func NewRewardsHandler(rewardSvs RewardServicer, catalogSvs CatalogServicer, accountSvs AccountServicer) *RewardsHandler {
	return &RewardsHandler{
		rewardSvs:  rewardSvs,
		catalogSvs: catalogSvs,
		accountSvs: accountSvs,
	}
}

type AdResponseItem struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	PointsReward int64  `json:"points_reward"`
}

// Ads GET RouteGroup + AdsRoute.
func (h *RewardsHandler) Ads(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	ads, err := h.catalogSvs.ActiveAds(reqCtx)
	if err != nil {
		abortDomainErr(c, err)
		return
	}

	response := make([]AdResponseItem, len(ads))
	for i, ad := range ads {
		response[i] = AdResponseItem{
			ID:           ad.ID,
			Title:        ad.Title,
			Description:  ad.Description,
			URL:          ad.URL,
			PointsReward: ad.PointsReward,
		}
	}
	c.JSON(http.StatusOK, gin.H{"ads": response})
}

type TelegramIDParams struct {
	TelegramID int64 `binding:"required" form:"telegram_id" json:"telegram_id"`
}

// StartAdView POST RouteGroup + AdViewRoute. Баллы здесь не начисляются,
// только фиксируется незавершенный просмотр.
func (h *RewardsHandler) StartAdView(c *gin.Context) {
	adID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var params TelegramIDParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	account, ok := resolveAccount(c, h.accountSvs, params.TelegramID)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.rewardSvs.RecordAdView(reqCtx, account.ID, adID); err != nil {
		abortDomainErr(c, err)
		return
	}
	c.AbortWithStatus(http.StatusAccepted)
}

// CompleteAdView POST RouteGroup + AdCompleteRoute. Повтор для той же пары
// (аккаунт, реклама) вернет 409 без начисления.
func (h *RewardsHandler) CompleteAdView(c *gin.Context) {
	adID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var params TelegramIDParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	account, ok := resolveAccount(c, h.accountSvs, params.TelegramID)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	credited, err := h.rewardSvs.CompleteAdView(reqCtx, account.ID, adID)
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"points_earned": credited})
}

type LinkAdResponseItem struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	PointsReward int64  `json:"points_reward"`
}

// Links GET RouteGroup + LinksRoute.
func (h *RewardsHandler) Links(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	linkAds, err := h.catalogSvs.ActiveLinkAds(reqCtx)
	if err != nil {
		abortDomainErr(c, err)
		return
	}

	response := make([]LinkAdResponseItem, len(linkAds))
	for i, linkAd := range linkAds {
		response[i] = LinkAdResponseItem{
			ID:           linkAd.ID,
			Title:        linkAd.Title,
			Description:  linkAd.Description,
			PointsReward: linkAd.PointsReward,
		}
	}
	c.JSON(http.StatusOK, gin.H{"links": response})
}

// ClickLink POST RouteGroup + LinkClickRoute. Выдает одноразовый токен и
// сокращенную ссылку для перехода.
func (h *RewardsHandler) ClickLink(c *gin.Context) {
	linkAdID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var params TelegramIDParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	account, ok := resolveAccount(c, h.accountSvs, params.TelegramID)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	click, err := h.rewardSvs.GenerateLink(reqCtx, account.ID, linkAdID)
	if err != nil {
		abortDomainErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":         click.Token,
		"shortened_url": click.ShortenedURL,
	})
}

type LinkVerifyParams struct {
	Token string `binding:"required,max=64" json:"token"`
}

// VerifyLink POST RouteGroup + LinkVerifyRoute. Токен одноразовый: повторная
// верификация вернет 422.
func (h *RewardsHandler) VerifyLink(c *gin.Context) {
	var params LinkVerifyParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	credited, err := h.rewardSvs.VerifyLinkToken(reqCtx, params.Token)
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"points_earned": credited})
}

type ChannelResponseItem struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Title        string `json:"title"`
	PointsReward int64  `json:"points_reward"`
}

// Channels GET RouteGroup + ChannelsRoute. Отдает каналы, на которые аккаунт
// еще не подписывался.
func (h *RewardsHandler) Channels(c *gin.Context) {
	var params TelegramIDParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	account, ok := resolveAccount(c, h.accountSvs, params.TelegramID)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	channels, err := h.catalogSvs.UnjoinedChannels(reqCtx, account.ID)
	if err != nil {
		abortDomainErr(c, err)
		return
	}

	response := make([]ChannelResponseItem, len(channels))
	for i, channel := range channels {
		response[i] = ChannelResponseItem{
			ID:           channel.ID,
			Username:     channel.Username,
			Title:        channel.Title,
			PointsReward: channel.PointsReward,
		}
	}
	c.JSON(http.StatusOK, gin.H{"channels": response})
}

// JoinChannel POST RouteGroup + ChannelJoinRoute. Повторное вступление в тот же
// канал вернет 409 без начисления.
func (h *RewardsHandler) JoinChannel(c *gin.Context) {
	channelID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var params TelegramIDParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	account, ok := resolveAccount(c, h.accountSvs, params.TelegramID)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	credited, err := h.rewardSvs.RecordChannelJoin(reqCtx, account.ID, channelID)
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"points_earned": credited})
}
