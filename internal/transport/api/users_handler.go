package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type UsersHandler struct {
	accountSvs AccountServicer
	orderSvs   OrderServicer
	ledgerSvs  LedgerServicer
}

func NewUsersHandler(accountSvs AccountServicer, orderSvs OrderServicer, ledgerSvs LedgerServicer) *UsersHandler {
	return &UsersHandler{
		accountSvs: accountSvs,
		orderSvs:   orderSvs,
		ledgerSvs:  ledgerSvs,
	}
}

type RegisterParams struct {
	TelegramID   int64  `binding:"required"                json:"telegram_id"`
	Username     string `binding:"omitempty,max_bytes=255" json:"username"`
	FirstName    string `binding:"omitempty,max_bytes=255" json:"first_name"`
	LastName     string `binding:"omitempty,max_bytes=255" json:"last_name"`
	ReferralCode string `binding:"omitempty,max=16"        json:"referral_code"`
}

type AccountResponse struct {
	TelegramID   int64  `json:"telegram_id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	Points       int64  `json:"points"`
	TotalEarned  int64  `json:"total_earned"`
	TotalSpent   int64  `json:"total_spent"`
	ReferralCode string `json:"referral_code"`
	IsBlocked    bool   `json:"is_blocked"`
}

func accountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		TelegramID:   account.TelegramID,
		Username:     account.Username,
		FirstName:    account.FirstName,
		Points:       account.Points,
		TotalEarned:  account.TotalEarned,
		TotalSpent:   account.TotalSpent,
		ReferralCode: account.ReferralCode,
		IsBlocked:    account.IsBlocked,
	}
}

// Register POST RouteGroup + UserRegisterRoute. Идемпотентная регистрация:
// повторный вызов для известного telegram id возвращает существующий аккаунт.
func (h *UsersHandler) Register(c *gin.Context) {
	var params RegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, created, err := h.accountSvs.RegisterContact(reqCtx, service.RegisterContactArgs{
		TelegramID:   params.TelegramID,
		Username:     params.Username,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		ReferralCode: params.ReferralCode,
	})
	if err != nil {
		abortDomainErr(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"account": accountResponse(account)})
}

// Balance GET RouteGroup + UserBalanceRoute.
func (h *UsersHandler) Balance(c *gin.Context) {
	telegramID, ok := paramInt64(c, "telegramID")
	if !ok {
		return
	}
	account, ok := resolveAccount(c, h.accountSvs, telegramID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": accountResponse(account)})
}

type HistoryResponseItem struct {
	CreatedAt   time.Time           `json:"created_at"`
	Reason      domain.LedgerReason `json:"reason"`
	Amount      int64               `json:"amount"`
	Description string              `json:"description"`
}

// History GET RouteGroup + UserHistoryRoute.
func (h *UsersHandler) History(c *gin.Context) {
	telegramID, ok := paramInt64(c, "telegramID")
	if !ok {
		return
	}
	account, ok := resolveAccount(c, h.accountSvs, telegramID)
	if !ok {
		return
	}

	limit := defaultHistoryLimit
	if raw, exists := c.GetQuery("limit"); exists {
		parsed, parseErr := parsePositiveInt(raw, maxHistoryLimit)
		if parseErr != nil {
			_ = c.AbortWithError(http.StatusBadRequest, parseErr).SetType(gin.ErrorTypeBind)
			return
		}
		limit = parsed
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entries, err := h.ledgerSvs.History(reqCtx, account.ID, uint(limit))
	if err != nil {
		abortDomainErr(c, err)
		return
	}

	response := make([]HistoryResponseItem, len(entries))
	for i, entry := range entries {
		response[i] = HistoryResponseItem{
			CreatedAt:   entry.CreatedAt,
			Reason:      entry.Reason,
			Amount:      entry.Amount,
			Description: entry.Description,
		}
	}
	c.JSON(http.StatusOK, gin.H{"history": response})
}

type OrderResponseItem struct {
	CreatedAt   time.Time `json:"created_at"`
	OrderID     int64     `json:"order_id"`
	ProductName string    `json:"product_name"`
	PricePaid   int64     `json:"price_paid"`
	Payload     string    `json:"payload"`
}

// Orders GET RouteGroup + UserOrdersRoute.
func (h *UsersHandler) Orders(c *gin.Context) {
	telegramID, ok := paramInt64(c, "telegramID")
	if !ok {
		return
	}
	account, ok := resolveAccount(c, h.accountSvs, telegramID)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := h.orderSvs.GetByAccountID(reqCtx, account.ID)
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	if len(orders) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]OrderResponseItem, len(orders))
	for i, order := range orders {
		response[i] = OrderResponseItem{
			CreatedAt:   order.CreatedAt,
			OrderID:     order.ID,
			ProductName: order.ProductName,
			PricePaid:   order.PricePaid,
			Payload:     order.Payload,
		}
	}
	c.JSON(http.StatusOK, gin.H{"orders": response})
}

// Referrals GET RouteGroup + UserReferralsRoute.
func (h *UsersHandler) Referrals(c *gin.Context) {
	telegramID, ok := paramInt64(c, "telegramID")
	if !ok {
		return
	}
	account, ok := resolveAccount(c, h.accountSvs, telegramID)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, err := h.accountSvs.ReferralStats(reqCtx, account.ID)
	if err != nil {
		abortDomainErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"referral_code": account.ReferralCode,
		"total":         stats.Total,
		"total_points":  stats.TotalPoints,
	})
}
