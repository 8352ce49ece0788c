package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/gin-gonic/gin"
)

// abortDomainErr переводит ошибки доменного уровня в http статусы. Ошибки из
// списка публичные: их текст уходит клиенту как есть.
func abortDomainErr(c *gin.Context, err error) {
	var status int

	switch {
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrRecordNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrProductUnavailable):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	case errors.Is(err, domain.ErrOutOfStock),
		errors.Is(err, domain.ErrContentUnavailable),
		errors.Is(err, domain.ErrLimitReached),
		errors.Is(err, domain.ErrAlreadyCompleted),
		errors.Is(err, domain.ErrAlreadyJoined),
		errors.Is(err, domain.ErrAlreadyEarned),
		errors.Is(err, domain.ErrDuplicateKey):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrAccountBlocked):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidToken):
		status = http.StatusUnprocessableEntity
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	_ = c.AbortWithError(status, err).SetType(gin.ErrorTypePublic)
}

// parsePositiveInt парсит положительное число с верхней границей.
func parsePositiveInt(raw string, maxValue int) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	if value <= 0 || value > maxValue {
		return 0, errors.New("value out of range")
	}
	return value, nil
}

func paramInt64(c *gin.Context, name string) (int64, bool) {
	value, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
		return 0, false
	}
	return value, true
}

// resolveAccount находит аккаунт по telegram id из тела/пути запроса. При
// отсутствии аккаунта запрос завершается 404.
func resolveAccount(c *gin.Context, accounts AccountServicer, telegramID int64) (*domain.Account, bool) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := accounts.GetByTelegramID(reqCtx, telegramID)
	if err != nil {
		abortDomainErr(c, err)
		return nil, false
	}
	return account, true
}
