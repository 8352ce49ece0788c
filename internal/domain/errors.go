package domain

import (
	"errors"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	// Ошибки движка заказов и наград. Все они ожидаемые и возвращаются вызывающему
	// как типизированный результат, не как фатальный сбой.
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrOutOfStock         = errors.New("out of stock")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrLimitReached       = errors.New("purchase limit reached")
	ErrContentUnavailable = errors.New("product content unavailable")
	ErrAlreadyCompleted   = errors.New("ad view already completed")
	ErrAlreadyJoined      = errors.New("channel already joined")
	ErrAlreadyEarned      = errors.New("link reward already earned")
	ErrInvalidToken       = errors.New("invalid or used token")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountBlocked     = errors.New("account is blocked")
)
