package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/service"
	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	catalogSvs CatalogServicer
	orderSvs   OrderServicer
	accountSvs AccountServicer
}

func NewStoreHandler(catalogSvs CatalogServicer, orderSvs OrderServicer, accountSvs AccountServicer) *StoreHandler {
	return &StoreHandler{
		catalogSvs: catalogSvs,
		orderSvs:   orderSvs,
		accountSvs: accountSvs,
	}
}

type ProductResponse struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Price          int64      `json:"price"`
	EffectivePrice int64      `json:"effective_price"`
	IsOffer        bool       `json:"is_offer"`
	OfferEndsAt    *time.Time `json:"offer_ends_at,omitempty"`
	StockQuantity  int64      `json:"stock_quantity"`
	MaxPerUser     int64      `json:"max_per_user"`
	AvailableUnits int64      `json:"available_units,omitempty"`
}

func productResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:             product.ID,
		Name:           product.Name,
		Description:    product.Description,
		Price:          product.Price,
		EffectivePrice: service.EffectivePrice(product, time.Now()),
		IsOffer:        product.IsOffer,
		OfferEndsAt:    product.OfferEndsAt,
		StockQuantity:  product.StockQuantity,
		MaxPerUser:     product.MaxPerUser,
		AvailableUnits: product.AvailableUnits,
	}
}

// Index GET RouteGroup + ProductsRoute. Витрина активных товаров.
func (h *StoreHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	products, err := h.catalogSvs.ActiveProducts(reqCtx)
	if err != nil {
		abortDomainErr(c, err)
		return
	}

	response := make([]ProductResponse, len(products))
	for i := range products {
		response[i] = productResponse(&products[i])
	}
	c.JSON(http.StatusOK, gin.H{"products": response})
}

// Show GET RouteGroup + ProductRoute.
func (h *StoreHandler) Show(c *gin.Context) {
	productID, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := h.catalogSvs.Product(reqCtx, productID)
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": productResponse(product)})
}

type PurchaseParams struct {
	TelegramID int64 `binding:"required" json:"telegram_id"`
	ProductID  int64 `binding:"required" json:"product_id"`
}

type ReceiptResponse struct {
	OrderID     int64  `json:"order_id"`
	ProductName string `json:"product_name"`
	PricePaid   int64  `json:"price_paid"`
	Payload     string `json:"payload"`
}

// Purchase POST RouteGroup + PurchaseRoute. Вся покупка проходит одной
// транзакцией на сервисном слое, частичных состояний в ответе не бывает.
func (h *StoreHandler) Purchase(c *gin.Context) {
	var params PurchaseParams
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

	receipt, err := h.orderSvs.Purchase(reqCtx, account.ID, params.ProductID)
	if err != nil {
		abortDomainErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"receipt": ReceiptResponse{
		OrderID:     receipt.OrderID,
		ProductName: receipt.ProductName,
		PricePaid:   receipt.PricePaid,
		Payload:     receipt.Payload,
	}})
}
