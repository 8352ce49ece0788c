package telegram

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const WebhookRoute = "/telegram/webhook"

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token" //nolint:gosec

const handleTimeout = 25 * time.Second

// WebhookHandler принимает update от Telegram. Ответ всегда 200, иначе
// Telegram будет бесконечно ретраить проблемный update.
type WebhookHandler struct {
	dispatcher  *Dispatcher
	deduper     UpdateDeduper
	secretToken string
	log         *logrus.Logger
}

type WebhookHandlerArgs struct {
	Dispatcher  *Dispatcher
	Deduper     UpdateDeduper
	SecretToken string
	Logger      *logrus.Logger
}

func NewWebhookHandler(args WebhookHandlerArgs) *WebhookHandler {
	return &WebhookHandler{
		dispatcher:  args.Dispatcher,
		deduper:     args.Deduper,
		secretToken: args.SecretToken,
		log:         args.Logger,
	}
}

// Handle POST WebhookRoute.
func (h *WebhookHandler) Handle(c *gin.Context) {
	if h.secretToken != "" && c.GetHeader(secretTokenHeader) != h.secretToken {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	var update Update
	if bindErr := c.ShouldBindJSON(&update); bindErr != nil {
		h.log.WithError(bindErr).Warn("malformed telegram update")
		c.Status(http.StatusOK)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, handleTimeout)
	defer cancel()

	seen, dedupErr := h.deduper.Seen(reqCtx, update.UpdateID)
	if dedupErr != nil {
		// редис недоступен - лучше обработать update дважды, чем потерять
		h.log.WithError(dedupErr).Warn("update dedup unavailable")
	}
	if seen {
		c.Status(http.StatusOK)
		return
	}

	if err := h.dispatcher.HandleUpdate(reqCtx, &update); err != nil {
		h.log.WithError(err).WithField("update_id", update.UpdateID).
			Error("telegram update failed")
	}
	c.Status(http.StatusOK)
}
