package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	cmdStart   = "/start"
	cmdHelp    = "/help"
	cmdBalance = "/balance"

	// CallbackCheckChannels данные инлайн кнопки "проверить подписки".
	CallbackCheckChannels = "check_channels"
)

const helpText = `Доступные команды:
/balance - баланс баллов
/help - эта справка

Отправьте код из рекламной ссылки сообщением, чтобы получить баллы.`

type Dispatcher struct {
	bot        BotAPI
	accountSvs AccountServicer
	rewardSvs  RewardServicer
	catalogSvs CatalogServicer
	log        *logrus.Logger
}

type DispatcherArgs struct {
	Bot            BotAPI
	AccountService AccountServicer
	RewardService  RewardServicer
	CatalogService CatalogServicer
	Logger         *logrus.Logger
}

func NewDispatcher(args DispatcherArgs) *Dispatcher {
	return &Dispatcher{
		bot:        args.Bot,
		accountSvs: args.AccountService,
		rewardSvs:  args.RewardService,
		catalogSvs: args.CatalogService,
		log:        args.Logger,
	}
}

// HandleUpdate разбирает update и выполняет команду. Все ответы пользователю
// уходят уже после того, как локальные изменения закоммичены.
func (d *Dispatcher) HandleUpdate(ctx context.Context, update *Update) error {
	switch {
	case update.Message != nil:
		return d.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		return d.handleCallback(ctx, update.CallbackQuery)
	}
	// незнакомые типы update молча пропускаем
	return nil
}

func (d *Dispatcher) handleMessage(ctx context.Context, msg *Message) error {
	if msg.From == nil || msg.From.IsBot {
		return nil
	}

	text := strings.TrimSpace(msg.Text)

	account, err := d.resolveAccount(ctx, msg.From, referralPayload(text))
	if err != nil {
		return err
	}
	if account.IsBlocked {
		return nil
	}

	switch {
	case strings.HasPrefix(text, cmdStart):
		welcome := fmt.Sprintf(
			"Добро пожаловать! Ваш баланс: <b>%d</b> баллов.\nВаш реферальный код: <code>%s</code>",
			account.Points, account.ReferralCode,
		)
		return d.bot.SendMessage(ctx, msg.Chat.ID, welcome)
	case text == cmdHelp:
		return d.bot.SendMessage(ctx, msg.Chat.ID, helpText)
	case text == cmdBalance:
		balance := fmt.Sprintf("Баланс: <b>%d</b> баллов", account.Points)
		return d.bot.SendMessage(ctx, msg.Chat.ID, balance)
	case text != "" && !strings.HasPrefix(text, "/"):
		return d.handleLinkToken(ctx, msg.Chat.ID, text)
	}
	return nil
}

// handleLinkToken любой текст без команды трактуется как код из рекламной ссылки.
func (d *Dispatcher) handleLinkToken(ctx context.Context, chatID int64, token string) error {
	points, err := d.rewardSvs.VerifyLinkToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			return d.bot.SendMessage(ctx, chatID, "Код не найден или уже использован.")
		}
		if errors.Is(err, domain.ErrAlreadyEarned) {
			return d.bot.SendMessage(ctx, chatID, "Награда за эту ссылку уже начислена.")
		}
		return err
	}
	return d.bot.SendMessage(ctx, chatID, fmt.Sprintf("Начислено <b>%d</b> баллов!", points))
}

func (d *Dispatcher) handleCallback(ctx context.Context, callback *CallbackQuery) error {
	if callback.From == nil || callback.Data != CallbackCheckChannels {
		return d.bot.AnswerCallbackQuery(ctx, callback.ID, "")
	}

	account, err := d.resolveAccount(ctx, callback.From, "")
	if err != nil {
		return err
	}
	if account.IsBlocked {
		return d.bot.AnswerCallbackQuery(ctx, callback.ID, "")
	}

	earned, joined, checkErr := d.checkChannels(ctx, account)
	if checkErr != nil {
		return checkErr
	}

	answer := "Новых подписок не найдено."
	if joined > 0 {
		answer = fmt.Sprintf("Подписки засчитаны: %d. Начислено %d баллов.", joined, earned)
	}
	return d.bot.AnswerCallbackQuery(ctx, callback.ID, answer)
}

// checkChannels сверяет членство в каждом незасчитанном канале через
// getChatMember и начисляет награду за подтвержденные подписки.
func (d *Dispatcher) checkChannels(ctx context.Context, account *domain.Account) (int64, int, error) {
	channels, err := d.catalogSvs.UnjoinedChannels(ctx, account.ID)
	if err != nil {
		return 0, 0, err
	}

	var earned int64
	var joined int
	for i := range channels {
		member, memberErr := d.bot.GetChatMember(ctx, channels[i].TelegramID, account.TelegramID)
		if memberErr != nil {
			// недоступность одного канала не должна блокировать остальные
			d.log.WithError(memberErr).WithField("channel", channels[i].Username).
				Warn("chat member check failed")
			continue
		}
		if !isJoined(member.Status) {
			continue
		}

		points, joinErr := d.rewardSvs.RecordChannelJoin(ctx, account.ID, channels[i].ID)
		if joinErr != nil {
			if errors.Is(joinErr, domain.ErrAlreadyJoined) {
				continue
			}
			return 0, 0, joinErr
		}
		earned += points
		joined++
	}
	return earned, joined, nil
}

func (d *Dispatcher) resolveAccount(ctx context.Context, from *User, referralCode string) (*domain.Account, error) {
	account, _, err := d.accountSvs.RegisterContact(ctx, service.RegisterContactArgs{
		TelegramID:   from.ID,
		Username:     from.Username,
		FirstName:    from.FirstName,
		LastName:     from.LastName,
		ReferralCode: referralCode,
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

func isJoined(status string) bool {
	switch status {
	case MemberStatusCreator, MemberStatusAdministrator, MemberStatusMember:
		return true
	}
	return false
}

// referralPayload вытаскивает реферальный код из "/start <код>".
func referralPayload(text string) string {
	if !strings.HasPrefix(text, cmdStart) {
		return ""
	}
	parts := strings.Fields(text)
	if len(parts) < 2 { //nolint:mnd
		return ""
	}
	return parts[1]
}
