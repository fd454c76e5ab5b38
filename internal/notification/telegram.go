package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier alerts the admin chats about entries waiting for review.
type TelegramNotifier struct {
	bot     *tgbotapi.BotAPI
	chatIDs []int64
	logger  logger.Logger
}

func NewTelegramNotifier(token string, chatIDs []int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, admin alerts disabled")
		return &TelegramNotifier{bot: nil, chatIDs: chatIDs, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatIDs: chatIDs, logger: logger}, nil
}

func (n *TelegramNotifier) AlertGuestAwaitingApproval(ctx context.Context, event *domain.Event, guest *domain.GuestList) {
	n.broadcast(ctx, awaitingApprovalText(event, guest))
}

// awaitingApprovalText escapes user-supplied values so they cannot break the
// Markdown markup.
func awaitingApprovalText(event *domain.Event, guest *domain.GuestList) string {
	esc := func(s string) string { return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s) }
	return fmt.Sprintf(
		"*Khách mời chờ duyệt*\n\n"+"Sự kiện: %s\n"+"Khách: %s (%s)\n"+"Thời gian: %s",
		esc(event.Title), esc(guest.GuestName), esc(guest.GuestPhone), formatEventTime(event.StartTime),
	)
}

func (n *TelegramNotifier) broadcast(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.LogAttrs(ctx, logger.DebugLevel, "admin alert skipped (bot disabled)", logger.String("text", text))
		return
	}

	for _, chatID := range n.chatIDs {
		if err := ctx.Err(); err != nil {
			n.logger.LogAttrs(ctx, logger.DebugLevel, "admin alert skipped (context cancelled)",
				logger.Int64("chat_id", chatID),
			)
			return
		}

		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = tgbotapi.ModeMarkdown

		if _, err := n.bot.Send(msg); err != nil {
			n.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to send telegram alert",
				logger.Int64("chat_id", chatID),
				logger.String("error", err.Error()),
			)
		}
	}
}
