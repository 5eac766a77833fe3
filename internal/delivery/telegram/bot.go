package telegram

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/telegram-price-bot/internal/usecase"
)

// BotHandler Telegram webhook handler
type BotHandler struct {
	bot          *tgbotapi.BotAPI
	webhookURL   string
	listenAddr   string
	quoteUseCase usecase.QuoteUseCase
	quoteLog     QuoteLog

	// Performance optimizations
	workerPool *workerPool

	botStartedAt time.Time
}

// NewBotHandler yangi bot handler yaratish
func NewBotHandler(
	token string,
	webhookURL string,
	listenAddr string,
	quoteUseCase usecase.QuoteUseCase,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	quoteLog, err := newQuoteLogFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to init quote log: %w", err)
	}

	handler := &BotHandler{
		bot:          bot,
		webhookURL:   webhookURL,
		listenAddr:   listenAddr,
		quoteUseCase: quoteUseCase,
		quoteLog:     quoteLog,
		botStartedAt: time.Now(),
	}

	handler.workerPool = newWorkerPool(handler, defaultWorkerCount)

	return handler, nil
}

// GetBotUsername returns the bot's username from Telegram API state.
func (h *BotHandler) GetBotUsername() string {
	return h.bot.Self.UserName
}
