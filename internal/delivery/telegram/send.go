package telegram

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/telegram-price-bot/internal/domain/constants"
)

// sendMessage oddiy xabar yuborish (fire-and-forget)
func (h *BotHandler) sendMessage(chatID int64, text string) {
	if h.bot == nil {
		log.Printf("sendMessage skipped (bot is nil) chat=%d text=%q", chatID, truncateForLog(text, 120))
		return
	}

	// Bo'sh xabar tekshirish
	if strings.TrimSpace(text) == "" {
		log.Printf("⚠️ Bo'sh xabar yuborilmoqchi bo'ldi! ChatID: %d", chatID)
		return
	}

	for _, chunk := range splitIntoChunks(text, constants.MessageChunkLimit) {
		msg := tgbotapi.NewMessage(chatID, chunk)
		if _, err := h.bot.Send(msg); err != nil {
			log.Printf("Xabar yuborishda xatolik: %v", err)
			return
		}
	}
}

// splitIntoChunks matnni Telegram limitiga mos bo'laklarga bo'ladi
func splitIntoChunks(s string, limit int) []string {
	if limit <= 0 {
		return []string{s}
	}
	var chunks []string
	var current strings.Builder

	for _, r := range s {
		current.WriteRune(r)
		if current.Len() >= limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

func truncateForLog(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
