package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const helpMessage = `Пришлите название листа и размеры в сантиметрах, например:

Ткань 105x233 х3

• название листа — как в таблице цен
• размеры — ШИРИНАxВЫСОТА, можно несколько
• х3 — количество (необязательно)
• /history — последние сообщения`

const historyLimit = 10

// handleUpdate update ni tegishli handlerga yo'naltiradi
func (h *BotHandler) handleUpdate(ctx context.Context, update *tgbotapi.Update) {
	// xabarsiz update (edit, callback, h.k.) — ack yetarli
	if update.Message == nil {
		return
	}
	h.handleMessage(ctx, update.Message)
}

// handleMessage xabarni qayta ishlash
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	text := message.Text

	h.logInbound(ctx, message)

	if message.IsCommand() {
		switch message.Command() {
		case "start", "help":
			h.sendMessage(chatID, helpMessage)
		case "history":
			h.sendMessage(chatID, h.historyReply(ctx, userIDOf(message)))
		default:
			h.sendMessage(chatID, "Неизвестная команда. /help — как пользоваться ботом.")
		}
		return
	}

	req := &quoteRequest{
		ctx:      ctx,
		chatID:   chatID,
		userID:   userIDOf(message),
		username: usernameOf(message),
		text:     text,
	}
	if !h.workerPool.submit(req) {
		log.Printf("⚠️ So'rov navbatga qo'shilmadi: chat=%d", chatID)
	}
}

// historyReply foydalanuvchining oxirgi xabarlarini jurnal'dan oladi
func (h *BotHandler) historyReply(ctx context.Context, userID int64) string {
	if h.quoteLog == nil {
		return renderHistory(nil)
	}
	entries, err := h.quoteLog.ListByUser(ctx, userID, historyLimit)
	if err != nil {
		log.Printf("quote log: history o'qilmadi: %v", err)
		return "❌ История недоступна."
	}
	return renderHistory(entries)
}

func renderHistory(entries []quoteLogEntry) string {
	if len(entries) == 0 {
		return "История пуста."
	}
	var b strings.Builder
	b.WriteString("🗂 Последние сообщения:\n")
	for _, entry := range entries {
		marker := "→"
		if entry.Direction == "out" {
			marker = "←"
		}
		fmt.Fprintf(&b, "%s %s %s\n", entry.CreatedAt.Format("02.01 15:04"), marker, truncateForLog(entry.Text, 80))
	}
	return strings.TrimRight(b.String(), "\n")
}

func userIDOf(message *tgbotapi.Message) int64 {
	if message.From == nil {
		return 0
	}
	return message.From.ID
}

func usernameOf(message *tgbotapi.Message) string {
	if message.From == nil {
		return ""
	}
	return message.From.UserName
}
