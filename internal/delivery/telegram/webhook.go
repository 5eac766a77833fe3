package telegram

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// webhookAck har bir inbound event uchun qat'iy javob tokeni
const webhookAck = "ok"

// Start registers the webhook with Telegram and runs the HTTP server.
// Returns only on server failure or context cancellation.
func (h *BotHandler) Start(ctx context.Context) error {
	h.workerPool.start(ctx)

	// секретный путь вебхука
	path := "/webhook/" + shortHash(h.bot.Token)
	public := strings.TrimRight(h.webhookURL, "/") + path

	wh, err := tgbotapi.NewWebhook(public)
	if err != nil {
		return err
	}
	wh.DropPendingUpdates = true
	if _, err := h.bot.Request(wh); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.HandleFunc(path, h.webhookHandler(ctx))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(webhookAck))
	})

	server := &http.Server{Addr: h.listenAddr, Handler: mux}
	go func() {
		<-ctx.Done()
		h.workerPool.shutdown()
		_ = server.Close()
	}()

	log.Printf("webhook listening on %s%s", h.listenAddr, path)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return ctx.Err()
}

// webhookHandler inbound eventni qabul qiladi; javob HAR DOIM "ok",
// qayta ishlash worker poolda davom etadi.
func (h *BotHandler) webhookHandler(ctx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var update tgbotapi.Update
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			log.Printf("webhook: update o'qilmadi: %v", err)
		} else {
			h.handleUpdate(ctx, &update)
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(webhookAck))
	}
}

func shortHash(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}
