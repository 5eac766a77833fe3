package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yourusername/telegram-price-bot/config"
	"github.com/yourusername/telegram-price-bot/internal/delivery/telegram"
	"github.com/yourusername/telegram-price-bot/internal/domain/repository"
	"github.com/yourusername/telegram-price-bot/internal/infrastructure/parser"
	"github.com/yourusername/telegram-price-bot/internal/infrastructure/sheets"
	"github.com/yourusername/telegram-price-bot/internal/usecase"
	"github.com/yourusername/telegram-price-bot/pkg/logger"
)

func main() {
	initDefaultTimezone()

	// Logger ni ishga tushirish
	logger.Init()
	logger.InfoLogger.Println("🚀 Ilova ishga tushmoqda...")

	// Konfiguratsiyani yuklash
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Konfiguratsiya yuklanmadi: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if cfg.AllowEmptySecrets && cfg.TelegramToken == "" {
		logger.InfoLogger.Println("TELEGRAM_BOT_TOKEN bo'sh. Bot vaqtincha ishga tushmaydi.")
		<-sigChan
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Dependencies ni yaratish (Dependency Injection)

	// 1. Narx jadvali manbasi
	priceSource, err := buildPriceSource(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Narx manbasi yaratilmadi: %v", err)
	}

	// 2. Use case
	quoteUseCase := usecase.NewQuoteUseCase(priceSource)
	logger.InfoLogger.Println("✅ Quote use case tayyor")

	// 3. Telegram webhook handler
	botHandler, err := telegram.NewBotHandler(
		cfg.TelegramToken,
		cfg.WebhookURL,
		net.JoinHostPort("0.0.0.0", cfg.Port),
		quoteUseCase,
	)
	if err != nil {
		log.Fatalf("❌ Bot handler yaratilmadi: %v", err)
	}
	logger.InfoLogger.Printf("✅ Telegram bot tayyor: @%s", botHandler.GetBotUsername())

	// Botni alohida goroutine da ishga tushirish
	go func() {
		if err := botHandler.Start(ctx); err != nil {
			logger.ErrorLogger.Printf("❌ Bot xatosi: %v", err)
		}
	}()

	logger.InfoLogger.Println("🤖 Bot ishlayapti. To'xtatish uchun Ctrl+C ni bosing.")

	// Signal kutish
	<-sigChan
	logger.InfoLogger.Println("⏳ To'xtatish signali qabul qilindi...")

	// Graceful shutdown
	cancel()
	logger.InfoLogger.Println("✅ Bot to'xtatildi.")
}

// buildPriceSource Google Sheets yoki lokal XLSX manbani tanlaydi
func buildPriceSource(ctx context.Context, cfg *config.Config) (repository.PriceSource, error) {
	if cfg.HasGoogleSource() {
		source, err := sheets.NewClient(ctx, []byte(cfg.GoogleCredsJSON), cfg.SpreadsheetID)
		if err != nil {
			return nil, err
		}
		logger.InfoLogger.Printf("✅ Google Sheets manbasi tayyor (spreadsheet=%s)", cfg.SpreadsheetID)
		return source, nil
	}
	if cfg.PriceXLSXPath != "" {
		logger.InfoLogger.Printf("✅ Lokal XLSX manbasi tayyor (%s)", cfg.PriceXLSXPath)
		return parser.NewExcelSource(cfg.PriceXLSXPath), nil
	}
	return nil, fmt.Errorf("narx manbasi sozlanmagan")
}

func initDefaultTimezone() {
	const tzName = "Europe/Moscow"
	if loc, err := time.LoadLocation(tzName); err == nil {
		time.Local = loc
		return
	}
	time.Local = time.FixedZone(tzName, 3*60*60)
}
