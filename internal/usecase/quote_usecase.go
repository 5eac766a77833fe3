package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/yourusername/telegram-price-bot/internal/domain/entity"
	"github.com/yourusername/telegram-price-bot/internal/domain/repository"
)

// Foydalanuvchiga ko'rinadigan qat'iy xabarlar
const (
	// RejectMessage list nomi yoki o'lchamlar aniqlanmaganda
	RejectMessage = "❌ Не удалось определить лист или размеры"
)

// QuoteUseCase narx so'rovlarini qayta ishlash uchun interface
type QuoteUseCase interface {
	// BuildQuote jadvalni o'qib, har bir o'lcham uchun narxni topadi.
	// Manba xatosi butun so'rovni to'xtatadi.
	BuildQuote(ctx context.Context, req entity.Request) (entity.Quote, error)

	// RenderQuote smetani foydalanuvchi ko'radigan matnga aylantiradi
	RenderQuote(q entity.Quote) string

	// Reply xabar matni uchun har doim aynan bitta javob qaytaradi
	Reply(ctx context.Context, text string) string
}

type quoteUseCase struct {
	source repository.PriceSource
}

// NewQuoteUseCase yangi quote use case yaratish
func NewQuoteUseCase(source repository.PriceSource) QuoteUseCase {
	return &quoteUseCase{source: source}
}

func (uc *quoteUseCase) BuildQuote(ctx context.Context, req entity.Request) (entity.Quote, error) {
	grid, err := uc.source.Grid(ctx, req.SheetName)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("лист %q: %w", req.SheetName, err)
	}

	quote := entity.Quote{
		SheetName:  req.SheetName,
		Items:      make([]entity.LineItem, 0, len(req.Sizes)),
		Multiplier: req.Multiplier,
	}

	for _, pair := range req.Sizes {
		item := entity.LineItem{WidthRaw: pair.WidthRaw, HeightRaw: pair.HeightRaw}

		width, wOK := NormalizeCM(pair.WidthRaw)
		height, hOK := NormalizeCM(pair.HeightRaw)
		if wOK && hOK {
			if price, found := Resolve(grid, Label(width), Label(height)); found {
				item.Price = price
				item.Found = true
				quote.Total += price
			}
		}
		quote.Items = append(quote.Items, item)
	}

	return quote, nil
}

func (uc *quoteUseCase) RenderQuote(q entity.Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📄 Лист: %s\n", q.SheetName)
	for _, item := range q.Items {
		if item.Found {
			fmt.Fprintf(&b, "• %sx%s → %.2f\n", item.WidthRaw, item.HeightRaw, item.Price)
		} else {
			fmt.Fprintf(&b, "• %sx%s → ❌ не найдено\n", item.WidthRaw, item.HeightRaw)
		}
	}
	fmt.Fprintf(&b, "\n💰 Общая стоимость: %.2f₽ (x%d)", q.GrandTotal(), q.Multiplier)
	return b.String()
}

func (uc *quoteUseCase) Reply(ctx context.Context, text string) string {
	req := ParseRequest(text)
	if !req.Valid() {
		return RejectMessage
	}

	quote, err := uc.BuildQuote(ctx, req)
	if err != nil {
		return fmt.Sprintf("❌ Ошибка: %s", err)
	}
	return uc.RenderQuote(quote)
}
