package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yourusername/telegram-price-bot/internal/domain/entity"
)

// fakePriceSource testlar uchun jadval manbasi
type fakePriceSource struct {
	grid  [][]string
	err   error
	calls int
}

func (f *fakePriceSource) Grid(_ context.Context, _ string) ([][]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.grid, nil
}

func testGrid() [][]string {
	return [][]string{
		{"", "1,1", "0,6"},
		{"2,4", "10.50", "6.00"},
		{"0,8", "4.20", "2.10"},
	}
}

func TestReplyFullPipeline(t *testing.T) {
	source := &fakePriceSource{grid: testGrid()}
	uc := NewQuoteUseCase(source)

	reply := uc.Reply(context.Background(), "Ткань 105x233 х3")

	expected := "📄 Лист: Ткань\n" +
		"• 105x233 → 10.50\n" +
		"\n💰 Общая стоимость: 31.50₽ (x3)"
	if reply != expected {
		t.Errorf("kutilgan=%q, natija=%q", expected, reply)
	}
	if source.calls != 1 {
		t.Errorf("jadval 1 marta o'qilishi kerak, o'qildi=%d", source.calls)
	}
}

func TestReplyRejectWithoutLookup(t *testing.T) {
	source := &fakePriceSource{grid: testGrid()}
	uc := NewQuoteUseCase(source)

	for _, text := range []string{"просто текст", "10x20", "Ткань"} {
		reply := uc.Reply(context.Background(), text)
		if reply != RejectMessage {
			t.Errorf("Text=%q: kutilgan=%q, natija=%q", text, RejectMessage, reply)
		}
	}
	if source.calls != 0 {
		t.Errorf("rad etilgan so'rovlar jadval o'qimasligi kerak, o'qildi=%d", source.calls)
	}
}

func TestReplySourceFailure(t *testing.T) {
	source := &fakePriceSource{err: errors.New("лист не найден")}
	uc := NewQuoteUseCase(source)

	reply := uc.Reply(context.Background(), "Ткань 105x233")
	if !strings.HasPrefix(reply, "❌ Ошибка: ") {
		t.Errorf("xato xabari kutilgan edi, natija=%q", reply)
	}
	if !strings.Contains(reply, "лист не найден") {
		t.Errorf("xato tavsifi yo'q: %q", reply)
	}
}

func TestBuildQuoteNotFoundIsolation(t *testing.T) {
	source := &fakePriceSource{grid: testGrid()}
	uc := NewQuoteUseCase(source)

	req := entity.Request{
		SheetName: "Ткань",
		Sizes: []entity.SizePair{
			{WidthRaw: "105", HeightRaw: "233"}, // 1,1 x 2,4 -> 10.50
			{WidthRaw: "500", HeightRaw: "500"}, // jadvalda yo'q
			{WidthRaw: "55", HeightRaw: "75"},   // 0,6 x 0,8 -> 2.10
		},
		Multiplier: 1,
	}

	quote, err := uc.BuildQuote(context.Background(), req)
	if err != nil {
		t.Fatalf("kutilmagan xato: %v", err)
	}
	if len(quote.Items) != 3 {
		t.Fatalf("3 ta item kutilgan, natija=%d", len(quote.Items))
	}
	if !quote.Items[0].Found || quote.Items[1].Found || !quote.Items[2].Found {
		t.Errorf("Found flaglar noto'g'ri: %+v", quote.Items)
	}
	if quote.Total != 12.60 {
		t.Errorf("kutilgan total=12.60, natija=%v", quote.Total)
	}

	rendered := uc.RenderQuote(quote)
	if !strings.Contains(rendered, "• 500x500 → ❌ не найдено") {
		t.Errorf("topilmagan item belgilanishi kerak: %q", rendered)
	}
}

func TestBuildQuoteGrandTotal(t *testing.T) {
	source := &fakePriceSource{grid: testGrid()}
	uc := NewQuoteUseCase(source)

	req := entity.Request{
		SheetName:  "Ткань",
		Sizes:      []entity.SizePair{{WidthRaw: "105", HeightRaw: "233"}},
		Multiplier: 4,
	}
	quote, err := uc.BuildQuote(context.Background(), req)
	if err != nil {
		t.Fatalf("kutilmagan xato: %v", err)
	}
	if quote.GrandTotal() != 42.00 {
		t.Errorf("kutilgan=42.00, natija=%v", quote.GrandTotal())
	}
}

// Ko'paytiruvchisiz so'rovda default 1 ishlatiladi
func TestReplyDefaultMultiplier(t *testing.T) {
	source := &fakePriceSource{grid: testGrid()}
	uc := NewQuoteUseCase(source)

	reply := uc.Reply(context.Background(), "Ткань 105x233")
	if !strings.Contains(reply, "(x1)") {
		t.Errorf("default ko'paytiruvchi 1 bo'lishi kerak: %q", reply)
	}
	if !strings.Contains(reply, "10.50₽") {
		t.Errorf("jami 10.50 kutilgan: %q", reply)
	}
}
