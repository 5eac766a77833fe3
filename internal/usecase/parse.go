package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yourusername/telegram-price-bot/internal/domain/constants"
	"github.com/yourusername/telegram-price-bot/internal/domain/entity"
)

// Separator between the two dimensions: latin x, cyrillic х or *.
var sizePairRegex = regexp.MustCompile(`(?i)(\d{2,3})\s*[xх*]\s*(\d{2,3})`)

// Sheet name is everything before the first size pattern.
var sheetNameRegex = regexp.MustCompile(`(?i)^(.+?)\s*\d{2,3}[xх*]`)

// Quantity multiplier: cyrillic х followed by digits ("х3", "х 10").
// This scan is independent of size extraction and may re-match digits
// already consumed as a size pair (see TestExtractMultiplierOverlapsSizePair).
var multiplierRegex = regexp.MustCompile(`(?i)х\s*(\d+)`)

// ExtractSheetName matndan list nomini ajratadi; topilmasa bo'sh satr
func ExtractSheetName(text string) string {
	match := sheetNameRegex.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

// ExtractSizes matndagi barcha o'lcham juftliklarini tartib bilan qaytaradi
func ExtractSizes(text string) []entity.SizePair {
	matches := sizePairRegex.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	pairs := make([]entity.SizePair, 0, len(matches))
	for _, m := range matches {
		pairs = append(pairs, entity.SizePair{WidthRaw: m[1], HeightRaw: m[2]})
	}
	return pairs
}

// ExtractMultiplier ko'paytiruvchini ajratadi; topilmasa 1
func ExtractMultiplier(text string) int {
	match := multiplierRegex.FindStringSubmatch(text)
	if match == nil {
		return constants.DefaultMultiplier
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return constants.DefaultMultiplier
	}
	return n
}

// ParseRequest uchala extractorni bitta Request ga yig'adi
func ParseRequest(text string) entity.Request {
	return entity.Request{
		SheetName:  ExtractSheetName(text),
		Sizes:      ExtractSizes(text),
		Multiplier: ExtractMultiplier(text),
	}
}
