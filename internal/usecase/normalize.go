package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NormalizeCM converts a raw centimetre string to metres rounded UP to
// the nearest 0.1. Integer tenths keep the result exactly on the
// one-decimal grid: 105 -> 1.1, 100 -> 1.0, 233 -> 2.4.
func NormalizeCM(raw string) (float64, bool) {
	cm, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || cm < 0 {
		return 0, false
	}
	tenths := (cm + 9) / 10
	return float64(tenths) / 10, true
}

// Label renders a normalized value the way grid headers are written:
// decimal comma, always one digit after it ("1,0", "1,1", "2,4").
func Label(v float64) string {
	tenths := int(math.Round(v * 10))
	return fmt.Sprintf("%d,%d", tenths/10, tenths%10)
}
