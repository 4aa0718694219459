package renderer

import (
	"fmt"
	"strconv"

	fintrade "github.com/chauhan07divyansh/fintrade-frontend"
)

// formatting helpers shared by the view renderers. Zero values render as
// "-" so an absent backend field reads as neutral, not as a price of 0.

func fmtMoney(value float64, currency string) string {
	if value == 0 {
		return "-"
	}
	return fintrade.M(value, currency).String()
}

func fmtPercent(value float64) string {
	if value == 0 {
		return "-"
	}
	return fintrade.Percent(value).String()
}

func fmtScore(value float64) string {
	if value == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", value)
}

func fmtShares(value float64) string {
	return strconv.FormatFloat(value, 'f', 0, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
