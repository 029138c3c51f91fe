package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// formatMoney renders whole currency units with thousands separators.
func formatMoney(amount int64, currency string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	var sb strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	if currency == "" {
		return sign + sb.String()
	}
	return fmt.Sprintf("%s%s %s", sign, sb.String(), currency)
}

func humanizeDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}

func cursorMark(selected bool) string {
	if selected {
		return selectedStyle.Render("›")
	}
	return " "
}

func clampIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	return min(max(idx, 0), n-1)
}
