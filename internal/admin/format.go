package admin

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Empty is the display value for optional fields the submitter left blank.
const Empty = "Não informado"

// FormatDateTime renders a timestamp for the admin tables and detail pages.
func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006, 15:04")
}

// FormatDate renders a date-only value.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// HumanSize renders a file size with the largest fitting unit, rounded to two
// decimals with trailing zeros trimmed: "532 Bytes", "1.5 KB", "2.25 MB".
func HumanSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	value := float64(bytes)
	i := 0
	for value >= 1024 && i < len(units)-1 {
		value /= 1024
		i++
	}
	value = math.Round(value*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + units[i]
}

// FileIcon picks a display icon from the attachment's MIME type.
func FileIcon(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return "🖼️"
	case mimeType == "application/pdf":
		return "📄"
	default:
		return "📎"
	}
}
