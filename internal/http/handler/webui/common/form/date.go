package form

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultDateFormat = "MM/dd/yyyy"

	inputDateLayout     = "2006-01-02"
	inputDateTimeLayout = "2006-01-02T15:04"
)

var dateTokens = map[string]string{
	"yyyy": "2006",
	"yy":   "06",
	"y":    "2006",
	"MMMM": "January",
	"MMM":  "Jan",
	"MM":   "01",
	"M":    "1",
	"dd":   "02",
	"d":    "2",
	"EEEE": "Monday",
	"EEE":  "Mon",
	"E":    "Mon",
	"HH":   "15",
	"H":    "15",
	"hh":   "03",
	"h":    "3",
	"mm":   "04",
	"m":    "4",
	"ss":   "05",
	"s":    "5",
	"aa":   "PM",
	"a":    "PM",
}

// DateLayout converts a unicode date pattern (as used by client side date
// pickers) into a Go time layout.
func DateLayout(format string) (string, error) {
	var layout strings.Builder

	runes := []rune(format)
	for i := 0; i < len(runes); {
		r := runes[i]

		switch {
		case r == '\'':
			end := i + 1
			for end < len(runes) && runes[end] != '\'' {
				end++
			}
			if end == i+1 {
				layout.WriteRune('\'')
			} else {
				layout.WriteString(string(runes[i+1 : end]))
			}
			i = end + 1

		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			end := i
			for end < len(runes) && runes[end] == r {
				end++
			}

			token := string(runes[i:end])
			value, exists := dateTokens[token]
			if !exists {
				return "", errors.Errorf("unsupported date token '%s' in format '%s'", token, format)
			}

			layout.WriteString(value)
			i = end

		default:
			layout.WriteRune(r)
			i++
		}
	}

	return layout.String(), nil
}

// ParseDate parses a submitted date, either in the native date input
// layouts or in the given unicode date format.
func ParseDate(value string, format string) (time.Time, error) {
	value = strings.TrimSpace(value)

	for _, layout := range []string{inputDateTimeLayout, inputDateLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	if format == "" {
		format = DefaultDateFormat
	}

	layout, err := DateLayout(format)
	if err != nil {
		return time.Time{}, errors.WithStack(err)
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, errors.WithStack(err)
	}

	return t, nil
}

func inputDateValue(value string, format string, showTime bool) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}

	t, err := ParseDate(value, format)
	if err != nil {
		return value
	}

	if showTime {
		return t.Format(inputDateTimeLayout)
	}

	return t.Format(inputDateLayout)
}

func dateFormatOrDefault(format string) string {
	if format == "" {
		return DefaultDateFormat
	}
	return format
}
