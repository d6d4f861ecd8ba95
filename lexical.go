package formdoc

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Lexical forms follow XML Schema: xs:int, xs:float, xs:boolean, xs:date,
// xs:dateTime. Strings are kept verbatim, enum tokens are whitespace
// collapsed like xs:token, and all other kinds are trimmed before parsing.

const (
	dateLayout         = "2006-01-02"
	dateZoneLayout     = "2006-01-02Z07:00"
	dateTimeLayout     = time.RFC3339Nano
	dateTimeNoTZLayout = "2006-01-02T15:04:05.999999999"
)

var errBadLexical = errors.New("invalid lexical form")

// Years outside this range have no four-digit xs:date form.
const (
	minYear = 0
	maxYear = 9999
)

// isXMLText reports whether s is valid UTF-8 made only of characters that
// XML 1.0 allows in element content.
func isXMLText(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if !isXMLChar(r) {
			return false
		}
	}
	return true
}

func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= utf8.MaxRune
}

// collapseSpace applies the xs:token whitespace facet.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func inYearRange(t time.Time) bool {
	y := t.Year()
	return y >= minYear && y <= maxYear
}

// wholeMinuteZone reports whether t's zone offset can be written as +hh:mm.
func wholeMinuteZone(t time.Time) bool {
	_, off := t.Zone()
	return off%60 == 0
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	case math.IsNaN(f):
		return "NaN"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

func parseFloat(s string) (float64, error) {
	switch s {
	case "INF", "+INF":
		return math.Inf(1), nil
	case "-INF":
		return math.Inf(-1), nil
	case "NaN":
		return math.NaN(), nil
	}
	if s == "" || strings.ContainsAny(s, "xXpP_iInN") {
		return 0, errBadLexical
	}
	return strconv.ParseFloat(s, 64)
}

func parseBool(s string) (bool, error) {
	switch s {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, errBadLexical
	}
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		t, err = time.Parse(dateZoneLayout, s)
		if err != nil {
			return time.Time{}, errBadLexical
		}
	}
	return truncateToDate(t), nil
}

func formatDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

func parseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(dateTimeLayout, s)
	if err == nil {
		return t, nil
	}
	t, err = time.ParseInLocation(dateTimeNoTZLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, errBadLexical
	}
	return t, nil
}

// formatLexical returns the element text of a present scalar value.
func formatLexical(v Value) string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindString, KindEnum:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDate:
		return formatDate(v.t)
	case KindDateTime:
		return formatDateTime(v.t)
	default:
		panic("formatLexical: unsupported kind " + v.kind.String())
	}
}

// parseLexical converts element text into a value of the prop's kind.
// Enum membership is checked by the caller.
func parseLexical(prop *Prop, text string) (Value, error) {
	switch prop.kind {
	case KindString:
		return StringValue(text), nil
	case KindEnum:
		return EnumValue(collapseSpace(text)), nil
	}
	s := strings.TrimSpace(text)
	switch prop.kind {
	case KindInt:
		i, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return Value{}, errBadLexical
		}
		return IntValue(i), nil
	case KindFloat:
		f, err := parseFloat(s)
		if err != nil {
			return Value{}, errBadLexical
		}
		return FloatValue(f), nil
	case KindBool:
		b, err := parseBool(s)
		if err != nil {
			return Value{}, err
		}
		return BoolValue(b), nil
	case KindDate:
		t, err := parseDate(s)
		if err != nil {
			return Value{}, err
		}
		return DateValue(t), nil
	case KindDateTime:
		t, err := parseDateTime(s)
		if err != nil {
			return Value{}, err
		}
		return DateTimeValue(t), nil
	default:
		panic("parseLexical: unsupported kind " + prop.kind.String())
	}
}
