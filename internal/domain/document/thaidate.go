package document

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDate = errors.New("invalid date")
)

// DateLayout is the wire format for every date field of a memo.
const DateLayout = "2006-01-02"

// ThaiMonths is indexed by time.Month - 1.
var ThaiMonths = [12]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน",
	"พฤษภาคม", "มิถุนายน", "กรกฎาคม", "สิงหาคม",
	"กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

func BuddhistYear(year int) int {
	return year + 543
}

// FormatThaiDate renders a date as official Thai document text,
// e.g. "15 มกราคม พ.ศ. 2567". It reads the date's own calendar
// fields as-is and never converts between locations.
func FormatThaiDate(t time.Time) string {
	return fmt.Sprintf("%d %s พ.ศ. %d", t.Day(), ThaiMonths[t.Month()-1], BuddhistYear(t.Year()))
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a %s date", ErrInvalidDate, s, DateLayout)
	}
	return t, nil
}

// FormatThaiDateString parses and formats in one step. Unparseable
// input yields an empty string so that preview rendering degrades
// instead of failing.
func FormatThaiDateString(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return ""
	}
	return FormatThaiDate(t)
}
