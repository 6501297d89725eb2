package utils

import (
	"database/sql/driver"
	"fmt"
	"regexp"
	"strings"
	"time"

	"resto_manager/constants"
)

// CustomDate stores a calendar date without a time component.
type CustomDate struct {
	time.Time
}

func NewCustomDate(t time.Time) CustomDate {
	return CustomDate{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d *CustomDate) UnmarshalJSON(data []byte) error {
	if string(data) == `null` {
		*d = CustomDate{time.Time{}}
		return nil
	}

	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	t, err := time.Parse("2006-01-02", str)
	if err != nil {
		return fmt.Errorf("invalid date format: %s", str)
	}
	*d = CustomDate{t}
	return nil
}

func (d CustomDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

func (d CustomDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time.Format("2006-01-02"), nil
}

func (d *CustomDate) Scan(value interface{}) error {
	if value == nil {
		*d = CustomDate{time.Time{}}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = CustomDate{v}
		return nil
	case string:
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return fmt.Errorf("cannot parse date string: %v", err)
		}
		*d = CustomDate{t}
		return nil
	case []byte:
		t, err := time.Parse("2006-01-02", string(v))
		if err != nil {
			return fmt.Errorf("cannot parse date bytes: %v", err)
		}
		*d = CustomDate{t}
		return nil
	default:
		return fmt.Errorf("unsupported date type %T", value)
	}
}

var sheetDatePattern = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{2}|\d{4})$`)

// ParseSheetDate parses DD.MM.YYYY or DD.MM.YY cell values as written by the
// venue spreadsheets. Two-digit years are assumed to be 2000s. Anything else
// is a parse failure, never a garbage date.
func ParseSheetDate(raw string) (time.Time, error) {
	cleaned := strings.TrimSpace(raw)
	m := sheetDatePattern.FindStringSubmatch(cleaned)
	if m == nil {
		return time.Time{}, fmt.Errorf("unparseable date %q", raw)
	}

	layout := "2.1.2006"
	if len(m[3]) == 2 {
		layout = "2.1.06"
	}
	t, err := time.Parse(layout, cleaned)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable date %q", raw)
	}
	return t, nil
}

// SameWeekdayLastYear shifts a date back exactly 364 days, keeping the day of
// week aligned across years for week-over-week chart comparisons.
func SameWeekdayLastYear(t time.Time) time.Time {
	return t.AddDate(0, 0, -constants.YearLookbackDays)
}

func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}
