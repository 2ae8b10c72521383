package report

import (
	"time"

	"github.com/itnewcomer/Memento/internal/calendarx"
	"github.com/itnewcomer/Memento/internal/models"
)

// RatingIndex is the day-keyed projection of a record set.
type RatingIndex map[calendarx.Day]int

// IndexRatings builds a RatingIndex. When records repeat a day the last
// one wins.
func IndexRatings(records []models.JournalRecord) RatingIndex {
	idx := make(RatingIndex, len(records))
	for _, r := range records {
		idx[r.Day] = r.Rating
	}
	return idx
}

// DayValue is one point of a daily series. Value 0 means no record.
type DayValue struct {
	Day   int `json:"day"`
	Value int `json:"value"`
}

// MonthValue is one point of a monthly series. Value 0 means no records.
type MonthValue struct {
	Month int `json:"month"`
	Value int `json:"value"`
}

// DailySeries returns one point per day of the month containing day,
// ordered from the 1st.
func DailySeries(day calendarx.Day, idx RatingIndex) []DayValue {
	days := calendarx.MonthDays(day)
	out := make([]DayValue, len(days))
	for i, d := range days {
		out[i] = DayValue{Day: d.Day, Value: idx[d]}
	}
	return out
}

// MonthlySeries returns twelve points for year. Each value is the
// truncating integer average of the ratings recorded that month.
func MonthlySeries(year int, idx RatingIndex) []MonthValue {
	out := make([]MonthValue, 12)
	for i, m := range calendarx.YearMonths(year) {
		sum, n := 0, 0
		for _, p := range DailySeries(m, idx) {
			if p.Value == 0 {
				continue
			}
			sum += p.Value
			n++
		}
		out[i] = MonthValue{Month: int(time.Month(i + 1))}
		if n > 0 {
			out[i].Value = sum / n
		}
	}
	return out
}
