package report

import (
	"github.com/itnewcomer/Memento/internal/calendarx"
	"github.com/itnewcomer/Memento/internal/models"
)

// Snapshot is the materialized input of one render pass. Callers must
// not mutate Records while views derived from it are in use.
type Snapshot struct {
	Records []models.JournalRecord
	Ratings RatingIndex

	byDay map[calendarx.Day]int
}

func NewSnapshot(records []models.JournalRecord) Snapshot {
	byDay := make(map[calendarx.Day]int, len(records))
	for i, r := range records {
		byDay[r.Day] = i
	}
	return Snapshot{Records: records, Ratings: IndexRatings(records), byDay: byDay}
}

// Record returns the record stored for day.
func (s Snapshot) Record(day calendarx.Day) (models.JournalRecord, bool) {
	i, ok := s.byDay[day]
	if !ok {
		return models.JournalRecord{}, false
	}
	return s.Records[i], true
}

func (s Snapshot) DailySeries(day calendarx.Day) []DayValue {
	return DailySeries(day, s.Ratings)
}

func (s Snapshot) MonthlySeries(year int) []MonthValue {
	return MonthlySeries(year, s.Ratings)
}

func (s Snapshot) Distribution(scope Scope) Distribution {
	return RatingDistribution(scope, s.Ratings)
}

func (s Snapshot) TagIndex(scope Scope) TagIndex {
	return TagEmotionIndex(scope, s.Records)
}

func (s Snapshot) TagEmotionMatrix(scope Scope) map[string]map[string]int {
	return TagEmotionMatrix(scope, s.Records)
}
