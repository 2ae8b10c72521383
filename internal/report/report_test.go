package report

import (
	"testing"
	"time"

	"github.com/itnewcomer/Memento/internal/calendarx"
	"github.com/itnewcomer/Memento/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) calendarx.Day {
	return calendarx.Day{Year: y, Month: m, Day: d}
}

func rec(d calendarx.Day, rating int, tagsByEmotion map[string][]string) models.JournalRecord {
	r := models.JournalRecord{Day: d, Rating: rating, TagsByEmotion: tagsByEmotion}
	r.RefreshAllTags()
	return r
}

func TestDailySeries_LengthMatchesMonth(t *testing.T) {
	cases := map[calendarx.Day]int{
		day(2024, time.January, 15):  31,
		day(2024, time.February, 1):  29,
		day(2023, time.February, 28): 28,
		day(2024, time.April, 30):    30,
	}
	for d, want := range cases {
		series := DailySeries(d, RatingIndex{})
		require.Len(t, series, want, d.String())
		for i, p := range series {
			assert.Equal(t, i+1, p.Day)
			assert.Zero(t, p.Value)
		}
	}
}

func TestDailySeries_Values(t *testing.T) {
	idx := IndexRatings([]models.JournalRecord{
		rec(day(2024, time.January, 5), 5, nil),
		rec(day(2024, time.January, 10), 3, nil),
		rec(day(2024, time.February, 10), 1, nil),
	})

	series := DailySeries(day(2024, time.January, 20), idx)
	assert.Equal(t, 5, series[4].Value)
	assert.Equal(t, 3, series[9].Value)
	assert.Zero(t, series[0].Value)
	assert.Zero(t, series[30].Value)
}

func TestMonthlySeries_Empty(t *testing.T) {
	series := MonthlySeries(2024, RatingIndex{})
	require.Len(t, series, 12)
	for i, p := range series {
		assert.Equal(t, i+1, p.Month)
		assert.Zero(t, p.Value)
	}
}

func TestMonthlySeries_TruncatingAverage(t *testing.T) {
	idx := IndexRatings([]models.JournalRecord{
		rec(day(2024, time.March, 1), 4, nil),
		rec(day(2024, time.March, 2), 5, nil),
		rec(day(2024, time.June, 1), 1, nil),
		rec(day(2024, time.June, 2), 2, nil),
		rec(day(2024, time.June, 3), 2, nil),
		rec(day(2023, time.March, 1), 1, nil),
	})

	series := MonthlySeries(2024, idx)
	assert.Equal(t, 4, series[2].Value)
	assert.Equal(t, 1, series[5].Value)
	assert.Zero(t, series[0].Value)
}

func TestRatingDistribution_JanuaryScenario(t *testing.T) {
	idx := IndexRatings([]models.JournalRecord{
		rec(day(2024, time.January, 5), 5, nil),
		rec(day(2024, time.January, 10), 3, nil),
	})

	dist := RatingDistribution(Monthly(day(2024, time.January, 1)), idx)
	assert.Equal(t, [5]int{0, 0, 1, 0, 1}, dist.Counts)
	assert.Equal(t, 2, dist.Total())
	assert.Equal(t, [5]float64{0, 0, 0.5, 0, 0.5}, dist.Ratios())
}

func TestRatingDistribution_ExcludesInvalidAndOutOfScope(t *testing.T) {
	idx := RatingIndex{
		day(2024, time.January, 1):  0,
		day(2024, time.January, 2):  6,
		day(2024, time.January, 3):  2,
		day(2024, time.February, 3): 4,
		day(2023, time.January, 3):  1,
	}

	month := RatingDistribution(Monthly(day(2024, time.January, 31)), idx)
	assert.Equal(t, [5]int{0, 1, 0, 0, 0}, month.Counts)

	year := RatingDistribution(Yearly(day(2024, time.June, 1)), idx)
	assert.Equal(t, [5]int{0, 1, 0, 1, 0}, year.Counts)
	assert.Equal(t, 2, year.Total())
}

func TestDistribution_RatiosWithoutData(t *testing.T) {
	var d Distribution
	assert.Zero(t, d.Total())
	assert.Equal(t, [5]float64{}, d.Ratios())
}

func TestDistribution_RatiosSumToOne(t *testing.T) {
	d := Distribution{Counts: [5]int{1, 1, 1, 0, 0}}
	sum := 0.0
	for _, r := range d.Ratios() {
		sum += r
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestScope(t *testing.T) {
	m := Monthly(day(2024, time.February, 10))
	assert.True(t, m.Contains(day(2024, time.February, 29)))
	assert.False(t, m.Contains(day(2024, time.March, 1)))
	assert.False(t, m.Contains(day(2023, time.February, 1)))
	assert.Len(t, m.Days(), 29)
	assert.Equal(t, "2024-02", m.String())

	y := Yearly(day(2024, time.February, 10))
	assert.True(t, y.Contains(day(2024, time.December, 31)))
	assert.Len(t, y.Days(), 366)
	assert.Len(t, Yearly(day(2023, time.May, 1)).Days(), 365)
	assert.Equal(t, "2024", y.String())

	s, err := ParseScope("year", day(2024, time.May, 1))
	require.NoError(t, err)
	assert.Equal(t, ScopeYear, s.Kind)
	_, err = ParseScope("week", day(2024, time.May, 1))
	assert.Error(t, err)
}

func TestTagEmotionIndex(t *testing.T) {
	records := []models.JournalRecord{
		rec(day(2024, time.January, 10), 4, map[string][]string{
			"Happy": {"#work", "#family"},
			"Tired": {"#work"},
		}),
		rec(day(2024, time.January, 5), 2, map[string][]string{
			"Stressed": {"#work"},
		}),
		rec(day(2024, time.February, 1), 3, map[string][]string{
			"Calm": {"#family"},
		}),
	}

	idx := TagEmotionIndex(Monthly(day(2024, time.January, 1)), records)

	assert.Equal(t, []string{"#family", "#work"}, idx.Tags())
	require.Len(t, idx["#work"], 2)
	assert.Equal(t, day(2024, time.January, 5), idx["#work"][0].Day)
	assert.Equal(t, day(2024, time.January, 10), idx["#work"][1].Day)
	require.Len(t, idx["#family"], 1)

	yearIdx := TagEmotionIndex(Yearly(day(2024, time.January, 1)), records)
	assert.Len(t, yearIdx["#family"], 2)

	assert.Empty(t, TagEmotionIndex(Monthly(day(2025, time.January, 1)), records))
}

func TestTagEmotionMatrix(t *testing.T) {
	records := []models.JournalRecord{
		rec(day(2024, time.January, 10), 4, map[string][]string{
			"Happy": {"#work", "#work"},
			"Tired": {"#work"},
		}),
		rec(day(2024, time.January, 11), 4, map[string][]string{
			"Happy": {"#work"},
		}),
	}

	m := TagEmotionMatrix(Monthly(day(2024, time.January, 1)), records)
	assert.Equal(t, map[string]map[string]int{
		"#work": {"Happy": 2, "Tired": 1},
	}, m)
}

func TestSnapshot(t *testing.T) {
	records := []models.JournalRecord{
		rec(day(2024, time.January, 5), 5, map[string][]string{"Joy": {"#trip"}}),
		rec(day(2024, time.January, 10), 3, nil),
	}
	snap := NewSnapshot(records)

	r, ok := snap.Record(day(2024, time.January, 10))
	require.True(t, ok)
	assert.Equal(t, 3, r.Rating)
	_, ok = snap.Record(day(2024, time.January, 11))
	assert.False(t, ok)

	assert.Equal(t, 5, snap.DailySeries(day(2024, time.January, 1))[4].Value)
	assert.Equal(t, 4, snap.MonthlySeries(2024)[0].Value)
	assert.Equal(t, 2, snap.Distribution(Monthly(day(2024, time.January, 1))).Total())
	assert.Len(t, snap.TagIndex(Yearly(day(2024, time.January, 1))), 1)
}
