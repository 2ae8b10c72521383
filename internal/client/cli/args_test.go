package cli

import (
	"testing"

	"github.com/itnewcomer/Memento/internal/calendarx"
	"github.com/itnewcomer/Memento/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	today := calendarx.Day{Year: 2024, Month: 6, Day: 15}
	tests := []struct {
		in      string
		want    calendarx.Day
		wantErr bool
	}{
		{in: "", want: today},
		{in: "today", want: today},
		{in: "2024-02-29", want: calendarx.Day{Year: 2024, Month: 2, Day: 29}},
		{in: "2023-11", want: calendarx.Day{Year: 2023, Month: 11, Day: 1}},
		{in: "2022", want: calendarx.Day{Year: 2022, Month: 1, Day: 1}},
		{in: "2023-02-29", wantErr: true},
		{in: "abcd", wantErr: true},
		{in: "yesterday", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDate(tt.in, today)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScopeArgs(t *testing.T) {
	today := calendarx.Day{Year: 2024, Month: 6, Day: 15}

	s, err := scopeArgs(nil, today)
	require.NoError(t, err)
	assert.Equal(t, report.ScopeMonth, s.Kind)
	assert.Equal(t, today, s.Anchor)

	s, err = scopeArgs([]string{"year", "2021"}, today)
	require.NoError(t, err)
	assert.Equal(t, report.ScopeYear, s.Kind)
	assert.Equal(t, 2021, s.Anchor.Year)
}

func TestParseEmotionSelection(t *testing.T) {
	got, err := parseEmotionSelection("1, calm;36 Joy")
	require.NoError(t, err)
	assert.Equal(t, []string{"Peaceful", "Calm", "Furious", "Joy"}, got)

	got, err = parseEmotionSelection("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseEmotionSelection("37")
	require.Error(t, err)
	_, err = parseEmotionSelection("Hangry")
	require.Error(t, err)
}

func TestParseClockAndOnOff(t *testing.T) {
	h, m, err := parseClock("07:05")
	require.NoError(t, err)
	assert.Equal(t, 7, h)
	assert.Equal(t, 5, m)

	_, _, err = parseClock("7")
	require.Error(t, err)

	on, err := parseOnOff("ON")
	require.NoError(t, err)
	assert.True(t, on)
	_, err = parseOnOff("maybe")
	require.Error(t, err)
}
