package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()

	ts, err := time.Parse("2006-01-02T15:04:05", value)
	require.NoError(t, err)
	return ts
}

func TestBuildWeeklyReportAlwaysSevenBuckets(t *testing.T) {
	t.Parallel()

	ref := mustTime(t, "2025-01-08T12:00:00")

	cases := []struct {
		name     string
		meetings []Interval
	}{
		{"empty", nil},
		{"single", []Interval{{Start: mustTime(t, "2025-01-03T10:00:00"), End: mustTime(t, "2025-01-03T11:00:00")}}},
		{"all outside window", []Interval{{Start: mustTime(t, "2024-06-01T10:00:00"), End: mustTime(t, "2024-06-01T11:00:00")}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := BuildWeeklyReport(ref, tc.meetings)
			assert.Len(t, report.WeeklyData, 7)
		})
	}
}

func TestBuildWeeklyReportWindowDays(t *testing.T) {
	t.Parallel()

	ref := mustTime(t, "2025-01-08T12:00:00")
	report := BuildWeeklyReport(ref, nil)

	expected := []string{
		"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04",
		"2025-01-05", "2025-01-06", "2025-01-07",
	}
	for i, day := range report.WeeklyData {
		assert.Equal(t, expected[i], day.Date)
		assert.Equal(t, 0, day.TotalMinutes)
	}
	assert.Equal(t, 0.0, report.AverageDailyMinutes)
}

func TestBuildWeeklyReportConcreteScenario(t *testing.T) {
	t.Parallel()

	ref := mustTime(t, "2025-01-08T12:00:00")
	meetings := []Interval{
		{Start: mustTime(t, "2025-01-01T10:00:00"), End: mustTime(t, "2025-01-01T11:00:00")},
		{Start: mustTime(t, "2025-01-07T09:00:00"), End: mustTime(t, "2025-01-07T10:30:00")},
	}

	report := BuildWeeklyReport(ref, meetings)

	require.Len(t, report.WeeklyData, 7)
	assert.Equal(t, 60, report.WeeklyData[0].TotalMinutes)
	assert.Equal(t, 90, report.WeeklyData[6].TotalMinutes)
	for i := 1; i < 6; i++ {
		assert.Equal(t, 0, report.WeeklyData[i].TotalMinutes)
	}
	// 150 / 7 = 21.428... -> 21.4
	assert.Equal(t, 21.4, report.AverageDailyMinutes)
}

func TestBuildWeeklyReportMidnightBoundary(t *testing.T) {
	t.Parallel()

	ref := mustTime(t, "2025-01-08T12:00:00")
	meetings := []Interval{
		// exactly at the lower bucket boundary: belongs to Jan 4
		{Start: mustTime(t, "2025-01-04T00:00:00"), End: mustTime(t, "2025-01-04T00:45:00")},
	}

	report := BuildWeeklyReport(ref, meetings)

	assert.Equal(t, 0, report.WeeklyData[2].TotalMinutes, "Jan 3 must stay empty")
	assert.Equal(t, 45, report.WeeklyData[3].TotalMinutes, "Jan 4 owns its midnight")
}

func TestBuildWeeklyReportSpanningMidnightCountsInStartDay(t *testing.T) {
	t.Parallel()

	ref := mustTime(t, "2025-01-08T12:00:00")
	meetings := []Interval{
		{Start: mustTime(t, "2025-01-03T23:30:00"), End: mustTime(t, "2025-01-04T00:30:00")},
	}

	report := BuildWeeklyReport(ref, meetings)

	assert.Equal(t, 60, report.WeeklyData[2].TotalMinutes, "full duration lands in Jan 3")
	assert.Equal(t, 0, report.WeeklyData[3].TotalMinutes)
}

func TestBuildWeeklyReportDropsOutOfWindowStart(t *testing.T) {
	t.Parallel()

	ref := mustTime(t, "2025-01-08T12:00:00")
	meetings := []Interval{
		// starts before the window although it ends inside it
		{Start: mustTime(t, "2024-12-31T23:00:00"), End: mustTime(t, "2025-01-01T01:00:00")},
		// starts on the reference day, after the last bucket
		{Start: mustTime(t, "2025-01-08T09:00:00"), End: mustTime(t, "2025-01-08T10:00:00")},
	}

	report := BuildWeeklyReport(ref, meetings)

	for _, day := range report.WeeklyData {
		assert.Equal(t, 0, day.TotalMinutes)
	}
	assert.Equal(t, 0.0, report.AverageDailyMinutes)
}

func TestBuildWeeklyReportNegativeDurationPassesThrough(t *testing.T) {
	t.Parallel()

	ref := mustTime(t, "2025-01-08T12:00:00")
	meetings := []Interval{
		{Start: mustTime(t, "2025-01-05T10:00:00"), End: mustTime(t, "2025-01-05T09:30:00")},
		{Start: mustTime(t, "2025-01-05T12:00:00"), End: mustTime(t, "2025-01-05T13:00:00")},
	}

	report := BuildWeeklyReport(ref, meetings)

	// -30 + 60, not clamped
	assert.Equal(t, 30, report.WeeklyData[4].TotalMinutes)
}

func TestBuildWeeklyReportRoundsTotalsAfterAccumulation(t *testing.T) {
	t.Parallel()

	ref := mustTime(t, "2025-01-08T12:00:00")
	meetings := []Interval{
		// three meetings of 20.4 minutes each; per-meeting rounding would
		// give 60, accumulate-then-round gives 61
		{Start: mustTime(t, "2025-01-02T08:00:00"), End: mustTime(t, "2025-01-02T08:20:24")},
		{Start: mustTime(t, "2025-01-02T09:00:00"), End: mustTime(t, "2025-01-02T09:20:24")},
		{Start: mustTime(t, "2025-01-02T10:00:00"), End: mustTime(t, "2025-01-02T10:20:24")},
	}

	report := BuildWeeklyReport(ref, meetings)

	assert.Equal(t, 61, report.WeeklyData[1].TotalMinutes)
}

func TestBuildWeeklyReportIdempotent(t *testing.T) {
	t.Parallel()

	ref := mustTime(t, "2025-01-08T12:00:00")
	meetings := []Interval{
		{Start: mustTime(t, "2025-01-02T10:00:00"), End: mustTime(t, "2025-01-02T11:00:00")},
		{Start: mustTime(t, "2025-01-06T14:00:00"), End: mustTime(t, "2025-01-06T15:30:00")},
	}

	first := BuildWeeklyReport(ref, meetings)
	second := BuildWeeklyReport(ref, meetings)

	assert.Equal(t, first, second)
}

func TestBuildWeeklyReportDayNames(t *testing.T) {
	t.Parallel()

	// 2025-01-01 was a Wednesday
	ref := mustTime(t, "2025-01-08T12:00:00")
	report := BuildWeeklyReport(ref, nil)

	expected := []string{"Wednesday", "Thursday", "Friday", "Saturday", "Sunday", "Monday", "Tuesday"}
	for i, day := range report.WeeklyData {
		assert.Equal(t, expected[i], day.DayName)
	}
}

func TestBuildWeeklyReportNamedCustomLabels(t *testing.T) {
	t.Parallel()

	german := DayNames{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"}
	ref := mustTime(t, "2025-01-08T12:00:00")

	report := BuildWeeklyReportNamed(ref, nil, german)

	assert.Equal(t, "Mittwoch", report.WeeklyData[0].DayName)
	assert.Equal(t, "Dienstag", report.WeeklyData[6].DayName)
}

func TestAverageMatchesBucketSum(t *testing.T) {
	t.Parallel()

	ref := mustTime(t, "2025-01-08T12:00:00")
	meetings := []Interval{
		{Start: mustTime(t, "2025-01-01T08:00:00"), End: mustTime(t, "2025-01-01T09:23:00")},
		{Start: mustTime(t, "2025-01-03T08:00:00"), End: mustTime(t, "2025-01-03T08:11:00")},
		{Start: mustTime(t, "2025-01-06T16:00:00"), End: mustTime(t, "2025-01-06T18:05:00")},
	}

	report := BuildWeeklyReport(ref, meetings)

	sum := 0
	for _, day := range report.WeeklyData {
		sum += day.TotalMinutes
	}
	expected := float64(sum) / 7
	expected = float64(int(expected*10+0.5)) / 10
	assert.InDelta(t, expected, report.AverageDailyMinutes, 0.0001)
}

func TestAverageEmptyInput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, average(nil))
}

func TestWindowBounds(t *testing.T) {
	t.Parallel()

	ref := mustTime(t, "2025-01-08T12:00:00")
	start, end := WindowBounds(ref)

	assert.Equal(t, "2025-01-01 00:00:00", start.Format("2006-01-02 15:04:05"))
	assert.Equal(t, "2025-01-08 23:59:59", end.Format("2006-01-02 15:04:05"))
}
