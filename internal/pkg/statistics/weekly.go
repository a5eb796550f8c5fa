package statistics

import (
	"math"
	"time"
)

// Interval ist der Lesezugriff auf ein Meeting, wie ihn die Wochenstatistik
// braucht: nur Start- und Endzeitpunkt, keine Identitäten.
type Interval struct {
	Start time.Time
	End   time.Time
}

// DailyBucket holds the accumulated meeting minutes for one calendar day.
type DailyBucket struct {
	Date         string `json:"date"` // YYYY-MM-DD
	DayName      string `json:"dayName"`
	TotalMinutes int    `json:"totalMinutes"`
}

// WeeklyReport is the trailing-week view returned by the stats endpoint:
// exactly 7 buckets, oldest first, plus the rounded daily average.
type WeeklyReport struct {
	AverageDailyMinutes float64       `json:"averageDailyMinutes"`
	WeeklyData          []DailyBucket `json:"weeklyData"`
}

// DayNames maps time.Weekday (0=Sunday .. 6=Saturday) to display labels.
type DayNames [7]string

// DefaultDayNames are the english weekday labels.
var DefaultDayNames = DayNames{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

const bucketCount = 7

// BuildWeeklyReport buckets the given meetings into the 7 calendar days
// preceding the reference instant and computes the rounded daily average.
//
// The window ends at 23:59:59.999 of the reference day and starts 7 calendar
// days earlier at 00:00:00.000, so the reference day itself is not a bucket.
// A meeting lands in the bucket whose half-open day span [dayStart, dayNext)
// contains its start time; the end time never influences membership, so a
// meeting spanning midnight counts entirely in its start day. Meetings
// starting outside every bucket are dropped silently.
//
// The function is pure: identical inputs always produce identical output,
// and no clock is read.
func BuildWeeklyReport(ref time.Time, meetings []Interval) WeeklyReport {
	return BuildWeeklyReportNamed(ref, meetings, DefaultDayNames)
}

// BuildWeeklyReportNamed is BuildWeeklyReport with custom weekday labels
// (locale support). Labels only affect display, never the numbers.
func BuildWeeklyReportNamed(ref time.Time, meetings []Interval, names DayNames) WeeklyReport {
	loc := ref.Location()

	windowEnd := time.Date(ref.Year(), ref.Month(), ref.Day(), 23, 59, 59, 999000000, loc)
	windowStart := windowEnd.AddDate(0, 0, -bucketCount)
	windowStart = time.Date(windowStart.Year(), windowStart.Month(), windowStart.Day(), 0, 0, 0, 0, loc)

	dayStarts := make([]time.Time, bucketCount+1)
	for i := 0; i <= bucketCount; i++ {
		dayStarts[i] = windowStart.AddDate(0, 0, i)
	}

	totals := make([]float64, bucketCount)
	for _, m := range meetings {
		start := m.Start.In(loc)
		for i := 0; i < bucketCount; i++ {
			if !start.Before(dayStarts[i]) && start.Before(dayStarts[i+1]) {
				totals[i] += m.End.Sub(m.Start).Minutes()
				break
			}
		}
	}

	buckets := make([]DailyBucket, bucketCount)
	for i := 0; i < bucketCount; i++ {
		day := dayStarts[i]
		// erst nach vollständiger Aufsummierung runden, nicht pro Meeting
		buckets[i] = DailyBucket{
			Date:         day.Format("2006-01-02"),
			DayName:      names[int(day.Weekday())],
			TotalMinutes: int(math.Round(totals[i])),
		}
	}

	return WeeklyReport{
		AverageDailyMinutes: average(buckets),
		WeeklyData:          buckets,
	}
}

// average reduces the bucket totals to a single daily figure, rounded to one
// decimal place (round half away from zero on the scaled value).
func average(buckets []DailyBucket) float64 {
	if len(buckets) == 0 {
		return 0
	}

	sum := 0
	for _, b := range buckets {
		sum += b.TotalMinutes
	}

	avg := float64(sum) / float64(bucketCount)

	return math.Round(avg*10) / 10
}

// WindowBounds returns the inclusive fetch range for the trailing week so the
// store query can be issued with the same window the bucketizer uses. The
// bucketizer re-applies its own half-open day logic, so an inclusive fetch
// range is safe.
func WindowBounds(ref time.Time) (time.Time, time.Time) {
	loc := ref.Location()

	end := time.Date(ref.Year(), ref.Month(), ref.Day(), 23, 59, 59, 999000000, loc)
	start := end.AddDate(0, 0, -bucketCount)
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)

	return start, end
}
