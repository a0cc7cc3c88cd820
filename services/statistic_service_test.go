package services

import (
	"testing"
	"time"

	"github.com/quark1412/FoodyRush-sub000/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMondayOf(t *testing.T) {
	// 2024-01-03 is a Wednesday
	monday := MondayOf(time.Date(2024, 1, 3, 15, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), monday)

	// a Sunday still belongs to the week started the previous Monday
	monday = MondayOf(time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), monday)

	// a Monday is its own week start
	monday = MondayOf(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), monday)
}

func TestBucketWeekPlacesRecordAtWeekIndex(t *testing.T) {
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []repository.StatRecord{
		{Day: 3, Month: 1, Year: 2024, TotalOrder: 2, TotalRevenue: 100000},
	}

	buckets := BucketWeek(records, monday)
	require.Len(t, buckets, 7)

	orders := make([]int64, 7)
	revenue := make([]int64, 7)
	for i, b := range buckets {
		orders[i] = b.TotalOrder
		revenue[i] = b.TotalRevenue
	}
	// day 3 of a week starting Monday the 1st maps to index 2 (Wednesday)
	assert.Equal(t, []int64{0, 0, 2, 0, 0, 0, 0}, orders)
	assert.Equal(t, []int64{0, 0, 100000, 0, 0, 0, 0}, revenue)
}

func TestBucketWeekUnaffectedByZoneClockChange(t *testing.T) {
	// Azores switches to summer time at midnight, so the last Sunday of
	// March is only 23 hours long there
	loc, err := time.LoadLocation("Atlantic/Azores")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	monday := time.Date(2025, 3, 24, 0, 0, 0, 0, loc)
	records := []repository.StatRecord{
		{Day: 30, Month: 3, Year: 2025, TotalOrder: 1, TotalRevenue: 40000},
	}

	buckets := BucketWeek(records, monday)
	require.Len(t, buckets, 7)
	assert.Equal(t, int64(1), buckets[6].TotalOrder)
	assert.Equal(t, int64(40000), buckets[6].TotalRevenue)
	assert.Zero(t, buckets[5].TotalOrder)

	// every slot keeps its own calendar date
	seen := map[[2]int]bool{}
	for _, b := range buckets {
		key := [2]int{b.Day, b.Month}
		assert.False(t, seen[key])
		seen[key] = true
	}
}

func TestBucketWeekDropsRecordsOutsideWeek(t *testing.T) {
	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	records := []repository.StatRecord{
		{Day: 1, Month: 1, Year: 2024, TotalOrder: 9, TotalRevenue: 9},
		{Day: 20, Month: 1, Year: 2024, TotalOrder: 9, TotalRevenue: 9},
	}
	for _, b := range BucketWeek(records, monday) {
		assert.Zero(t, b.TotalOrder)
		assert.Zero(t, b.TotalRevenue)
	}
}

func TestBucketByDayZeroFillsAndSums(t *testing.T) {
	records := []repository.StatRecord{
		{Day: 5, Month: 2, Year: 2024, TotalOrder: 1, TotalRevenue: 50000},
		{Day: 5, Month: 2, Year: 2024, TotalOrder: 2, TotalRevenue: 70000},
		{Day: 29, Month: 2, Year: 2024, TotalOrder: 1, TotalRevenue: 30000},
	}

	buckets := BucketByDay(records, DaysInMonth(2, 2024), 2, 2024)
	require.Len(t, buckets, 29) // leap February

	assert.Equal(t, int64(3), buckets[4].TotalOrder)
	assert.Equal(t, int64(120000), buckets[4].TotalRevenue)
	assert.Equal(t, int64(30000), buckets[28].TotalRevenue)

	for i, b := range buckets {
		assert.Equal(t, i+1, b.Day)
		assert.Equal(t, 2, b.Month)
		assert.Equal(t, 2024, b.Year)
		if i != 4 && i != 28 {
			assert.Zero(t, b.TotalOrder)
			assert.Zero(t, b.TotalRevenue)
		}
	}
}

func TestBucketByMonthTwelveEntries(t *testing.T) {
	records := []repository.StatRecord{
		{Day: 1, Month: 1, Year: 2024, TotalOrder: 1, TotalRevenue: 10000},
		{Day: 15, Month: 1, Year: 2024, TotalOrder: 1, TotalRevenue: 20000},
		{Day: 2, Month: 12, Year: 2024, TotalOrder: 3, TotalRevenue: 90000},
	}

	buckets := BucketByMonth(records, 2024)
	require.Len(t, buckets, 12)

	assert.Equal(t, int64(2), buckets[0].TotalOrder)
	assert.Equal(t, int64(30000), buckets[0].TotalRevenue)
	assert.Equal(t, int64(90000), buckets[11].TotalRevenue)
	for i := 1; i < 11; i++ {
		assert.Zero(t, buckets[i].TotalOrder)
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(1, 2024))
	assert.Equal(t, 29, DaysInMonth(2, 2024))
	assert.Equal(t, 28, DaysInMonth(2, 2023))
	assert.Equal(t, 30, DaysInMonth(4, 2024))
	assert.Equal(t, 31, DaysInMonth(12, 2024))
}

func TestChartPointsLabels(t *testing.T) {
	buckets := []Bucket{
		{Day: 5, Month: 2, Year: 2024, TotalRevenue: 120000},
	}
	points := chartPoints(buckets, false)
	require.Len(t, points, 1)
	assert.Equal(t, "05/02", points[0].Date)
	assert.Equal(t, int64(120000), points[0].Revenue)

	yearBuckets := BucketByMonth(nil, 2024)
	yearPoints := chartPoints(yearBuckets, true)
	assert.Equal(t, "Tháng 1", yearPoints[0].Date)
	assert.Equal(t, "Tháng 12", yearPoints[11].Date)
}
