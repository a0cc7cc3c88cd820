package services

import (
	"fmt"
	"time"

	"github.com/quark1412/FoodyRush-sub000/repository"
)

// Bucket is one dense slot of the report: a day of a week or month, or a
// month of a year. Slots with no orders stay zero-filled, never null, so
// charting and the spreadsheet export always see full arrays.
type Bucket struct {
	Day          int   `json:"day"`
	Month        int   `json:"month"`
	Year         int   `json:"year"`
	TotalOrder   int64 `json:"totalOrder"`
	TotalRevenue int64 `json:"totalRevenue"`
}

type ChartPoint struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
}

type StatSummary struct {
	Granularity  string                  `json:"granularity"`
	Title        string                  `json:"title"`
	Buckets      []Bucket                `json:"buckets"`
	TotalOrder   int64                   `json:"totalOrder"`
	TotalRevenue int64                   `json:"totalRevenue"`
	Chart        []ChartPoint            `json:"chart"`
	Records      []repository.StatRecord `json:"-"`
}

type StatisticService struct {
	repo *repository.StatisticRepository
}

func NewStatisticService(repo *repository.StatisticRepository) *StatisticService {
	return &StatisticService{repo: repo}
}

// MondayOf returns the Monday starting the week containing t.
func MondayOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -offset)
}

func DaysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BucketWeek places records into 7 slots, index 0=Monday through 6=Sunday
// of the week starting at monday. Records outside the week are dropped,
// duplicates sum.
func BucketWeek(records []repository.StatRecord, monday time.Time) []Bucket {
	buckets := make([]Bucket, 7)
	for i := range buckets {
		d := monday.AddDate(0, 0, i)
		buckets[i] = Bucket{Day: d.Day(), Month: int(d.Month()), Year: d.Year()}
	}
	// calendar-date arithmetic in UTC: a DST change in the server zone must
	// not shift records into the neighbouring slot
	start := time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
	for _, rec := range records {
		date := time.Date(rec.Year, time.Month(rec.Month), rec.Day, 0, 0, 0, 0, time.UTC)
		idx := int(date.Sub(start).Hours() / 24)
		if idx < 0 || idx > 6 {
			continue
		}
		buckets[idx].TotalOrder += rec.TotalOrder
		buckets[idx].TotalRevenue += rec.TotalRevenue
	}
	return buckets
}

// BucketByDay places records into daysInMonth slots keyed by their
// 1-indexed day, summing duplicates.
func BucketByDay(records []repository.StatRecord, daysInMonth, month, year int) []Bucket {
	buckets := make([]Bucket, daysInMonth)
	for i := range buckets {
		buckets[i] = Bucket{Day: i + 1, Month: month, Year: year}
	}
	for _, rec := range records {
		if rec.Day < 1 || rec.Day > daysInMonth {
			continue
		}
		buckets[rec.Day-1].TotalOrder += rec.TotalOrder
		buckets[rec.Day-1].TotalRevenue += rec.TotalRevenue
	}
	return buckets
}

// BucketByMonth places records into 12 slots, index 0=January through
// 11=December, summing duplicates.
func BucketByMonth(records []repository.StatRecord, year int) []Bucket {
	buckets := make([]Bucket, 12)
	for i := range buckets {
		buckets[i] = Bucket{Month: i + 1, Year: year}
	}
	for _, rec := range records {
		if rec.Month < 1 || rec.Month > 12 {
			continue
		}
		buckets[rec.Month-1].TotalOrder += rec.TotalOrder
		buckets[rec.Month-1].TotalRevenue += rec.TotalRevenue
	}
	return buckets
}

func totals(records []repository.StatRecord) (orders, revenue int64) {
	for _, rec := range records {
		orders += rec.TotalOrder
		revenue += rec.TotalRevenue
	}
	return orders, revenue
}

func chartPoints(buckets []Bucket, yearly bool) []ChartPoint {
	points := make([]ChartPoint, 0, len(buckets))
	for _, b := range buckets {
		label := fmt.Sprintf("%02d/%02d", b.Day, b.Month)
		if yearly {
			label = fmt.Sprintf("Tháng %d", b.Month)
		}
		points = append(points, ChartPoint{Date: label, Revenue: b.TotalRevenue})
	}
	return points
}

// Week fetches each of the 7 days starting from the Monday of the anchor
// date's week, one call per day.
func (s *StatisticService) Week(anchor time.Time) (*StatSummary, error) {
	monday := MondayOf(anchor)
	var records []repository.StatRecord
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		day, err := s.repo.ByDate(d.Day(), int(d.Month()), d.Year())
		if err != nil {
			return nil, err
		}
		records = append(records, day...)
	}

	buckets := BucketWeek(records, monday)
	orders, revenue := totals(records)
	sunday := monday.AddDate(0, 0, 6)
	return &StatSummary{
		Granularity:  "week",
		Title:        fmt.Sprintf("Tuần %s - %s", monday.Format("02/01/2006"), sunday.Format("02/01/2006")),
		Buckets:      buckets,
		TotalOrder:   orders,
		TotalRevenue: revenue,
		Chart:        chartPoints(buckets, false),
		Records:      records,
	}, nil
}

func (s *StatisticService) Month(month, year int) (*StatSummary, error) {
	records, err := s.repo.ByMonth(month, year)
	if err != nil {
		return nil, err
	}

	buckets := BucketByDay(records, DaysInMonth(month, year), month, year)
	orders, revenue := totals(records)
	return &StatSummary{
		Granularity:  "month",
		Title:        fmt.Sprintf("Tháng %02d/%d", month, year),
		Buckets:      buckets,
		TotalOrder:   orders,
		TotalRevenue: revenue,
		Chart:        chartPoints(buckets, false),
		Records:      records,
	}, nil
}

func (s *StatisticService) Year(year int) (*StatSummary, error) {
	records, err := s.repo.ByYear(year)
	if err != nil {
		return nil, err
	}

	buckets := BucketByMonth(records, year)
	orders, revenue := totals(records)
	return &StatSummary{
		Granularity:  "year",
		Title:        fmt.Sprintf("Năm %d", year),
		Buckets:      buckets,
		TotalOrder:   orders,
		TotalRevenue: revenue,
		Chart:        chartPoints(buckets, true),
		Records:      records,
	}, nil
}
