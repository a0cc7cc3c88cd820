package repository

import (
	"gorm.io/gorm"
)

// StatRecord is one raw revenue record: order count and revenue for a
// single calendar day.
type StatRecord struct {
	Day          int   `json:"day"`
	Month        int   `json:"month"`
	Year         int   `json:"year"`
	TotalOrder   int64 `json:"totalOrder"`
	TotalRevenue int64 `json:"totalRevenue"`
}

type StatisticRepository struct {
	db *gorm.DB
}

func NewStatisticRepository(db *gorm.DB) *StatisticRepository {
	return &StatisticRepository{db: db}
}

const statSelect = `
SELECT CAST(strftime('%d', orders.created_at) AS INTEGER) AS day,
       CAST(strftime('%m', orders.created_at) AS INTEGER) AS month,
       CAST(strftime('%Y', orders.created_at) AS INTEGER) AS year,
       COUNT(*) AS total_order,
       COALESCE(SUM(orders.final_price), 0) AS total_revenue
FROM orders
WHERE orders.deleted_at IS NULL`

func (r *StatisticRepository) ByDate(day, month, year int) ([]StatRecord, error) {
	var records []StatRecord
	err := r.db.Raw(statSelect+`
  AND CAST(strftime('%d', orders.created_at) AS INTEGER) = ?
  AND CAST(strftime('%m', orders.created_at) AS INTEGER) = ?
  AND CAST(strftime('%Y', orders.created_at) AS INTEGER) = ?
GROUP BY day, month, year`, day, month, year).Scan(&records).Error
	return records, err
}

func (r *StatisticRepository) ByMonth(month, year int) ([]StatRecord, error) {
	var records []StatRecord
	err := r.db.Raw(statSelect+`
  AND CAST(strftime('%m', orders.created_at) AS INTEGER) = ?
  AND CAST(strftime('%Y', orders.created_at) AS INTEGER) = ?
GROUP BY day, month, year`, month, year).Scan(&records).Error
	return records, err
}

func (r *StatisticRepository) ByYear(year int) ([]StatRecord, error) {
	var records []StatRecord
	err := r.db.Raw(statSelect+`
  AND CAST(strftime('%Y', orders.created_at) AS INTEGER) = ?
GROUP BY day, month, year`, year).Scan(&records).Error
	return records, err
}
