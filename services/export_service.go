package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportService serializes a statistics summary into a one-sheet .xlsx
// workbook: a merged title cell describing the period, a styled header
// row and one row per bucket.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

var exportHeader = []string{"STT", "Ngày", "Số đơn hàng", "Doanh thu"}

func bucketLabel(b Bucket) string {
	if b.Day > 0 {
		return fmt.Sprintf("%02d/%02d/%d", b.Day, b.Month, b.Year)
	}
	return fmt.Sprintf("Tháng %d/%d", b.Month, b.Year)
}

// Export returns the workbook bytes and the download filename, which
// embeds the current date.
func (s *ExportService) Export(summary *StatSummary) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := f.MergeCell(sheet, "A1", "D1"); err != nil {
		return nil, "", err
	}
	f.SetCellValue(sheet, "A1", fmt.Sprintf("Thống kê doanh thu - %s", summary.Title))

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, "", err
	}
	f.SetCellStyle(sheet, "A1", "D1", titleStyle)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, "", err
	}
	for i, h := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A2", "D2", headerStyle)

	for i, b := range summary.Buckets {
		row := i + 3
		cells := []any{i + 1, bucketLabel(b), b.TotalOrder, b.TotalRevenue}
		for col, v := range cells {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("thong-ke-doanh-thu-%s.xlsx", time.Now().Format("02-01-2006"))
	return buf, filename, nil
}
