package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportWritesTitleHeaderAndRows(t *testing.T) {
	svc := NewExportService()
	summary := &StatSummary{
		Title: "Tháng 02/2024",
		Buckets: []Bucket{
			{Day: 1, Month: 2, Year: 2024, TotalOrder: 2, TotalRevenue: 100000},
			{Day: 2, Month: 2, Year: 2024},
		},
	}

	buf, filename, err := svc.Export(summary)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "thong-ke-doanh-thu-"))
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	sheet := f.GetSheetName(0)

	title, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Thống kê doanh thu - Tháng 02/2024", title)

	header, err := f.GetCellValue(sheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "Số đơn hàng", header)

	label, err := f.GetCellValue(sheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "01/02/2024", label)

	revenue, err := f.GetCellValue(sheet, "D3")
	require.NoError(t, err)
	assert.Equal(t, "100000", revenue)

	// zero bucket still gets a dense row
	zero, err := f.GetCellValue(sheet, "D4")
	require.NoError(t, err)
	assert.Equal(t, "0", zero)
}

func TestBucketLabelYearMode(t *testing.T) {
	assert.Equal(t, "Tháng 3/2024", bucketLabel(Bucket{Month: 3, Year: 2024}))
	assert.Equal(t, "15/03/2024", bucketLabel(Bucket{Day: 15, Month: 3, Year: 2024}))
}
