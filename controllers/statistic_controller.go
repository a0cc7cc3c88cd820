package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/quark1412/FoodyRush-sub000/pkg/resp"
	"github.com/quark1412/FoodyRush-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/sirupsen/logrus"
)

type StatisticController struct {
	svc    *services.StatisticService
	export *services.ExportService
}

func NewStatisticController(svc *services.StatisticService, export *services.ExportService) *StatisticController {
	return &StatisticController{svc: svc, export: export}
}

// summaryFromQuery resolves ?type=week|month|year plus its anchor params.
func (sc *StatisticController) summaryFromQuery(c *gin.Context) (*services.StatSummary, error) {
	granularity := c.DefaultQuery("type", "week")
	now := time.Now()

	switch granularity {
	case "week":
		anchor := now
		if raw := c.Query("date"); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", raw)
			}
			anchor = parsed
		}
		return sc.svc.Week(anchor)
	case "month":
		month, _ := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
		year, _ := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
		if month < 1 || month > 12 {
			return nil, fmt.Errorf("invalid month %d", month)
		}
		return sc.svc.Month(month, year)
	case "year":
		year, _ := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
		return sc.svc.Year(year)
	default:
		return nil, fmt.Errorf("invalid type %q, want week, month or year", granularity)
	}
}

// GET /admin/statistics
func (sc *StatisticController) Summary(c *gin.Context) {
	summary, err := sc.summaryFromQuery(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, summary)
}

// GET /admin/statistics/export — streams the xlsx workbook
func (sc *StatisticController) Export(c *gin.Context) {
	summary, err := sc.summaryFromQuery(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	buf, filename, err := sc.export.Export(summary)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	logrus.WithField("filename", filename).Info("statistics exported")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// GET /admin/statistics/chart — server-rendered revenue chart
func (sc *StatisticController) Chart(c *gin.Context) {
	summary, err := sc.summaryFromQuery(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	labels := make([]string, 0, len(summary.Chart))
	data := make([]opts.LineData, 0, len(summary.Chart))
	for _, p := range summary.Chart {
		labels = append(labels, p.Date)
		data = append(data, opts.LineData{Value: p.Revenue})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Doanh thu", Subtitle: summary.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(labels).AddSeries("Doanh thu", data)

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := line.Render(c.Writer); err != nil {
		logrus.WithError(err).Error("render statistics chart")
	}
}
