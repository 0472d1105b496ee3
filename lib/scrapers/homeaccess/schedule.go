package homeaccess

import (
	"context"
	"log/slog"

	"hacview-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

var scheduleColumns = htmlutil.Columns{
	"courseCode":     0,
	"courseName":     1,
	"periods":        2,
	"teacher":        3,
	"room":           4,
	"days":           5,
	"markingPeriods": 6,
	"building":       7,
	"status":         8,
}

// FetchSchedule scrapes the schedule table of the classes page. Rows
// with fewer than four cells are header/footer noise and are dropped;
// short-but-real rows read missing columns as empty strings instead
// of failing the page.
func (c *Client) FetchSchedule(ctx context.Context) ([]ScheduleEntry, error) {
	ctx, span := tracer.Start(ctx, "client:FetchSchedule")
	defer span.End()

	doc, err := c.fetchDocument(ctx, schedulePath)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch classes page")
		return nil, err
	}

	return extractSchedule(ctx, doc), nil
}

func extractSchedule(ctx context.Context, doc *goquery.Document) []ScheduleEntry {
	var schedule []ScheduleEntry

	doc.Find("tr.sg-asp-table-data-row").Each(func(_ int, row *goquery.Selection) {
		cells := htmlutil.Cells(row)
		if len(cells) <= 3 {
			slog.DebugContext(ctx, "skipping short schedule row", "cells", len(cells))
			return
		}

		schedule = append(schedule, ScheduleEntry{
			Building:       scheduleColumns.Get(cells, "building"),
			CourseCode:     scheduleColumns.Get(cells, "courseCode"),
			CourseName:     scheduleColumns.Get(cells, "courseName"),
			Days:           scheduleColumns.Get(cells, "days"),
			MarkingPeriods: scheduleColumns.Get(cells, "markingPeriods"),
			Periods:        scheduleColumns.Get(cells, "periods"),
			Room:           scheduleColumns.Get(cells, "room"),
			Status:         scheduleColumns.Get(cells, "status"),
			Teacher:        scheduleColumns.Get(cells, "teacher"),
		})
	})

	return schedule
}
