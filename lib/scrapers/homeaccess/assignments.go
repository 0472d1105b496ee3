package homeaccess

import (
	"context"
	"fmt"
	"log/slog"

	"hacview-backend/lib/htmlutil"
	"hacview-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

// the assignment table is fixed-width; column 2 is a spacer
var assignmentColumns = htmlutil.Columns{
	"dateDue":      0,
	"dateAssigned": 1,
	"category":     3,
	"score":        4,
	"totalPoints":  5,
}

// one past the highest mapped index
const assignmentColumnCount = 6

// FetchCourses scrapes the assignments page into one Course per class
// block, each with its header grades and assignment rows. A malformed
// assignment row is dropped without failing its siblings; a malformed
// class header fails the whole fetch.
func (c *Client) FetchCourses(ctx context.Context) ([]Course, error) {
	ctx, span := tracer.Start(ctx, "client:FetchCourses")
	defer span.End()

	doc, err := c.fetchDocument(ctx, assignmentsPath)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch assignments page")
		return nil, err
	}

	courses, err := extractCourses(ctx, doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract courses")
		return nil, err
	}
	return courses, nil
}

func extractCourses(ctx context.Context, doc *goquery.Document) ([]Course, error) {
	var courses []Course
	var extractErr error

	doc.Find("div.AssignmentClass").Each(func(_ int, class *goquery.Selection) {
		if extractErr != nil {
			return
		}
		course, err := extractCourse(ctx, class)
		if err != nil {
			extractErr = err
			return
		}
		courses = append(courses, course)
	})

	return courses, extractErr
}

func extractCourse(ctx context.Context, class *goquery.Selection) (Course, error) {
	header := class.Find("div.sg-header.sg-header-square")

	name := header.Find("a.sg-header-heading")
	if len(name.Nodes) == 0 {
		return Course{}, fmt.Errorf("course heading: %w", ErrMissingElement)
	}
	lastUpdated := header.Find("span.sg-header-sub-heading")
	if len(lastUpdated.Nodes) == 0 {
		return Course{}, fmt.Errorf("course sub heading: %w", ErrMissingElement)
	}
	grade := header.Find("span.sg-header-heading.sg-right")
	if len(grade.Nodes) == 0 {
		return Course{}, fmt.Errorf("course grade heading: %w", ErrMissingElement)
	}

	course := Course{
		Name: htmlutil.CleanText(name.Nodes[0]),
		LastUpdated: textutil.StripEnclosing(
			lastUpdated.First().Text(), "(Last Updated: ", ")",
		),
		Grade: textutil.StripEnclosing(
			htmlutil.CleanText(grade.Nodes[0]), "Student Grades ", "%",
		),
	}

	class.Find("div.sg-content-grid tr.sg-asp-table-data-row").
		Each(func(_ int, row *goquery.Selection) {
			assignment, ok := extractAssignment(row)
			if !ok {
				// expected noise: filler and average rows don't
				// have the full column set
				slog.DebugContext(
					ctx, "skipping malformed assignment row",
					"course", course.Name,
				)
				return
			}
			course.Assignments = append(course.Assignments, assignment)
		})

	return course, nil
}

func extractAssignment(row *goquery.Selection) (Assignment, bool) {
	link := row.Find("a")
	if len(link.Nodes) == 0 {
		return Assignment{}, false
	}
	cells := htmlutil.Cells(row)
	if len(cells) < assignmentColumnCount {
		return Assignment{}, false
	}

	return Assignment{
		Name:         htmlutil.CleanText(link.Nodes[0]),
		Category:     assignmentColumns.Get(cells, "category"),
		DateAssigned: assignmentColumns.Get(cells, "dateAssigned"),
		DateDue:      assignmentColumns.Get(cells, "dateDue"),
		Score:        assignmentColumns.Get(cells, "score"),
		TotalPoints:  assignmentColumns.Get(cells, "totalPoints"),
	}, true
}
