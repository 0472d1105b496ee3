package homeaccess

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

// FetchStudentInfo scrapes the registration page into a StudentInfo.
// Some campuses render the page without the student-id label; in that
// case the id is looked up on the classes page instead, which carries
// the same element. Any other missing label fails the whole fetch.
func (c *Client) FetchStudentInfo(ctx context.Context) (StudentInfo, error) {
	ctx, span := tracer.Start(ctx, "client:FetchStudentInfo")
	defer span.End()

	doc, err := c.fetchDocument(ctx, registrationPath)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch registration page")
		return StudentInfo{}, err
	}

	info, hasId, err := extractStudentInfo(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract student info")
		return StudentInfo{}, err
	}
	if !hasId {
		span.AddEvent("student id missing, falling back to classes page")

		scheduleDoc, err := c.fetchDocument(ctx, schedulePath)
		if err != nil {
			span.SetStatus(codes.Error, "failed to fetch classes page")
			return StudentInfo{}, err
		}
		info.Id, err = labelText(scheduleDoc, "plnMain_lblRegStudentID")
		if err != nil {
			span.SetStatus(codes.Error, "student id missing on both pages")
			return StudentInfo{}, err
		}
	}

	return info, nil
}

func extractStudentInfo(doc *goquery.Document) (StudentInfo, bool, error) {
	info := StudentInfo{
		TotalCredits: "0",
	}

	var err error
	for _, field := range []struct {
		dst *string
		id  string
	}{
		{&info.Name, "plnMain_lblRegStudentName"},
		{&info.Birthdate, "plnMain_lblBirthDate"},
		{&info.Campus, "plnMain_lblBuildingName"},
		{&info.Grade, "plnMain_lblGrade"},
		{&info.Counselor, "plnMain_lblCounselor"},
	} {
		*field.dst, err = labelText(doc, field.id)
		if err != nil {
			return StudentInfo{}, false, err
		}
	}

	id, err := labelText(doc, "plnMain_lblRegStudentID")
	if err != nil {
		return info, false, nil
	}
	info.Id = id
	return info, true, nil
}

func labelText(doc *goquery.Document, id string) (string, error) {
	sel := doc.Find("#" + id)
	if len(sel.Nodes) == 0 {
		return "", fmt.Errorf("#%s: %w", id, ErrMissingElement)
	}
	return strings.TrimSpace(sel.First().Text()), nil
}
