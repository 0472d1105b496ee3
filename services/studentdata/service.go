// Package studentdata aggregates everything the presentation layer
// needs into one call: portal login, the three page scrapes, and the
// weighted GPA over the graded classes.
package studentdata

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"hacview-backend/lib/gpa"
	"hacview-backend/lib/scrapers/homeaccess"
	"hacview-backend/lib/textutil"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/studentdata")

// Class is a course reshaped for display: the raw name loses its
// course/section/level prefix and the grade string becomes a number.
// A nil Grade means no grade yet; such classes are listed but never
// enter the GPA.
type Class struct {
	Name        string                  `json:"name"`
	Grade       *float64                `json:"grade"`
	Assignments []homeaccess.Assignment `json:"assignments"`
}

type Data struct {
	StudentInfo homeaccess.StudentInfo     `json:"studentInfo"`
	Classes     []Class                    `json:"classes"`
	Gpa         gpa.Result                 `json:"gpa"`
	Schedule    []homeaccess.ScheduleEntry `json:"schedule"`
}

// portalClient is the slice of homeaccess.Client the service uses;
// tests substitute a fixture-backed fake.
type portalClient interface {
	Login(ctx context.Context, username, password string) error
	FetchStudentInfo(ctx context.Context) (homeaccess.StudentInfo, error)
	FetchCourses(ctx context.Context) ([]homeaccess.Course, error)
	FetchSchedule(ctx context.Context) ([]homeaccess.ScheduleEntry, error)
}

type Service struct {
	newClient func(ctx context.Context) (portalClient, error)
}

type ServiceOptions struct {
	BaseUrl string
	// Timeout bounds each portal request; zero takes the scraper
	// default.
	Timeout time.Duration
}

func NewService(opts ServiceOptions) Service {
	return Service{
		newClient: func(ctx context.Context) (portalClient, error) {
			return homeaccess.NewClient(ctx, homeaccess.ClientOptions{
				BaseUrl: opts.BaseUrl,
				Timeout: opts.Timeout,
			})
		},
	}
}

// Login runs the whole pipeline for one set of credentials: a fresh
// portal session, the three page fetches in sequence, then assembly.
// The session lives and dies with this call; nothing is cached across
// requests.
func (s Service) Login(ctx context.Context, username, password string) (*Data, error) {
	ctx, span := tracer.Start(ctx, "service:Login")
	defer span.End()

	client, err := s.newClient(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "failed to construct portal client")
		return nil, Classify(err)
	}

	err = client.Login(ctx, username, password)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to login")
		return nil, Classify(err)
	}

	info, err := client.FetchStudentInfo(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch student info")
		return nil, Classify(err)
	}
	courses, err := client.FetchCourses(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch courses")
		return nil, Classify(err)
	}
	schedule, err := client.FetchSchedule(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch schedule")
		return nil, Classify(err)
	}

	classes, result := AssembleClasses(ctx, courses)
	slog.InfoContext(
		ctx, "aggregated student data",
		"classes", len(classes),
		"schedule_entries", len(schedule),
		"weighted_gpa", result.Weighted,
	)

	return &Data{
		StudentInfo: info,
		Classes:     classes,
		Gpa:         result,
		Schedule:    schedule,
	}, nil
}

// AssembleClasses reshapes raw courses for display and computes the
// weighted GPA over the graded ones. Shared with the lite variant,
// which gets its courses from the remote API instead of the scraper.
func AssembleClasses(ctx context.Context, courses []homeaccess.Course) ([]Class, gpa.Result) {
	classes := make([]Class, len(courses))
	names := make([]string, len(courses))
	grades := make([]*float64, len(courses))

	for i, course := range courses {
		name := textutil.StripTokens(course.Name, 3)

		var grade *float64
		if course.Grade != "" {
			value, err := strconv.ParseFloat(course.Grade, 64)
			if err == nil {
				grade = &value
			} else {
				slog.WarnContext(
					ctx, "unparseable course grade",
					"course", name,
					"grade", course.Grade,
				)
			}
		}

		classes[i] = Class{
			Name:        name,
			Grade:       grade,
			Assignments: course.Assignments,
		}
		names[i] = name
		grades[i] = grade
	}

	return classes, gpa.Weighted(names, grades)
}
