package studentdata

import (
	"context"
	"testing"

	"hacview-backend/lib/gpa"
	"hacview-backend/lib/scrapers/homeaccess"
	"hacview-backend/lib/telemetry"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type fakePortal struct {
	loginErr error
	info     homeaccess.StudentInfo
	infoErr  error
	courses  []homeaccess.Course
	schedule []homeaccess.ScheduleEntry
}

func (f fakePortal) Login(ctx context.Context, username, password string) error {
	return f.loginErr
}

func (f fakePortal) FetchStudentInfo(ctx context.Context) (homeaccess.StudentInfo, error) {
	return f.info, f.infoErr
}

func (f fakePortal) FetchCourses(ctx context.Context) ([]homeaccess.Course, error) {
	return f.courses, nil
}

func (f fakePortal) FetchSchedule(ctx context.Context) ([]homeaccess.ScheduleEntry, error) {
	return f.schedule, nil
}

func setup(t testing.TB, portal fakePortal) (Service, func()) {
	cleanup := telemetry.SetupForTesting(t, "test:services/studentdata")
	service := Service{
		newClient: func(ctx context.Context) (portalClient, error) {
			return portal, nil
		},
	}
	return service, cleanup
}

func ptr(v float64) *float64 {
	return &v
}

func TestLogin(t *testing.T) {
	service, cleanup := setup(t, fakePortal{
		info: homeaccess.StudentInfo{
			Id:           "123456",
			Name:         "Jordan A. Example",
			TotalCredits: "0",
		},
		courses: []homeaccess.Course{
			{
				Name:  "2201 - 05 AP English III",
				Grade: "93.40",
				Assignments: []homeaccess.Assignment{
					{Name: "Synthesis Essay Draft", Score: "95.00", TotalPoints: "100.00"},
				},
			},
			{Name: "4410 - 02 HN Chemistry I", Grade: ""},
		},
		schedule: []homeaccess.ScheduleEntry{
			{CourseCode: "2201 - 05", CourseName: "AP English III"},
		},
	})
	defer cleanup()

	data, err := service.Login(context.Background(), "student", "hunter2")
	require.NoError(t, err)

	expected := &Data{
		StudentInfo: homeaccess.StudentInfo{
			Id:           "123456",
			Name:         "Jordan A. Example",
			TotalCredits: "0",
		},
		Classes: []Class{
			{
				Name:  "AP English III",
				Grade: ptr(93.40),
				Assignments: []homeaccess.Assignment{
					{Name: "Synthesis Essay Draft", Score: "95.00", TotalPoints: "100.00"},
				},
			},
			// ungraded: listed, nil grade, no GPA contribution
			{Name: "HN Chemistry I", Grade: nil},
		},
		// round(93.40) = 93 -> 6.0 - 0.7 = 5.3 over one class
		Gpa: gpa.Result{Weighted: 5.3, Max: 6.0},
		Schedule: []homeaccess.ScheduleEntry{
			{CourseCode: "2201 - 05", CourseName: "AP English III"},
		},
	}
	if diff := cmp.Diff(expected, data); diff != "" {
		t.Fatal(diff)
	}
}

func TestLoginRejected(t *testing.T) {
	service, cleanup := setup(t, fakePortal{
		loginErr: homeaccess.ErrLoginFailed,
	})
	defer cleanup()

	_, err := service.Login(context.Background(), "student", "wrong")
	require.ErrorIs(t, err, ErrAuthentication)
}

func TestMissingMarkup(t *testing.T) {
	service, cleanup := setup(t, fakePortal{
		infoErr: homeaccess.ErrMissingElement,
	})
	defer cleanup()

	_, err := service.Login(context.Background(), "student", "hunter2")
	require.ErrorIs(t, err, ErrExtraction)
}

func TestClassify(t *testing.T) {
	require.NoError(t, Classify(nil))
	require.ErrorIs(t, Classify(homeaccess.ErrLoginFailed), ErrAuthentication)
	require.ErrorIs(t, Classify(homeaccess.ErrMissingElement), ErrExtraction)
	require.ErrorIs(t, Classify(context.DeadlineExceeded), ErrTransport)
}

func TestAssembleClassesUnparseableGrade(t *testing.T) {
	classes, result := AssembleClasses(context.Background(), []homeaccess.Course{
		{Name: "101 - 01 HN English II", Grade: "N/A"},
	})
	require.Nil(t, classes[0].Grade)
	require.Equal(t, gpa.Result{}, result)
}
