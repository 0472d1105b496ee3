package hacapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hacview-backend/lib/scrapers/homeaccess"
	"hacview-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func newApiServer(t testing.TB) *httptest.Server {
	requireCreds := func(w http.ResponseWriter, r *http.Request) bool {
		query := r.URL.Query()
		if query.Get("username") != "student" || query.Get("password") != "hunter2" {
			http.Error(w, "invalid credentials", http.StatusBadRequest)
			return false
		}
		return true
	}
	writeJson := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/info", func(w http.ResponseWriter, r *http.Request) {
		if !requireCreds(w, r) {
			return
		}
		writeJson(w, homeaccess.StudentInfo{
			Id:           "123456",
			Name:         "Jordan A. Example",
			TotalCredits: "0",
		})
	})
	mux.HandleFunc("/api/currentclasses", func(w http.ResponseWriter, r *http.Request) {
		if !requireCreds(w, r) {
			return
		}
		writeJson(w, []homeaccess.Course{
			{Name: "2201 - 05 AP English III", Grade: "93.40"},
			{Name: "4410 - 02 HN Chemistry I", Grade: ""},
		})
	})
	mux.HandleFunc("/api/schedule", func(w http.ResponseWriter, r *http.Request) {
		if !requireCreds(w, r) {
			return
		}
		writeJson(w, []homeaccess.ScheduleEntry{
			{CourseCode: "2201 - 05", CourseName: "AP English III"},
		})
	})

	return httptest.NewServer(mux)
}

func TestClient(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:hacapi")
	defer cleanup()

	server := newApiServer(t)
	defer server.Close()

	client := NewClient(ClientOptions{BaseUrl: server.URL})
	ctx := context.Background()
	creds := Credentials{Username: "student", Password: "hunter2"}

	info, err := client.FetchInfo(ctx, creds)
	require.NoError(t, err)
	require.Equal(t, "Jordan A. Example", info.Name)

	classes, err := client.FetchCurrentClasses(ctx, creds)
	require.NoError(t, err)
	require.Len(t, classes, 2)
	require.Equal(t, "93.40", classes[0].Grade)

	schedule, err := client.FetchSchedule(ctx, creds)
	require.NoError(t, err)
	require.Len(t, schedule, 1)

	_, err = client.FetchInfo(ctx, Credentials{Username: "student", Password: "wrong"})
	require.Error(t, err)
}
