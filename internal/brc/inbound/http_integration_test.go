package inbound

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/gobrc/internal/brc/engine"
	"github.com/shandysiswandi/gobrc/internal/brc/entity"
	"github.com/shandysiswandi/gobrc/internal/brc/event"
	"github.com/shandysiswandi/gobrc/internal/brc/store"
	"github.com/shandysiswandi/gobrc/internal/brc/usecase"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkguid"
)

type envelope[T any] struct {
	Message string         `json:"message"`
	Data    T              `json:"data"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func newTestRouter(t *testing.T) (http.Handler, *pkgroutine.Manager) {
	t.Helper()

	ids, err := pkguid.NewSnowflake(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}

	runner := pkgroutine.NewManager(4)
	bus := event.NewBus(10)
	t.Cleanup(bus.Close)

	uc := usecase.New(usecase.Dependency{
		Store:   store.NewInMemoryStore(),
		Engine:  engine.New(engine.Config{MaxWorkers: 4}),
		Events:  bus,
		Runner:  runner,
		ID:      ids,
		RootCtx: context.Background(),
	})

	router := pkgrouter.NewRouter(pkguid.NewUUID())
	RegisterHTTPEndpoint(router, uc)

	return router, runner
}

func TestSubmitProcessQuery(t *testing.T) {
	router, runner := newTestRouter(t)

	path := filepath.Join(t.TempDir(), "measurements.txt")
	content := "Hamburg;12.0\nBulawayo;8.9\nPalembang;38.8\nHamburg;-3.4\nBulawayo;20.1\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}

	jobID := submitJob(t, router, `{"path":"`+path+`","workers":2}`)

	var job JobResponse
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		job = getJob(t, router, jobID)
		if job.Status.Finished() {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	if job.Status != entity.JobStatusDone {
		t.Fatalf("job not done, status=%s error=%s", job.Status, job.Error)
	}
	want := "{Bulawayo=8.9/14.50/20.1, Hamburg=-3.4/4.30/12.0, Palembang=38.8/38.80/38.8}"
	if job.Output != want {
		t.Fatalf("unexpected output %q", job.Output)
	}
	if job.Lines != 5 || job.Stations != 3 {
		t.Fatalf("unexpected counters: %+v", job)
	}

	stations := getStations(t, router, jobID, "?prefix=B&page=1&page_size=10")
	if len(stations.Data.Stations) != 1 {
		t.Fatalf("expected 1 station, got %+v", stations.Data.Stations)
	}
	got := stations.Data.Stations[0]
	if got.Name != "Bulawayo" || got.Min != "8.9" || got.Mean != "14.50" || got.Max != "20.1" || got.Count != 2 {
		t.Fatalf("unexpected station: %+v", got)
	}
	if stations.Meta["total"] != float64(1) {
		t.Fatalf("unexpected meta: %v", stations.Meta)
	}

	if err := runner.Wait(); err != nil {
		t.Fatalf("runner wait: %v", err)
	}
}

func TestSubmitRejectsBadRequests(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "malformed json", body: `{"path":`, want: http.StatusBadRequest},
		{name: "unknown field", body: `{"file":"x"}`, want: http.StatusBadRequest},
		{name: "empty body", body: ``, want: http.StatusUnprocessableEntity},
		{name: "missing path", body: `{"workers":2}`, want: http.StatusUnprocessableEntity},
		{name: "missing file", body: `{"path":"/does/not/exist.txt"}`, want: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestUnknownJob(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, target := range []string{"/jobs/404", "/jobs/404/stations"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", target, rec.Code)
		}
	}
}

func TestStationsInvalidPagination(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/jobs/1/stations?page=0", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func submitJob(t *testing.T, router http.Handler, body string) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("unexpected status: %d: %s", rec.Code, rec.Body.String())
	}

	var env envelope[SubmitResponse]
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode submit response: %v", err)
	}
	if env.Data.JobID == "" {
		t.Fatal("job id is empty")
	}

	return env.Data.JobID
}

func getJob(t *testing.T, router http.Handler, jobID string) JobResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/jobs/"+jobID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected job status: %d", rec.Code)
	}

	var env envelope[JobResponse]
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode job: %v", err)
	}

	return env.Data
}

func getStations(t *testing.T, router http.Handler, jobID, query string) envelope[StationsResponse] {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/jobs/"+jobID+"/stations"+query, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected stations status: %d: %s", rec.Code, rec.Body.String())
	}

	var env envelope[StationsResponse]
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode stations: %v", err)
	}

	return env
}
