package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microlearn/microlearn/internal/generate"
	"github.com/microlearn/microlearn/internal/lesson"
)

type staticPicker struct{}

func (staticPicker) Pick(context.Context) string { return "Octopus" }

func newTestServer(t *testing.T, mock *generate.MockGenerator) (*httptest.Server, lesson.Store) {
	t.Helper()
	store, err := lesson.NewFSStore(t.TempDir())
	require.NoError(t, err)

	gen := generate.NewService(mock)
	daily := lesson.NewService(store, staticPicker{}, gen)

	r := chi.NewRouter()
	r.Route("/api", func(ar chi.Router) {
		Mount(ar, daily, store, gen)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, store
}

func TestGetLesson(t *testing.T) {
	body := `{"topic":"Octopus","summary":"Eight arms.","quiz":{"question":"How many arms?","options":["Six","Eight"],"correctAnswer":"Eight"}}`
	srv, _ := newTestServer(t, generate.NewMockGenerator(
		generate.MockResponse{Text: body},
	))

	res, err := http.Get(srv.URL + "/api/lesson")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

	var got map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, "Octopus", got["topic"])

	// Second call is served from the store; the mock queue is empty, so a
	// second generation would fail.
	res, err = http.Get(srv.URL + "/api/lesson")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestGetLesson_UpstreamFailure(t *testing.T) {
	srv, _ := newTestServer(t, generate.NewMockGenerator()) // empty queue: upstream error

	res, err := http.Get(srv.URL + "/api/lesson")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)

	var got map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, "Error generating lesson", got["error"])
}

func TestGetArchiveAndHistory(t *testing.T) {
	srv, store := newTestServer(t, generate.NewMockGenerator())
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "2024-06-01", json.RawMessage(`{"topic":"Cats","summary":"..."}`)))
	require.NoError(t, store.Put(ctx, "2024-06-02", json.RawMessage(`{"topic":"Dogs","summary":"..."}`)))

	res, err := http.Get(srv.URL + "/api/archive")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var archive []lesson.ArchiveEntry
	require.NoError(t, json.NewDecoder(res.Body).Decode(&archive))
	require.Len(t, archive, 2)
	assert.Equal(t, "Dogs", archive[0].Topic)

	res, err = http.Get(srv.URL + "/api/history")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var history []lesson.HistoryEntry
	require.NoError(t, json.NewDecoder(res.Body).Decode(&history))
	require.Len(t, history, 2)
	assert.Equal(t, "2024-06-02", history[0].Date)
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	res, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return res
}

func TestCustomSummary_InvalidInput(t *testing.T) {
	srv, _ := newTestServer(t, generate.NewMockGenerator())

	for _, body := range []string{`{}`, `{"input":"   "}`} {
		res := postJSON(t, srv.URL+"/api/custom-summary", body)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		res.Body.Close()
	}
}

func TestCustomSummary_UnparsableIs500(t *testing.T) {
	srv, _ := newTestServer(t, generate.NewMockGenerator(
		generate.MockResponse{Text: "not json"},
	))

	res := postJSON(t, srv.URL+"/api/custom-summary", `{"input":"Octopus"}`)
	defer res.Body.Close()
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)

	var got map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, "Failed to parse AI response.", got["error"])
}

func TestCustomSummary(t *testing.T) {
	srv, _ := newTestServer(t, generate.NewMockGenerator(
		generate.MockResponse{Text: `{"summary":"Clever.","quiz":[{"question":"Q?","options":["A","B"],"correctAnswer":"A"}]}`},
	))

	res := postJSON(t, srv.URL+"/api/custom-summary", `{"input":"Octopus"}`)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got lesson.CustomSummaryResult
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, "Clever.", got.Summary)
	require.Len(t, got.Quiz, 1)
}

func TestFollowUp_MissingInput(t *testing.T) {
	srv, _ := newTestServer(t, generate.NewMockGenerator())

	res := postJSON(t, srv.URL+"/api/followup", `{"topic":"Octopus","summary":"Eight arms."}`)
	defer res.Body.Close()
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	var got map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, "Missing topic, summary, or question.", got["error"])
}

func TestFollowUp(t *testing.T) {
	srv, _ := newTestServer(t, generate.NewMockGenerator(
		generate.MockResponse{Text: "Eight."},
	))

	res := postJSON(t, srv.URL+"/api/followup",
		`{"topic":"Octopus","summary":"Eight arms.","question":"How many arms?"}`)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, "Eight.", got["answer"])
}

// Same-day idempotence across a store shared by two service instances.
func TestDailyLessonIdempotentAcrossInstances(t *testing.T) {
	store, err := lesson.NewFSStore(t.TempDir())
	require.NoError(t, err)

	key := lesson.DateKey(time.Now())
	require.NoError(t, store.Put(context.Background(), key, json.RawMessage(`{"topic":"Cats","summary":"s"}`)))

	for i := 0; i < 2; i++ {
		gen := generate.NewService(generate.NewMockGenerator())
		daily := lesson.NewService(store, staticPicker{}, gen)
		rec, err := daily.Today(context.Background())
		require.NoError(t, err)
		assert.JSONEq(t, `{"topic":"Cats","summary":"s"}`, string(rec))
	}
}
