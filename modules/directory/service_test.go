package directory_test

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userdir/handler"
	"github.com/dmitrymomot/userdir/modules/directory"
)

func newService(t *testing.T, f directory.Fetcher) (*directory.Controller, *directory.Screen, http.Handler) {
	t.Helper()
	ctl, screen := newController(f, directory.WithSearchDebounce(10*time.Millisecond))
	t.Cleanup(ctl.Close)
	svc := directory.NewService(ctl, screen,
		directory.WithServiceLogger(quiet),
		directory.WithNationalities([]string{"us", "gb"}),
	)
	return ctl, screen, svc.Handle()
}

func post(h http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServicePage(t *testing.T) {
	t.Parallel()

	ctl, _, h := newService(t, static(ann, bo))
	require.NoError(t, ctl.Fetch(context.Background()))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Ann Lee")
	assert.Contains(t, body, "Bo Ng")
	assert.Contains(t, body, "United Kingdom (GB)")
}

func TestServiceNationalityAppliesImmediately(t *testing.T) {
	t.Parallel()

	ctl, screen, h := newService(t, static(ann, bo))
	require.NoError(t, ctl.Fetch(context.Background()))

	rec := post(h, "/nationality", `{"query":"","nat":"GB"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []directory.User{bo}, screen.Snapshot().Cards)
}

func TestServiceSearchIsDebounced(t *testing.T) {
	t.Parallel()

	ctl, screen, h := newService(t, static(ann, bo))
	require.NoError(t, ctl.Fetch(context.Background()))

	assert.Equal(t, http.StatusNoContent, post(h, "/search", `{"query":"b","nat":""}`).Code)
	assert.Equal(t, http.StatusNoContent, post(h, "/search", `{"query":"ann","nat":""}`).Code)

	assert.Eventually(t, func() bool {
		cards := screen.Snapshot().Cards
		return len(cards) == 1 && cards[0].ID == ann.ID
	}, time.Second, 5*time.Millisecond)
}

func TestServiceRejectsInvalidSignals(t *testing.T) {
	t.Parallel()

	_, _, h := newService(t, static(ann))

	assert.Equal(t, http.StatusBadRequest, post(h, "/nationality", `{"nat":"XX"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, "/search", `{"query":`).Code)
}

func TestServiceRefresh(t *testing.T) {
	t.Parallel()

	ctl, _, h := newService(t, static(ann))

	assert.Equal(t, http.StatusNoContent, post(h, "/refresh", `{}`).Code)
	assert.Eventually(t, func() bool { return ctl.Ready(context.Background()) == nil }, time.Second, 5*time.Millisecond)
}

func TestServiceContactQR(t *testing.T) {
	t.Parallel()

	ctl, _, h := newService(t, static(ann))
	require.NoError(t, ctl.Fetch(context.Background()))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/u-ann/qr", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/nobody/qr", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServiceStream(t *testing.T) {
	t.Parallel()

	ctl, _, h := newService(t, static(ann, bo))
	require.NoError(t, ctl.Fetch(context.Background()))

	srv := httptest.NewServer(h)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/stream", nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Datastar-Request", "true")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	lines := make(chan string, 256)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(resp.Body)
		sc.Buffer(make([]byte, 64<<10), 1<<20)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()

	waitFor := func(substr string) {
		t.Helper()
		deadline := time.After(2 * time.Second)
		for {
			select {
			case line, ok := <-lines:
				require.True(t, ok, "stream ended before %q", substr)
				if strings.Contains(line, substr) {
					return
				}
			case <-deadline:
				t.Fatalf("timed out waiting for %q", substr)
			}
		}
	}

	// snapshot first: message, spinner, cards
	waitFor(`id="message"`)
	waitFor(`id="spinner"`)
	waitFor(`id="cards"`)
	waitFor("Bo Ng")

	ctl.ApplyFilters(directory.Criteria{Query: "zzz"})
	waitFor(directory.NoResultsMessage)
}

// gatedWriter is a flushable ResponseWriter whose writes wait for the gate
// to open. blocked closes when the first write arrives.
type gatedWriter struct {
	header  http.Header
	gate    chan struct{}
	blocked chan struct{}
	once    sync.Once

	mu   sync.Mutex
	body bytes.Buffer
}

func newGatedWriter() *gatedWriter {
	return &gatedWriter{
		header:  http.Header{},
		gate:    make(chan struct{}),
		blocked: make(chan struct{}),
	}
}

func (w *gatedWriter) Header() http.Header { return w.header }
func (w *gatedWriter) WriteHeader(int) {}
func (w *gatedWriter) Flush() {}

func (w *gatedWriter) Write(p []byte) (int, error) {
	w.once.Do(func() { close(w.blocked) })
	<-w.gate
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.body.Write(p)
}

func (w *gatedWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.body.String()
}

// lastEvent returns the last SSE event in body that contains marker.
func lastEvent(body, marker string) string {
	i := strings.LastIndex(body, marker)
	if i < 0 {
		return ""
	}
	rest := body[i:]
	if end := strings.Index(rest, "\n\n"); end >= 0 {
		rest = rest[:end]
	}
	return rest
}

func TestServiceStreamResyncsAfterFallingBehind(t *testing.T) {
	t.Parallel()

	ctl, screen, h := newService(t, static(ann, bo))
	require.NoError(t, ctl.Fetch(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := httptest.NewRequest(http.MethodGet, "/stream", nil).WithContext(ctx)
	r.Header.Set("Accept", "text/event-stream")
	w := newGatedWriter()

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.ServeHTTP(w, r)
	}()

	select {
	case <-w.blocked:
	case <-time.After(2 * time.Second):
		t.Fatal("stream never wrote its snapshot")
	}

	// The stream is subscribed but stuck on its first write, so these
	// changes overflow its buffer.
	for i := range 40 {
		q := "ann"
		if i%2 == 1 {
			q = "bo"
		}
		ctl.ApplyFilters(directory.Criteria{Query: q})
	}
	assert.Zero(t, screen.Watchers(), "stream that fell behind is dropped")

	close(w.gate)

	require.Eventually(t, func() bool {
		body := w.String()
		return strings.Count(body, `id="spinner"`) >= 2 &&
			strings.LastIndex(body, `id="cards"`) > strings.LastIndex(body, `id="spinner"`)
	}, 2*time.Second, 5*time.Millisecond, "snapshot is resent after resubscribing")
	assert.Equal(t, 1, screen.Watchers())

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not end after the client left")
	}

	cards := lastEvent(w.String(), `id="cards"`)
	assert.Contains(t, cards, "Bo Ng")
	assert.NotContains(t, cards, "Ann Lee")
}

type failingWriter struct {
	header http.Header
}

func (w *failingWriter) Header() http.Header { return w.header }
func (w *failingWriter) WriteHeader(int) {}
func (w *failingWriter) Flush() {}
func (w *failingWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestServiceStreamWriteFailureIsNotARequestError(t *testing.T) {
	t.Parallel()

	ctl, screen := newController(static(ann))
	t.Cleanup(ctl.Close)

	var logs bytes.Buffer
	var handled []error
	svc := directory.NewService(ctl, screen,
		directory.WithServiceLogger(slog.New(slog.NewTextHandler(&logs, nil))),
		directory.WithErrorHandler(func(_ handler.Context, err error) { handled = append(handled, err) }),
	)

	r := httptest.NewRequest(http.MethodGet, "/stream", nil)
	r.Header.Set("Accept", "text/event-stream")
	svc.Handle().ServeHTTP(&failingWriter{header: http.Header{}}, r)

	assert.Empty(t, handled)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), `msg="stream closed"`)
	assert.Contains(t, logs.String(), "connection reset")
	assert.NotContains(t, logs.String(), "level=ERROR")
}
