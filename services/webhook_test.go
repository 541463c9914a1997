package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type lead struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type recordingNotifier struct {
	mu    sync.Mutex
	paths []string
	last  map[string]interface{}
	err   error
}

func (r *recordingNotifier) Name() string { return "recording" }

func (r *recordingNotifier) Notify(ctx context.Context, path string, payload map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	r.last = payload
	return r.err
}

func TestWebhookNotifier_PostsPayload(t *testing.T) {
	type received struct {
		path        string
		contentType string
		body        map[string]interface{}
	}
	got := make(chan received, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		got <- received{path: r.URL.Path, contentType: r.Header.Get("Content-Type"), body: body}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := NewForwarder(zap.NewNop(), time.Second, NewWebhookNotifier(srv.URL, srv.Client()))
	f.Forward("service-inquiry", lead{ID: "l-1", Name: "Jane Doe", Email: "jane@x.com"})
	f.Wait()

	select {
	case r := <-got:
		assert.Equal(t, "/service-inquiry", r.path)
		assert.Equal(t, "application/json", r.contentType)
		assert.Equal(t, "Jane Doe", r.body["name"])
		assert.Equal(t, "jane@x.com", r.body["email"])
		ts, ok := r.body["timestamp"].(string)
		require.True(t, ok)
		_, err := time.Parse(time.RFC3339, ts)
		assert.NoError(t, err)
	default:
		t.Fatal("webhook was not called")
	}
}

func TestWebhookNotifier_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, nil)
	err := n.Notify(context.Background(), "quote", map[string]interface{}{"name": "x"})
	assert.Error(t, err)
}

func TestForwarder_FailuresAreSwallowed(t *testing.T) {
	failing := &recordingNotifier{err: errors.New("endpoint down")}
	ok := &recordingNotifier{}

	f := NewForwarder(zap.NewNop(), time.Second, failing, ok)
	assert.NotPanics(t, func() {
		f.Forward("contact", lead{ID: "l-2", Name: "Sam"})
		f.Wait()
	})

	assert.Equal(t, []string{"contact"}, failing.paths)
	assert.Equal(t, []string{"contact"}, ok.paths)
	assert.Equal(t, "Sam", ok.last["name"])
	assert.Contains(t, ok.last, "timestamp")
}

func TestForwarder_UnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	f := NewForwarder(zap.NewNop(), 200*time.Millisecond, NewWebhookNotifier(url, nil))
	f.Forward("feedback", lead{ID: "l-3"})
	f.Wait()
}

func TestForwarder_NilAndEmptyAreNoops(t *testing.T) {
	var f *Forwarder
	assert.NotPanics(t, func() {
		f.Forward("quote", lead{})
		f.Wait()
	})

	empty := NewForwarder(zap.NewNop(), 0)
	assert.NotPanics(t, func() {
		empty.Forward("quote", lead{})
		empty.Wait()
	})
}
