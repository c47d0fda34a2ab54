package sink

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptpilot/exporter"
)

func TestDirSaver_WritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	s := DirSaver{Dir: dir}

	path, err := s.Save(context.Background(), exporter.Payload{Data: []byte("hello"), Filename: "code-1.txt"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "code-1.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestDirSaver_StripsDirectoriesFromName(t *testing.T) {
	dir := t.TempDir()
	path, err := DirSaver{Dir: dir}.Save(context.Background(), exporter.Payload{Data: []byte("x"), Filename: "../../escape.txt"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "escape.txt"), path)
}

func TestDirSaver_Errors(t *testing.T) {
	_, err := DirSaver{}.Save(context.Background(), exporter.Payload{Filename: "a.txt"})
	assert.Error(t, err)

	_, err = DirSaver{Dir: t.TempDir()}.Save(context.Background(), exporter.Payload{Filename: ""})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = DirSaver{Dir: t.TempDir()}.Save(ctx, exporter.Payload{Filename: "a.txt"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryClipboard(t *testing.T) {
	var c MemoryClipboard
	_, ok := c.Text()
	assert.False(t, ok)

	require.NoError(t, c.Copy(context.Background(), "one"))
	require.NoError(t, c.Copy(context.Background(), "two"))
	got, ok := c.Text()
	assert.True(t, ok)
	assert.Equal(t, "two", got)
}

func TestWebhookSharer(t *testing.T) {
	var got ShareRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	out, err := NewWebhookSharer(srv.URL, nil).Share(context.Background(), ShareRequest{ID: "1", Title: "code Result", Text: "body"})
	require.NoError(t, err)
	assert.Equal(t, MethodNative, out.Method)
	assert.Equal(t, ShareRequest{ID: "1", Title: "code Result", Text: "body"}, got)
}

func TestWebhookSharer_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewWebhookSharer(srv.URL, srv.Client()).Share(context.Background(), ShareRequest{ID: "1"})
	assert.Error(t, err)
}

type fakeSharer struct {
	err error
	n   int
}

func (f *fakeSharer) Share(context.Context, ShareRequest) (ShareOutcome, error) {
	f.n++
	if f.err != nil {
		return ShareOutcome{}, f.err
	}
	return ShareOutcome{Method: MethodNative}, nil
}

func TestFallbackSharer_UsesNativeWhenAvailable(t *testing.T) {
	native := &fakeSharer{}
	clip := &MemoryClipboard{}
	s := &FallbackSharer{Native: native, Clipboard: clip, BaseURL: "http://localhost:8080"}

	out, err := s.Share(context.Background(), ShareRequest{ID: "42"})
	require.NoError(t, err)
	assert.Equal(t, MethodNative, out.Method)
	_, copied := clip.Text()
	assert.False(t, copied)
}

func TestFallbackSharer_CopiesShareURL(t *testing.T) {
	for name, native := range map[string]Sharer{
		"no native":     nil,
		"native failed": &fakeSharer{err: errors.New("unavailable")},
	} {
		t.Run(name, func(t *testing.T) {
			clip := &MemoryClipboard{}
			s := &FallbackSharer{Native: native, Clipboard: clip, BaseURL: "http://localhost:8080/"}

			out, err := s.Share(context.Background(), ShareRequest{ID: "42"})
			require.NoError(t, err)
			assert.Equal(t, MethodClipboard, out.Method)
			assert.Equal(t, "http://localhost:8080/shared/42", out.URL)

			text, _ := clip.Text()
			assert.Equal(t, out.URL, text)
		})
	}
}

func TestFallbackSharer_NoSurface(t *testing.T) {
	_, err := (&FallbackSharer{}).Share(context.Background(), ShareRequest{ID: "1"})
	assert.Error(t, err)
}
