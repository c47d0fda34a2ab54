package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	MethodNative    = "native"
	MethodClipboard = "clipboard"
)

type ShareRequest struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ShareOutcome tells the caller which surface took the share.
type ShareOutcome struct {
	Method string `json:"method"`
	URL    string `json:"url,omitempty"`
}

type Sharer interface {
	Share(ctx context.Context, req ShareRequest) (ShareOutcome, error)
}

// WebhookSharer is the native share surface: it posts the request as JSON
// to URL.
type WebhookSharer struct {
	URL    string
	Client *http.Client
}

func NewWebhookSharer(url string, client *http.Client) *WebhookSharer {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &WebhookSharer{URL: url, Client: client}
}

func (w *WebhookSharer) Share(ctx context.Context, req ShareRequest) (ShareOutcome, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return ShareOutcome{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return ShareOutcome{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := w.Client.Do(httpReq)
	if err != nil {
		return ShareOutcome{}, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ShareOutcome{}, fmt.Errorf("share webhook: unexpected status %d", resp.StatusCode)
	}
	return ShareOutcome{Method: MethodNative}, nil
}

// FallbackSharer tries Native first. When it is unset or fails, the share
// link {BaseURL}/shared/{id} goes to the clipboard instead.
type FallbackSharer struct {
	Native    Sharer
	Clipboard Clipboard
	BaseURL   string
	Log       *zap.Logger
}

func (f *FallbackSharer) Share(ctx context.Context, req ShareRequest) (ShareOutcome, error) {
	var nativeErr error
	if f.Native != nil {
		out, err := f.Native.Share(ctx, req)
		if err == nil {
			return out, nil
		}
		nativeErr = err
		if f.Log != nil {
			f.Log.Warn("native share failed, falling back to clipboard", zap.String("id", req.ID), zap.Error(err))
		}
	}

	if f.Clipboard == nil {
		return ShareOutcome{}, errors.Join(errors.New("no share surface available"), nativeErr)
	}
	url := ShareURL(f.BaseURL, req.ID)
	if err := f.Clipboard.Copy(ctx, url); err != nil {
		return ShareOutcome{}, errors.Join(fmt.Errorf("copy share url: %w", err), nativeErr)
	}
	return ShareOutcome{Method: MethodClipboard, URL: url}, nil
}

func ShareURL(base, id string) string {
	return strings.TrimSuffix(base, "/") + "/shared/" + id
}
