package figma

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestExtractFileKey(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "valid /file/ URL",
			url:  "https://www.figma.com/file/ABC123XYZ/Design-Name",
			want: "ABC123XYZ",
		},
		{
			name: "valid /design/ URL",
			url:  "https://www.figma.com/design/ABC123XYZ/Design-Name",
			want: "ABC123XYZ",
		},
		{
			name: "URL with node-id parameter",
			url:  "https://www.figma.com/design/4gkABR5gEZnIvlCaXmA4KI/Makis-s-file?node-id=11933-305884",
			want: "4gkABR5gEZnIvlCaXmA4KI",
		},
		{
			name: "URL without www subdomain",
			url:  "https://figma.com/file/ABC123XYZ/Design-Name",
			want: "ABC123XYZ",
		},
		{
			name: "URL with trailing slash",
			url:  "https://www.figma.com/file/ABC123XYZ/",
			want: "ABC123XYZ",
		},
		{
			name: "URL with query directly after key",
			url:  "https://www.figma.com/file/ABC123XYZ?node-id=1-2",
			want: "ABC123XYZ",
		},
		{
			name:    "invalid URL - missing file key",
			url:     "https://www.figma.com/file/",
			wantErr: true,
		},
		{
			name:    "invalid URL - wrong domain",
			url:     "https://www.example.com/file/ABC123XYZ",
			wantErr: true,
		},
		{
			name:    "invalid URL - wrong path",
			url:     "https://www.figma.com/dashboard/ABC123XYZ",
			wantErr: true,
		},
		{
			name:    "empty URL",
			url:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractFileKey(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ExtractFileKey() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ExtractFileKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveFileKey(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "bare key", in: "eGKEdHWYX8cZg2nhwVTmUP", want: "eGKEdHWYX8cZg2nhwVTmUP"},
		{name: "bare key with spaces", in: "  abc123 ", want: "abc123"},
		{name: "design URL", in: "https://www.figma.com/design/abc123/Tokens", want: "abc123"},
		{name: "empty", in: "  ", wantErr: true},
		{name: "garbage", in: "not a key/at all", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveFileKey(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveFileKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveFileKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeduplicateNodeIDs(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{
			name: "no duplicates",
			ids:  []string{"123:456", "789:012", "345:678"},
			want: []string{"123:456", "789:012", "345:678"},
		},
		{
			name: "preserves order",
			ids:  []string{"789:012", "123:456", "789:012", "345:678", "123:456"},
			want: []string{"789:012", "123:456", "345:678"},
		},
		{
			name: "drops empty ids",
			ids:  []string{"", "1:2", " "},
			want: []string{"1:2"},
		},
		{
			name: "empty slice",
			ids:  []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deduplicateNodeIDs(tt.ids)
			if len(got) != len(tt.want) {
				t.Errorf("deduplicateNodeIDs() returned %d nodes, want %d nodes", len(got), len(tt.want))
				return
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("deduplicateNodeIDs() at index %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("secret-token", WithBaseURL(srv.URL))
}

func TestClientGetFile(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/files/abc" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("X-Figma-Token"); got != "secret-token" {
			t.Errorf("X-Figma-Token = %q", got)
		}
		w.Write([]byte(`{"name":"Tokens","document":{"id":"0:0","type":"DOCUMENT","children":[{"id":"1:1","type":"STYLE","name":"Primary","style_type":"FILL"}]}}`))
	})

	file, err := client.GetFile(context.Background(), "abc")
	if err != nil {
		t.Fatalf("GetFile() error = %v", err)
	}
	if file.Name != "Tokens" {
		t.Errorf("Name = %q, want Tokens", file.Name)
	}
	if len(file.Document.Children) != 1 || file.Document.Children[0].StyleType != "FILL" {
		t.Errorf("unexpected document %+v", file.Document)
	}
}

func TestClientGetFileNodes(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/files/abc/nodes" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("ids"); got != "1:2,3:4" {
			t.Errorf("ids = %q, want 1:2,3:4", got)
		}
		w.Write([]byte(`{"nodes":{"1:2":{"document":{"id":"1:2","fills":[{"type":"SOLID","opacity":0.5,"color":{"r":1,"g":0,"b":0,"a":1}}]}},"3:4":null}}`))
	})

	resp, err := client.GetFileNodes(context.Background(), "abc", []string{"1:2", "3:4", "1:2"})
	if err != nil {
		t.Fatalf("GetFileNodes() error = %v", err)
	}
	node := resp.Nodes["1:2"]
	if node == nil || len(node.Document.Fills) != 1 {
		t.Fatalf("node 1:2 missing fills: %+v", node)
	}
	if op := node.Document.Fills[0].Opacity; op == nil || *op != 0.5 {
		t.Errorf("opacity = %v, want 0.5", op)
	}
	if resp.Nodes["3:4"] != nil {
		t.Errorf("expected null node for 3:4")
	}
}

func TestClientGetFileNodesEmptyMakesNoRequest(t *testing.T) {
	var calls atomic.Int32
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	resp, err := client.GetFileNodes(context.Background(), "abc", nil)
	if err != nil {
		t.Fatalf("GetFileNodes() error = %v", err)
	}
	if len(resp.Nodes) != 0 || calls.Load() != 0 {
		t.Errorf("expected no request and empty nodes, got %d calls", calls.Load())
	}
}

func TestClientAPIError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"status":403,"err":"Invalid token"}`))
	})

	_, err := client.GetFileStyles(context.Background(), "abc")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", apiErr.StatusCode)
	}
	if !IsUnauthorized(err) {
		t.Errorf("IsUnauthorized() = false, want true")
	}
}

func TestClientDoesNotRetryByDefault(t *testing.T) {
	var calls atomic.Int32
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	if _, err := client.GetFile(context.Background(), "abc"); err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestClientRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"meta":{"styles":[]}}`))
	}))
	defer srv.Close()

	client := NewClient("t", WithBaseURL(srv.URL), WithRetries(3, time.Millisecond))
	if _, err := client.GetFileStyles(context.Background(), "abc"); err != nil {
		t.Fatalf("GetFileStyles() error = %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestClientMalformedResponse(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"document":`))
	})

	if _, err := client.GetFile(context.Background(), "abc"); err == nil {
		t.Fatal("expected parse error")
	}
}
