package geoip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"kindalike-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func newResolverAgainst(t *testing.T, handler http.HandlerFunc) Resolver {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewResolver(srv.URL, "Ithaca, NY", logger.NewNopLogger())
}

func TestResolve_Success(t *testing.T) {
	r := newResolverAgainst(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"status": "success", "city": "Austin", "region": "TX", "regionName": "Texas"}`))
	})

	assert.Equal(t, "Austin, TX", r.Resolve(context.Background(), "203.0.113.7"))
}

func TestResolve_RegionNameFallback(t *testing.T) {
	r := newResolverAgainst(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"status": "success", "city": "Austin", "regionName": "Texas"}`))
	})

	assert.Equal(t, "Austin, Texas", r.Resolve(context.Background(), "203.0.113.7"))
}

func TestResolve_FailureStatus(t *testing.T) {
	r := newResolverAgainst(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"status": "fail", "message": "private range"}`))
	})

	assert.Equal(t, "Ithaca, NY", r.Resolve(context.Background(), "192.168.0.1"))
}

func TestResolve_UpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))
	srv.Close()
	r := NewResolver(srv.URL, "Ithaca, NY", logger.NewNopLogger())

	assert.Equal(t, "Ithaca, NY", r.Resolve(context.Background(), "203.0.113.7"))
}

func TestResolve_CachesByIP(t *testing.T) {
	calls := 0
	r := newResolverAgainst(t, func(w http.ResponseWriter, req *http.Request) {
		calls++
		w.Write([]byte(`{"status": "success", "city": "Austin", "region": "TX"}`))
	})

	ctx := context.Background()
	r.Resolve(ctx, "203.0.113.7")
	r.Resolve(ctx, "203.0.113.7")
	assert.Equal(t, 1, calls)

	r.Resolve(ctx, "203.0.113.8")
	assert.Equal(t, 2, calls)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "no headers",
			remoteAddr: "10.0.0.1",
			want:       "10.0.0.1",
		},
		{
			name:       "forwarded chain takes first hop",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2, 10.0.0.3"},
			remoteAddr: "10.0.0.1",
			want:       "203.0.113.7",
		},
		{
			name:       "real ip header",
			headers:    map[string]string{"X-Real-IP": " 203.0.113.9 "},
			remoteAddr: "10.0.0.1",
			want:       "203.0.113.9",
		},
		{
			name:       "cloudflare header",
			headers:    map[string]string{"CF-Connecting-IP": "203.0.113.11"},
			remoteAddr: "10.0.0.1",
			want:       "203.0.113.11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := func(name string) string { return tt.headers[name] }
			assert.Equal(t, tt.want, ClientIP(header, tt.remoteAddr))
		})
	}
}
