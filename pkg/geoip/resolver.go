package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kindalike-be/internal/pkg/logger"

	"github.com/patrickmn/go-cache"
)

// Resolver maps a caller's network address to a human-readable place string
// ("City, Region"). It never fails outward: anything that goes wrong returns
// the configured default location.
type Resolver interface {
	Resolve(ctx context.Context, ip string) string
}

type ipAPIResolver struct {
	baseURL         string
	defaultLocation string
	client          *http.Client
	cache           *cache.Cache
	log             logger.ILogger
}

func NewResolver(baseURL, defaultLocation string, log logger.ILogger) Resolver {
	return &ipAPIResolver{
		baseURL:         baseURL,
		defaultLocation: defaultLocation,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		// IPs rarely move; an hour of memoization keeps us well under the
		// provider's free-tier rate limit.
		cache: cache.New(1*time.Hour, 10*time.Minute),
		log:   log,
	}
}

type ipAPIResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	City       string `json:"city"`
	RegionName string `json:"regionName"`
	Region     string `json:"region"`
}

func (r *ipAPIResolver) Resolve(ctx context.Context, ip string) string {
	if ip != "" {
		if hit, found := r.cache.Get(ip); found {
			return hit.(string)
		}
	}

	location := r.lookup(ctx, ip)
	if ip != "" {
		r.cache.Set(ip, location, cache.DefaultExpiration)
	}
	return location
}

func (r *ipAPIResolver) lookup(ctx context.Context, ip string) string {
	endpoint := r.baseURL
	if ip != "" {
		endpoint = fmt.Sprintf("%s/%s", r.baseURL, ip)
	}
	endpoint += "?fields=status,message,city,region,regionName"

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return r.defaultLocation
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Warn("geoip", "ip lookup failed, using default location", map[string]interface{}{
			"ip":    ip,
			"error": err.Error(),
		})
		return r.defaultLocation
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode != http.StatusOK {
		return r.defaultLocation
	}

	var data ipAPIResponse
	if err := json.Unmarshal(bodyBytes, &data); err != nil {
		return r.defaultLocation
	}
	if data.Status != "success" || data.City == "" {
		return r.defaultLocation
	}

	region := data.Region
	if region == "" {
		region = data.RegionName
	}
	if region == "" {
		return data.City
	}
	return fmt.Sprintf("%s, %s", data.City, region)
}

// ipHeaders are checked in order for the real client address when the app
// sits behind a proxy or CDN.
var ipHeaders = []string{
	"X-Forwarded-For",
	"X-Real-IP",
	"CF-Connecting-IP", // Cloudflare
	"True-Client-IP",   // Akamai
	"X-Client-IP",
}

// ClientIP extracts the originating client address, preferring forwarding
// headers over the transport remote address.
func ClientIP(header func(string) string, remoteAddr string) string {
	for _, name := range ipHeaders {
		if ip := header(name); ip != "" {
			// X-Forwarded-For lists client, proxy1, proxy2; the client is first.
			if idx := strings.Index(ip, ","); idx >= 0 {
				ip = ip[:idx]
			}
			return strings.TrimSpace(ip)
		}
	}
	return remoteAddr
}
