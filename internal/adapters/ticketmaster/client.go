package ticketmaster

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"event_recommender/internal/adapters/observability"
	"event_recommender/internal/domain"
)

const (
	searchPath = "/discovery/v2/events.json"

	geohashPrecision = 4
	searchRadius     = 50 // miles
)

var (
	ErrUnauthorized = errors.New("ticketmaster: unauthorized")
	ErrForbidden    = errors.New("ticketmaster: forbidden")
)

// Client talks to the Ticketmaster Discovery API. Outbound calls are
// rate-limited client-side, retried on transient failures, and guarded by a
// circuit breaker so a dead upstream fails fast instead of piling up
// goroutines behind timeouts.
type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
	cb   *gobreaker.CircuitBreaker
}

func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "ticketmaster",
		MaxRequests: 2,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
		cb:   cb,
	}, nil
}

// NearbyEvents returns events within the search radius of (lat, lon),
// without a keyword filter.
func (c *Client) NearbyEvents(ctx context.Context, lat, lon float64) ([]domain.Item, error) {
	q := url.Values{}
	q.Set("apikey", c.key)
	q.Set("geoPoint", encodeGeohash(lat, lon, geohashPrecision))
	q.Set("radius", fmt.Sprint(searchRadius))
	return c.search(ctx, c.base+searchPath, q)
}

// SearchByKeyword returns events within the search radius of (lat, lon)
// matching keyword. An empty keyword degrades to an unfiltered search.
func (c *Client) SearchByKeyword(ctx context.Context, lat, lon float64, keyword string) ([]domain.Item, error) {
	q := url.Values{}
	q.Set("apikey", c.key)
	q.Set("geoPoint", encodeGeohash(lat, lon, geohashPrecision))
	q.Set("radius", fmt.Sprint(searchRadius))
	if keyword != "" {
		q.Set("keyword", keyword)
	}
	return c.search(ctx, c.base+searchPath, q)
}

func (c *Client) search(ctx context.Context, endpoint string, q url.Values) ([]domain.Item, error) {
	out, err := c.cb.Execute(func() (any, error) {
		var resp apiResponse
		if err := c.get(ctx, endpoint+"?"+q.Encode(), &resp); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// The API answers 404 for regions with no data; that is a
				// "no results" answer, not a failure.
				return []domain.Item(nil), nil
			}
			return nil, err
		}
		if resp.Embedded == nil {
			return []domain.Item(nil), nil
		}
		return mapEvents(resp.Embedded.Events), nil
	})
	if err != nil {
		return nil, err
	}
	items, _ := out.([]domain.Item)
	return items, nil
}

// get performs a GET with client-side rate limiting, retries, and JSON decode
// into out. Retries on 429 and transient 5xx.
func (c *Client) get(ctx context.Context, u string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "event-recommender/1.0")

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveExternal("ticketmaster", req.URL.Path, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusNotFound:
			resp.Body.Close()
			return domain.ErrNotFound

		case http.StatusUnauthorized:
			resp.Body.Close()
			return ErrUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			return ErrForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			resp.Body.Close()
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// backoff returns an exponential delay (200ms, 400ms, 800ms, ...) with up to
// +50% jitter from crypto/rand, safe under concurrent fan-out.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	return base + time.Duration(0.5*f*float64(base))
}
