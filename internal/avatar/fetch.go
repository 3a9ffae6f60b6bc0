package avatar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"avatar-forge/pkg/retrylimit"

	"github.com/rs/zerolog"
)

// Sentinel faults the command layer maps to user-facing messages.
var (
	ErrBadURL      = errors.New("invalid url")
	ErrUnreachable = errors.New("cannot connect")
	ErrBadStatus   = errors.New("bad response")
)

const maxImageBytes = 16 << 20 // refuse anything over 16MB

// Fetcher downloads images over HTTP. Transient 429/5xx responses are
// retried a few times through the adaptive limiter; everything a user can
// fix (bad URL, dead host, non-200) fails fast with a sentinel error.
type Fetcher struct {
	client  *http.Client
	limiter *retrylimit.AdaptiveLimiter
	log     zerolog.Logger
}

func NewFetcher(log zerolog.Logger) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: 30 * time.Second},
		limiter: retrylimit.NewAdaptiveLimiter(10, 1, 20, 1, 0.5),
		log:     log,
	}
}

type statusError struct {
	code int
}

func (e *statusError) Error() string   { return fmt.Sprintf("HTTP %d", e.code) }
func (e *statusError) StatusCode() int { return e.code }

// Fetch downloads rawURL and returns the body bytes.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrBadURL, rawURL)
	}

	cfg := retrylimit.DefaultRetryConfig()
	cfg.MaxAttempts = 3
	cfg.InitialDelay = 250 * time.Millisecond

	var body []byte
	var lastStatus int
	err = retrylimit.WithRetryConfig(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return &retrylimit.FatalError{Err: fmt.Errorf("%w: %v", ErrBadURL, err)}
		}
		resp, err := f.client.Do(req)
		if err != nil {
			return &retrylimit.FatalError{Err: fmt.Errorf("%w: %v", ErrUnreachable, err)}
		}
		defer resp.Body.Close()

		lastStatus = resp.StatusCode
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return &statusError{code: resp.StatusCode}
		}
		if resp.StatusCode != http.StatusOK {
			return &retrylimit.FatalError{Err: fmt.Errorf("%w: HTTP %d", ErrBadStatus, resp.StatusCode)}
		}

		body, err = io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}
		return nil
	}, f.limiter, cfg)

	if err != nil {
		if lastStatus != 0 && lastStatus != http.StatusOK &&
			!errors.Is(err, ErrBadURL) && !errors.Is(err, ErrUnreachable) && !errors.Is(err, ErrBadStatus) {
			return nil, fmt.Errorf("%w: HTTP %d", ErrBadStatus, lastStatus)
		}
		return nil, err
	}

	f.log.Debug().Str("url", u.String()).Int("bytes", len(body)).Msg("Fetched image")
	return body, nil
}
