package mdlines

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"time"
	"unicode/utf8"

	"github.com/alnah/go-mdlines/internal/fileutil"
	"golang.org/x/net/html/charset"
)

// DocumentSource supplies the raw text of a document.
// The core only ever sees the returned string; retrieval happens before
// Render is called.
type DocumentSource interface {
	Fetch(ctx context.Context, location string) (string, error)
}

// Compile-time interface checks.
var (
	_ DocumentSource = StringSource("")
	_ DocumentSource = (*FileSource)(nil)
	_ DocumentSource = (*HTTPSource)(nil)
	_ DocumentSource = (*AutoSource)(nil)
)

// Fetch defaults.
const (
	DefaultFetchTimeout = 30 * time.Second
	DefaultMaxBytes     = 10 << 20
	DefaultUserAgent    = "go-mdlines"
)

// FetchError reports a failed retrieval. StatusCode is zero when no HTTP
// response was received. errors.Is(err, ErrFetch) holds for every FetchError.
type FetchError struct {
	URL        string
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("%v: %s", ErrFetch, e.Message)
	}
	return fmt.Sprintf("%v: %s: %s", ErrFetch, e.URL, e.Message)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports ErrFetch as a match so callers need not type-assert.
func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// StringSource is an in-memory document. Fetch ignores the location.
type StringSource string

// Fetch returns the string itself.
func (s StringSource) Fetch(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return string(s), nil
}

// FileSource reads documents from the local filesystem.
type FileSource struct {
	// MaxBytes caps the file size. Zero means DefaultMaxBytes.
	MaxBytes int64
}

// Fetch reads the file at path.
func (s *FileSource) Fetch(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if path == "" {
		return "", ErrEmptySource
	}

	limit := s.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("%w: %s exceeds %d bytes", ErrBodyTooLarge, path, limit)
	}
	return string(data), nil
}

// HTTPSource retrieves documents with an HTTP GET and decodes the body to
// UTF-8 using the response charset.
type HTTPSource struct {
	client    *http.Client
	maxBytes  int64
	userAgent string
}

// FetchOption configures an HTTPSource.
type FetchOption func(*HTTPSource)

// WithHTTPClient replaces the HTTP client. A nil client is ignored.
func WithHTTPClient(c *http.Client) FetchOption {
	return func(s *HTTPSource) {
		if c != nil {
			s.client = c
		}
	}
}

// WithFetchTimeout sets the client timeout for the whole request.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithFetchTimeout(d time.Duration) FetchOption {
	if d <= 0 {
		panic("mdlines: WithFetchTimeout duration must be positive")
	}
	return func(s *HTTPSource) {
		c := *s.client
		c.Timeout = d
		s.client = &c
	}
}

// WithMaxBytes caps the accepted body size. Non-positive values are ignored.
func WithMaxBytes(n int64) FetchOption {
	return func(s *HTTPSource) {
		if n > 0 {
			s.maxBytes = n
		}
	}
}

// WithUserAgent sets the User-Agent header. Empty values are ignored.
func WithUserAgent(ua string) FetchOption {
	return func(s *HTTPSource) {
		if ua != "" {
			s.userAgent = ua
		}
	}
}

// NewHTTPSource creates an HTTPSource with defaults applied before opts.
func NewHTTPSource(opts ...FetchOption) *HTTPSource {
	s := &HTTPSource{
		client:    &http.Client{Timeout: DefaultFetchTimeout},
		maxBytes:  DefaultMaxBytes,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch performs a GET on rawURL and returns the decoded body.
// All failures are returned as *FetchError.
func (s *HTTPSource) Fetch(ctx context.Context, rawURL string) (string, error) {
	if rawURL == "" {
		return "", &FetchError{Message: "empty URL", Err: ErrEmptySource}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", &FetchError{URL: rawURL, Message: "invalid URL", Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &FetchError{URL: rawURL, Message: fmt.Sprintf("unsupported scheme %q", u.Scheme)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", &FetchError{URL: rawURL, Message: "building request", Err: err}
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/markdown, text/plain;q=0.9, */*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: rawURL, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
			Err:        ErrBadStatus,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return "", &FetchError{URL: rawURL, StatusCode: resp.StatusCode, Message: "reading body", Err: err}
	}
	if int64(len(body)) > s.maxBytes {
		return "", &FetchError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("body exceeds %d bytes", s.maxBytes),
			Err:        ErrBodyTooLarge,
		}
	}

	decoded, err := decodeBody(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", &FetchError{URL: rawURL, StatusCode: resp.StatusCode, Message: "decoding body", Err: err}
	}
	return decoded, nil
}

// decodeBody converts body to UTF-8 according to the declared charset.
// Undeclared bodies that are already valid UTF-8 are returned as is; the
// rest are sniffed.
func decodeBody(body []byte, contentType string) (string, error) {
	if _, params, err := mime.ParseMediaType(contentType); err != nil || params["charset"] == "" {
		if utf8.Valid(body) {
			return string(body), nil
		}
	}
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return "", err
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// IsURL reports whether location looks like an http(s) URL.
func IsURL(location string) bool {
	return fileutil.IsURL(location)
}

// AutoSource sends http(s) locations to Remote and everything else to Local.
type AutoSource struct {
	Remote DocumentSource
	Local  DocumentSource
}

// NewAutoSource returns an AutoSource backed by a default HTTPSource and
// FileSource.
func NewAutoSource(opts ...FetchOption) *AutoSource {
	return &AutoSource{
		Remote: NewHTTPSource(opts...),
		Local:  &FileSource{},
	}
}

// Fetch picks the source by location.
func (s *AutoSource) Fetch(ctx context.Context, location string) (string, error) {
	if IsURL(location) {
		return s.Remote.Fetch(ctx, location)
	}
	return s.Local.Fetch(ctx, location)
}
