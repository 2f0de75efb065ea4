package mdlines

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

type mockRenderer struct {
	Result     []byte
	Err        error
	CalledWith string
	CalledPage *PageSettings
	HTML       string
	closed     bool
}

func (m *mockRenderer) RenderFromFile(ctx context.Context, filePath string, page *PageSettings) ([]byte, error) {
	m.CalledWith = filePath
	m.CalledPage = page
	if data, err := os.ReadFile(filePath); err == nil {
		m.HTML = string(data)
	}
	return m.Result, m.Err
}

func (m *mockRenderer) Close() error {
	m.closed = true
	return nil
}

// ---------------------------------------------------------------------------
// TestRodConverter_ToPDF
// ---------------------------------------------------------------------------

func TestRodConverter_ToPDF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		html    string
		mock    *mockRenderer
		wantErr bool
	}{
		{
			name: "successful render returns PDF bytes",
			html: "<html><body>Test</body></html>",
			mock: &mockRenderer{Result: []byte("%PDF-1.4 fake pdf content")},
		},
		{
			name:    "renderer error propagates",
			html:    "<html></html>",
			mock:    &mockRenderer{Err: errors.New("browser crashed")},
			wantErr: true,
		},
		{
			name: "empty HTML is valid",
			html: "",
			mock: &mockRenderer{Result: []byte("%PDF-1.4")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			converter := &rodConverter{renderer: tt.mock}
			result, err := converter.ToPDF(context.Background(), tt.html, nil)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(result) != string(tt.mock.Result) {
				t.Errorf("result = %q, want %q", result, tt.mock.Result)
			}
			if !strings.Contains(tt.mock.CalledWith, "mdlines-") {
				t.Errorf("expected temp file path with 'mdlines-', got %q", tt.mock.CalledWith)
			}
			if tt.mock.HTML != tt.html {
				t.Errorf("renderer saw %q, want %q", tt.mock.HTML, tt.html)
			}
			if _, err := os.Stat(tt.mock.CalledWith); !os.IsNotExist(err) {
				t.Errorf("temp file %s not removed", tt.mock.CalledWith)
			}
		})
	}
}

func TestRodConverter_Close(t *testing.T) {
	t.Parallel()

	mock := &mockRenderer{}
	converter := &rodConverter{renderer: mock}
	if err := converter.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !mock.closed {
		t.Error("renderer not closed")
	}

	var empty rodConverter
	if err := empty.Close(); err != nil {
		t.Errorf("Close() on empty converter = %v", err)
	}
}

func TestRodRenderer_RenderFromFile_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newRodRenderer(defaultTimeout)
	_, err := r.RenderFromFile(ctx, "/nonexistent.html", nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RenderFromFile() error = %v, want context.Canceled", err)
	}
	if r.browser != nil {
		t.Error("browser launched for a cancelled context")
	}
}

// ---------------------------------------------------------------------------
// TestBuildPDFOptions
// ---------------------------------------------------------------------------

func TestBuildPDFOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page       *PageSettings
		wantWidth  float64
		wantHeight float64
		wantMargin float64
	}{
		{"nil uses letter portrait", nil, 8.5, 11, DefaultMargin},
		{"a4 portrait", &PageSettings{Size: PageSizeA4, Orientation: OrientationPortrait, Margin: 1}, 8.27, 11.69, 1},
		{"legal landscape", &PageSettings{Size: PageSizeLegal, Orientation: OrientationLandscape, Margin: 0.75}, 14, 8.5, 0.75},
		{"uppercase values", &PageSettings{Size: "A4", Orientation: "LANDSCAPE", Margin: 2}, 11.69, 8.27, 2},
		{"zero margin defaults", &PageSettings{Size: PageSizeLetter, Orientation: OrientationPortrait}, 8.5, 11, DefaultMargin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := buildPDFOptions(tt.page)

			got := []float64{
				*opts.PaperWidth, *opts.PaperHeight,
				*opts.MarginTop, *opts.MarginBottom, *opts.MarginLeft, *opts.MarginRight,
			}
			want := []float64{
				tt.wantWidth, tt.wantHeight,
				tt.wantMargin, tt.wantMargin, tt.wantMargin, tt.wantMargin,
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("options mismatch (-want +got):\n%s", diff)
			}
			if !opts.PrintBackground {
				t.Error("PrintBackground = false, want true")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPageSettings_Validate
// ---------------------------------------------------------------------------

func TestPageSettings_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    *PageSettings
		wantErr error
	}{
		{"nil is valid", nil, nil},
		{"defaults are valid", DefaultPageSettings(), nil},
		{"min margin", &PageSettings{Size: "a4", Orientation: "portrait", Margin: MinMargin}, nil},
		{"max margin", &PageSettings{Size: "legal", Orientation: "landscape", Margin: MaxMargin}, nil},
		{"unknown size", &PageSettings{Size: "tabloid", Orientation: "portrait", Margin: 1}, ErrInvalidPageSize},
		{"unknown orientation", &PageSettings{Size: "a4", Orientation: "diagonal", Margin: 1}, ErrInvalidOrientation},
		{"margin too small", &PageSettings{Size: "a4", Orientation: "portrait", Margin: 0.1}, ErrInvalidMargin},
		{"margin too large", &PageSettings{Size: "a4", Orientation: "portrait", Margin: 3.5}, ErrInvalidMargin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.page.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
