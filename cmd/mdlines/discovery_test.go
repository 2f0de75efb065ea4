package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		location  string
		outputDir string
		baseDir   string
		format    string
		want      string
	}{
		{"text defaults to stdout", "doc.md", "", "", "text", ""},
		{"html defaults to stdout", "doc.md", "", "", "html", ""},
		{"pdf next to source", filepath.Join("notes", "doc.md"), "", "", "pdf", filepath.Join("notes", "doc.pdf")},
		{"pdf from url in cwd", "https://example.com/docs/guide.md", "", "", "pdf", "guide.pdf"},
		{"pdf from stdin in cwd", "-", "", "", "pdf", "stdin.pdf"},
		{"dash forces stdout", "doc.md", "-", "", "pdf", ""},
		{"into directory", "doc.md", "out", "", "html", filepath.Join("out", "doc.html")},
		{"text into directory", "doc.markdown", "out", "", "text", filepath.Join("out", "doc.txt")},
		{"explicit file", "doc.md", filepath.Join("out", "report.PDF"), "", "pdf", filepath.Join("out", "report.PDF")},
		{"other extension is a directory", "doc.md", "out.html", "", "pdf", filepath.Join("out.html", "doc.pdf")},
		{
			"mirrors input tree",
			filepath.Join("in", "a", "b.md"), "out", "in", "html",
			filepath.Join("out", "a", "b.html"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveOutputPath(tt.location, tt.outputDir, tt.baseDir, tt.format)
			if got != tt.want {
				t.Errorf("resolveOutputPath(%q, %q, %q, %q) = %q, want %q",
					tt.location, tt.outputDir, tt.baseDir, tt.format, got, tt.want)
			}
		})
	}
}

func TestDocumentName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		location string
		want     string
	}{
		{"-", "stdin"},
		{"doc.md", "doc"},
		{filepath.Join("a", "b", "README.markdown"), "README"},
		{"https://example.com/raw/notes.md", "notes"},
		{"https://example.com/raw/notes", "notes"},
		{"https://example.com/", "example.com"},
		{"https://example.com", "example.com"},
	}

	for _, tt := range tests {
		if got := documentName(tt.location); got != tt.want {
			t.Errorf("documentName(%q) = %q, want %q", tt.location, got, tt.want)
		}
	}
}

func TestDiscoverJobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeFile(t, dir, "a.md", "# a")
	b := writeFile(t, dir, filepath.Join("sub", "b.markdown"), "# b")
	writeFile(t, dir, "c.txt", "not markdown")

	t.Run("walks directories", func(t *testing.T) {
		t.Parallel()

		got, err := discoverJobs([]string{dir}, "", "text")
		if err != nil {
			t.Fatal(err)
		}
		want := []job{{Location: a}, {Location: b}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("jobs mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("mixes files urls and stdin", func(t *testing.T) {
		t.Parallel()

		got, err := discoverJobs([]string{a, "https://example.com/x.md", "-"}, "out", "pdf")
		if err != nil {
			t.Fatal(err)
		}
		want := []job{
			{Location: a, OutputPath: filepath.Join("out", "a.pdf")},
			{Location: "https://example.com/x.md", OutputPath: filepath.Join("out", "x.pdf")},
			{Location: "-", OutputPath: filepath.Join("out", "stdin.pdf")},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("jobs mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("single output file for several documents", func(t *testing.T) {
		t.Parallel()

		_, err := discoverJobs([]string{dir}, "out.pdf", "pdf")
		if !errors.Is(err, ErrOutputConflict) {
			t.Errorf("error = %v, want ErrOutputConflict", err)
		}
	})

	t.Run("no inputs", func(t *testing.T) {
		t.Parallel()

		_, err := discoverJobs(nil, "", "text")
		if !errors.Is(err, ErrNoInput) {
			t.Errorf("error = %v, want ErrNoInput", err)
		}
	})

	t.Run("non markdown file", func(t *testing.T) {
		t.Parallel()

		_, err := discoverJobs([]string{filepath.Join(dir, "c.txt")}, "", "text")
		if !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("error = %v, want ErrInvalidExtension", err)
		}
	})

	t.Run("directory without markdown", func(t *testing.T) {
		t.Parallel()

		empty := t.TempDir()
		writeFile(t, empty, "notes.txt", "x")
		_, err := discoverJobs([]string{empty}, "", "text")
		if !errors.Is(err, ErrNoInput) {
			t.Errorf("error = %v, want ErrNoInput", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		_, err := discoverJobs([]string{filepath.Join(dir, "missing.md")}, "", "text")
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})
}

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		wantErr bool
	}{
		{-1, true},
		{0, false},
		{1, false},
		{8, false},
		{9, true},
	}

	for _, tt := range tests {
		err := validateWorkers(tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateWorkers(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) error = %v, want ErrInvalidWorkerCount", tt.n, err)
		}
	}
}
