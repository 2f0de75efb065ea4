package mdlines

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"
)

// Compile-time interface check.
var _ interface {
	Acquire() (*Converter, error)
	Release(*Converter)
	Size() int
	Close() error
} = (*ConverterPool)(nil)

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	gomaxprocs := runtime.GOMAXPROCS(0)

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{
			name:    "explicit takes priority",
			workers: 4,
			want:    4,
		},
		{
			name:    "explicit=1 for sequential",
			workers: 1,
			want:    1,
		},
		{
			name:    "explicit can exceed max",
			workers: 16,
			want:    16,
		},
		{
			name:    "zero uses auto calculation",
			workers: 0,
			want:    min(max(gomaxprocs/cpuDivisor, MinPoolSize), MaxPoolSize),
		},
		{
			name:    "negative uses auto calculation",
			workers: -2,
			want:    min(max(gomaxprocs/cpuDivisor, MinPoolSize), MaxPoolSize),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResolvePoolSize(tt.workers)
			if got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

func TestConverterPool_AcquireRelease(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(2)
	defer pool.Close()

	c1, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	c2, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	if c1 == c2 {
		t.Error("expected different converter instances")
	}

	pool.Release(c1)
	c3, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if c3 != c1 {
		t.Error("expected to get back released converter")
	}

	pool.Release(c2)
	pool.Release(c3)
}

func TestConverterPool_AppliesOptions(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(1, WithTextSettings(plainText))
	defer pool.Close()

	c, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	defer pool.Release(c)

	result, err := c.Convert(context.Background(), Input{Markdown: "---"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got := string(result.Output); got != "───\n" {
		t.Errorf("Output = %q, want pool text settings applied", got)
	}
}

func TestConverterPool_AcquireError(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(1, WithStyle("no-such-style"))
	defer pool.Close()

	if _, err := pool.Acquire(); !errors.Is(err, ErrStyleNotFound) {
		t.Fatalf("Acquire() error = %v, want ErrStyleNotFound", err)
	}
	// A failed creation must not use up capacity.
	if _, err := pool.Acquire(); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("second Acquire() error = %v, want ErrStyleNotFound", err)
	}
}

func TestConverterPool_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		size int
		want int
	}{
		{"size 1", 1, 1},
		{"size 4", 4, 4},
		{"size 0 becomes 1", 0, 1},
		{"negative becomes 1", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pool := NewConverterPool(tt.size)
			defer pool.Close()

			if got := pool.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConverterPool_BlocksWhenExhausted(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(1)
	defer pool.Close()

	c, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	got := make(chan *Converter, 1)
	go func() {
		next, _ := pool.Acquire()
		got <- next
	}()

	select {
	case <-got:
		t.Fatal("Acquire() returned while the pool was exhausted")
	case <-time.After(50 * time.Millisecond):
	}

	pool.Release(c)

	select {
	case next := <-got:
		if next != c {
			t.Error("expected the released converter")
		}
	case <-time.After(time.Second):
		t.Fatal("Acquire() did not unblock after Release")
	}
}

func TestConverterPool_Concurrent(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(3, WithTextSettings(plainText))
	defer pool.Close()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := pool.Acquire()
			if err != nil {
				errs <- err
				return
			}
			defer pool.Release(c)
			if _, err := c.Convert(context.Background(), Input{Markdown: "# a\n* b"}); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent conversion failed: %v", err)
	}
}

func TestConverterPool_Close(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(2)
	c, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	if err := pool.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	// Release after close is a no-op.
	pool.Release(c)
	pool.Release(nil)

	if _, err := pool.Acquire(); !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Acquire() after Close error = %v, want ErrPoolClosed", err)
	}
}
