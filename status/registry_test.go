package status

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat

	if f.Get() != 0 {
		t.Errorf("Expected zero value 0, got %v", f.Get())
	}

	f.Set(3.25)
	if f.Get() != 3.25 {
		t.Errorf("Expected 3.25, got %v", f.Get())
	}

	if got := f.Add(1.5); got != 4.75 {
		t.Errorf("Expected Add to return 4.75, got %v", got)
	}
	if f.Get() != 4.75 {
		t.Errorf("Expected 4.75 after Add, got %v", f.Get())
	}
}

func TestAtomicString(t *testing.T) {
	var s AtomicString

	if s.Load() != "" {
		t.Errorf("Expected empty zero value, got %q", s.Load())
	}

	s.Store("hello")
	if s.Load() != "hello" {
		t.Errorf("Expected %q, got %q", "hello", s.Load())
	}
}

func TestAtomicStringTruncation(t *testing.T) {
	var s AtomicString

	long := strings.Repeat("x", MaxStringLen+10)
	s.Store(long)

	if got := s.Load(); len(got) != MaxStringLen {
		t.Errorf("Expected length %d, got %d", MaxStringLen, len(got))
	}
}

func TestMetricMapReturnsStablePointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()

	p1 := m.Get("frame.rate")
	p1.Set(42)
	p2 := m.Get("frame.rate")

	if p1 != p2 {
		t.Error("Expected same pointer for repeated Get")
	}
	if p2.Get() != 42 {
		t.Errorf("Expected 42 through second pointer, got %v", p2.Get())
	}
}

func TestMetricMapHasAndCount(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()

	if m.Has("missing") {
		t.Error("Expected Has to be false before Get")
	}
	m.Get("a")
	m.Get("b")
	if !m.Has("a") {
		t.Error("Expected Has to be true after Get")
	}
	if m.Count() != 2 {
		t.Errorf("Expected count 2, got %d", m.Count())
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	for _, k := range []string{"c", "a", "b"} {
		m.Get(k)
	}

	var keys []string
	m.Range(func(key string, _ *AtomicFloat) {
		keys = append(keys, key)
	})

	want := []string{"a", "b", "c"}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("Expected key %q at position %d, got %q", k, i, keys[i])
		}
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Get(fmt.Sprintf("key.%d", j%10)).Add(1)
			}
		}(i)
	}
	wg.Wait()

	if m.Count() != 10 {
		t.Errorf("Expected 10 keys, got %d", m.Count())
	}
	total := 0.0
	m.Range(func(_ string, f *AtomicFloat) {
		total += f.Get()
	})
	if total != 800 {
		t.Errorf("Expected 800 total increments, got %v", total)
	}
}

func TestRegistryWellKnownAccessors(t *testing.T) {
	r := NewRegistry()

	r.Strings.Get(KeyAppName).Store("demo")
	r.Floats.Get(KeyFrameRate).Set(60)
	r.Ints.Get(KeyFrameCount).Store(7)

	if r.AppName() != "demo" {
		t.Errorf("Expected app name %q, got %q", "demo", r.AppName())
	}
	if r.FrameRate() != 60 {
		t.Errorf("Expected frame rate 60, got %v", r.FrameRate())
	}
	if r.FrameCount() != 7 {
		t.Errorf("Expected frame count 7, got %d", r.FrameCount())
	}
	if r.TotalCount() != 3 {
		t.Errorf("Expected total count 3, got %d", r.TotalCount())
	}
}
