package core

import (
	"sync"
	"testing"
)

func TestRegistryUniqueness(t *testing.T) {
	registry := NewRegistry()
	seen := make(map[string]bool)
	for i := 0; i < 10_000; i++ {
		id := registry.Generate()
		if seen[id] {
			t.Fatalf("duplicate identifier %q after %d draws", id, i)
		}
		seen[id] = true
	}
	if registry.Len() != 10_000 {
		t.Errorf("Len() = %d, want 10000", registry.Len())
	}
}

func TestRegistryConcurrent(t *testing.T) {
	const goroutines = 32
	const perGoroutine = 500

	registry := NewRegistry()
	results := make(chan string, goroutines*perGoroutine)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				results <- registry.Generate()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool)
	for id := range results {
		if seen[id] {
			t.Fatalf("concurrent generation produced duplicate %q", id)
		}
		seen[id] = true
	}
	if len(seen) != goroutines*perGoroutine {
		t.Errorf("got %d distinct identifiers, want %d", len(seen), goroutines*perGoroutine)
	}
}

func TestGenerateIDSharedRegistry(t *testing.T) {
	a := GenerateID()
	b := GenerateID()
	if a == b {
		t.Fatalf("GenerateID returned equal strings %q", a)
	}
}
