package clipboard

import "testing"

func TestMemory(t *testing.T) {
	c := NewMemory()

	got, err := c.Fetch()
	if err != nil || got != "" {
		t.Fatalf("expected empty clipboard, got %q, %v", got, err)
	}

	for _, text := range []string{"abc", "", "multi\nline", "中文"} {
		if err := c.Store(text); err != nil {
			t.Fatalf("Store(%q): %v", text, err)
		}
		got, err := c.Fetch()
		if err != nil {
			t.Fatalf("Fetch: %v", err)
		}
		if got != text {
			t.Errorf("expected %q, got %q", text, got)
		}
	}
}

func TestNewNeverNil(t *testing.T) {
	if New() == nil {
		t.Fatal("New returned nil")
	}
}

func TestSystemFallsBack(t *testing.T) {
	// Whether or not a system clipboard exists here, what was stored must
	// come back: either from the platform or from the memory fallback.
	c := &System{fallback: NewMemory()}
	if err := c.Store("fallback text"); err != nil {
		t.Fatalf("Store: %v", err)
	}
	got, err := c.Fetch()
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got != "fallback text" {
		t.Errorf("expected %q, got %q", "fallback text", got)
	}
}
