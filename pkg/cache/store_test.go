package cache

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestCache() *Cache {
	return New(zerolog.Nop())
}

func TestCache_SetGet(t *testing.T) {
	c := newTestCache()
	defer c.Close()

	payload := []byte(`{"slug":"bermuda"}`)
	c.Set("/api/destinations/bermuda", payload, time.Minute, `"abc"`)

	got, etag, ok := c.Get("/api/destinations/bermuda")
	if !ok {
		t.Fatal("Get() returned absent for a live entry")
	}
	if string(got) != string(payload) {
		t.Errorf("Get() payload = %s, want %s", got, payload)
	}
	if etag != `"abc"` {
		t.Errorf("Get() etag = %q, want %q", etag, `"abc"`)
	}
}

func TestCache_GetMissing(t *testing.T) {
	c := newTestCache()
	defer c.Close()

	if _, _, ok := c.Get("/never-set"); ok {
		t.Error("Get() returned present for a key that was never set")
	}
}

func TestCache_LazyExpiry(t *testing.T) {
	c := newTestCache()
	defer c.Close()

	// Entry that is already expired when read, without any sweep running.
	c.Set("/expired", []byte(`{}`), -1*time.Second, `"x"`)

	if _, _, ok := c.Get("/expired"); ok {
		t.Error("Get() served an expired entry")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry not deleted on read, Len() = %d", c.Len())
	}
}

func TestCache_Has(t *testing.T) {
	c := newTestCache()
	defer c.Close()

	c.Set("/live", []byte(`{}`), time.Minute, `"a"`)
	c.Set("/dead", []byte(`{}`), -1*time.Second, `"b"`)

	if !c.Has("/live") {
		t.Error("Has() = false for live entry")
	}
	if c.Has("/dead") {
		t.Error("Has() = true for expired entry")
	}
	if c.Has("/absent") {
		t.Error("Has() = true for missing entry")
	}
}

func TestCache_Overwrite(t *testing.T) {
	c := newTestCache()
	defer c.Close()

	c.Set("/key", []byte(`v1`), time.Minute, `"1"`)
	c.Set("/key", []byte(`v2`), time.Minute, `"2"`)

	got, etag, ok := c.Get("/key")
	if !ok {
		t.Fatal("Get() returned absent after overwrite")
	}
	if string(got) != "v2" || etag != `"2"` {
		t.Errorf("Get() = (%s, %s), want (v2, \"2\")", got, etag)
	}
}

func TestCache_DeleteClear(t *testing.T) {
	c := newTestCache()
	defer c.Close()

	c.Set("/a", []byte(`{}`), time.Minute, `"a"`)
	c.Set("/b", []byte(`{}`), time.Minute, `"b"`)

	c.Delete("/a")
	if c.Has("/a") {
		t.Error("entry still present after Delete()")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear(), want 0", c.Len())
	}
}

func TestCache_Invalidate(t *testing.T) {
	c := newTestCache()
	defer c.Close()

	c.Set("/api/destinations?page=1", []byte(`{}`), time.Minute, `"1"`)
	c.Set("/api/destinations/aruba", []byte(`{}`), time.Minute, `"2"`)
	c.Set("/api/cruises", []byte(`{}`), time.Minute, `"3"`)

	c.Invalidate("/api/destinations")

	if c.Has("/api/destinations?page=1") || c.Has("/api/destinations/aruba") {
		t.Error("Invalidate() left entries matching the prefix")
	}
	if !c.Has("/api/cruises") {
		t.Error("Invalidate() removed an entry outside the prefix")
	}

	c.Set("/api/destinations?page=1", []byte(`{}`), time.Minute, `"1"`)

	// Empty prefix clears the whole store.
	c.Invalidate("")
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Invalidate(\"\"), want 0", c.Len())
	}
}

func TestCache_Sweep(t *testing.T) {
	c := newTestCache()
	defer c.Close()

	c.Set("/stale", []byte(`{}`), -1*time.Second, `"s"`)
	c.Set("/fresh", []byte(`{}`), time.Minute, `"f"`)

	c.sweep()

	if c.Len() != 1 {
		t.Errorf("Len() = %d after sweep, want 1", c.Len())
	}
	if !c.Has("/fresh") {
		t.Error("sweep removed a live entry")
	}
}

func TestCache_StartClose(t *testing.T) {
	c := newTestCache()

	c.Start()
	c.Start() // second Start must be a no-op

	c.Set("/key", []byte(`{}`), time.Minute, `"k"`)
	c.Close()

	if c.Len() != 0 {
		t.Errorf("Len() = %d after Close(), want 0", c.Len())
	}

	// Close on a stopped cache must not panic.
	c.Close()
}
