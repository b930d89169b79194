package cache

import (
	"strings"
	"testing"
)

// Fuzz Put/Get/Remove under arbitrary string inputs against a tiny cache so
// that evictions happen on almost every call.
func FuzzLRU_PutGetRemove(f *testing.F) {
	f.Add("", "", "x")
	f.Add("127.0.0.1:80", "tcb", "192.168.0.1:443")
	f.Add("αβγ", "δ", "αβγ")
	f.Add("emoji🙂", "🙂🙂", "")
	f.Add("long", strings.Repeat("x", 1024), "long2")

	f.Fuzz(func(t *testing.T, k, v, other string) {
		const limit = 1 << 12
		if len(k) > limit {
			k = k[:limit]
		}
		if len(v) > limit {
			v = v[:limit]
		}

		evictions := 0
		c, err := New(Options[string, string]{
			Capacity: 1,
			OnEvict:  ObserverFunc[string, string](func(string, string) { evictions++ }),
		})
		if err != nil {
			t.Fatal(err)
		}

		c.Put(k, v)
		got, err := c.Get(k)
		if err != nil || got != v {
			t.Fatalf("after Put/Get: want %q, got %q err=%v", v, got, err)
		}

		c.Put(other, v)
		wantEvictions := 1
		if other == k {
			wantEvictions = 0
		}
		if evictions != wantEvictions {
			t.Fatalf("evictions: want %d, got %d", wantEvictions, evictions)
		}
		if c.Size() != 1 {
			t.Fatalf("size must stay at capacity, got %d", c.Size())
		}

		if !c.Remove(other) {
			t.Fatalf("Remove must return true")
		}
		if c.Exists(other) || c.Size() != 0 {
			t.Fatalf("key must be absent after Remove")
		}
	})
}
