package container_test

import (
	"testing"

	"github.com/rizo/proto/container"
	"github.com/rizo/proto/iter"
	"github.com/rizo/proto/iterable"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fixtures: one indexable container, one sequential-only container
// ─────────────────────────────────────────────────────────────────────────────

var slices = container.Indexable[[]string, string]{
	Length:    func(s []string) int { return len(s) },
	UnsafeGet: func(s []string, i int) string { return s[i] },
}

// walked counts adapter steps so tests can check how far each derived
// operation actually scans.
type walked struct {
	items []string
	steps int
}

func seqOf(items ...string) *walked { return &walked{items: items} }

var walkeds = container.FromBase(iterable.Base[*walked, int, string]{
	Init: func(*walked) int { return 0 },
	Step: func(w *walked, i int, onItem func(string, int), onEnd func()) {
		w.steps++
		if i >= len(w.items) {
			onEnd()
			return
		}
		onItem(w.items[i], i+1)
	},
})

// ─────────────────────────────────────────────────────────────────────────────
// Indexable derivation
// ─────────────────────────────────────────────────────────────────────────────

func TestIndexableLenAndEmpty(t *testing.T) {
	if got := slices.Len([]string{"a", "b"}); got != 2 {
		t.Fatalf("Len = %d; want 2", got)
	}
	if !slices.IsEmpty(nil) || slices.IsEmpty([]string{"a"}) {
		t.Fatal("IsEmpty misjudged")
	}
}

func TestIndexableGetBoundsChecks(t *testing.T) {
	s := []string{"a", "b", "c"}
	v, ok := slices.Get(s, 2)
	if !ok || v != "c" {
		t.Fatalf("Get(2) = %q, %v; want \"c\", true", v, ok)
	}
	if _, ok := slices.Get(s, -1); ok {
		t.Fatal("Get(-1) should report absence")
	}
	if _, ok := slices.Get(s, 3); ok {
		t.Fatal("Get(3) should report absence")
	}
}

func TestIndexablePositions(t *testing.T) {
	s := []string{"a", "b", "c"}
	if v, _ := slices.First(s); v != "a" {
		t.Fatalf("First = %q", v)
	}
	if v, _ := slices.Second(s); v != "b" {
		t.Fatalf("Second = %q", v)
	}
	if v, _ := slices.Last(s); v != "c" {
		t.Fatalf("Last = %q", v)
	}
	if _, ok := slices.Last(nil); ok {
		t.Fatal("Last on empty should report absence")
	}
	if _, ok := slices.Second([]string{"only"}); ok {
		t.Fatal("Second on singleton should report absence")
	}
}

func TestIndexableIter(t *testing.T) {
	got := iter.ToSlice(slices.Iter([]string{"x", "y"}))
	if len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Fatalf("Iter produced %v", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Sequential derivation
// ─────────────────────────────────────────────────────────────────────────────

func TestSequentialMatchesIndexable(t *testing.T) {
	items := []string{"a", "b", "c"}
	w := seqOf(items...)

	if walkeds.Len(w) != slices.Len(items) {
		t.Fatal("Len differs across capabilities")
	}
	for n := -1; n <= len(items); n++ {
		sv, sok := walkeds.Get(seqOf(items...), n)
		iv, iok := slices.Get(items, n)
		if sv != iv || sok != iok {
			t.Fatalf("Get(%d): sequential %q,%v vs indexable %q,%v", n, sv, sok, iv, iok)
		}
	}
	for name, pair := range map[string][2]func() (string, bool){
		"First":  {func() (string, bool) { return walkeds.First(seqOf(items...)) }, func() (string, bool) { return slices.First(items) }},
		"Second": {func() (string, bool) { return walkeds.Second(seqOf(items...)) }, func() (string, bool) { return slices.Second(items) }},
		"Last":   {func() (string, bool) { return walkeds.Last(seqOf(items...)) }, func() (string, bool) { return slices.Last(items) }},
	} {
		sv, sok := pair[0]()
		iv, iok := pair[1]()
		if sv != iv || sok != iok {
			t.Fatalf("%s differs across capabilities", name)
		}
	}
}

func TestSequentialIsEmptyProbesOneStep(t *testing.T) {
	w := seqOf("a", "b", "c")
	if walkeds.IsEmpty(w) {
		t.Fatal("IsEmpty misjudged")
	}
	if w.steps != 1 {
		t.Fatalf("IsEmpty took %d steps; want 1", w.steps)
	}
	if !walkeds.IsEmpty(seqOf()) {
		t.Fatal("IsEmpty should be true for an empty source")
	}
}

func TestSequentialGetStopsEarly(t *testing.T) {
	w := seqOf("a", "b", "c", "d")
	v, ok := walkeds.Get(w, 1)
	if !ok || v != "b" {
		t.Fatalf("Get(1) = %q, %v; want \"b\", true", v, ok)
	}
	if w.steps != 2 {
		t.Fatalf("Get(1) took %d steps; want 2", w.steps)
	}
}

func TestSequentialLastFolds(t *testing.T) {
	v, ok := walkeds.Last(seqOf("a", "b", "c"))
	if !ok || v != "c" {
		t.Fatalf("Last = %q, %v; want \"c\", true", v, ok)
	}
	if _, ok := walkeds.Last(seqOf()); ok {
		t.Fatal("Last on empty should report absence")
	}
}
