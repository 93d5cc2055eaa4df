package compare_test

import (
	"testing"

	"github.com/rizo/proto/compare"
)

func TestNatural(t *testing.T) {
	if compare.Natural(1, 2) >= 0 {
		t.Fatal("1 should order before 2")
	}
	if compare.Natural("b", "a") <= 0 {
		t.Fatal("\"b\" should order after \"a\"")
	}
	if compare.Natural(3.5, 3.5) != 0 {
		t.Fatal("equal values should compare as 0")
	}
}

func TestEqual(t *testing.T) {
	type point struct{ X, Y int }
	if !compare.Equal(point{1, 2}, point{1, 2}) {
		t.Fatal("field-equal structs should be equal")
	}
	if compare.Equal(point{1, 2}, point{1, 3}) {
		t.Fatal("differing structs should not be equal")
	}
}

func TestReverse(t *testing.T) {
	desc := compare.Reverse(compare.Natural[int])
	if desc(1, 2) <= 0 {
		t.Fatal("reversed order should put 1 after 2")
	}
	if desc(5, 5) != 0 {
		t.Fatal("reversing should preserve equivalence")
	}
}

func TestBy(t *testing.T) {
	byLen := compare.By(func(s string) int { return len(s) }, compare.Natural[int])
	if byLen("ab", "xyz") >= 0 {
		t.Fatal("shorter string should order first")
	}
	if byLen("ab", "cd") != 0 {
		t.Fatal("same-length strings should be equivalent under byLen")
	}
}

func TestEqualBy(t *testing.T) {
	type user struct {
		ID   int
		Name string
	}
	byID := compare.EqualBy(func(u user) int { return u.ID })
	if !byID(user{1, "a"}, user{1, "b"}) {
		t.Fatal("same-ID users should be equal under byID")
	}
	if byID(user{1, "a"}, user{2, "a"}) {
		t.Fatal("different-ID users should not be equal under byID")
	}
}
