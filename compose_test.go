package bootstraps_test

import (
	"fmt"
	"testing"

	"github.com/npillmayer/bootstraps"
)

func TestComposition(t *testing.T) {
	g := func(n int) float32 {
		return float32(n) + 0.5
	}
	f := func(x float32) string {
		return fmt.Sprintf("%.3f", x)
	}
	h := bootstraps.Compose(g, f)
	h7 := h(7)
	if h7 != "7.500" {
		t.Logf("composition h(7) = %q", h(7))
		t.Error("expected h(7) to return string 7.500")
	}
}

func TestCompose2(t *testing.T) {
	length := func(s string) int { return len(s) }
	sameLength := bootstraps.Compose2(length, func(a, b int) bool { return a == b })
	if !sameLength("abc", "xyz") {
		t.Error("expected strings of equal length to compare equal by length")
	}
	if sameLength("ab", "xyz") {
		t.Error("expected strings of different length to compare unequal by length")
	}
}

func TestFoldLeftKeepsOrder(t *testing.T) {
	first := func(p [2]int32) int32 { return p[0] }
	second := func(p [2]int32) int32 { return p[1] }
	step := func(acc, h int32) int32 { return acc*31 + h }
	h12 := bootstraps.FoldLeft([]func([2]int32) int32{first, second}, 0, step)
	h21 := bootstraps.FoldLeft([]func([2]int32) int32{second, first}, 0, step)
	p := [2]int32{1, 2}
	if h12(p) != 33 {
		t.Errorf("expected fold of (1,2) to be 1*31+2 = 33, is %d", h12(p))
	}
	if h12(p) == h21(p) {
		t.Error("expected fold order to matter, didn't")
	}
}

func TestAllShortCircuits(t *testing.T) {
	calls := 0
	no := func(a, b int) bool { calls++; return false }
	yes := func(a, b int) bool { calls++; return true }
	all := bootstraps.All([]func(int, int) bool{yes, no, yes})
	if all(1, 1) {
		t.Error("expected All to be false if any predicate is false")
	}
	if calls != 2 {
		t.Errorf("expected All to stop after 2 predicates, called %d", calls)
	}
	if !bootstraps.All[int](nil)(1, 2) {
		t.Error("expected All of no predicates to hold")
	}
}
