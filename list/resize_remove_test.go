package list

import "testing"

func TestResize(t *testing.T) {
	l := New[int]()

	// Growing appends zero values.
	if !l.Resize(3) {
		t.Fatal("grow")
	}
	if got := collect(l); !equalSlices(got, []int{0, 0, 0}) {
		t.Fatalf("contents %v", got)
	}

	// Growing with a fill value appends exactly count-size copies.
	if !l.ResizeWith(5, 9) {
		t.Fatal("grow with value")
	}
	if got := collect(l); !equalSlices(got, []int{0, 0, 0, 9, 9}) {
		t.Fatalf("contents %v", got)
	}

	// Resize to the current size is a no-op.
	if !l.Resize(5) || l.Count() != 5 {
		t.Fatal("resize to same size")
	}

	// Shrinking pops from the back and always succeeds.
	if !l.Resize(1) {
		t.Fatal("shrink")
	}
	if got := collect(l); !equalSlices(got, []int{0}) {
		t.Fatalf("contents %v", got)
	}
	if !l.Resize(0) || !l.IsEmpty() {
		t.Fatal("shrink to empty")
	}
	if !checkChain(l) {
		t.Fatal("chain invariants broken")
	}
}

func TestRemoveIf_SinglePassOriginalOrder(t *testing.T) {
	l := NewFrom(sampleValues()...)

	var seen []int
	removed := l.RemoveIf(func(v int) bool {
		seen = append(seen, v)
		return v%2 == 0
	})
	if removed != 3 {
		t.Fatalf("removed %d", removed)
	}
	// The predicate runs exactly once per element, in original order.
	if !equalSlices(seen, sampleValues()) {
		t.Fatalf("predicate order %v", seen)
	}
	if got := collect(l); !equalSlices(got, []int{251, 515, 25, 2551, 251, 5621, 915}) {
		t.Fatalf("survivors %v", got)
	}
	if !checkChain(l) {
		t.Fatal("chain invariants broken")
	}
}

func TestRemoveIf_AllAndNone(t *testing.T) {
	l := NewFrom(1, 2, 3)
	if n := l.RemoveIf(func(int) bool { return false }); n != 0 || l.Count() != 3 {
		t.Fatal("remove none")
	}
	if n := l.RemoveIf(func(int) bool { return true }); n != 3 {
		t.Fatal("remove all")
	}
	// Removing every node must restore the empty-list invariant.
	if !l.IsEmpty() || l.Front() != nil || l.Back() != nil || !checkChain(l) {
		t.Fatal("empty invariant broken after removing all")
	}
	if n := l.RemoveIf(func(int) bool { return true }); n != 0 {
		t.Fatal("remove on empty list")
	}
}

func TestRemove_ByEquality(t *testing.T) {
	l := NewFrom(sampleValues()...)
	if n := Remove(l, 251); n != 2 {
		t.Fatalf("removed %d", n)
	}
	if got := collect(l); !equalSlices(got, []int{515, 25, 16232, 5156, 2551, 5621, 6722, 915}) {
		t.Fatalf("contents %v", got)
	}
	if n := Remove(l, 424242); n != 0 {
		t.Fatal("removing absent value")
	}
}

func TestRemoveFunc_CustomEquality(t *testing.T) {
	type point struct{ x, y int }
	l := NewFrom(point{1, 1}, point{2, 5}, point{1, 9})
	n := RemoveFunc(l, point{x: 1}, func(a, b point) bool { return a.x == b.x })
	if n != 2 || l.Count() != 1 {
		t.Fatalf("removed %d, left %d", n, l.Count())
	}
}

func TestEraseHelpers_Forwarding(t *testing.T) {
	l := NewFrom(1, 2, 1, 3, 1)
	if n := Erase(l, 1); n != 3 {
		t.Fatalf("erase removed %d", n)
	}
	if n := EraseIf(l, func(v int) bool { return v > 2 }); n != 1 {
		t.Fatalf("erase-if removed %d", n)
	}
	if got := collect(l); !equalSlices(got, []int{2}) {
		t.Fatalf("contents %v", got)
	}
}

func TestScenario_PopsThenRemove(t *testing.T) {
	l := NewFrom(sampleValues()...)

	l.PopFront()
	if f := l.Front(); f == nil || *f != 515 {
		t.Fatalf("front after pop %v", f)
	}
	l.PopBack()
	if b := l.Back(); b == nil || *b != 6722 {
		t.Fatalf("back after pop %v", b)
	}

	sizeAfterPops := l.Count()
	if n := Remove(l, 251); n != 1 {
		// 251 appeared twice in the input; the first occurrence left with PopFront.
		t.Fatalf("removed %d", n)
	}
	if l.Count() != sizeAfterPops-1 {
		t.Fatalf("size %d", l.Count())
	}
	if !checkChain(l) {
		t.Fatal("chain invariants broken")
	}
}
