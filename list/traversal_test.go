package list

import "testing"

func TestRoundTrip_ForwardAndReverse(t *testing.T) {
	in := sampleValues()
	l := New[int]()
	for _, v := range in {
		if !l.PushBack(v) {
			t.Fatalf("push %d", v)
		}
	}

	if got := collect(l); !equalSlices(got, in) {
		t.Fatalf("forward traversal %v", got)
	}
	rev := make([]int, 0, len(in))
	for i := len(in) - 1; i >= 0; i-- {
		rev = append(rev, in[i])
	}
	if got := collectReverse(l); !equalSlices(got, rev) {
		t.Fatalf("reverse traversal %v", got)
	}
	if !checkChain(l) {
		t.Fatal("chain invariants broken")
	}
}

func TestIterator_StepBothWays(t *testing.T) {
	l := NewFrom(1, 2, 3)
	it := l.Begin()
	if it.Value() != 1 {
		t.Fatalf("begin %d", it.Value())
	}
	it = it.Next().Next()
	if it.Value() != 3 {
		t.Fatalf("after two steps %d", it.Value())
	}
	it = it.Prev()
	if it.Value() != 2 {
		t.Fatalf("after step back %d", it.Value())
	}
	// Stepping past the tail reaches the end position.
	if end := it.Next().Next(); end.Valid() || end != l.End() {
		t.Fatal("expected end position")
	}

	rit := l.ReverseBegin()
	if rit.Value() != 3 {
		t.Fatalf("reverse begin %d", rit.Value())
	}
	rit = rit.Next().Next()
	if rit.Value() != 1 {
		t.Fatalf("reverse after two steps %d", rit.Value())
	}
	// Stepping past the head reaches the reverse end position.
	if rend := rit.Next(); rend.Valid() || rend != l.ReverseEnd() {
		t.Fatal("expected reverse end position")
	}
}

func TestIterator_MutableAndConstViews(t *testing.T) {
	l := NewFrom(1, 2, 3)
	it := l.Begin().Next()
	it.Set(20)
	*it.Ref() += 2
	if got := collect(l); !equalSlices(got, []int{1, 22, 3}) {
		t.Fatalf("after mutation %v", got)
	}

	cit := it.Const()
	if cit.Value() != 22 {
		t.Fatalf("const view %d", cit.Value())
	}

	rit := l.ReverseBegin()
	rit.Set(30)
	if b := l.Back(); *b != 30 {
		t.Fatalf("reverse mutation %d", *b)
	}
	if rit.Const().Value() != 30 {
		t.Fatal("const reverse view")
	}
}

func TestIterator_EqualityIsHandleIdentity(t *testing.T) {
	l := NewFrom(5, 5) // equal values, distinct nodes
	a := l.Begin()
	b := l.Begin().Next()
	if a == b {
		t.Fatal("distinct nodes must compare unequal")
	}
	if a != l.Begin() {
		t.Fatal("same node must compare equal")
	}
	var zero Iterator[int]
	if zero != l.End() {
		t.Fatal("zero iterator is the end position")
	}
}

func TestIterator_StableAcrossUnrelatedMutation(t *testing.T) {
	l := NewFrom(1, 2, 3, 4)
	it := l.Begin().Next() // references 2
	// Insert and erase elsewhere; nodes never move, so it stays valid.
	if !l.PushFront(0) {
		t.Fatal("push front")
	}
	if !l.PushBack(5) {
		t.Fatal("push back")
	}
	l.PopBack()
	if it.Value() != 2 {
		t.Fatalf("iterator moved: %d", it.Value())
	}
	l.Erase(l.Begin()) // removes 0
	if it.Value() != 2 {
		t.Fatalf("iterator moved after erase: %d", it.Value())
	}
}
