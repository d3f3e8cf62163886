package core

import (
	"errors"
	"testing"
)

type fakeEngine struct {
	w, h  int
	cells []uint8
}

func newFakeEngine(w, h int) *fakeEngine {
	return &fakeEngine{w: w, h: h, cells: make([]uint8, w*h)}
}

func (f *fakeEngine) Width() int                { return f.w }
func (f *fakeEngine) Height() int               { return f.h }
func (f *fakeEngine) Tick()                     {}
func (f *fakeEngine) Cells() []uint8            { return f.cells }
func (f *fakeEngine) ToggleCell(row, col int)   { f.cells[Index(f.w, row, col)] ^= 1 }
func (f *fakeEngine) InsertGlider(row, col int) {}
func (f *fakeEngine) InsertPulsar(row, col int) {}
func (f *fakeEngine) SetWidth(w int)            { f.w = w; f.cells = make([]uint8, f.w*f.h) }

func TestIndexBijection(t *testing.T) {
	for _, size := range []Size{{1, 1}, {3, 5}, {64, 64}, {7, 2}} {
		seen := make([]bool, size.Cells())
		for row := 0; row < size.H; row++ {
			for col := 0; col < size.W; col++ {
				idx := Index(size.W, row, col)
				if idx < 0 || idx >= size.Cells() {
					t.Fatalf("%v: index %d for (%d,%d) out of range", size, idx, row, col)
				}
				if seen[idx] {
					t.Fatalf("%v: index %d produced twice", size, idx)
				}
				seen[idx] = true
				r, c := Coords(size.W, idx)
				if r != row || c != col {
					t.Fatalf("%v: Coords(%d) = (%d,%d), want (%d,%d)", size, idx, r, c, row, col)
				}
			}
		}
	}
}

func TestViewInvalidatedOnReplace(t *testing.T) {
	slot := NewSlot(newFakeEngine(4, 3))
	view := slot.View()
	if _, err := view.Cells(); err != nil {
		t.Fatalf("fresh view: %v", err)
	}

	slot.Replace(newFakeEngine(4, 3))
	if view.Valid() {
		t.Fatal("view should be invalid after Replace")
	}
	if _, err := view.Cells(); !errors.Is(err, ErrStaleView) {
		t.Fatalf("stale view error = %v, want ErrStaleView", err)
	}
	if _, err := slot.View().Cells(); err != nil {
		t.Fatalf("re-acquired view: %v", err)
	}
}

func TestViewRejectsMismatchedBuffer(t *testing.T) {
	eng := newFakeEngine(4, 4)
	eng.cells = eng.cells[:10]
	slot := NewSlot(eng)
	if _, err := slot.View().Cells(); !errors.Is(err, ErrBufferSize) {
		t.Fatalf("error = %v, want ErrBufferSize", err)
	}
}

func TestViewSeesMutations(t *testing.T) {
	eng := newFakeEngine(3, 3)
	slot := NewSlot(eng)
	view := slot.View()
	eng.ToggleCell(1, 2)
	cells, err := view.Cells()
	if err != nil {
		t.Fatal(err)
	}
	if cells[Index(3, 1, 2)] != Alive {
		t.Fatal("view did not observe toggle")
	}
	if Population(cells) != 1 {
		t.Fatalf("population = %d, want 1", Population(cells))
	}
}

func TestInvalidateKeepsEngine(t *testing.T) {
	eng := newFakeEngine(3, 2)
	slot := NewSlot(eng)
	old := slot.View()

	eng.SetWidth(3)
	slot.Invalidate()

	if slot.Engine() != eng {
		t.Fatal("Invalidate must not swap the engine")
	}
	if _, err := old.Cells(); !errors.Is(err, ErrStaleView) {
		t.Fatalf("old view err = %v, want ErrStaleView", err)
	}
	if _, err := slot.View().Cells(); err != nil {
		t.Fatalf("fresh view: %v", err)
	}
}
