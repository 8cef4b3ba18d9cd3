package chained

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/uuid"
)

func TestNew_ZeroStepIdentity(t *testing.T) {
	t.Parallel()
	if got := New(42).Eval(); got != 42 {
		t.Fatalf("expected 42, got %v", got)
	}
	if got := New("hello").Eval(); got != "hello" {
		t.Fatalf("expected hello, got %q", got)
	}

	type point struct{ x, y int }
	if got := New(point{1, 2}).Eval(); got != (point{1, 2}) {
		t.Fatalf("expected {1 2}, got %v", got)
	}
}

func TestNew_NilInterfaceSeed(t *testing.T) {
	t.Parallel()
	var err error
	c := Then(New(err), func(e error) bool { return e == nil })
	if !c.Eval() {
		t.Fatalf("expected nil error seed to reach the step as nil")
	}
}

func TestThen_NoPrematureExecution(t *testing.T) {
	t.Parallel()
	calls := 0
	inc := func(x int) int {
		calls++
		return x + 1
	}

	c := Then(Then(Then(New(0), inc), inc), inc)
	if calls != 0 {
		t.Fatalf("expected no step to run before Eval, got %d calls", calls)
	}
	if got := c.Eval(); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestThen_OrderPreserved(t *testing.T) {
	t.Parallel()
	var order []string
	step := func(name string) func(string) string {
		return func(s string) string {
			order = append(order, name)
			return s + name
		}
	}

	got := Then(Then(Then(New(""), step("f1")), step("f2")), step("f3")).Eval()
	if got != "f1f2f3" {
		t.Fatalf("expected f3(f2(f1(seed))) = f1f2f3, got %q", got)
	}
	if len(order) != 3 || order[0] != "f1" || order[1] != "f2" || order[2] != "f3" {
		t.Fatalf("unexpected call order %v", order)
	}
}

func TestThen_TypeEvolution(t *testing.T) {
	t.Parallel()
	c := Then(Then(New(5), func(x int) int { return x * 2 }), strconv.Itoa)
	if got := c.Eval(); got != "10" {
		t.Fatalf("expected \"10\", got %q", got)
	}
}

func TestThen_ConsumesReceiver(t *testing.T) {
	t.Parallel()
	c := New(1)
	_ = Then(c, func(x int) int { return x })
	if !c.Consumed() {
		t.Fatalf("expected receiver to be consumed by Then")
	}

	_, err := TryThen(c, func(x int) int { return x })
	if !errors.Is(err, ErrConsumed) {
		t.Fatalf("expected ErrConsumed on re-compose, got %v", err)
	}
	if _, err := c.TryEval(); !IsConsumed(err) {
		t.Fatalf("expected ErrConsumed on eval of moved chain, got %v", err)
	}
}

func TestThen_PanicsOnConsumed(t *testing.T) {
	t.Parallel()
	c := New(1)
	c.Eval()

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !IsConsumed(err) {
			t.Fatalf("expected ConsumedError panic, got %v", r)
		}
	}()
	Then(c, func(x int) int { return x })
}

func TestTryThen_NilStepKeepsReceiver(t *testing.T) {
	t.Parallel()
	c := New(3)
	if _, err := TryThen[int, int](c, nil); !errors.Is(err, ErrNilStep) {
		t.Fatalf("expected ErrNilStep, got %v", err)
	}
	if c.Consumed() {
		t.Fatalf("nil step must not consume the receiver")
	}
	if got := c.Eval(); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestNewWith_SameAsNewThen(t *testing.T) {
	t.Parallel()
	var a, b []int
	record := func(log *[]int) func(int) int {
		return func(x int) int {
			*log = append(*log, x)
			return x * 3
		}
	}

	c1 := NewWith(7, record(&a))
	c2 := Then(New(7), record(&b))
	if c1.Depth() != c2.Depth() {
		t.Fatalf("expected equal depth, got %d and %d", c1.Depth(), c2.Depth())
	}
	if len(a) != 0 || len(b) != 0 {
		t.Fatalf("expected no step to run before Eval")
	}
	if r1, r2 := c1.Eval(), c2.Eval(); r1 != r2 || r1 != 21 {
		t.Fatalf("expected 21 from both, got %d and %d", r1, r2)
	}
	if len(a) != 1 || len(b) != 1 || a[0] != b[0] {
		t.Fatalf("expected identical step inputs, got %v and %v", a, b)
	}
}

func TestThen2Then3(t *testing.T) {
	t.Parallel()
	c := Then2(New("abc"),
		func(s string) int { return len(s) },
		func(n int) float64 { return float64(n) / 2 })
	if got := c.Eval(); got != 1.5 {
		t.Fatalf("expected 1.5, got %v", got)
	}

	d := Then3(New(2),
		func(x int) int { return x + 1 },
		func(x int) int { return x * x },
		strconv.Itoa)
	if d.Depth() != 3 {
		t.Fatalf("expected depth 3, got %d", d.Depth())
	}
	if got := d.Eval(); got != "9" {
		t.Fatalf("expected \"9\", got %q", got)
	}
}

func TestIDAndDepth(t *testing.T) {
	t.Parallel()
	id := uuid.New()
	c := New(1, WithID(id))
	if c.ID() != id || c.Depth() != 0 {
		t.Fatalf("unexpected seed id/depth: %v/%d", c.ID(), c.Depth())
	}

	d := Then2(c, func(x int) int { return x }, func(x int) int { return x })
	if d.ID() != id {
		t.Fatalf("expected lineage id to be inherited")
	}
	if d.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", d.Depth())
	}

	if New(1).ID() == New(1).ID() {
		t.Fatalf("expected independent seeds to get distinct ids")
	}
}

func TestNilChain(t *testing.T) {
	t.Parallel()
	var c *Chain[int]
	if !c.Consumed() || c.Depth() != 0 || c.ID() != uuid.Nil {
		t.Fatalf("unexpected nil chain accessors")
	}
	if _, err := c.TryEval(); !IsConsumed(err) {
		t.Fatalf("expected ErrConsumed for nil chain, got %v", err)
	}
}
