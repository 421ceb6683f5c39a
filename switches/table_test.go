package switches

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type shape interface {
	area() float64
}

type circle struct {
	r float64
}

func (c *circle) area() float64 {
	return math.Pi * c.r * c.r
}

type name string

func circleFooAnswer(t *testing.T) *Table {
	table, err := TypeSwitch(Type[*circle](), StringLabel("foo"), IntLabel(42))
	if err != nil {
		t.Fatalf("cannot create table: %v", err)
	}
	return table
}

func TestMatchNilTarget(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bootstraps.switches")
	defer teardown()
	//
	table := circleFooAnswer(t)
	for _, restart := range []int{-1, 0, 1, 2, 3, 17} {
		if n := table.Match(nil, restart); n != -1 {
			t.Errorf("expected nil target to yield -1 for restart=%d, is %d", restart, n)
		}
	}
	var none *circle
	if n := table.Match(none, 0); n != -1 {
		t.Errorf("expected nil pointer target to yield -1, is %d", n)
	}
}

func TestMatchFirstLabel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bootstraps.switches")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	table := circleFooAnswer(t)
	cases := []struct {
		target any
		index  int
	}{
		{&circle{1}, 0},
		{"foo", 1},
		{42, 2},
		{int64(42), 2},
		{int64(1<<32 + 42), 3},
		{uint8(42), 2},
		{int8(42), 2},
		{42.9, 2},
		{float32(42), 2},
		{'*', 2},
		{"bar", 3},
		{name("foo"), 3},
		{3.5, 3},
		{circle{1}, 3},
		{[]int{42}, 3},
	}
	for _, c := range cases {
		if n := table.Match(c.target, 0); n != c.index {
			t.Errorf("expected %#v to match label #%d, matched %d", c.target, c.index, n)
		}
	}
	if table.Len() != 3 {
		t.Errorf("expected table to have 3 labels, has %d", table.Len())
	}
}

func TestMatchRestart(t *testing.T) {
	table, err := TypeSwitch(StringLabel("foo"), StringLabel("foo"))
	if err != nil {
		t.Fatal(err)
	}
	if n := table.Match("foo", 0); n != 0 {
		t.Errorf("expected restart=0 to match #0, matched %d", n)
	}
	if n := table.Match("foo", 1); n != 1 {
		t.Errorf("expected restart=1 to match #1, matched %d", n)
	}
	if n := table.Match("foo", 2); n != 2 {
		t.Errorf("expected restart=2 to exhaust table, is %d", n)
	}
	if n := table.Match("foo", 9); n != 2 {
		t.Errorf("expected restart beyond table to yield length, is %d", n)
	}
	if n := table.Match("foo", -5); n != 0 {
		t.Errorf("expected negative restart to start at #0, matched %d", n)
	}
}

func TestMatchInterfaceType(t *testing.T) {
	table, err := TypeSwitch(Type[shape](), Type[any]())
	if err != nil {
		t.Fatal(err)
	}
	if n := table.Match(&circle{2}, 0); n != 0 {
		t.Errorf("expected *circle to implement shape, matched %d", n)
	}
	if n := table.Match(circle{2}, 0); n != 1 {
		t.Errorf("expected circle value not to implement shape, matched %d", n)
	}
	if n := table.Match(&circle{2}, 1); n != 1 {
		t.Errorf("expected everything to be assignable to any, matched %d", n)
	}
}

func TestMatchIntegerEdges(t *testing.T) {
	table, err := TypeSwitch(IntLabel(-1), IntLabel(0))
	if err != nil {
		t.Fatal(err)
	}
	if n := table.Match(uint64(math.MaxUint64), 0); n != 2 {
		t.Errorf("expected MaxUint64 not to be -1, matched %d", n)
	}
	if n := table.Match(math.NaN(), 0); n != 2 {
		t.Errorf("expected NaN to have no integer value, matched %d", n)
	}
	if n := table.Match(math.Inf(1), 0); n != 2 {
		t.Errorf("expected +Inf to have no integer value, matched %d", n)
	}
	if n := table.Match(-0.5, 0); n != 1 {
		t.Errorf("expected -0.5 to truncate to 0, matched %d", n)
	}
	if n := table.Match(true, 0); n != 2 {
		t.Errorf("expected bool not to be numeric, matched %d", n)
	}
}

func TestMatchValueLabels(t *testing.T) {
	labels, err := Labels(name("foo"), true, 2.5, Type[error]())
	if err != nil {
		t.Fatal(err)
	}
	table, err := TypeSwitch(labels...)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		target any
		index  int
	}{
		{name("foo"), 0},
		{"foo", 4},
		{true, 1},
		{2.5, 2},
		{float32(2.5), 4},
		{errors.New("x"), 3},
		{struct{ x any }{[]int{1}}, 4},
	}
	for _, c := range cases {
		if n := table.Match(c.target, 0); n != c.index {
			t.Errorf("expected %#v to match label #%d, matched %d", c.target, c.index, n)
		}
	}
}

func TestMatchValueLabelUncomparableNested(t *testing.T) {
	type holder struct{ x any }
	table, err := TypeSwitch(Value(holder{1}))
	if err != nil {
		t.Fatal(err)
	}
	if n := table.Match(holder{[]int{1}}, 0); n != 1 {
		t.Errorf("expected holder of slice not to match, matched %d", n)
	}
	if n := table.Match(holder{1}, 0); n != 0 {
		t.Errorf("expected equal holder to match, matched %d", n)
	}
}

func TestLabelsConversion(t *testing.T) {
	labels, err := Labels(reflect.TypeOf(0), "s", 7, StringLabel("t"), 'c')
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"type int", `string "s"`, "int 7", `string "t"`, "value 99"}
	for i, l := range labels {
		if l.String() != want[i] {
			t.Errorf("expected label #%d to be %s, is %s", i, want[i], l)
		}
	}
}

func TestConfigurationErrors(t *testing.T) {
	if _, err := Labels("a", nil); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected nil label to be rejected, got %v", err)
	}
	if _, err := Labels([]int{1}); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected slice label to be rejected, got %v", err)
	}
	if _, err := TypeSwitch(StringLabel("a"), nil); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected nil label to be rejected, got %v", err)
	}
	if _, err := TypeSwitch(TypeOf(nil)); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected type label without type to be rejected, got %v", err)
	}
	if _, err := TypeSwitch(Value(map[int]int{})); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected uncomparable value label to be rejected, got %v", err)
	}
	if _, err := TypeSwitch(Value(nil)); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected nil value label to be rejected, got %v", err)
	}
	if _, err := TypeSwitch(EnumRef[color](nil, "RED")); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected enum label without enum to be rejected, got %v", err)
	}
}

func TestEnumLabelsInTypeSwitch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bootstraps.switches")
	defer teardown()
	//
	colors := declareColors(t)
	table, err := TypeSwitch(EnumRef(colors, "GREEN"), EnumRef(colors, "PURPLE"), Type[color]())
	if err != nil {
		t.Fatal(err)
	}
	if n := table.Match(green, 0); n != 0 {
		t.Errorf("expected green to match #0, matched %d", n)
	}
	if n := table.Match(red, 0); n != 2 {
		t.Errorf("expected red to match type label #2, matched %d", n)
	}
	if n := table.Match("GREEN", 0); n != 3 {
		t.Errorf("expected a string not to match enum labels, matched %d", n)
	}
	if !strings.Contains(table.String(), "#1 enum switches.color.PURPLE") {
		t.Errorf("unexpected table dump:\n%s", table)
	}
}

func TestEmptyTable(t *testing.T) {
	table, err := TypeSwitch()
	if err != nil {
		t.Fatal(err)
	}
	if n := table.Match("x", 0); n != 0 {
		t.Errorf("expected empty table to be exhausted immediately, is %d", n)
	}
	if n := table.Match(nil, 0); n != -1 {
		t.Errorf("expected nil to yield -1 for empty table, is %d", n)
	}
}

func TestTableConcurrentUse(t *testing.T) {
	table := circleFooAnswer(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if table.Match("foo", 0) != 1 || table.Match(42, 0) != 2 {
					t.Error("concurrent matching changed results")
					return
				}
			}
		}()
	}
	wg.Wait()
}
