package switches

import (
	"fmt"
	"reflect"

	tp "github.com/xlab/treeprint"
)

// Table is an immutable dispatch table over general labels.
// The zero Table is an empty table.
type Table struct {
	labels  []Label
	matches []matchFunc
}

// TypeSwitch builds a dispatch table from labels, in order of priority.
// Every label is checked here; nil or malformed labels are configuration
// errors.
func TypeSwitch(labels ...Label) (*Table, error) {
	t := &Table{
		labels:  make([]Label, len(labels)),
		matches: make([]matchFunc, len(labels)),
	}
	for i, l := range labels {
		if l == nil {
			return nil, fmt.Errorf("%w: label #%d is nil", ErrConfiguration, i)
		}
		m, err := l.compile()
		if err != nil {
			return nil, fmt.Errorf("label #%d: %w", i, err)
		}
		t.labels[i], t.matches[i] = l, m
	}
	tracer().Debugf("type switch:\n%s", t)
	return t, nil
}

// Match returns the index of the first label at or after restart matching
// target, or Len() if none matches. A nil target yields -1.
func (t *Table) Match(target any, restart int) int {
	if isNil(target) {
		return -1
	}
	tt := reflect.TypeOf(target)
	if restart < 0 {
		restart = 0
	}
	for i := restart; i < len(t.matches); i++ {
		if t.matches[i](target, tt) {
			return i
		}
	}
	return len(t.matches)
}

// Len is the number of labels.
func (t *Table) Len() int {
	return len(t.labels)
}

// Labels returns a copy of the table's labels.
func (t *Table) Labels() []Label {
	return append([]Label(nil), t.labels...)
}

func (t *Table) String() string {
	root := tp.New()
	root.SetValue(fmt.Sprintf("switch (%d labels)", len(t.labels)))
	for i, l := range t.labels {
		root.AddNode(fmt.Sprintf("#%d %s", i, l))
	}
	return root.String()
}

// isNil is true for nil and for nil pointers. Other nillable kinds are
// values in their own right and take part in matching.
func isNil(target any) bool {
	if target == nil {
		return true
	}
	v := reflect.ValueOf(target)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
