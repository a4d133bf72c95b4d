package resourceview

// Table is the render model of a view: a pure projection of its State.
type Table[R any] struct {
	Name  string
	Phase Phase
	Rows  []R
	Count int
	Error string
}

// Render projects s into a Table. Rows are produced only in the ready phase,
// in the order the records arrived; project receives each record's position.
func Render[T, R any](name string, s State[T], project func(i int, rec T) R) Table[R] {
	t := Table[R]{
		Name:  name,
		Phase: s.Phase(),
		Count: len(s.Data),
		Error: s.Err,
	}
	if t.Phase == Ready {
		t.Rows = make([]R, 0, len(s.Data))
		for i, rec := range s.Data {
			t.Rows = append(t.Rows, project(i, rec))
		}
	}
	return t
}

// Pending returns the table of a view that has not mounted yet.
func Pending[R any](name string) Table[R] {
	return Table[R]{Name: name, Phase: Loading}
}

// Template helpers.

func (t Table[R]) IsLoading() bool { return t.Phase == Loading }
func (t Table[R]) IsFailed() bool  { return t.Phase == Failed }
func (t Table[R]) IsEmpty() bool   { return t.Phase == Empty }
func (t Table[R]) IsReady() bool   { return t.Phase == Ready }

// DOMID is the element id the fragment replaces.
func (t Table[R]) DOMID() string { return t.Name + "-view" }

// Src is the fragment URL requested once when the view mounts.
func (t Table[R]) Src() string { return "/" + t.Name + "/table" }
