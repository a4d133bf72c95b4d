// Package resourceview implements the fetch-on-mount lifecycle shared by
// every collection page: a view starts loading, issues one fetch inside the
// scope of its mount, and settles into failed, empty or ready.
//
// Usage:
//
//	v := resourceview.View[models.Team]{Name: "teams", Load: store.List, Log: logger}
//	state, ok := v.Mount(r.Context())
//	if !ok {
//	    return // viewer went away; nothing to render
//	}
//	table := resourceview.Render(v.Name, state, teamRow)
package resourceview

import (
	"context"

	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/app/system/metrics"
	"go.uber.org/zap"
)

// Phase is the render-relevant condition of a view.
type Phase int

const (
	Loading Phase = iota
	Failed
	Empty
	Ready
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Failed:
		return "failed"
	case Empty:
		return "empty"
	case Ready:
		return "ready"
	}
	return "unknown"
}

// State is the data a view owns for one mount.
type State[T any] struct {
	Data    []T
	Loading bool
	Err     string
}

// Initial is the state before the fetch resolves.
func Initial[T any]() State[T] {
	return State[T]{Data: []T{}, Loading: true}
}

// Loaded is the state after a successful fetch. nil data becomes empty.
func Loaded[T any](data []T) State[T] {
	if data == nil {
		data = []T{}
	}
	return State[T]{Data: data}
}

// Errored is the state after a failed fetch. Data stays empty.
func Errored[T any](msg string) State[T] {
	return State[T]{Data: []T{}, Err: msg}
}

// Phase derives the render phase from the state.
func (s State[T]) Phase() Phase {
	switch {
	case s.Loading:
		return Loading
	case s.Err != "":
		return Failed
	case len(s.Data) == 0:
		return Empty
	default:
		return Ready
	}
}

// Loader fetches a view's records. It must honor ctx.
type Loader[T any] func(ctx context.Context) ([]T, error)

// View binds a name to its loader.
type View[T any] struct {
	Name string
	Load Loader[T]
	Log  *zap.Logger
}

// Mount runs the view's single fetch inside ctx, the scope of the mount.
//
// ok is false when the scope ended before the fetch resolved; the returned
// state is then the initial one and must not be rendered. A late result is
// never applied.
func (v View[T]) Mount(ctx context.Context) (state State[T], ok bool) {
	log := v.Log
	if log == nil {
		log = zap.NewNop()
	}
	if ctx.Err() != nil {
		return Initial[T](), false
	}

	data, err := v.Load(ctx)
	if ctx.Err() != nil {
		log.Debug("view unmounted before fetch resolved; result discarded", zap.String("view", v.Name))
		metrics.RecordMount(v.Name, "discarded")
		return Initial[T](), false
	}

	if err != nil {
		log.Warn("view fetch failed", zap.String("view", v.Name), zap.Error(err))
		state = Errored[T](apiclient.Message(err))
	} else {
		state = Loaded(data)
	}
	metrics.RecordMount(v.Name, state.Phase().String())
	return state, true
}
