package solver

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/constraint-foundry/winnow/pkg/winnow"
)

var _ winnow.SearchPosition = searchPosition{}

type searchPosition struct {
	assignment winnow.Assignment
	depth      int
}

func (p searchPosition) Assignment() winnow.Assignment {
	return p.assignment
}

func (p searchPosition) Depth() int {
	return p.depth
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ winnow.SearchPosition) {
}

// LoggingTracer writes one line per visited search node.
type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p winnow.SearchPosition) {
	fmt.Fprintf(t.Writer, "depth=%d assignment=%s\n", p.Depth(), p.Assignment())
}

// CountingTracer counts visited search nodes. Because the engine
// traces exactly where it completeness-checks, the count is the
// explored-node metric: pruned branches and preprocessing failures
// contribute nothing.
type CountingTracer struct {
	nodes atomic.Int64
}

func (t *CountingTracer) Trace(_ winnow.SearchPosition) {
	t.nodes.Add(1)
}

func (t *CountingTracer) Nodes() int64 {
	return t.nodes.Load()
}

// TeeTracer fans a trace out to multiple tracers.
type TeeTracer []winnow.Tracer

func (t TeeTracer) Trace(p winnow.SearchPosition) {
	for _, tracer := range t {
		tracer.Trace(p)
	}
}
