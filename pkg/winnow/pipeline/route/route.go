package route

import (
	"context"
	"sync"

	"github.com/constraint-foundry/winnow/pkg/winnow/pipeline"
)

// Route is one routing-table entry: the input and output channel pair
// of a registered event source.
type Route struct {
	eventSourceID pipeline.EventSourceID
	// events destined for the source
	inputChannel chan pipeline.Event
	// events the source wants delivered
	outputChannel chan pipeline.Event
	// set once the input channel has been closed, either by the source
	// signalling end-of-output or by the router tearing the route down
	inputChannelClosed bool

	connectionDoneListeners map[chan<- struct{}]struct{}

	lock sync.RWMutex
}

func (r *Route) CloseInputChannel() {
	r.lock.Lock()
	defer r.lock.Unlock()
	if !r.inputChannelClosed && r.inputChannel != nil {
		close(r.inputChannel)
		r.inputChannelClosed = true
	}
}

func (r *Route) InputChannel() <-chan pipeline.Event {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.inputChannel
}

func (r *Route) OutputChannel() chan<- pipeline.Event {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.outputChannel
}

// AddConnectionDoneListener registers a channel notified when the
// route is torn down.
func (r *Route) AddConnectionDoneListener(done chan<- struct{}) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.connectionDoneListeners[done] = struct{}{}
}

func (r *Route) notifyConnectionDoneListeners(ctx context.Context) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	for doneCh := range r.connectionDoneListeners {
		go func(doneCh chan<- struct{}) {
			select {
			case <-ctx.Done():
			case doneCh <- struct{}{}:
			}
		}(doneCh)
	}
}

// ConnectionDone closes the route's input side and notifies listeners.
func (r *Route) ConnectionDone(ctx context.Context) {
	r.CloseInputChannel()
	r.notifyConnectionDoneListeners(ctx)
}
