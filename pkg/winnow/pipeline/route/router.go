package route

import (
	"context"
	"sync"

	"github.com/constraint-foundry/winnow/pkg/winnow/pipeline"
)

// Router fans events between registered event sources. Each source
// writes to its route's output channel; the router delivers every
// event to the receiver named in its header, or to all other sources
// for broadcast events.
type Router struct {
	routeTable   map[pipeline.EventSourceID]*Route
	debugChannel chan<- pipeline.Event
	errChannel   chan<- pipeline.ErrorEvent
	lock         sync.RWMutex
	ctx          context.Context
}

func NewEventRouter(ctx context.Context, opts ...Option) *Router {
	router := &Router{
		routeTable: map[pipeline.EventSourceID]*Route{},
		ctx:        ctx,
	}

	for _, applyOption := range opts {
		applyOption(router)
	}

	// close debug and error channels when the context expires
	if router.debugChannel != nil {
		go func(router *Router) {
			<-router.ctx.Done()
			close(router.debugChannel)
		}(router)
	}
	if router.errChannel != nil {
		go func(router *Router) {
			<-router.ctx.Done()
			close(router.errChannel)
		}(router)
	}
	return router
}

// AddRoute registers an event source and allocates its channel pair.
// It returns false if the source is already registered.
func (r *Router) AddRoute(eventSource pipeline.EventSource) bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.routeTable[eventSource.EventSourceID()]; ok {
		return false
	}
	r.routeTable[eventSource.EventSourceID()] = &Route{
		eventSourceID:           eventSource.EventSourceID(),
		inputChannel:            make(chan pipeline.Event, eventSource.IngressCapacity()),
		outputChannel:           make(chan pipeline.Event, eventSource.IngressCapacity()),
		connectionDoneListeners: map[chan<- struct{}]struct{}{},
	}
	return true
}

// DeleteRoute deletes a particular route from the routing table.
func (r *Router) DeleteRoute(eventSourceID pipeline.EventSourceID) {
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.routeTable, eventSourceID)
}

// GetRoute returns the route for the given event source.
func (r *Router) GetRoute(eventSourceID pipeline.EventSourceID) (*Route, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	route, ok := r.routeTable[eventSourceID]
	return route, ok
}

// Route drains the sender's output channel in a goroutine, delivering
// each event until the channel closes or the router's context expires.
// The route is torn down when delivery ends.
func (r *Router) Route(senderEventSource pipeline.EventSource) {
	route, ok := r.GetRoute(senderEventSource.EventSourceID())
	if !ok {
		return
	}

	go func(rte *Route) {
		defer func() {
			r.DeleteRoute(rte.eventSourceID)
			rte.ConnectionDone(r.ctx)
		}()

		for {
			select {
			case <-r.ctx.Done():
				return
			case event, hasNext := <-rte.outputChannel:
				if !hasNext {
					return
				}
				r.deliver(event)
			}
		}
	}(route)
}

func (r *Router) deliver(event pipeline.Event) {
	// debug delivery blocks so traces stay ordered
	r.debug(event)

	switch {
	case event.Header().IsBroadcastEvent():
		for _, route := range r.allRoutes() {
			if route.eventSourceID == event.Header().Sender() {
				continue
			}
			select {
			case route.inputChannel <- event:
			case <-r.ctx.Done():
				return
			}
		}
	case event.Header().Receiver() != "":
		route, ok := r.GetRoute(event.Header().Receiver())
		if !ok {
			return
		}
		select {
		case route.inputChannel <- event:
		case <-r.ctx.Done():
		}
	}
}

func (r *Router) debug(event pipeline.Event) {
	if r.debugChannel == nil {
		return
	}
	select {
	case r.debugChannel <- event:
	case <-r.ctx.Done():
	}
}

func (r *Router) error(event pipeline.ErrorEvent) {
	if r.errChannel == nil {
		return
	}
	select {
	case r.errChannel <- event:
	case <-r.ctx.Done():
	}
}

func (r *Router) allRoutes() []*Route {
	r.lock.RLock()
	defer r.lock.RUnlock()

	out := make([]*Route, 0, len(r.routeTable))
	for _, route := range r.routeTable {
		out = append(out, route)
	}
	return out
}
