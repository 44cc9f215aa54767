package event

import (
	"encoding/json"
	"sync"

	"github.com/constraint-foundry/winnow/pkg/winnow/pipeline"
)

var _ pipeline.Event = &event{}

type event struct {
	EventHeader *eventHeader `json:"header"`
	lock        sync.RWMutex
}

func newEvent(header *eventHeader) *event {
	return &event{
		EventHeader: header,
	}
}

func (e *event) Header() pipeline.EventHeader {
	return e.EventHeader
}

func (e *event) Broadcast() {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.EventHeader.broadcast()
}

func (e *event) Route(dest pipeline.EventSourceID) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.EventHeader.route(dest)
}

func (e *event) String() string {
	e.lock.RLock()
	defer e.lock.RUnlock()
	bytes, err := json.Marshal(e)
	if err != nil {
		return string(e.EventHeader.EventID())
	}
	return string(bytes)
}

var _ pipeline.DataEvent[interface{}] = &dataEvent[interface{}]{}

type dataEvent[D interface{}] struct {
	*event
	EventData D `json:"data"`
}

func (e *dataEvent[D]) Data() D {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return e.EventData
}

func (e *dataEvent[D]) String() string {
	e.lock.RLock()
	defer e.lock.RUnlock()
	bytes, err := json.Marshal(e)
	if err != nil {
		return string(e.EventHeader.EventID())
	}
	return string(bytes)
}

func (e *dataEvent[D]) Copy() pipeline.DataEvent[D] {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return &dataEvent[D]{
		event:     newEvent(e.EventHeader.copy()),
		EventData: e.EventData,
	}
}

var _ pipeline.ErrorEvent = &errorEvent{}

type errorEvent struct {
	*event
	EventError error `json:"error"`
}

func (e *errorEvent) Error() error {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return e.EventError
}

func (e *errorEvent) String() string {
	e.lock.RLock()
	defer e.lock.RUnlock()
	bytes, err := json.Marshal(e)
	if err != nil {
		return string(e.EventHeader.EventID())
	}
	return string(bytes)
}

func (e *errorEvent) Copy() pipeline.ErrorEvent {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return &errorEvent{
		event:      newEvent(e.EventHeader.copy()),
		EventError: e.EventError,
	}
}
