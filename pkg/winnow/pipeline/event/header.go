package event

import (
	"sync"
	"time"

	"github.com/constraint-foundry/winnow/pkg/winnow/pipeline"
)

var _ pipeline.EventHeader = &eventHeader{}

type eventHeader struct {
	HeaderEventID          pipeline.EventID       `json:"eventID"`
	HeaderCreator          pipeline.EventSourceID `json:"creatorEventSourceID"`
	HeaderSender           pipeline.EventSourceID `json:"sender"`
	HeaderReceiver         pipeline.EventSourceID `json:"receiver,omitempty"`
	HeaderIsBroadcastEvent bool                   `json:"broadcast"`
	HeaderCreationTime     time.Time              `json:"creationTime"`
	HeaderEventMetadata    pipeline.EventMetadata `json:"metadata,omitempty"`
	lock                   sync.RWMutex
}

func (h *eventHeader) route(receiver pipeline.EventSourceID) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.HeaderIsBroadcastEvent = false
	h.HeaderReceiver = receiver
}

func (h *eventHeader) broadcast() {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.HeaderReceiver = ""
	h.HeaderIsBroadcastEvent = true
}

func (h *eventHeader) copy() *eventHeader {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return &eventHeader{
		HeaderEventID:          h.HeaderEventID,
		HeaderCreator:          h.HeaderCreator,
		HeaderSender:           h.HeaderSender,
		HeaderReceiver:         h.HeaderReceiver,
		HeaderIsBroadcastEvent: h.HeaderIsBroadcastEvent,
		HeaderCreationTime:     h.HeaderCreationTime,
		HeaderEventMetadata:    h.HeaderEventMetadata,
	}
}

func (h *eventHeader) EventID() pipeline.EventID {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.HeaderEventID
}

func (h *eventHeader) Creator() pipeline.EventSourceID {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.HeaderCreator
}

func (h *eventHeader) Sender() pipeline.EventSourceID {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.HeaderSender
}

func (h *eventHeader) Receiver() pipeline.EventSourceID {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.HeaderReceiver
}

func (h *eventHeader) IsBroadcastEvent() bool {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.HeaderIsBroadcastEvent
}

func (h *eventHeader) CreationTime() time.Time {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.HeaderCreationTime
}

func (h *eventHeader) Metadata() pipeline.EventMetadata {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.HeaderEventMetadata
}
