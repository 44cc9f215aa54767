package event

import (
	"time"

	"github.com/constraint-foundry/winnow/pkg/winnow/pipeline"
	"github.com/constraint-foundry/winnow/pkg/winnow/pipeline/event/eventidprovider"
)

var _ pipeline.EventFactory[interface{}] = &eventFactory[interface{}]{}

type FactoryOption[I interface{}] func(factory *eventFactory[I])

func WithEventIDProvider[I interface{}](eventIDProvider pipeline.EventIDProvider) FactoryOption[I] {
	return func(factory *eventFactory[I]) {
		factory.eventIDProvider = eventIDProvider
	}
}

func WithEventMetadata[I interface{}](eventMetadata pipeline.EventMetadata) FactoryOption[I] {
	return func(factory *eventFactory[I]) {
		factory.eventMetadata = eventMetadata
	}
}

type eventFactory[I interface{}] struct {
	creator         pipeline.EventSourceID
	eventIDProvider pipeline.EventIDProvider
	eventMetadata   pipeline.EventMetadata
}

// NewEventFactory returns a factory stamping every produced event with
// the creator's source id, a fresh event id, and the creation time.
// Events carry random UUID ids unless a different provider is given.
func NewEventFactory[I interface{}](creator pipeline.EventSourceID, options ...FactoryOption[I]) pipeline.EventFactory[I] {
	factory := &eventFactory[I]{
		creator:         creator,
		eventIDProvider: eventidprovider.NewUUIDEventIDProvider(),
	}
	for _, applyOption := range options {
		applyOption(factory)
	}
	return factory
}

func (f *eventFactory[I]) newHeader() *eventHeader {
	return &eventHeader{
		HeaderEventID:       f.eventIDProvider.NextEventID(),
		HeaderCreator:       f.creator,
		HeaderSender:        f.creator,
		HeaderCreationTime:  time.Now(),
		HeaderEventMetadata: f.eventMetadata,
	}
}

func (f *eventFactory[I]) NewDataEvent(data I) pipeline.DataEvent[I] {
	return &dataEvent[I]{
		event:     newEvent(f.newHeader()),
		EventData: data,
	}
}

func (f *eventFactory[I]) NewErrorEvent(err error) pipeline.ErrorEvent {
	return &errorEvent{
		event:      newEvent(f.newHeader()),
		EventError: err,
	}
}
