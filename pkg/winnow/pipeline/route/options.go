package route

import (
	"github.com/constraint-foundry/winnow/pkg/winnow/pipeline"
)

type Option func(router *Router)

// WithDebugChannel mirrors every routed event into the given channel.
// The router closes the channel when its context expires.
func WithDebugChannel(debugChannel chan<- pipeline.Event) Option {
	return func(router *Router) {
		router.debugChannel = debugChannel
	}
}

// WithErrorChannel receives error events raised by the router itself.
// The router closes the channel when its context expires.
func WithErrorChannel(errChannel chan<- pipeline.ErrorEvent) Option {
	return func(router *Router) {
		router.errChannel = errChannel
	}
}
