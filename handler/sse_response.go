package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext is handed to long-lived SSE handlers.
type StreamContext interface {
	Context

	// Send writes the patches in order.
	Send(patches ...PatchFunc) error
	// SendComponent patches a single component.
	SendComponent(component templ.Component, opts ...TemplOption) error
}

// SSEHandler drives a stream until it returns or the client disconnects.
type SSEHandler func(ctx StreamContext) error

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) Send(patches ...PatchFunc) error {
	for _, patch := range patches {
		if err := patch(c.sse); err != nil {
			return err
		}
	}
	return nil
}

func (c *streamContext) SendComponent(component templ.Component, opts ...TemplOption) error {
	return c.sse.PatchElementTempl(component, opts...)
}

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return ErrNotDataStar
	}
	return s.handler(&streamContext{
		Context: NewContext(w, r),
		sse:     datastar.NewSSE(w, r),
	})
}

// SSE opens a Datastar stream and runs h on it. Regular requests fail with
// ErrNotDataStar.
func SSE(h SSEHandler) Response {
	return sseResponse{handler: h}
}
