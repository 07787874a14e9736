package handler

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// PatchFunc writes one event to a Datastar stream.
type PatchFunc func(sse *datastar.ServerSentEventGenerator) error

// Element patches a rendered component into the page.
func Element(component templ.Component, opts ...TemplOption) PatchFunc {
	return func(sse *datastar.ServerSentEventGenerator) error {
		return sse.PatchElementTempl(component, opts...)
	}
}

// Signals merges signals into the client store.
func Signals(signals map[string]any) PatchFunc {
	return func(sse *datastar.ServerSentEventGenerator) error {
		data, err := json.Marshal(signals)
		if err != nil {
			return err
		}
		return sse.PatchSignals(data)
	}
}

// Script runs js in the browser.
func Script(js string) PatchFunc {
	return func(sse *datastar.ServerSentEventGenerator) error {
		return sse.ExecuteScript(js)
	}
}

type patchResponse struct {
	fallback Response
	patches  []PatchFunc
}

func (p patchResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		if p.fallback == nil {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}
		return p.fallback.Render(w, r)
	}

	sse := datastar.NewSSE(w, r)
	for _, patch := range p.patches {
		if patch == nil {
			continue
		}
		if err := patch(sse); err != nil {
			return err
		}
	}
	return nil
}

// Patches sends every patch over a single SSE stream for Datastar requests
// and renders fallback for regular ones. A nil fallback answers 204.
func Patches(fallback Response, patches ...PatchFunc) Response {
	return patchResponse{fallback: fallback, patches: patches}
}
