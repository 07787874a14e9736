// Package handler adapts typed handlers to net/http and renders their
// responses either as plain HTML or as Datastar SSE patches.
//
// A HandlerFunc receives a Context and a request value filled by binders,
// and returns a Response. Wrap turns it into an http.HandlerFunc:
//
//	h := handler.Wrap(func(ctx handler.Context, req addFriendRequest) handler.Response {
//		...
//		return handler.Patches(handler.Redirect("/"),
//			handler.Element(views.Roster(names)),
//			handler.Signals(map[string]any{"name": ""}),
//		)
//	}, handler.WithBinders[handler.Context, addFriendRequest](binder.Signals(), binder.Form()))
//
// Datastar requests are detected by IsDataStar. Every response creates at
// most one SSE generator, so a handler may combine element, signal and
// script patches in a single stream. Regular requests get the fallback
// response instead.
//
// NewErrorHandler classifies errors (see HTTPError), logs them with the
// request ID and renders a page or an inline patch depending on the
// request type.
package handler
