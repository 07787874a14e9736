// Package binder fills request structs from Datastar signals or URL-encoded
// forms.
//
// A binder returns ErrBinderNotApplicable when the request doesn't carry the
// payload it handles, so several binders can be chained and the first that
// applies wins:
//
//	handler.WithBinders[handler.Context, addFriendRequest](binder.Signals(), binder.Form())
//
// Form maps fields by the `form` tag (lowercased field name when absent,
// "-" skips). Signals decode JSON by the usual `json` tags.
package binder
