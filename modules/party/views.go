package party

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/secretfriend/pkg/feedback"
)

// Element IDs shared by the handlers and the views.
const (
	RosterID   = "roster"
	FeedbackID = "feedback"
	InputID    = "name"
)

// Views renders the page and its patchable fragments. Roster and Feedback
// must render a root element with RosterID and FeedbackID.
type Views struct {
	Page     func(PageParams) templ.Component
	Roster   func(RosterParams) templ.Component
	Feedback func(FeedbackParams) templ.Component
}

// PageParams contains data for rendering the full page.
type PageParams struct {
	Names             []string
	Feedback          feedback.Message
	MinParticipants   int
	DatastarScriptURL string
}

// RosterParams contains data for rendering the roster list.
type RosterParams struct {
	Names []string
}

// FeedbackParams contains data for rendering the feedback region.
type FeedbackParams struct {
	Message feedback.Message
}
