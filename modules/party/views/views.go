package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/secretfriend/modules/party"
	"github.com/dmitrymomot/secretfriend/pkg/feedback"
)

// Feedback colors by message kind.
var colors = map[feedback.Kind]string{
	feedback.KindError:   "#e74c3c",
	feedback.KindSuccess: "#05DF05",
	feedback.KindInfo:    "#4B69FD",
}

// Default returns the built-in views.
func Default() *party.Views {
	return &party.Views{
		Page:     Page,
		Roster:   Roster,
		Feedback: Feedback,
	}
}

// Page renders the whole document. Forms post without JavaScript and are
// upgraded to Datastar actions when the client script loads.
func Page(p party.PageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<title>Secret Friend</title>`)
		fmt.Fprintf(&b, `<script type="module" src="%s"></script>`, templ.EscapeString(p.DatastarScriptURL))
		b.WriteString(`</head><body><main data-signals='{"` + party.InputID + `": ""}'>`)
		b.WriteString(`<h1>Secret Friend</h1>`)
		fmt.Fprintf(&b, `<p>Add at least %d friends, then draw one.</p>`, p.MinParticipants)

		b.WriteString(`<form method="post" action="/friends" data-on:submit__prevent="@post('/friends')">`)
		fmt.Fprintf(&b, `<label for="%[1]s">Friend's name</label><input id="%[1]s" name="%[1]s" type="text" autocomplete="off" autofocus data-bind:%[1]s>`, party.InputID)
		b.WriteString(`<button type="submit">Add</button></form>`)

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := Roster(party.RosterParams{Names: p.Names}).Render(ctx, w); err != nil {
			return err
		}

		b.Reset()
		b.WriteString(`<form method="post" action="/draw" data-on:submit__prevent="@post('/draw')"><button type="submit">Draw friend</button></form>`)
		b.WriteString(`<form method="post" action="/reset" data-on:submit__prevent="@post('/reset')"><button type="submit">Reset</button></form>`)
		b.WriteString(`<div data-init="@get('/feedback')">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := Feedback(party.FeedbackParams{Message: p.Feedback}).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div></main></body></html>`)
		return err
	})
}

// Roster renders the numbered list of friends.
func Roster(p party.RosterParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<ul id="%s">`, party.RosterID)
		for i, name := range p.Names {
			fmt.Fprintf(&b, `<li>%d. %s</li>`, i+1, templ.EscapeString(name))
		}
		b.WriteString(`</ul>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Feedback renders the live region. It is always present, empty when
// there is no message.
func Feedback(p party.FeedbackParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<div id="%s" role="status" aria-live="polite">`, party.FeedbackID)
		if !p.Message.IsZero() {
			fmt.Fprintf(&b, `<p class="feedback feedback-%s" style="color: %s">%s</p>`,
				p.Message.Kind, colors[p.Message.Kind], templ.EscapeString(p.Message.Text))
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
