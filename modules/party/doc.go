// Package party serves the secret-friend page.
//
// Routes, relative to where Handle is mounted:
//
//	GET  /          full page
//	POST /friends   add a friend
//	POST /draw      draw a friend
//	POST /reset     clear roster and feedback
//	GET  /feedback  SSE stream of feedback changes
//
// Datastar requests get element, signal and script patches; plain form
// posts are redirected back to the page. Each browser gets its own party,
// keyed by a visitor cookie. Markup comes from the injected Views, see
// package views for the defaults.
package party
