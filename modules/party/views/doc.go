// Package views holds the default markup of the secret-friend page.
//
// The components are plain templ.ComponentFunc values so the module builds
// without a templ generation step; any templ-generated component with the
// same element IDs can replace them through party.Views.
package views
