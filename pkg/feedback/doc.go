// Package feedback keeps the single message shown to a user after an action
// and clears transient messages after a delay.
//
// A Board holds at most one Message. Error and info messages expire after
// the clear delay; success messages stay until they are replaced or cleared.
// Every Show cancels the clear scheduled by the previous message, so a timer
// can only ever clear the message it was started for:
//
//	b := feedback.NewBoard(feedback.WithClearDelay(3 * time.Second))
//	defer b.Close()
//
//	b.Show(feedback.Error("Please type a valid name."))
//	b.Show(feedback.Success("The secret friend is: Ana!")) // error timer cancelled
//
// Subscribers receive every change, including timed clears, which is how
// the web module pushes updates to open pages:
//
//	for msg := range b.Subscribe(ctx) {
//		render(msg)
//	}
//
// Subscriber channels are buffered and hold the latest state: when a reader
// falls behind, the oldest pending message is dropped in favour of the new
// one, so Show never blocks on a slow page.
package feedback
