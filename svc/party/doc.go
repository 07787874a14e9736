// Package party is the secret-friend controller.
//
// A Party owns one roster, one feedback board and a drawer. AddFriend, Draw
// and Reset each run to completion under the party lock, map domain errors
// from package roster to catalog messages on the board, and tell the caller
// what to do with the input field. The returned errors are the roster
// sentinels, so callers can branch with errors.Is without parsing text.
//
// A Registry hands out one Party per visitor ID and bounds how many stay
// alive; evicted parties are closed, which ends their feedback streams.
package party
