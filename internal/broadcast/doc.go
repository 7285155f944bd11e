// Package broadcast implements the viewer fan-out hub using the actor pattern.
//
// The Broadcaster serializes each event once and pushes it to every connected
// viewer channel, best-effort and at-most-once. Uses single goroutine +
// command channel (no mutexes). Per-connection write goroutines handle slow
// viewers gracefully.
package broadcast
