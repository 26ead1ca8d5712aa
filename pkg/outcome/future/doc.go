// Package future provides a single-completion container for an
// asynchronous computation. Unlike a bare channel, a completed Future can
// be read any number of times and by any number of goroutines; the first
// completion wins and later completions are ignored.
//
// Common usage:
// - New: create an unsettled Future completed later by hand
// - FromFunc: run a computation in a goroutine and settle with its outcome
// - Complete/Fail/Cancel: settle exactly once (success, failure, cancel)
// - Get: block until settled or until ctx is done
// - ResolveAll: await many futures and collect a Result per future
package future
