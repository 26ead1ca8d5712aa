// Package settle normalizes the outcome of a completed computation into a
// Result or an Option, whatever the computation produced: a plain value, a
// returned error, a panic, an already-built Result, an HTTP response or a
// JSON-RPC reply. Adapters are total: they never panic and never lose a
// failure, and they call the wrapped computation exactly once — no
// retries, no timeouts.
//
// The computation's signature declares where it settles. A func() pair is
// handled by Try with the plain classification order; a func(ctx) pair by
// TryCtx with the suspension order, which additionally recognizes JSON-RPC
// error payloads; an *http.Response producer by Response, which also
// classifies the reply body; a *future.Future by Future.
//
// Highlights:
// - Try/TryCtx: settle one computation into a Result
// - Response: settle an HTTP call, classifying its JSON-RPC body
// - Future: settle an asynchronous computation
// - All: settle many computations concurrently
// - OptionOf/OptionOfCtx/OptionFrom: settle into an Option, empty on failure
package settle
