// Package event provides the synchronous notification bus used by the
// editor core.
//
// The editor is single-threaded and event-driven: every publish happens
// on the dispatch goroutine and handlers run inline before Publish
// returns. The bus exists so the document store, mode manager, and
// plugin registry can announce changes without knowing who listens.
//
// Handlers must not block. Panics in handlers are recovered so a
// misbehaving listener cannot take down the dispatch path.
package event
