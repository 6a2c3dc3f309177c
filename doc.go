// Package spatial provides an incremental 3D layout engine for spatial
// desktop widgets.
//
// Users import this single package for the public API: tree construction,
// composition behaviors, the per-frame scheduler, hit testing, focus
// navigation and the frame loop.
//
// Everything that touches a Tree runs on the loop goroutine. Other
// goroutines reach it through Loop.QueueUpdate, an Events bus, or a
// Watcher attached with Loop.Attach. State values bind to widgets and can
// be coalesced with Loop.Batch.
package spatial
