// Package processors provides the built-in per-event operations.
//
// Each processor implements driven.EventProcessor: a Keep filter evaluated
// first, then a Transform that either returns a replacement event or nil to
// emit the original unchanged. All processors are pure and stateless except
// Limit, which counts down across the whole run.
package processors
