// Package template defines the renderer-agnostic template contract the
// scaffold pipeline depends on, keeping engine choice an implementation
// detail of the adapters below it.
package template
