// Package services defines the sentinel errors and wrapping helper the
// pipeline stages use to classify failures.
package services
