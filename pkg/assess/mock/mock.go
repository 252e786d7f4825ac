// Package mock provides an in-memory mock implementation of the
// [assess.Provider] interface for use in unit tests.
//
// The mock is safe for concurrent use. It records every method call so that
// tests can assert on call counts and arguments, and exposes exported fields
// that the test sets to control return values:
//
//	p := &mock.Provider{AssessResult: assess.Result{Transcript: "hola"}}
//	res, err := grader.Grade(ctx, p, clip, "Hola")
package mock

import (
	"context"
	"sync"

	"github.com/solfege-app/solfege/pkg/assess"
)

// Compile-time interface check.
var _ assess.Provider = (*Provider)(nil)

// Provider is a mock implementation of [assess.Provider].
// Set the Result fields before use; inspect the Call* fields after.
type Provider struct {
	mu sync.Mutex

	// AssessResult is returned by [Provider.Assess] when AssessFunc is nil.
	AssessResult assess.Result

	// AssessError is returned by [Provider.Assess] when AssessFunc is nil.
	AssessError error

	// AssessFunc, when set, overrides the static results entirely.
	AssessFunc func(ctx context.Context, wav []byte, referenceText string) (assess.Result, error)

	// CallCountAssess records how many times Assess was called.
	CallCountAssess int

	// RecordedReferences holds every referenceText passed to Assess, in
	// call order.
	RecordedReferences []string
}

// Assess implements [assess.Provider].
func (p *Provider) Assess(ctx context.Context, wav []byte, referenceText string) (assess.Result, error) {
	p.mu.Lock()
	p.CallCountAssess++
	p.RecordedReferences = append(p.RecordedReferences, referenceText)
	fn := p.AssessFunc
	res, err := p.AssessResult, p.AssessError
	p.mu.Unlock()

	if fn != nil {
		return fn(ctx, wav, referenceText)
	}
	return res, err
}
