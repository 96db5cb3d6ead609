// Package match provides gomega-compatible matchers for the callable contract.
// It is designed to be dot-imported alongside gomega:
//
//	import (
//	    . "github.com/onsi/gomega"
//	    . "github.com/toejough/callshape/match"
//	)
//
//	g.Expect(myFunc).To(Conform())
//	g.Expect(err).To(BeOverflow())
package match

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/toejough/callshape/internal/core"
)

// Matcher is satisfied by every matcher in this package and, via duck typing, by gomega.GomegaMatcher.
type Matcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
	NegatedFailureMessage(actual any) string
}

// BeOverflow returns a matcher that succeeds when the actual value is an error wrapping core.ErrOverflow.
func BeOverflow() Matcher {
	return &wrapsMatcher{target: core.ErrOverflow}
}

// BeTypeMismatch returns a matcher that succeeds when the actual value is an error wrapping core.ErrTypeMismatch.
func BeTypeMismatch() Matcher {
	return &wrapsMatcher{target: core.ErrTypeMismatch}
}

// Conform returns a matcher that succeeds when the actual value is a non-nil function with the contract's shape.
func Conform() Matcher {
	return &conformMatcher{}
}

type conformMatcher struct {
	lastErr error
}

func (m *conformMatcher) FailureMessage(actual any) string {
	return fmt.Sprintf("Expected %T to conform to the callable contract: %v", actual, m.lastErr)
}

func (m *conformMatcher) Match(actual any) (bool, error) {
	m.lastErr = core.Conforms(reflect.TypeOf(actual))
	if m.lastErr != nil {
		return false, nil
	}

	if reflect.ValueOf(actual).IsNil() {
		m.lastErr = errNilFunc

		return false, nil
	}

	return true, nil
}

func (m *conformMatcher) NegatedFailureMessage(actual any) string {
	return fmt.Sprintf("Expected %T not to conform to the callable contract", actual)
}

type wrapsMatcher struct {
	target error
}

func (m *wrapsMatcher) FailureMessage(actual any) string {
	return fmt.Sprintf("Expected %v to wrap %q", actual, m.target)
}

func (m *wrapsMatcher) Match(actual any) (bool, error) {
	if actual == nil {
		return false, nil
	}

	err, ok := actual.(error)
	if !ok {
		return false, fmt.Errorf("%w: expected an error, got %T", errNotAnError, actual)
	}

	return errors.Is(err, m.target), nil
}

func (m *wrapsMatcher) NegatedFailureMessage(actual any) string {
	return fmt.Sprintf("Expected %v not to wrap %q", actual, m.target)
}

// unexported variables.
var (
	errNilFunc    = errors.New("function is nil")
	errNotAnError = errors.New("not an error")
)
