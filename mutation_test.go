//go:build mutation

package callshape_test

import (
	"testing"

	"github.com/gtramontina/ooze"
)

func TestMutation(t *testing.T) {
	ooze.Release(
		t,
		ooze.WithTestCommand("targ test-for-fail"),
		ooze.Parallel(),
		ooze.IgnoreSourceFiles("^dev/.*|.*/main.go|generated_.*|.*_test.go"),
		ooze.WithMinimumThreshold(0.90),
		ooze.WithRepositoryRoot("."),
		ooze.ForceColors(),
	)
}
