package checker

import (
	"context"
	"fmt"
)

// Checker performs a single availability probe against one platform.
//
// Check returns whether the handle is taken. It must return a definitive
// boolean on any readable response; ambiguity is only expressible as an
// error, which the retry wrapper treats as a transient failure.
type Checker interface {
	Check(ctx context.Context, handle string) (bool, error)
}

// CheckError reports a checker failure after the retry budget is spent.
// The orchestrator downgrades it to an error field on the result; it is
// never fatal to sibling checks.
type CheckError struct {
	Provider string
	Reason   string
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%s check failed: %s", e.Provider, e.Reason)
}
