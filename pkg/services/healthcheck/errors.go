package healthcheck

import "fmt"

// MissingFieldError reports a structurally incomplete input bundle.
// Field is empty when a whole period is absent.
type MissingFieldError struct {
	Period string
	Field  string
}

func (e *MissingFieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("missing %s data", e.Period)
	}
	return fmt.Sprintf("missing %s in %s data", e.Field, e.Period)
}

// ZeroDenominatorError reports a metric that cannot be derived because its
// divisor is zero in the input.
type ZeroDenominatorError struct {
	Metric string
	Field  string
}

func (e *ZeroDenominatorError) Error() string {
	return fmt.Sprintf("cannot compute %s: %s is zero", e.Metric, e.Field)
}
