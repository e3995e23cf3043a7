package harness

import (
	"fmt"
	"strings"
)

// AssertionError is returned when an assertion fails.
// It includes the trace so failures are debuggable from the message alone.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull trace:\n")
	for i, event := range e.Trace {
		switch event.Type {
		case "incident":
			fmt.Fprintf(&buf, "  [%d] incident speed=%d limit=%d location=%q\n", i+1, event.Speed, event.Limit, event.Location)
		case "citation":
			fmt.Fprintf(&buf, "  [%d] citation %s %s\n", i+1, event.Severity, event.Number)
		}
	}

	return buf.String()
}

// evaluateAssertion dispatches one assertion against a run result.
func evaluateAssertion(result *Result, assertion Assertion) error {
	switch assertion.Type {
	case AssertCitationCount:
		return assertCitationCount(result, assertion)
	case AssertSeverityOrder:
		return assertSeverityOrder(result, assertion)
	case AssertLineContains:
		return assertLineContains(result, assertion)
	default:
		return fmt.Errorf("unknown assertion type %q", assertion.Type)
	}
}

// assertCitationCount checks the total number of citations issued.
func assertCitationCount(result *Result, assertion Assertion) error {
	if len(result.Citations) == assertion.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertCitationCount,
		Expected: fmt.Sprintf("%d citation(s)", assertion.Count),
		Actual:   fmt.Sprintf("%d citation(s)", len(result.Citations)),
		Trace:    result.Trace,
	}
}

// assertSeverityOrder checks that citation severities match the
// expected sequence exactly, in evaluation order.
func assertSeverityOrder(result *Result, assertion Assertion) error {
	actual := make([]string, len(result.Citations))
	for i, c := range result.Citations {
		actual[i] = c.Severity.String()
	}

	match := len(actual) == len(assertion.Severities)
	if match {
		for i := range actual {
			if !strings.EqualFold(actual[i], assertion.Severities[i]) {
				match = false
				break
			}
		}
	}
	if match {
		return nil
	}

	return &AssertionError{
		Type:     AssertSeverityOrder,
		Expected: fmt.Sprintf("severities %v", assertion.Severities),
		Actual:   fmt.Sprintf("severities %v", actual),
		Trace:    result.Trace,
	}
}

// assertLineContains checks that at least one rendered citation line
// contains the expected substring.
func assertLineContains(result *Result, assertion Assertion) error {
	for _, line := range result.Lines {
		if strings.Contains(line, assertion.Line) {
			return nil
		}
	}
	return &AssertionError{
		Type:     AssertLineContains,
		Expected: fmt.Sprintf("a line containing %q", assertion.Line),
		Actual:   fmt.Sprintf("lines %v", result.Lines),
		Trace:    result.Trace,
	}
}
