package cite

import "fmt"

// DateLayout is the calendar-date format used everywhere gavel renders
// or parses dates.
const DateLayout = "2006-01-02"

// RenderLine formats a citation as a single human-readable line:
//
//	Officer Lila issued Medium citation to Ray on 2024-03-15.
//
// This is presentation only; it carries no identity or ordering
// semantics and may be replaced (JSON output, structured logs) without
// touching the evaluation core.
func RenderLine(c Citation) string {
	return fmt.Sprintf("%s issued %s citation to %s on %s.",
		c.IssuerName, c.Severity, c.Citee.Name, c.Date.Format(DateLayout))
}
