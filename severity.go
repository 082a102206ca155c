package cloudlog

import "strings"

// Severity is a log entry importance level. Values are the nine Cloud
// Logging severity names and are forwarded to the backend as opaque strings;
// this package imposes no numeric ordering on them.
type Severity string

const (
	SeverityDefault   Severity = "DEFAULT"
	SeverityDebug     Severity = "DEBUG"
	SeverityInfo      Severity = "INFO"
	SeverityNotice    Severity = "NOTICE"
	SeverityWarning   Severity = "WARNING"
	SeverityError     Severity = "ERROR"
	SeverityCritical  Severity = "CRITICAL"
	SeverityAlert     Severity = "ALERT"
	SeverityEmergency Severity = "EMERGENCY"
)

// Severities lists all severities in increasing order of importance.
var Severities = []Severity{
	SeverityDefault,
	SeverityDebug,
	SeverityInfo,
	SeverityNotice,
	SeverityWarning,
	SeverityError,
	SeverityCritical,
	SeverityAlert,
	SeverityEmergency,
}

// String returns the severity name.
func (s Severity) String() string { return string(s) }

// ParseSeverity converts a case-insensitive severity name to a Severity.
// Unrecognized names map to SeverityDefault.
func ParseSeverity(name string) Severity {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, s := range Severities {
		if string(s) == upper {
			return s
		}
	}
	return SeverityDefault
}
