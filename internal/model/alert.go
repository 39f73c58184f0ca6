package model

// AlertSeverity orders alerts from most to least urgent.
type AlertSeverity int

const (
	SeverityCritical AlertSeverity = iota
	SeverityWarning
	SeverityInfo
)

// String returns the lowercase label used in tables and exports.
func (s AlertSeverity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// Alert is one triggered health-rule finding for a project.
type Alert struct {
	ID          string
	Severity    AlertSeverity
	ProjectID   string
	ProjectName string
	Title       string
	Message     string
	Metric      string // short headline figure, e.g. "$40k gap"
}
