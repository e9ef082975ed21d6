// Package domain contains the core types for alert relaying and build dispatch.
package domain

import (
	"encoding/json"
	"strings"

	"go.trai.ch/zerr"
)

// Status is the lifecycle state of an alert or an alert group.
type Status string

const (
	// StatusFiring indicates an active alert.
	StatusFiring Status = "firing"
	// StatusResolved indicates an alert that has recovered.
	StatusResolved Status = "resolved"
)

// Valid reports whether the status is one of the known Alertmanager states.
func (s Status) Valid() bool {
	return s == StatusFiring || s == StatusResolved
}

// Title returns the capitalized form used in Discord embed titles.
func (s Status) Title() string {
	switch s {
	case StatusFiring:
		return "Firing"
	case StatusResolved:
		return "Resolved"
	default:
		return string(s)
	}
}

// UnmarshalJSON parses a status case-insensitively and rejects unknown values.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return zerr.Wrap(err, ErrInvalidStatus.Error())
	}

	parsed := Status(strings.ToLower(raw))
	if !parsed.Valid() {
		return zerr.With(ErrInvalidStatus, "status", raw)
	}

	*s = parsed
	return nil
}

// Annotations carries the free-form text attached to an alert or a group.
type Annotations struct {
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
}

// Alert is a single alert instance within a webhook group.
type Alert struct {
	Status      Status            `json:"status"`
	Labels      map[string]string `json:"labels"`
	Annotations *Annotations      `json:"annotations,omitempty"`
	Fingerprint string            `json:"fingerprint"`
}

// Name returns the alertname label, or "unknown" when absent.
func (a Alert) Name() string {
	if name, ok := a.Labels["alertname"]; ok {
		return name
	}
	return "unknown"
}

// Instance returns the instance label. When the instance is missing,
// "unknown", or "localhost", the exported_instance label takes over if
// present. Exporters that scrape through a proxy report the real host there.
func (a Alert) Instance() string {
	instance, ok := a.Labels["instance"]
	if !ok {
		instance = "unknown"
	}

	if instance == "unknown" || instance == "localhost" {
		if exported, ok := a.Labels["exported_instance"]; ok {
			return exported
		}
	}

	return instance
}

// Severity returns the upper-cased severity label, or "INFO" when absent.
func (a Alert) Severity() string {
	if severity, ok := a.Labels["severity"]; ok {
		return strings.ToUpper(severity)
	}
	return "INFO"
}

// Job returns the job label, or "-" when absent.
func (a Alert) Job() string {
	if job, ok := a.Labels["job"]; ok {
		return job
	}
	return "-"
}

// Summary returns the alert's description, falling back to its summary
// annotation and then to "-".
func (a Alert) Summary() string {
	if a.Annotations == nil {
		return "-"
	}
	if a.Annotations.Description != "" {
		return a.Annotations.Description
	}
	return a.Annotations.Summary
}

// Group is one Alertmanager webhook delivery.
type Group struct {
	Version           string            `json:"version"`
	Status            Status            `json:"status"`
	Alerts            []Alert           `json:"alerts"`
	GroupLabels       map[string]string `json:"groupLabels"`
	CommonLabels      map[string]string `json:"commonLabels"`
	CommonAnnotations *Annotations      `json:"commonAnnotations,omitempty"`
	TruncatedAlerts   int               `json:"truncatedAlerts"`
}

// Name returns the group's common alertname label, or "unnamed" when absent.
func (g *Group) Name() string {
	if name, ok := g.CommonLabels["alertname"]; ok {
		return name
	}
	return "unnamed"
}

// Summary returns the common summary annotation and whether one was present.
// Without annotations the summary reads "no summary".
func (g *Group) Summary() (string, bool) {
	if g.CommonAnnotations == nil {
		return "no summary", false
	}
	return g.CommonAnnotations.Summary, true
}

// ByStatus partitions the group's alerts by their individual status.
// Order within each partition follows the order of the incoming payload.
func (g *Group) ByStatus() map[Status][]Alert {
	partitions := make(map[Status][]Alert)
	for _, alert := range g.Alerts {
		partitions[alert.Status] = append(partitions[alert.Status], alert)
	}
	return partitions
}
