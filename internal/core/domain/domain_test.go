package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alertcord/alertcord/internal/core/domain"
)

func TestStatus_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Status
		wantErr bool
	}{
		{name: "firing", input: `"firing"`, want: domain.StatusFiring},
		{name: "resolved", input: `"resolved"`, want: domain.StatusResolved},
		{name: "mixed case", input: `"Firing"`, want: domain.StatusFiring},
		{name: "unknown value", input: `"snoozed"`, wantErr: true},
		{name: "not a string", input: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.Status
			err := json.Unmarshal([]byte(tt.input), &got)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAlert_Instance(t *testing.T) {
	tests := []struct {
		name   string
		labels map[string]string
		want   string
	}{
		{
			name:   "plain instance",
			labels: map[string]string{"instance": "db-1:9100"},
			want:   "db-1:9100",
		},
		{
			name:   "missing instance",
			labels: map[string]string{},
			want:   "unknown",
		},
		{
			name:   "missing instance with exported fallback",
			labels: map[string]string{"exported_instance": "db-2"},
			want:   "db-2",
		},
		{
			name:   "localhost with exported fallback",
			labels: map[string]string{"instance": "localhost", "exported_instance": "db-3"},
			want:   "db-3",
		},
		{
			name:   "localhost without fallback",
			labels: map[string]string{"instance": "localhost"},
			want:   "localhost",
		},
		{
			name:   "explicit unknown with exported fallback",
			labels: map[string]string{"instance": "unknown", "exported_instance": "db-4"},
			want:   "db-4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := domain.Alert{Labels: tt.labels}
			assert.Equal(t, tt.want, alert.Instance())
		})
	}
}

func TestAlert_Defaults(t *testing.T) {
	t.Run("empty alert", func(t *testing.T) {
		alert := domain.Alert{}
		assert.Equal(t, "unknown", alert.Name())
		assert.Equal(t, "INFO", alert.Severity())
		assert.Equal(t, "-", alert.Job())
		assert.Equal(t, "-", alert.Summary())
	})

	t.Run("severity is upper-cased", func(t *testing.T) {
		alert := domain.Alert{Labels: map[string]string{"severity": "critical"}}
		assert.Equal(t, "CRITICAL", alert.Severity())
	})

	t.Run("description wins over summary", func(t *testing.T) {
		alert := domain.Alert{Annotations: &domain.Annotations{
			Summary:     "short",
			Description: "long form",
		}}
		assert.Equal(t, "long form", alert.Summary())
	})

	t.Run("summary when description is empty", func(t *testing.T) {
		alert := domain.Alert{Annotations: &domain.Annotations{Summary: "short"}}
		assert.Equal(t, "short", alert.Summary())
	})
}

func TestGroup_Summary(t *testing.T) {
	t.Run("without annotations", func(t *testing.T) {
		group := &domain.Group{}
		summary, ok := group.Summary()
		assert.False(t, ok)
		assert.Equal(t, "no summary", summary)
		assert.Equal(t, "unnamed", group.Name())
	})

	t.Run("with annotations", func(t *testing.T) {
		group := &domain.Group{
			CommonLabels:      map[string]string{"alertname": "HighLoad"},
			CommonAnnotations: &domain.Annotations{Summary: "load is high"},
		}
		summary, ok := group.Summary()
		assert.True(t, ok)
		assert.Equal(t, "load is high", summary)
		assert.Equal(t, "HighLoad", group.Name())
	})
}

func TestGroup_ByStatus(t *testing.T) {
	group := &domain.Group{
		Status: domain.StatusFiring,
		Alerts: []domain.Alert{
			{Status: domain.StatusFiring, Fingerprint: "a"},
			{Status: domain.StatusResolved, Fingerprint: "b"},
			{Status: domain.StatusFiring, Fingerprint: "c"},
		},
	}

	partitions := group.ByStatus()
	require.Len(t, partitions, 2)
	assert.Equal(t, "a", partitions[domain.StatusFiring][0].Fingerprint)
	assert.Equal(t, "c", partitions[domain.StatusFiring][1].Fingerprint)
	assert.Equal(t, "b", partitions[domain.StatusResolved][0].Fingerprint)
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, domain.ColorRed, domain.ColorFor(domain.StatusFiring))
	assert.Equal(t, domain.ColorGreen, domain.ColorFor(domain.StatusResolved))
	assert.Equal(t, domain.ColorGrey, domain.ColorFor(domain.Status("unknown")))
}
