package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "standard error",
			err:  errors.New("boom"),
			want: []string{"boom"},
		},
		{
			name: "zerr chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("dial tcp: refused"), "post failed"), "failed to deliver discord message"),
			want: []string{"failed to deliver discord message", "post failed", "dial tcp: refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollectErrorEntries(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	t.Run("single entry", func(t *testing.T) {
		got := FormatErrorEntries([]string{"boom"})
		assert.Equal(t, "Error: boom", got)
	})

	t.Run("chain renders caused by", func(t *testing.T) {
		got := FormatErrorEntries([]string{"outer", "inner"})
		assert.Equal(t, "Error: outer\n\n  Caused by:\n    → inner", got)
	})

	t.Run("multiline continuation is indented", func(t *testing.T) {
		got := FormatErrorEntries([]string{"yaml: unmarshal errors:\n  line 3: cannot unmarshal"})
		assert.Equal(t, "Error: yaml: unmarshal errors:\n         line 3: cannot unmarshal", got)
	})
}
