package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEffort(t *testing.T) {
	base := time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC)

	ptr := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  string
	}{
		{"nil start", nil, ptr(base), ""},
		{"nil end", ptr(base), nil, ""},
		{"end equals start", ptr(base), ptr(base), ""},
		{"end before start", ptr(base), ptr(base.Add(-time.Hour)), ""},
		{"ninety minutes", ptr(base), ptr(base.Add(90 * time.Minute)), "1 horas e 30 minutos"},
		{"whole hours", ptr(base), ptr(base.Add(8 * time.Hour)), "8 horas e 0 minutos"},
		{"over a day", ptr(base), ptr(base.Add(26*time.Hour + 30*time.Minute)), "26 horas e 30 minutos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeEffort(tt.start, tt.end)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseDateTime_AcceptsSeconds(t *testing.T) {
	got, err := parseDateTime("Data de Saída", "2024-03-01T06:00:30")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 30, got.Second())
}

func TestParseDateTime_EmptyIsNil(t *testing.T) {
	got, err := parseDateTime("Data de Saída", "")
	require.NoError(t, err)
	assert.Nil(t, got)
}
