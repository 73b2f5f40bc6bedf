package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_Scan(t *testing.T) {
	want := time.Date(1954, time.July, 29, 10, 30, 0, 0, time.UTC)
	plus2 := time.FixedZone("", 2*60*60)

	tests := []struct {
		name string
		src  any
		want time.Time
	}{
		{"native time", want.In(plus2), want},
		{"rfc3339", "1954-07-29T10:30:00Z", want},
		{"sqlite text", "1954-07-29 12:30:00+02:00", want},
		{"bytes", []byte("1954-07-29 10:30:00"), want},
		{"date only", "1954-07-29", time.Date(1954, time.July, 29, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, ts.Scan(tt.src))
			assert.True(t, tt.want.Equal(ts.Time), "got %s", ts.Time)
			assert.Equal(t, time.UTC, ts.Location())
		})
	}
}

func TestTimestamp_ScanRejects(t *testing.T) {
	var ts Timestamp

	assert.Error(t, ts.Scan(nil))
	assert.Error(t, ts.Scan(42))
	assert.Error(t, ts.Scan("yesterday"))
}
