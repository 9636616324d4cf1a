package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h 0m", FormatDuration(0))
	assert.Equal(t, "8h 15m", FormatDuration(495))
	assert.Equal(t, "1h 1m", FormatDuration(61))
	assert.Equal(t, "1h 0m", FormatDuration(60))
	assert.Equal(t, "0h 59m", FormatDuration(59))
	assert.Equal(t, "11h 5m", FormatDuration(665))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "12:35", FormatTime("2024-02-20T12:35:00"))
	assert.Equal(t, "07:50", FormatTime("2024-02-20T07:50:00"))
	assert.Equal(t, "06:00", FormatTime("2024-02-23T06:00:00"))
	assert.Equal(t, "18:10", FormatTime("2024-02-22T18:10"))
}

func TestFormatTimeMalformed(t *testing.T) {
	assert.Equal(t, InvalidTime, FormatTime(""))
	assert.Equal(t, InvalidTime, FormatTime("not-a-timestamp"))
	assert.Equal(t, InvalidTime, FormatTime("2024-02-20"))
}

func TestFormatTimeNoTimezoneShift(t *testing.T) {
	// Wall-clock values must come back verbatim, never converted.
	assert.Equal(t, "23:59", FormatTime("2024-12-31T23:59:00"))
	assert.Equal(t, "00:01", FormatTime("2024-01-01T00:01:00"))
}
