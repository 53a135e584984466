package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnixMilliRoundTrip(t *testing.T) {
	ms := int64(1698345601234)
	assert.Equal(t, ms, TimeToUnixMilli(UnixMilliToTime(ms)))
}

func TestElapsedMs(t *testing.T) {
	start := NowUnixMilli() - 50
	assert.GreaterOrEqual(t, ElapsedMs(start), int64(50))
}

func TestElapsedMsSince(t *testing.T) {
	start := time.Now().Add(-75 * time.Millisecond)
	assert.GreaterOrEqual(t, ElapsedMsSince(start), int64(75))
}

func TestEventTimestampsLatencies(t *testing.T) {
	et := NewEventTimestamps()
	et.MarkExecution(1000)
	et.MarkReceived(1450)
	et.MarkJournaled(1460)
	et.MarkRecorded(1700)

	assert.Equal(t, int64(450), et.ObservationLagMs())
	assert.Equal(t, int64(10), et.JournalLatencyMs())
	assert.Equal(t, int64(250), et.RecordLatencyMs())
	assert.Equal(t, int64(700), et.PipelineLatencyMs())
}

func TestEventTimestampsMissingMarks(t *testing.T) {
	et := NewEventTimestamps()
	et.MarkReceived(1450)

	// Sin la marca del exchange no hay retraso calculable
	assert.Zero(t, et.ObservationLagMs())
	assert.Zero(t, et.JournalLatencyMs())
	assert.Zero(t, et.RecordLatencyMs())
	assert.Zero(t, et.PipelineLatencyMs())
}
