package utils

import (
	"time"
)

// NowUnixMilli retorna el timestamp actual en milisegundos desde Unix epoch.
//
// Example:
//
//	ts := utils.NowUnixMilli()
//	// => 1698345601234
func NowUnixMilli() int64 {
	return time.Now().UnixMilli()
}

// NowUnixMicro retorna el timestamp actual en microsegundos desde Unix epoch.
//
// Útil para mediciones de latencia de alta precisión.
func NowUnixMicro() int64 {
	return time.Now().UnixMicro()
}

// UnixMilliToTime convierte un timestamp Unix en milisegundos a time.Time.
//
// Example:
//
//	ts := int64(1698345601234)
//	t := utils.UnixMilliToTime(ts)
func UnixMilliToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// TimeToUnixMilli convierte un time.Time a timestamp Unix en milisegundos.
//
// Example:
//
//	t := time.Now()
//	ms := utils.TimeToUnixMilli(t)
func TimeToUnixMilli(t time.Time) int64 {
	return t.UnixMilli()
}

// ElapsedMs calcula los milisegundos transcurridos desde un timestamp dado.
//
// Example:
//
//	start := utils.NowUnixMilli()
//	// ... operación ...
//	elapsed := utils.ElapsedMs(start)
//	// => 45 (ms)
func ElapsedMs(startMs int64) int64 {
	return NowUnixMilli() - startMs
}

// ElapsedMsSince calcula los milisegundos transcurridos desde un time.Time dado.
//
// Example:
//
//	start := time.Now()
//	// ... operación ...
//	elapsed := utils.ElapsedMsSince(start)
func ElapsedMsSince(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}

// EventTimestamps registra las marcas de tiempo de un evento de mercado a su
// paso por el pipeline de observación: ejecución en el exchange, recepción
// por el stream, anotación en el journal y persistencia en la base de datos.
// Las marcas en cero se tratan como ausentes y las latencias derivadas
// devuelven 0.
type EventTimestamps struct {
	ExecutionMs int64 // el exchange ejecuta el trade
	ReceivedMs  int64 // el evento llega por el stream
	JournaledMs int64 // el evento queda anotado en el journal local
	RecordedMs  int64 // el evento queda persistido en la base de datos
}

// NewEventTimestamps crea una nueva instancia de EventTimestamps.
func NewEventTimestamps() *EventTimestamps {
	return &EventTimestamps{}
}

// MarkExecution establece la marca de ejecución en el exchange.
func (et *EventTimestamps) MarkExecution(ts int64) {
	et.ExecutionMs = ts
}

// MarkReceived establece la marca de recepción por el stream.
func (et *EventTimestamps) MarkReceived(ts int64) {
	et.ReceivedMs = ts
}

// MarkJournaled establece la marca de anotación en el journal.
func (et *EventTimestamps) MarkJournaled(ts int64) {
	et.JournaledMs = ts
}

// MarkRecorded establece la marca de persistencia en la base de datos.
func (et *EventTimestamps) MarkRecorded(ts int64) {
	et.RecordedMs = ts
}

// ObservationLagMs calcula el retraso de observación (recepción - ejecución).
func (et *EventTimestamps) ObservationLagMs() int64 {
	if et.ReceivedMs == 0 || et.ExecutionMs == 0 {
		return 0
	}
	return et.ReceivedMs - et.ExecutionMs
}

// JournalLatencyMs calcula la latencia de anotación (journal - recepción).
func (et *EventTimestamps) JournalLatencyMs() int64 {
	if et.JournaledMs == 0 || et.ReceivedMs == 0 {
		return 0
	}
	return et.JournaledMs - et.ReceivedMs
}

// RecordLatencyMs calcula la latencia de persistencia (registro - recepción).
func (et *EventTimestamps) RecordLatencyMs() int64 {
	if et.RecordedMs == 0 || et.ReceivedMs == 0 {
		return 0
	}
	return et.RecordedMs - et.ReceivedMs
}

// PipelineLatencyMs calcula la latencia total (registro - ejecución).
func (et *EventTimestamps) PipelineLatencyMs() int64 {
	if et.RecordedMs == 0 || et.ExecutionMs == 0 {
		return 0
	}
	return et.RecordedMs - et.ExecutionMs
}
