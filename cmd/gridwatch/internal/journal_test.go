package internal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJournal(t *testing.T) *TradeJournal {
	t.Helper()
	journal, err := OpenTradeJournal(filepath.Join(t.TempDir(), "gridwatch.db"))
	require.NoError(t, err)
	t.Cleanup(func() { journal.Close() })
	return journal
}

func activeEntry(tradeID uint64) *JournalEntry {
	return &JournalEntry{
		TradeID:      tradeID,
		Price:        "50.5",
		Currency:     "EUR",
		QuantityMWh:  "0.1",
		DeliveryArea: "10YDE-EON------1",
		State:        "ACTIVE",
		ExecutionMs:  1698345600000,
		ObservedMs:   1698345600250,
	}
}

func TestOpenTradeJournalCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "var", "lib", "gridwatch", "journal.db")

	journal, err := OpenTradeJournal(path)
	require.NoError(t, err)
	defer journal.Close()

	count, err := journal.TradeCount()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRecordPublicTradeNewEntry(t *testing.T) {
	journal := newTestJournal(t)

	prev, err := journal.RecordPublicTrade(activeEntry(1001))
	require.NoError(t, err)
	assert.Nil(t, prev, "un trade nuevo no tiene anotación previa")

	count, err := journal.PublicTradeCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecordPublicTradeReturnsPreviousOnDuplicate(t *testing.T) {
	journal := newTestJournal(t)

	_, err := journal.RecordPublicTrade(activeEntry(1001))
	require.NoError(t, err)

	updated := activeEntry(1001)
	updated.State = "CANCELED"
	prev, err := journal.RecordPublicTrade(updated)
	require.NoError(t, err)

	require.NotNil(t, prev, "la reescritura debe devolver la anotación anterior")
	assert.Equal(t, "ACTIVE", prev.State)
	assert.Equal(t, uint64(1001), prev.TradeID)

	// La entrada nueva reemplaza a la vieja, no se acumulan
	count, err := journal.PublicTradeCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Una tercera escritura ve el estado ya actualizado
	prev, err = journal.RecordPublicTrade(activeEntry(1001))
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, "CANCELED", prev.State)
}

func TestJournalKeepsOwnAndPublicTradesSeparate(t *testing.T) {
	journal := newTestJournal(t)

	own := activeEntry(7)
	own.OrderID = 42
	own.Side = "BUY"
	prev, err := journal.RecordTrade(own)
	require.NoError(t, err)
	assert.Nil(t, prev)

	// El mismo ID en el feed público es otro trade, no un duplicado
	prev, err = journal.RecordPublicTrade(activeEntry(7))
	require.NoError(t, err)
	assert.Nil(t, prev, "los buckets propios y públicos no comparten IDs")

	ownCount, err := journal.TradeCount()
	require.NoError(t, err)
	assert.Equal(t, 1, ownCount)

	publicCount, err := journal.PublicTradeCount()
	require.NoError(t, err)
	assert.Equal(t, 1, publicCount)
}

func TestJournalSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridwatch.db")

	journal, err := OpenTradeJournal(path)
	require.NoError(t, err)

	entry := activeEntry(555)
	entry.OrderID = 42
	entry.Side = "SELL"
	_, err = journal.RecordTrade(entry)
	require.NoError(t, err)
	require.NoError(t, journal.Close())

	reopened, err := OpenTradeJournal(path)
	require.NoError(t, err)
	defer reopened.Close()

	count, err := reopened.TradeCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	prev, err := reopened.RecordTrade(activeEntry(555))
	require.NoError(t, err)
	require.NotNil(t, prev, "el journal debe recordar trades de sesiones anteriores")
	assert.Equal(t, uint64(42), prev.OrderID)
	assert.Equal(t, "SELL", prev.Side)
	assert.Equal(t, "50.5", prev.Price)
}

func TestCloseIsNilSafe(t *testing.T) {
	var journal *TradeJournal
	assert.NoError(t, journal.Close())
	assert.NoError(t, (&TradeJournal{}).Close())
}
