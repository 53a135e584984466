package internal

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	tradeBucketName       = "trades"
	publicTradeBucketName = "public_trades"
)

// TradeJournal es el ledger local de trades observados. Permite deduplicar
// eventos tras una reconexión y retomar sin re-registrar lo ya visto.
type TradeJournal struct {
	db *bolt.DB
}

// JournalEntry es la anotación persistida por trade. Los montos viajan como
// strings decimales para no perder precisión en JSON.
type JournalEntry struct {
	TradeID      uint64 `json:"trade_id"`
	OrderID      uint64 `json:"order_id,omitempty"`
	Side         string `json:"side,omitempty"`
	Price        string `json:"price"`
	Currency     string `json:"currency"`
	QuantityMWh  string `json:"quantity_mwh"`
	DeliveryArea string `json:"delivery_area,omitempty"`
	State        string `json:"state"`
	ExecutionMs  int64  `json:"execution_ms"`
	ObservedMs   int64  `json:"observed_ms"`
}

func OpenTradeJournal(path string) (*TradeJournal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir journal path: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{tradeBucketName, publicTradeBucketName} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}
	return &TradeJournal{db: db}, nil
}

func (j *TradeJournal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

// RecordTrade anota un trade propio del gridpool. Retorna la anotación
// previa si el trade ya estaba en el journal (nil si es nuevo); la entrada
// nueva siempre queda escrita.
func (j *TradeJournal) RecordTrade(entry *JournalEntry) (*JournalEntry, error) {
	return j.record(tradeBucketName, entry)
}

// RecordPublicTrade anota un trade del feed público. Misma semántica que
// RecordTrade.
func (j *TradeJournal) RecordPublicTrade(entry *JournalEntry) (*JournalEntry, error) {
	return j.record(publicTradeBucketName, entry)
}

// TradeCount retorna la cantidad de trades propios anotados.
func (j *TradeJournal) TradeCount() (int, error) {
	return j.count(tradeBucketName)
}

// PublicTradeCount retorna la cantidad de trades públicos anotados.
func (j *TradeJournal) PublicTradeCount() (int, error) {
	return j.count(publicTradeBucketName)
}

func (j *TradeJournal) record(bucket string, entry *JournalEntry) (*JournalEntry, error) {
	var prev *JournalEntry
	err := j.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		key := journalKey(entry.TradeID)
		if data := b.Get(key); len(data) > 0 {
			var p JournalEntry
			if err := json.Unmarshal(data, &p); err == nil {
				prev = &p
			}
		}
		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
	if err != nil {
		return nil, fmt.Errorf("journal %s: %w", bucket, err)
	}
	return prev, nil
}

func (j *TradeJournal) count(bucket string) (int, error) {
	var n int
	err := j.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(bucket)).Stats().KeyN
		return nil
	})
	return n, err
}

// journalKey serializa el ID como big-endian para que el orden del cursor
// coincida con el orden numérico.
func journalKey(tradeID uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, tradeID)
	return key
}
