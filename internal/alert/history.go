package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	historyLogKey      = "alerts:log"
	lastQuantityKeyFmt = "alerts:last:%s"
	historyMaxEntries  = 500
)

// HistoryEntry is one delivered alert, as stored in the Redis log.
type HistoryEntry struct {
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Threshold   int       `json:"threshold"`
	Time        time.Time `json:"time"`
}

// History keeps a log of delivered alerts and the last alerted quantity per
// product, backed by Redis. The last-quantity keys drive the optional
// repeat-suppression behavior of the sweeper.
type History struct {
	rdb *redis.Client
}

func NewHistory(rdb *redis.Client) *History {
	return &History{rdb: rdb}
}

// Record appends the alert to the log and remembers its quantity.
func (h *History) Record(ctx context.Context, a Alert) error {
	entry := HistoryEntry{
		ProductName: a.ProductName,
		Quantity:    a.Quantity,
		Threshold:   a.Threshold,
		Time:        time.Now(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	pipe := h.rdb.TxPipeline()
	pipe.RPush(ctx, historyLogKey, data)
	pipe.LTrim(ctx, historyLogKey, -historyMaxEntries, -1)
	pipe.Set(ctx, fmt.Sprintf(lastQuantityKeyFmt, a.ProductName), a.Quantity, 0)
	_, err = pipe.Exec(ctx)
	return err
}

// Unchanged reports whether the product was already alerted at exactly this
// quantity.
func (h *History) Unchanged(ctx context.Context, a Alert) bool {
	val, err := h.rdb.Get(ctx, fmt.Sprintf(lastQuantityKeyFmt, a.ProductName)).Result()
	if err != nil {
		return false
	}
	last, err := strconv.Atoi(val)
	return err == nil && last == a.Quantity
}

// Recent returns up to n most recent log entries, newest first.
func (h *History) Recent(ctx context.Context, n int) ([]HistoryEntry, error) {
	items, err := h.rdb.LRange(ctx, historyLogKey, int64(-n), -1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		var entry HistoryEntry
		if err := json.Unmarshal([]byte(items[i]), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
