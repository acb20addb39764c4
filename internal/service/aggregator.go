package service

import (
	"sort"
	"sync"
	"time"

	"machine_monitoring/internal/models"
)

const (
	DefaultHistoryLimit    = 50
	DefaultHourlyRetention = 24 * time.Hour
)

// Aggregator owns one session's recent history and hourly totals.
// Reads return copies and may run concurrently with Record.
type Aggregator struct {
	mu         sync.RWMutex
	limit      int
	retention  time.Duration
	history    map[string][]models.Reading
	hourly     map[models.HourKey]models.HourlyTotal
	newestHour time.Time
}

// NewAggregator creates an empty aggregator. limit <= 0 falls back to
// DefaultHistoryLimit; retention 0 keeps hourly buckets forever.
func NewAggregator(limit int, retention time.Duration) *Aggregator {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Aggregator{
		limit:     limit,
		retention: retention,
		history:   make(map[string][]models.Reading),
		hourly:    make(map[models.HourKey]models.HourlyTotal),
	}
}

// Record appends r to its machine's history and adds it to the hourly bucket.
// It returns the bucket after the update.
func (a *Aggregator) Record(r models.Reading) models.HourlyTotal {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.history[r.MachineID] = AppendRecent(a.history[r.MachineID], r, a.limit)
	total := AccumulateHourly(a.hourly, r)

	if total.Hour.After(a.newestHour) {
		a.newestHour = total.Hour
		if a.retention > 0 {
			EvictHourlyBefore(a.hourly, a.newestHour.Add(-a.retention))
		}
	}
	return total
}

// History returns the machine's recent readings, oldest first.
func (a *Aggregator) History(machineID string) []models.Reading {
	a.mu.RLock()
	defer a.mu.RUnlock()

	src := a.history[machineID]
	out := make([]models.Reading, len(src))
	copy(out, src)
	return out
}

// Latest returns the most recent reading of a machine.
func (a *Aggregator) Latest(machineID string) (models.Reading, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	h := a.history[machineID]
	if len(h) == 0 {
		return models.Reading{}, false
	}
	return h[len(h)-1], true
}

// Hourly returns the machine's hourly buckets ordered by hour.
func (a *Aggregator) Hourly(machineID string) []models.HourlyTotal {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]models.HourlyTotal, 0, 24)
	for k, v := range a.hourly {
		if k.MachineID == machineID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour.Before(out[j].Hour) })
	return out
}

// Machines lists machines that have recorded at least one reading.
func (a *Aggregator) Machines() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]string, 0, len(a.history))
	for id := range a.history {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// HourBucket truncates ts to the start of its UTC hour.
func HourBucket(ts time.Time) time.Time {
	return ts.UTC().Truncate(time.Hour)
}

// AppendRecent returns a new slice holding history plus r, with the oldest
// entries dropped so that at most limit readings remain. history is not modified.
func AppendRecent(history []models.Reading, r models.Reading, limit int) []models.Reading {
	keep := history
	if limit > 0 && len(keep) >= limit {
		keep = keep[len(keep)-limit+1:]
	}
	out := make([]models.Reading, len(keep), len(keep)+1)
	copy(out, keep)
	return append(out, r)
}

// AccumulateHourly adds r to its (machine, hour) bucket, creating the bucket
// on first use, and returns the updated bucket.
func AccumulateHourly(totals map[models.HourKey]models.HourlyTotal, r models.Reading) models.HourlyTotal {
	key := models.HourKey{MachineID: r.MachineID, Hour: HourBucket(r.Timestamp)}
	t, ok := totals[key]
	if !ok {
		t = models.HourlyTotal{MachineID: r.MachineID, Hour: key.Hour}
	}
	t.TotalConsumptionKWh += r.ConsumptionKWh
	t.TotalCost += r.Cost
	t.TotalEmissionsKg += r.EmissionsKg
	t.Readings++
	totals[key] = t
	return t
}

// EvictHourlyBefore deletes buckets whose hour is strictly before cutoff.
func EvictHourlyBefore(totals map[models.HourKey]models.HourlyTotal, cutoff time.Time) int {
	removed := 0
	for k := range totals {
		if k.Hour.Before(cutoff) {
			delete(totals, k)
			removed++
		}
	}
	return removed
}
