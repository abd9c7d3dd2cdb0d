package mapview

import (
	"context"
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"time"

	"riskmonitor/internal/domain/constants"
	"riskmonitor/internal/domain/entity"
	"riskmonitor/internal/domain/service"
)

const (
	updateBuffer = 8
	// reconcileReads bounds how often one pass re-reads storage when local
	// writes keep landing during the read.
	reconcileReads = 3
)

// Source is where the reconciler reads the alert collection from
type Source interface {
	LoadAlerts(ctx context.Context) ([]entity.Alert, error)
}

// Update is the difference between two consecutive map states.
type Update struct {
	Added   []Marker  `json:"added,omitempty"`
	Updated []Marker  `json:"updated,omitempty"`
	Removed []int64   `json:"removed,omitempty"`
	At      time.Time `json:"at"`
}

// Empty reports whether the update changes nothing
func (u Update) Empty() bool {
	return len(u.Added) == 0 && len(u.Updated) == 0 && len(u.Removed) == 0
}

// Reconciler keeps an in-memory copy of the alert collection in step with
// storage. It re-reads storage on every change notification and on a fixed
// interval, and replaces its state only when the fresh read differs.
type Reconciler struct {
	source   Source
	feed     service.ChangeFeed
	interval time.Duration
	logger   *slog.Logger

	mu     sync.RWMutex
	alerts []entity.Alert
	// generation counts local changes; a pass whose read started before the
	// latest one holds a stale snapshot.
	generation uint64

	subsMu sync.Mutex
	subs   map[int]chan Update
	nextID int
}

// NewReconciler creates a reconciler; call Load before serving reads
func NewReconciler(source Source, feed service.ChangeFeed, interval time.Duration, logger *slog.Logger) *Reconciler {
	if interval <= 0 {
		interval = time.Second
	}

	return &Reconciler{
		source:   source,
		feed:     feed,
		interval: interval,
		logger:   logger,
		alerts:   []entity.Alert{},
		subs:     make(map[int]chan Update),
	}
}

// Load reads the full collection once
func (r *Reconciler) Load(ctx context.Context) error {
	alerts, err := r.source.LoadAlerts(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.alerts = alerts
	r.mu.Unlock()

	return nil
}

// Run reconciles until ctx is done. Notifications and ticks are handled by
// this single goroutine, so passes never overlap.
func (r *Reconciler) Run(ctx context.Context) {
	var changes <-chan service.ChangeEvent
	if r.feed != nil {
		ch, cancel := r.feed.Subscribe()
		defer cancel()
		changes = ch
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-changes:
			if !ok {
				changes = nil

				continue
			}
			if event.Key != constants.KeyAlerts {
				continue
			}
			r.Reconcile(ctx)
		case <-ticker.C:
			r.Reconcile(ctx)
		}
	}
}

// Reconcile runs one pass and returns what changed. A read that overlapped
// a local change is discarded and repeated, so an optimistic drag is never
// rolled back by an older snapshot.
func (r *Reconciler) Reconcile(ctx context.Context) Update {
	for range reconcileReads {
		r.mu.RLock()
		generation := r.generation
		r.mu.RUnlock()

		fresh, err := r.source.LoadAlerts(ctx)
		if err != nil {
			r.logger.Warn("Map reconciliation failed", slog.Any("error", err))

			return Update{}
		}

		r.mu.Lock()
		if r.generation != generation {
			r.mu.Unlock()

			continue
		}
		if reflect.DeepEqual(r.alerts, fresh) {
			r.mu.Unlock()

			return Update{}
		}
		update := Diff(r.alerts, fresh)
		r.alerts = fresh
		r.mu.Unlock()

		if !update.Empty() {
			update.At = time.Now().UTC()
			r.publish(update)
		}

		return update
	}

	r.logger.Debug("Map reconciliation deferred, local changes kept landing")

	return Update{}
}

// ApplyLocal replaces one alert in memory after this process already wrote
// it, so the map moves without waiting for the next pass.
func (r *Reconciler) ApplyLocal(alert entity.Alert) {
	r.mu.Lock()
	idx := slices.IndexFunc(r.alerts, func(a entity.Alert) bool { return a.ID == alert.ID })
	if idx < 0 || reflect.DeepEqual(r.alerts[idx], alert) {
		r.mu.Unlock()

		return
	}
	next := slices.Clone(r.alerts)
	next[idx] = alert
	r.alerts = next
	r.generation++
	r.mu.Unlock()

	r.publish(Update{Updated: []Marker{NewMarker(alert)}, At: time.Now().UTC()})
}

// Alerts returns a copy of the current state
func (r *Reconciler) Alerts() []entity.Alert {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.alerts)
}

// Subscribe streams updates. A subscriber that falls behind is closed and
// must resubscribe and start from a fresh layer.
func (r *Reconciler) Subscribe() (<-chan Update, func()) {
	r.subsMu.Lock()
	defer r.subsMu.Unlock()

	id := r.nextID
	r.nextID++
	ch := make(chan Update, updateBuffer)
	r.subs[id] = ch

	return ch, func() { r.unsubscribe(id) }
}

func (r *Reconciler) unsubscribe(id int) {
	r.subsMu.Lock()
	defer r.subsMu.Unlock()

	if ch, ok := r.subs[id]; ok {
		delete(r.subs, id)
		close(ch)
	}
}

func (r *Reconciler) publish(update Update) {
	r.subsMu.Lock()
	defer r.subsMu.Unlock()

	for id, ch := range r.subs {
		select {
		case ch <- update:
		default:
			r.logger.Debug("Map subscriber fell behind, closing", slog.Int("subscriber", id))
			delete(r.subs, id)
			close(ch)
		}
	}
}

// Diff compares two collections by alert id
func Diff(before, after []entity.Alert) Update {
	previous := make(map[int64]entity.Alert, len(before))
	for _, alert := range before {
		previous[alert.ID] = alert
	}

	var update Update
	seen := make(map[int64]struct{}, len(after))
	for _, alert := range after {
		seen[alert.ID] = struct{}{}

		old, ok := previous[alert.ID]
		switch {
		case !ok:
			update.Added = append(update.Added, NewMarker(alert))
		case !reflect.DeepEqual(old, alert):
			update.Updated = append(update.Updated, NewMarker(alert))
		}
	}

	for _, alert := range before {
		if _, ok := seen[alert.ID]; !ok {
			update.Removed = append(update.Removed, alert.ID)
		}
	}

	return update
}
