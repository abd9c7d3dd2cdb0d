package mapview

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"riskmonitor/internal/domain/entity"
	"riskmonitor/internal/domain/service"

	"github.com/google/uuid"
)

// Popup texts
const (
	AddressLoading     = "Loading address..."
	AddressUnavailable = "Address unavailable"

	TimestampLayout = "02/01/2006 15:04"
)

// Address lookup states
const (
	AddressStateLoading = "loading"
	AddressStateReady   = "ready"
	AddressStateError   = "error"
)

const popupIdleTTL = 10 * time.Minute

// PopupContent is what a marker's detail popup shows.
type PopupContent struct {
	PopupID      string           `json:"popupId"`
	AlertID      int64            `json:"alertId"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	RiskLevel    entity.RiskLevel `json:"riskLevel"`
	RiskLabel    string           `json:"riskLabel"`
	Color        string           `json:"color"`
	Timestamp    string           `json:"timestamp"`
	Radius       float64          `json:"radius"`
	Coordinates  string           `json:"coordinates"`
	Address      string           `json:"address"`
	AddressState string           `json:"addressState"`
}

// Truncate shortens s to limit characters followed by "..."
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}

	return string([]rune(s)[:limit]) + "..."
}

// FormatTimestamp renders t as dd/mm/yyyy hh:mm in loc
func FormatTimestamp(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}

	return t.In(loc).Format(TimestampLayout)
}

// FormatCoordinates renders a location with five decimals
func FormatCoordinates(loc entity.Location) string {
	return fmt.Sprintf("%.5f, %.5f", loc.Lat, loc.Lng)
}

// FormatAddress joins road, neighbourhood, suburb, city and state. It falls
// back to the display name, then to AddressUnavailable.
func FormatAddress(place *entity.Place) string {
	if place == nil {
		return AddressUnavailable
	}

	parts := make([]string, 0, 5)
	for _, field := range []string{"road", "neighbourhood", "suburb", "city", "state"} {
		if value := strings.TrimSpace(place.Address[field]); value != "" {
			parts = append(parts, value)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}

	if place.DisplayName != "" {
		return place.DisplayName
	}

	return AddressUnavailable
}

// PopupOptions controls how popup content is rendered
type PopupOptions struct {
	PreviewLength int
	Location      *time.Location
}

// NewPopupContent renders the static part of a popup
func NewPopupContent(alert entity.Alert, opts PopupOptions) PopupContent {
	return PopupContent{
		AlertID:      alert.ID,
		Title:        alert.Title,
		Description:  Truncate(alert.Description, opts.PreviewLength),
		RiskLevel:    alert.RiskLevel,
		RiskLabel:    RiskLabel(alert.RiskLevel),
		Color:        ZoneColor(alert.RiskLevel),
		Timestamp:    FormatTimestamp(alert.Timestamp, opts.Location),
		Radius:       alert.Radius,
		Coordinates:  FormatCoordinates(alert.Location),
		Address:      AddressLoading,
		AddressState: AddressStateLoading,
	}
}

type openPopup struct {
	content  PopupContent
	cancel   context.CancelFunc
	openedAt time.Time
}

// Popups tracks open popups. Each one resolves its address independently;
// closing a popup cancels its lookup and a late answer is dropped.
type Popups struct {
	geocoder service.ReverseGeocoder
	opts     PopupOptions
	logger   *slog.Logger
	now      func() time.Time

	mu     sync.Mutex
	open   map[string]*openPopup
	closed bool
	// wg tracks lookups; Add happens under mu so it never races CloseAll's Wait.
	wg sync.WaitGroup
}

// NewPopups creates an empty popup registry
func NewPopups(geocoder service.ReverseGeocoder, opts PopupOptions, logger *slog.Logger) *Popups {
	return &Popups{
		geocoder: geocoder,
		opts:     opts,
		logger:   logger,
		now:      time.Now,
		open:     make(map[string]*openPopup),
	}
}

// Open renders the popup for alert and starts its address lookup. It
// reports false once CloseAll has run.
func (p *Popups) Open(alert entity.Alert) (PopupContent, bool) {
	content := NewPopupContent(alert, p.opts)
	content.PopupID = uuid.NewString()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return PopupContent{}, false
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.evictIdle()
	p.open[content.PopupID] = &openPopup{content: content, cancel: cancel, openedAt: p.now()}

	p.wg.Add(1)
	go p.resolve(ctx, content.PopupID, alert.Location)

	return content, true
}

// Get returns the current content of an open popup
func (p *Popups) Get(popupID string) (PopupContent, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	popup, ok := p.open[popupID]
	if !ok {
		return PopupContent{}, false
	}

	return popup.content, true
}

// Close dismisses a popup and cancels its lookup
func (p *Popups) Close(popupID string) {
	p.mu.Lock()
	popup, ok := p.open[popupID]
	delete(p.open, popupID)
	p.mu.Unlock()

	if ok {
		popup.cancel()
	}
}

// CloseAll dismisses every popup, refuses new ones and waits for pending
// lookups to stop
func (p *Popups) CloseAll() {
	p.mu.Lock()
	p.closed = true
	for id, popup := range p.open {
		popup.cancel()
		delete(p.open, id)
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Popups) resolve(ctx context.Context, popupID string, loc entity.Location) {
	defer p.wg.Done()

	place, err := p.geocoder.Reverse(ctx, loc)

	p.mu.Lock()
	defer p.mu.Unlock()

	popup, ok := p.open[popupID]
	if !ok || ctx.Err() != nil {
		// closed while the lookup was in flight
		return
	}

	if err != nil {
		p.logger.Debug("Popup address lookup failed",
			slog.String("popup_id", popupID),
			slog.Any("error", err),
		)
		popup.content.Address = AddressUnavailable
		popup.content.AddressState = AddressStateError

		return
	}

	popup.content.Address = FormatAddress(place)
	popup.content.AddressState = AddressStateReady
}

// evictIdle drops popups nobody closed. Callers hold p.mu.
func (p *Popups) evictIdle() {
	cutoff := p.now().Add(-popupIdleTTL)
	for id, popup := range p.open {
		if popup.openedAt.Before(cutoff) {
			popup.cancel()
			delete(p.open, id)
		}
	}
}

// ResolveTimezone loads the named zone, falling back to UTC
func ResolveTimezone(name string, logger *slog.Logger) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("Unknown time zone, using UTC", slog.String("timezone", name), slog.Any("error", err))

		return time.UTC
	}

	return loc
}
