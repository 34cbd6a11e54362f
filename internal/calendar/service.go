package calendar

import (
	"context"
	"time"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
	"github.com/Its-donkey/archambeau-site/logging"
)

// DefaultMaxEvents caps a listing when the service is not told otherwise.
const DefaultMaxEvents = 10

const (
	UnavailableMessage = "Performance calendar is currently unavailable. Please check back soon."
	EmptyMessage       = "No upcoming performances scheduled. Check back soon!"
)

// Service produces the performance listing. Each call to Listing makes at
// most one request to the source.
type Service struct {
	source     Source
	configured bool
	max        int
	now        func() time.Time
	logger     *logging.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithMaxEvents overrides DefaultMaxEvents.
func WithMaxEvents(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.max = n
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger records source failures.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService wraps source. A nil source or configured=false yields a service
// that always reports the calendar as unconfigured.
func NewService(source Source, configured bool, opts ...Option) *Service {
	s := &Service{
		source:     source,
		configured: configured && source != nil,
		max:        DefaultMaxEvents,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Configured reports whether Listing will contact the source.
func (s *Service) Configured() bool { return s.configured }

// Listing fetches upcoming events and converts them into cards.
func (s *Service) Listing(ctx context.Context) model.PerformanceListing {
	if !s.configured {
		return model.PerformanceListing{
			Status:  model.ListingUnconfigured,
			Message: UnavailableMessage,
			Cards:   []model.PerformanceCard{},
		}
	}
	events, err := s.source.Upcoming(ctx, s.now(), s.max)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("calendar", "failed to load upcoming events", err, nil)
		}
		return model.PerformanceListing{
			Status:  model.ListingUnavailable,
			Message: UnavailableMessage,
			Cards:   []model.PerformanceCard{},
		}
	}
	if len(events) == 0 {
		return model.PerformanceListing{
			Status:  model.ListingEmpty,
			Message: EmptyMessage,
			Cards:   []model.PerformanceCard{},
		}
	}
	cards := make([]model.PerformanceCard, 0, len(events))
	for _, ev := range events {
		cards = append(cards, ToCard(ev))
	}
	return model.PerformanceListing{Status: model.ListingOK, Cards: cards}
}
