package command

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/appointments/internal/model"
	"github.com/aliskhannn/appointments/internal/repository/appointment"
	"github.com/aliskhannn/appointments/internal/repository/notification"
	"github.com/aliskhannn/appointments/internal/repository/subscription"
)

// memStore is an in-memory version of the postgres repositories with the
// same matching rules, so handlers, the generator and the dispatcher can run
// together in tests.
type memStore struct {
	mu            sync.Mutex
	timelines     []model.Timeline
	subscriptions []model.Subscription
	appointments  []model.Appointment
	notifications []model.Notification
	failNext      error
}

func newMemStore(timelines ...model.Timeline) *memStore {
	return &memStore{timelines: timelines}
}

func (s *memStore) deps() Deps {
	return Deps{Timelines: s, Subscriptions: s, Appointments: s, Notifications: s}
}

func (s *memStore) fail() error {
	err := s.failNext
	s.failNext = nil
	return err
}

func (s *memStore) Lookup(keyword string) (model.Timeline, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keyword = strings.ToLower(strings.TrimSpace(keyword))
	for _, t := range s.timelines {
		for _, k := range t.Keywords() {
			if k == keyword {
				return t, true
			}
		}
	}
	return model.Timeline{}, false
}

func (s *memStore) MilestonesByTimeline(_ context.Context) (map[uuid.UUID][]model.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make(map[uuid.UUID][]model.Milestone)
	for _, t := range s.timelines {
		res[t.ID] = append(res[t.ID], t.Milestones...)
	}
	return res, nil
}

func (s *memStore) CreateSubscription(_ context.Context, sub model.Subscription, now time.Time) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail(); err != nil {
		return uuid.Nil, err
	}
	for _, existing := range s.subscriptions {
		if existing.TimelineID == sub.TimelineID && existing.EndpointID == sub.EndpointID &&
			existing.Pin == sub.Pin && existing.ActiveAt(now) {
			return uuid.Nil, subscription.ErrAlreadySubscribed
		}
	}
	sub.ID = uuid.New()
	s.subscriptions = append(s.subscriptions, sub)
	return sub.ID, nil
}

func (s *memStore) GetActive(
	_ context.Context, timelineID uuid.UUID, endpointID, pin string, now time.Time,
) (model.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail(); err != nil {
		return model.Subscription{}, err
	}
	for _, sub := range s.subscriptions {
		if sub.TimelineID == timelineID && sub.EndpointID == endpointID && sub.Pin == pin && sub.ActiveAt(now) {
			return sub, nil
		}
	}
	return model.Subscription{}, subscription.ErrSubscriptionNotFound
}

func (s *memStore) GetActiveByPin(_ context.Context, endpointID, pin string, now time.Time) ([]model.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail(); err != nil {
		return nil, err
	}
	var res []model.Subscription
	for _, sub := range s.subscriptions {
		if sub.EndpointID == endpointID && sub.Pin == pin && sub.ActiveAt(now) {
			res = append(res, sub)
		}
	}
	return res, nil
}

func (s *memStore) ListActive(_ context.Context, now time.Time, after uuid.UUID, limit int) ([]model.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []model.Subscription
	for _, sub := range s.subscriptions {
		if sub.ActiveAt(now) && sub.ID.String() > after.String() {
			res = append(res, sub)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID.String() < res[j].ID.String() })
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (s *memStore) EndSubscription(_ context.Context, id uuid.UUID, end time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.subscriptions {
		if s.subscriptions[i].ID == id {
			s.subscriptions[i].End = &end
			return nil
		}
	}
	return subscription.ErrSubscriptionNotFound
}

func (s *memStore) subscriptionByID(id uuid.UUID) model.Subscription {
	for _, sub := range s.subscriptions {
		if sub.ID == id {
			return sub
		}
	}
	return model.Subscription{}
}

func (s *memStore) CreateIfAbsent(_ context.Context, a model.Appointment) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasAppointment(a.SubscriptionID, a.MilestoneID, a.Date) {
		return false, nil
	}
	a.ID = uuid.New()
	if a.Status == "" {
		a.Status = model.AppointmentPending
	}
	s.appointments = append(s.appointments, a)
	return true, nil
}

func (s *memStore) hasAppointment(subscriptionID, milestoneID uuid.UUID, date time.Time) bool {
	for _, a := range s.appointments {
		if a.SubscriptionID == subscriptionID && a.MilestoneID == milestoneID && a.Date.Equal(date) {
			return true
		}
	}
	return false
}

func (s *memStore) ListDue(
	_ context.Context, from, to, now time.Time, after uuid.UUID, limit int,
) ([]model.DueAppointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []model.DueAppointment
	for _, a := range s.appointments {
		sub := s.subscriptionByID(a.SubscriptionID)
		if a.Date.Before(from) || a.Date.After(to) || !sub.ActiveAt(now) ||
			a.Confirmed != nil || a.Superseded() || s.hasLive(a.ID) || a.ID.String() <= after.String() {
			continue
		}
		res = append(res, model.DueAppointment{Appointment: a, EndpointID: sub.EndpointID, Pin: sub.Pin})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID.String() < res[j].ID.String() })
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (s *memStore) inSubscriptions(a model.Appointment, ids []uuid.UUID) bool {
	for _, id := range ids {
		if a.SubscriptionID == id {
			return true
		}
	}
	return false
}

func (s *memStore) latest(match func(model.Appointment) bool) (model.Appointment, error) {
	var (
		best  model.Appointment
		found bool
	)
	for _, a := range s.appointments {
		if match(a) && (!found || a.Date.After(best.Date)) {
			best, found = a, true
		}
	}
	if !found {
		return model.Appointment{}, appointment.ErrAppointmentNotFound
	}
	return best, nil
}

func (s *memStore) LatestPast(_ context.Context, ids []uuid.UUID, today time.Time) (model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.latest(func(a model.Appointment) bool {
		return s.inSubscriptions(a, ids) && a.Status == model.AppointmentPending &&
			!a.Date.After(today) && !a.Superseded()
	})
}

func (s *memStore) LatestMovable(_ context.Context, ids []uuid.UUID, today time.Time) (model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.latest(func(a model.Appointment) bool {
		return s.inSubscriptions(a, ids) && a.Status == model.AppointmentPending &&
			!a.Date.Before(today) && !a.Superseded() && !s.isRescheduleTarget(a.ID)
	})
}

func (s *memStore) isRescheduleTarget(id uuid.UUID) bool {
	for _, a := range s.appointments {
		if a.RescheduleID != nil && *a.RescheduleID == id {
			return true
		}
	}
	return false
}

func (s *memStore) UpdateStatus(_ context.Context, id uuid.UUID, status model.AppointmentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments[i].Status = status
			return nil
		}
	}
	return appointment.ErrAppointmentNotFound
}

func (s *memStore) Reschedule(_ context.Context, id uuid.UUID, date time.Time) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		orig := s.appointments[i]
		if orig.ID != id {
			continue
		}
		if orig.Superseded() || s.isRescheduleTarget(orig.ID) || orig.Status != model.AppointmentPending {
			return uuid.Nil, appointment.ErrAppointmentNotFound
		}
		if s.hasAppointment(orig.SubscriptionID, orig.MilestoneID, date) {
			return uuid.Nil, appointment.ErrAppointmentConflict
		}
		clone := orig
		clone.ID = uuid.New()
		clone.Date = date
		clone.RescheduleID = nil
		s.appointments = append(s.appointments, clone)
		s.appointments[i].RescheduleID = &clone.ID
		return clone.ID, nil
	}
	return uuid.Nil, appointment.ErrAppointmentNotFound
}

func (s *memStore) appointmentByID(id uuid.UUID) (int, bool) {
	for i, a := range s.appointments {
		if a.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (s *memStore) CreateNotification(_ context.Context, n model.Notification) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = uuid.New()
	s.notifications = append(s.notifications, n)
	return n.ID, nil
}

func (s *memStore) HasLive(_ context.Context, appointmentID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.hasLive(appointmentID), nil
}

func (s *memStore) hasLive(appointmentID uuid.UUID) bool {
	for _, n := range s.notifications {
		if n.AppointmentID == appointmentID && n.Status.Live() {
			return true
		}
	}
	return false
}

func (s *memStore) LatestConfirmable(_ context.Context, ids []uuid.UUID, today time.Time) (model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		best  model.Notification
		found bool
	)
	for _, n := range s.notifications {
		i, ok := s.appointmentByID(n.AppointmentID)
		if !ok {
			continue
		}
		a := s.appointments[i]
		if !s.inSubscriptions(a, ids) || n.Status != model.NotificationSent || n.Confirmed != nil ||
			a.Confirmed != nil || a.Superseded() || a.Date.Before(today) {
			continue
		}
		if !found || n.Sent.After(best.Sent) {
			best, found = n, true
		}
	}
	if !found {
		return model.Notification{}, notification.ErrNotificationNotFound
	}
	return best, nil
}

func (s *memStore) Confirm(
	_ context.Context, id uuid.UUID, at time.Time, status model.NotificationStatus, from ...model.NotificationStatus,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(from) == 0 {
		from = []model.NotificationStatus{model.NotificationSent}
	}
	for i := range s.notifications {
		n := &s.notifications[i]
		if n.ID != id || n.Confirmed != nil {
			continue
		}
		for _, f := range from {
			if n.Status != f {
				continue
			}
			n.Status = status
			n.Confirmed = &at
			if j, ok := s.appointmentByID(n.AppointmentID); ok {
				s.appointments[j].Confirmed = &at
			}
			return nil
		}
	}
	return notification.ErrNotificationNotFound
}

// sentMessage is one message handed to the gateway.
type sentMessage struct {
	endpointID string
	text       string
}

type memGateway struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (g *memGateway) Send(_ context.Context, endpointID, text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.err != nil {
		return g.err
	}
	g.sent = append(g.sent, sentMessage{endpointID: endpointID, text: text})
	return nil
}
