package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointments/internal/metrics"
	"github.com/aliskhannn/appointments/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/dispatcher/mock.go -package=mocks

// DefaultHorizonDays is how far ahead reminders are sent.
const DefaultHorizonDays = 7

const defaultBatchSize = 500

type appointmentRepository interface {
	ListDue(ctx context.Context, from, to, now time.Time, after uuid.UUID, limit int) ([]model.DueAppointment, error)
}

type notificationRepository interface {
	CreateNotification(ctx context.Context, n model.Notification) (uuid.UUID, error)
	HasLive(ctx context.Context, appointmentID uuid.UUID) (bool, error)
}

// MessageGateway delivers a text message to an endpoint.
type MessageGateway interface {
	Send(ctx context.Context, endpointID, text string) error
}

type locker interface {
	TryLock(ctx context.Context, key string) (string, bool, error)
	Unlock(ctx context.Context, key, token string) error
}

// Report summarises one dispatcher run.
type Report struct {
	Selected int `json:"selected"`
	Sent     int `json:"sent"`
	Failed   int `json:"failed"`
	Skipped  int `json:"skipped"`
}

// Service sends reminders for upcoming appointments.
type Service struct {
	appointments  appointmentRepository
	notifications notificationRepository
	gateway       MessageGateway
	locker        locker
	batchSize     int
}

// NewService creates a dispatcher. locker may be nil, in which case the
// live notification re-check before each send is the only guard against
// concurrent runs.
func NewService(
	appointments appointmentRepository,
	notifications notificationRepository,
	gateway MessageGateway,
	locker locker,
	batchSize int,
) *Service {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &Service{
		appointments:  appointments,
		notifications: notifications,
		gateway:       gateway,
		locker:        locker,
		batchSize:     batchSize,
	}
}

// ReminderText renders the reminder sent for an appointment of pin.
func ReminderText(date time.Time, pin string) string {
	if pin == "" {
		pin = "<NAME/ID>"
	}

	return fmt.Sprintf(
		"Reminder: you have an appointment on %s. Reply CONFIRM %s to confirm.",
		date.Format(model.DateLayout), pin,
	)
}

// SendAppointmentNotifications sends one reminder for every appointment
// dated within [today, today+horizonDays] whose subscription is active at
// now and which has no live notification yet.
//
// The message is sent before the notification is recorded: a crash in
// between can produce a duplicate reminder but never a lost one. A failed
// send is recorded with status Error so that the next run retries it.
func (s *Service) SendAppointmentNotifications(ctx context.Context, now time.Time, horizonDays int) (Report, error) {
	if horizonDays < 0 {
		horizonDays = DefaultHorizonDays
	}

	start := time.Now()
	defer func() {
		metrics.JobDuration.WithLabelValues("notify").Observe(time.Since(start).Seconds())
	}()

	var (
		report Report
		errs   []error
		after  = uuid.Nil
	)

	from := model.DateOf(now)
	to := from.AddDate(0, 0, horizonDays)

	for {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		batch, err := s.appointments.ListDue(ctx, from, to, now, after, s.batchSize)
		if err != nil {
			errs = append(errs, fmt.Errorf("list due appointments: %w", err))
			break
		}

		for _, a := range batch {
			if err := ctx.Err(); err != nil {
				errs = append(errs, err)
				break
			}

			report.Selected++

			if err := s.remind(ctx, a, now, &report); err != nil {
				errs = append(errs, err)
				zlog.Logger.Error().Err(err).Str("appointment_id", a.ID.String()).Msg("failed to send reminder")
			}
		}

		if len(batch) < s.batchSize || ctx.Err() != nil {
			break
		}
		after = batch[len(batch)-1].ID
	}

	zlog.Logger.Info().
		Int("selected", report.Selected).
		Int("sent", report.Sent).
		Int("failed", report.Failed).
		Int("skipped", report.Skipped).
		Msg("reminder dispatch finished")

	return report, errors.Join(errs...)
}

func (s *Service) remind(ctx context.Context, a model.DueAppointment, now time.Time, report *Report) error {
	key := a.ID.String()

	if s.locker != nil {
		token, ok, err := s.locker.TryLock(ctx, key)
		if err != nil {
			return err
		}
		if !ok {
			report.Skipped++
			return nil
		}
		defer func() {
			if err := s.locker.Unlock(context.WithoutCancel(ctx), key, token); err != nil {
				zlog.Logger.Warn().Err(err).Str("appointment_id", key).Msg("failed to release reminder lease")
			}
		}()
	}

	// Another run may have finished between our select and now.
	live, err := s.notifications.HasLive(ctx, a.ID)
	if err != nil {
		return fmt.Errorf("check live notification: %w", err)
	}
	if live {
		report.Skipped++
		return nil
	}

	n := model.Notification{
		AppointmentID: a.ID,
		Status:        model.NotificationSent,
		Sent:          now,
		Message:       ReminderText(a.Date, a.Pin),
	}

	if err := s.gateway.Send(ctx, a.EndpointID, n.Message); err != nil {
		zlog.Logger.Error().Err(err).Str("appointment_id", key).Str("endpoint_id", a.EndpointID).
			Msg("failed to deliver reminder")
		n.Status = model.NotificationError
		report.Failed++
	} else {
		report.Sent++
	}

	if _, err := s.notifications.CreateNotification(ctx, n); err != nil {
		return fmt.Errorf("record notification: %w", err)
	}

	metrics.Reminders.WithLabelValues(string(n.Status)).Inc()

	return nil
}
