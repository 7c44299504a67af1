package generator

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

//go:generate mockgen -source=service.go -destination=../../mocks/service/generator/mock.go -package=mocks

// DefaultHorizonDays is how far ahead appointments are materialised.
const DefaultHorizonDays = 14

const defaultBatchSize = 500

type subscriptionRepository interface {
	ListActive(ctx context.Context, now time.Time, after uuid.UUID, limit int) ([]model.Subscription, error)
}

type milestoneRepository interface {
	MilestonesByTimeline(ctx context.Context) (map[uuid.UUID][]model.Milestone, error)
}

type appointmentRepository interface {
	CreateIfAbsent(ctx context.Context, a model.Appointment) (bool, error)
}

// Report summarises one generator run.
type Report struct {
	Subscriptions int `json:"subscriptions"`
	Created       int `json:"created"`
	Failed        int `json:"failed"`
}

// Service materialises appointments from active subscriptions and the
// milestones of their timelines.
type Service struct {
	subscriptions subscriptionRepository
	milestones    milestoneRepository
	appointments  appointmentRepository
	batchSize     int
}

func NewService(
	subscriptions subscriptionRepository,
	milestones milestoneRepository,
	appointments appointmentRepository,
	batchSize int,
) *Service {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &Service{
		subscriptions: subscriptions,
		milestones:    milestones,
		appointments:  appointments,
		batchSize:     batchSize,
	}
}

// GenerateAppointments creates, for every subscription active at now, the
// appointments whose milestone date falls within [today, today+horizonDays].
// Existing appointments are left untouched. A failure for one subscription
// does not stop the others; all such failures are joined into the returned
// error alongside the report.
func (s *Service) GenerateAppointments(ctx context.Context, now time.Time, horizonDays int) (Report, error) {
	if horizonDays < 0 {
		horizonDays = DefaultHorizonDays
	}

	start := time.Now()
	defer func() {
		metrics.JobDuration.WithLabelValues("generate").Observe(time.Since(start).Seconds())
	}()

	var report Report

	milestones, err := s.milestones.MilestonesByTimeline(ctx)
	if err != nil {
		return report, fmt.Errorf("load milestones: %w", err)
	}

	today := model.DateOf(now)
	last := today.AddDate(0, 0, horizonDays)

	var (
		errs  []error
		after = uuid.Nil
	)

	for {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		batch, err := s.subscriptions.ListActive(ctx, now, after, s.batchSize)
		if err != nil {
			errs = append(errs, fmt.Errorf("list active subscriptions: %w", err))
			break
		}

		for _, sub := range batch {
			if err := ctx.Err(); err != nil {
				errs = append(errs, err)
				break
			}

			report.Subscriptions++

			created, err := s.generateFor(ctx, sub, milestones[sub.TimelineID], now, today, last)
			report.Created += created
			if err != nil {
				report.Failed++
				errs = append(errs, err)
				zlog.Logger.Error().Err(err).Str("subscription_id", sub.ID.String()).Msg("failed to generate appointments")
			}
		}

		if len(batch) < s.batchSize || ctx.Err() != nil {
			break
		}
		after = batch[len(batch)-1].ID
	}

	metrics.AppointmentsCreated.Add(float64(report.Created))

	zlog.Logger.Info().
		Int("subscriptions", report.Subscriptions).
		Int("created", report.Created).
		Int("failed", report.Failed).
		Msg("appointment generation finished")

	return report, errors.Join(errs...)
}

func (s *Service) generateFor(
	ctx context.Context, sub model.Subscription, milestones []model.Milestone, now, today, last time.Time,
) (int, error) {
	base := model.DateOf(sub.Start.In(now.Location()))

	created := 0
	for _, m := range milestones {
		date := base.AddDate(0, 0, m.Offset)
		if date.Before(today) || date.After(last) {
			continue
		}

		ok, err := s.appointments.CreateIfAbsent(ctx, model.Appointment{
			MilestoneID:    m.ID,
			SubscriptionID: sub.ID,
			Date:           date,
			Status:         model.AppointmentPending,
		})
		if err != nil {
			return created, fmt.Errorf("subscription %s milestone %s: %w", sub.ID, m.ID, err)
		}
		if ok {
			created++
		}
	}

	return created, nil
}
