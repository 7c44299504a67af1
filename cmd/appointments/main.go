package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointments/internal/api/handlers/appointment"
	"github.com/aliskhannn/appointments/internal/api/handlers/job"
	"github.com/aliskhannn/appointments/internal/api/handlers/message"
	"github.com/aliskhannn/appointments/internal/api/handlers/notification"
	"github.com/aliskhannn/appointments/internal/api/handlers/timeline"
	"github.com/aliskhannn/appointments/internal/api/router"
	"github.com/aliskhannn/appointments/internal/api/server"
	"github.com/aliskhannn/appointments/internal/command"
	"github.com/aliskhannn/appointments/internal/config"
	"github.com/aliskhannn/appointments/internal/lock"
	"github.com/aliskhannn/appointments/internal/metrics"
	msghandler "github.com/aliskhannn/appointments/internal/rabbitmq/handlers/message"
	"github.com/aliskhannn/appointments/internal/rabbitmq/queue"
	"github.com/aliskhannn/appointments/internal/repository"
	appointmentrepo "github.com/aliskhannn/appointments/internal/repository/appointment"
	notificationrepo "github.com/aliskhannn/appointments/internal/repository/notification"
	subscriptionrepo "github.com/aliskhannn/appointments/internal/repository/subscription"
	timelinerepo "github.com/aliskhannn/appointments/internal/repository/timeline"
	"github.com/aliskhannn/appointments/internal/scheduler"
	"github.com/aliskhannn/appointments/internal/service/delivery"
	"github.com/aliskhannn/appointments/internal/service/dispatcher"
	"github.com/aliskhannn/appointments/internal/service/generator"
	timelinesvc "github.com/aliskhannn/appointments/internal/service/timeline"
	"github.com/aliskhannn/appointments/internal/worker"
	"github.com/aliskhannn/appointments/pkg/email"
	"github.com/aliskhannn/appointments/pkg/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()
	metrics.Register()

	loc, err := cfg.Schedule.Location()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("invalid schedule timezone")
	}

	// database
	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := repository.Migrate(ctx, db); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	timelines := timelinerepo.NewRepository(db)
	subscriptions := subscriptionrepo.NewRepository(db)
	appointments := appointmentrepo.NewRepository(db)
	notifications := notificationrepo.NewRepository(db)

	// redis
	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	locker := lock.NewLocker(rdb, "appointments:lock:", cfg.Schedule.LockTTL)

	// rabbitmq
	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	outbound, err := queue.NewOutboundQueue(ch, cfg.RabbitMQ, cfg.Retry)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create outbound queue")
	}

	// channel notifiers
	notifiers := make(map[string]delivery.Notifier)

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}
	notifiers["email"] = email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
		cfg.Email.Subject,
	)

	var tg *telegram.Client
	if cfg.Telegram.Token != "" {
		tg, err = telegram.NewClient(cfg.Telegram.Token)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to create telegram client")
		}
		notifiers["telegram"] = tg
	}

	if _, ok := notifiers[cfg.Gateway.Channel]; !ok {
		zlog.Logger.Fatal().Str("channel", cfg.Gateway.Channel).Msg("gateway channel is not configured")
	}

	// services
	timelineService := timelinesvc.NewService(timelines)
	if err := timelineService.Reload(ctx); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to load timeline keywords")
	}

	generatorService := generator.NewService(subscriptions, timelines, appointments, cfg.Schedule.BatchSize)
	dispatcherService := dispatcher.NewService(appointments, notifications, outbound, locker, cfg.Schedule.BatchSize)
	deliveryService := delivery.NewService(notifiers, cfg.Gateway.Channel, rdb)

	commands := command.NewDefaultRouter(command.Deps{
		Timelines:     timelineService,
		Subscriptions: subscriptions,
		Appointments:  appointments,
		Notifications: notifications,
	}, loc)

	// outbound delivery
	deliverer := worker.NewDeliverer(outbound, msghandler.NewHandler(deliveryService), deliveryService)
	go deliverer.Run(ctx, cfg.Retry, cfg.Workers.Count)

	if tg != nil && cfg.Telegram.Poll {
		go tg.Poll(ctx, commands.HandleInboundMessage)
	}

	// periodic jobs
	jobs, err := scheduler.New(ctx, loc,
		scheduler.Job{
			Name:  "generate",
			Every: cfg.Schedule.GenerateEvery,
			Run: func(ctx context.Context) error {
				_, err := generatorService.GenerateAppointments(ctx, time.Now().In(loc), cfg.Schedule.GenerateHorizonDays)
				return err
			},
		},
		scheduler.Job{
			Name:  "notify",
			Every: cfg.Schedule.NotifyEvery,
			Run: func(ctx context.Context) error {
				_, err := dispatcherService.SendAppointmentNotifications(ctx, time.Now().In(loc), cfg.Schedule.NotifyHorizonDays)
				return err
			},
		},
		scheduler.Job{
			Name:  "reload_keywords",
			Every: cfg.Schedule.ReloadKeywordsEvery,
			Run:   timelineService.Reload,
		},
	)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create scheduler")
	}
	jobs.Start()

	// http
	r := router.New(router.Handlers{
		Message:      message.NewHandler(commands, val),
		Timeline:     timeline.NewHandler(timelineService, val),
		Notification: notification.NewHandler(notifications),
		Appointment:  appointment.NewHandler(appointments),
		Job: job.NewHandler(generatorService, dispatcherService, job.Defaults{
			GenerateDays: cfg.Schedule.GenerateHorizonDays,
			NotifyDays:   cfg.Schedule.NotifyHorizonDays,
		}, loc),
	})
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Msg("appointments service started")

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := jobs.Shutdown(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to stop scheduler")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}

	if err := rdb.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close redis")
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
