package appointment

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/appointments/internal/model"
)

var appointmentColumns = []string{
	"id", "milestone_id", "subscription_id", "date", "confirmed", "reschedule_id", "status", "notes",
}

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

// setupReplicatedDB returns a repository whose replica accepts no queries.
func setupReplicatedDB(t *testing.T) (*Repository, sqlmock.Sqlmock, sqlmock.Sqlmock) {
	master, masterMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	replica, replicaMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock replica: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: master, Slaves: []*sql.DB{replica}}

	return NewRepository(wrappedDB), masterMock, replicaMock
}

var lockedColumns = append(append([]string{}, appointmentColumns...), "exists")

func TestCreateIfAbsent(t *testing.T) {
	repo, mock := setupMockDB(t)

	a := model.Appointment{
		MilestoneID:    uuid.New(),
		SubscriptionID: uuid.New(),
		Date:           time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectQuery(`(?s)INSERT INTO appointments.*ON CONFLICT ON CONSTRAINT appointments_key DO NOTHING`).
		WithArgs(a.MilestoneID, a.SubscriptionID, "2025-03-11").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))

	created, err := repo.CreateIfAbsent(context.Background(), a)
	assert.NoError(t, err)
	assert.True(t, created)

	mock.ExpectQuery(`INSERT INTO appointments`).
		WithArgs(a.MilestoneID, a.SubscriptionID, "2025-03-11").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	created, err = repo.CreateIfAbsent(context.Background(), a)
	assert.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfAbsent_WritesToMaster(t *testing.T) {
	repo, master, replica := setupReplicatedDB(t)

	a := model.Appointment{
		MilestoneID:    uuid.New(),
		SubscriptionID: uuid.New(),
		Date:           time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
	}

	master.ExpectQuery(`INSERT INTO appointments`).
		WithArgs(a.MilestoneID, a.SubscriptionID, "2025-03-11").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))

	created, err := repo.CreateIfAbsent(context.Background(), a)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, master.ExpectationsWereMet())
	assert.NoError(t, replica.ExpectationsWereMet())
}

func TestLatestMovable_ReadsFromMaster(t *testing.T) {
	repo, master, replica := setupReplicatedDB(t)

	subID := uuid.New()
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	master.ExpectQuery(`FROM appointments a`).
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	_, err := repo.LatestMovable(context.Background(), []uuid.UUID{subID}, today)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, master.ExpectationsWereMet())
	assert.NoError(t, replica.ExpectationsWereMet())
}

func TestListDue(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	from := model.DateOf(now)
	to := from.AddDate(0, 0, 7)
	id := uuid.New()
	date := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	cols := append(append([]string{}, appointmentColumns...), "endpoint_id", "pin")
	mock.ExpectQuery(`FROM appointments a\s+JOIN subscriptions s`).
		WithArgs("2025-03-10", "2025-03-17", now, sqlmock.AnyArg(), uuid.Nil, 50).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(id.String(), uuid.NewString(), uuid.NewString(), date, nil, nil, "pending", "", "chat-1", "bar"))

	due, err := repo.ListDue(context.Background(), from, to, now, uuid.Nil, 50)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, id, due[0].ID)
	assert.Equal(t, date, due[0].Date)
	assert.Equal(t, model.AppointmentPending, due[0].Status)
	assert.Equal(t, "chat-1", due[0].EndpointID)
	assert.Equal(t, "bar", due[0].Pin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLatestPast(t *testing.T) {
	repo, mock := setupMockDB(t)

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	subID := uuid.New()
	id := uuid.New()

	mock.ExpectQuery(`a.date <= \$3::date`).
		WithArgs(sqlmock.AnyArg(), model.AppointmentPending, "2025-03-10").
		WillReturnRows(sqlmock.NewRows(appointmentColumns).
			AddRow(id.String(), uuid.NewString(), subID.String(), today, nil, nil, "pending", ""))

	a, err := repo.LatestPast(context.Background(), []uuid.UUID{subID}, today)
	require.NoError(t, err)
	assert.Equal(t, id, a.ID)
	assert.Equal(t, subID, a.SubscriptionID)

	mock.ExpectQuery(`a.date <= \$3::date`).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.LatestPast(context.Background(), []uuid.UUID{subID}, today)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLatestMovable_ExcludesRescheduleTargets(t *testing.T) {
	repo, mock := setupMockDB(t)

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`NOT EXISTS \(SELECT 1 FROM appointments p WHERE p.reschedule_id = a.id\)`).
		WithArgs(sqlmock.AnyArg(), model.AppointmentPending, "2025-03-10").
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	_, err := repo.LatestMovable(context.Background(), []uuid.UUID{uuid.New()}, today)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(`UPDATE appointments\s+SET status = \$1`).
		WithArgs(model.AppointmentSeen, id).
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, repo.UpdateStatus(context.Background(), id, model.AppointmentSeen))

	mock.ExpectExec(`UPDATE appointments\s+SET status = \$1`).
		WithArgs(model.AppointmentMissed, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), id, model.AppointmentMissed)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReschedule(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	newID := uuid.New()
	milestoneID := uuid.New()
	subID := uuid.New()
	date := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(lockedColumns).
			AddRow(id.String(), milestoneID.String(), subID.String(), date.AddDate(0, 0, -5), nil, nil, "pending", "note", false))
	mock.ExpectQuery(`INSERT INTO appointments`).
		WithArgs(milestoneID, subID, "2025-03-20", nil, model.AppointmentPending, "note").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(newID.String()))
	mock.ExpectExec(`UPDATE appointments\s+SET reschedule_id = \$1`).
		WithArgs(newID, id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.Reschedule(context.Background(), id, date)
	require.NoError(t, err)
	assert.Equal(t, newID, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReschedule_Conflict(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	date := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(lockedColumns).
			AddRow(id.String(), uuid.NewString(), uuid.NewString(), date, nil, nil, "pending", "", false))
	mock.ExpectQuery(`INSERT INTO appointments`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.Reschedule(context.Background(), id, date)
	assert.ErrorIs(t, err, ErrAppointmentConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReschedule_NoLongerMovable(t *testing.T) {
	date := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	movedTo := uuid.NewString()

	tests := []struct {
		name         string
		rescheduleID any
		status       string
		target       bool
	}{
		{name: "already moved", rescheduleID: movedTo, status: "pending"},
		{name: "created by a move", status: "pending", target: true},
		{name: "status already set", status: "seen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupMockDB(t)
			id := uuid.New()

			mock.ExpectBegin()
			mock.ExpectQuery(`FOR UPDATE`).
				WithArgs(id).
				WillReturnRows(sqlmock.NewRows(lockedColumns).
					AddRow(id.String(), uuid.NewString(), uuid.NewString(), date, nil, tt.rescheduleID, tt.status, "", tt.target))
			mock.ExpectRollback()

			_, err := repo.Reschedule(context.Background(), id, date)
			assert.ErrorIs(t, err, ErrAppointmentNotFound)
			assert.NotErrorIs(t, err, ErrAppointmentConflict)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListAppointments(t *testing.T) {
	repo, mock := setupMockDB(t)

	timelineID := uuid.New()
	confirmed := false

	mock.ExpectQuery(`WHERE s.timeline_id = \$1 AND s.pin = \$2 AND a.status = \$3 AND a.confirmed IS NULL\s+ORDER BY a.date DESC`).
		WithArgs(timelineID, "bar", model.AppointmentPending).
		WillReturnRows(sqlmock.NewRows(appointmentColumns).
			AddRow(uuid.NewString(), uuid.NewString(), uuid.NewString(), time.Now(), nil, nil, "pending", ""))

	list, err := repo.ListAppointments(context.Background(), model.AppointmentFilter{
		TimelineID: &timelineID,
		Pin:        "bar",
		Status:     model.AppointmentPending,
		Confirmed:  &confirmed,
	})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
