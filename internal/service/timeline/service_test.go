package timeline

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/appointments/internal/mocks/service/timeline"
	"github.com/aliskhannn/appointments/internal/model"
)

func TestReloadAndLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMocktimelineRepository(ctrl)
	svc := NewService(repo)

	birth := model.Timeline{ID: uuid.New(), Name: "Birth", Slug: "birth|bith|bilth"}
	other := model.Timeline{ID: uuid.New(), Name: "Other", Slug: "bith|other"}

	repo.EXPECT().GetAllTimelines(gomock.Any()).Return([]model.Timeline{birth, other}, nil)

	require.NoError(t, svc.Reload(context.Background()))

	got, ok := svc.Lookup("BiLtH")
	require.True(t, ok)
	assert.Equal(t, birth.ID, got.ID)

	got, ok = svc.Lookup("bith")
	require.True(t, ok)
	assert.Equal(t, birth.ID, got.ID, "first timeline keeps a shared keyword")

	got, ok = svc.Lookup("other")
	require.True(t, ok)
	assert.Equal(t, other.ID, got.ID)

	_, ok = svc.Lookup("unknown")
	assert.False(t, ok)
}

func TestReload_KeepsIndexOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMocktimelineRepository(ctrl)
	svc := NewService(repo)

	tl := model.Timeline{ID: uuid.New(), Name: "Test", Slug: "foo"}

	gomock.InOrder(
		repo.EXPECT().GetAllTimelines(gomock.Any()).Return([]model.Timeline{tl}, nil),
		repo.EXPECT().GetAllTimelines(gomock.Any()).Return(nil, errors.New("db down")),
	)

	require.NoError(t, svc.Reload(context.Background()))
	assert.Error(t, svc.Reload(context.Background()))

	_, ok := svc.Lookup("foo")
	assert.True(t, ok)
}

func TestCreateTimeline_RefreshesIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMocktimelineRepository(ctrl)
	svc := NewService(repo)

	id := uuid.New()
	tl := model.Timeline{Name: "Test", Slug: "foo", Milestones: []model.Milestone{{Name: "1 day", Offset: 1}}}

	repo.EXPECT().CreateTimeline(gomock.Any(), tl).Return(id, nil)
	repo.EXPECT().GetAllTimelines(gomock.Any()).
		Return([]model.Timeline{{ID: id, Name: "Test", Slug: "foo"}}, nil)

	got, err := svc.CreateTimeline(context.Background(), tl)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	found, ok := svc.Lookup("FOO")
	require.True(t, ok)
	assert.Equal(t, id, found.ID)
}

func TestCreateTimeline_NoKeywords(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewService(mocks.NewMocktimelineRepository(ctrl))

	_, err := svc.CreateTimeline(context.Background(), model.Timeline{Name: "Empty", Slug: " | "})
	assert.ErrorIs(t, err, ErrNoKeywords)
}

func TestAddMilestone(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMocktimelineRepository(ctrl)
	svc := NewService(repo)

	m := model.Milestone{TimelineID: uuid.New(), Name: "Week 10", Offset: 70}
	id := uuid.New()
	dbErr := errors.New("db down")

	gomock.InOrder(
		repo.EXPECT().AddMilestone(gomock.Any(), m).Return(id, nil),
		repo.EXPECT().AddMilestone(gomock.Any(), m).Return(uuid.Nil, dbErr),
	)

	got, err := svc.AddMilestone(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = svc.AddMilestone(context.Background(), m)
	assert.ErrorIs(t, err, dbErr)
}
