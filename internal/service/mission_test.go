package service

import (
	"context"
	"testing"
	"time"

	"github.com/shenikar/uav_fleet_system/internal/apperror"
	"github.com/shenikar/uav_fleet_system/internal/models"
	"github.com/shenikar/uav_fleet_system/internal/pagination"
	"github.com/shenikar/uav_fleet_system/internal/service/mocks"
	webhook_mocks "github.com/shenikar/uav_fleet_system/internal/webhook/mocks"
	"github.com/shenikar/uav_fleet_system/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMissionService(t *testing.T) (*missionService, *mocks.MockMissionRepository, *mocks.MockEntityCache[models.Mission], *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockMissionRepository(ctrl)
	cacheMock := mocks.NewMockEntityCache[models.Mission](ctrl)
	publisherMock := webhook_mocks.NewMockPublisher(ctrl)

	svc := NewMissionService(repoMock, cacheMock, publisherMock, logger.NewNop())
	return svc.(*missionService), repoMock, cacheMock, publisherMock
}

func TestCreateMission_StartsIdle(t *testing.T) {
	service, repoMock, _, publisherMock := newTestMissionService(t)
	ctx := context.Background()
	started := time.Now()
	mission := &models.Mission{
		UserID:    "u1",
		DroneID:   "d1",
		TargetLat: decimal.RequireFromString("55.7522200"),
		TargetLng: decimal.RequireFromString("37.6155600"),
		Status:    models.StatusActive,
		StartedAt: &started,
	}

	repoMock.EXPECT().Create(ctx, mission).Return(nil)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	require.NoError(t, service.CreateMission(ctx, mission))
	assert.NotEmpty(t, mission.ID)
	assert.Equal(t, models.StatusIdle, mission.Status)
	assert.Nil(t, mission.StartedAt)
}

func TestUpdateMission_SetsStartedAt(t *testing.T) {
	service, repoMock, cacheMock, publisherMock := newTestMissionService(t)
	ctx := context.Background()
	lat := decimal.RequireFromString("55.7522200")
	existing := &models.Mission{ID: "m1", DroneID: "d1", TargetLat: lat, Status: models.StatusIdle}
	started := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	repoMock.EXPECT().GetByID(ctx, "m1").Return(existing, nil)
	repoMock.EXPECT().Update(ctx, existing).Return(nil)
	cacheMock.EXPECT().Invalidate(ctx, "m1").Return(nil)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	err := service.UpdateMission(ctx, "m1", models.MissionUpdate{Status: ptr(models.StatusActive), StartedAt: &started})

	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, existing.Status)
	assert.True(t, lat.Equal(existing.TargetLat))
	require.NotNil(t, existing.StartedAt)
	assert.True(t, started.Equal(*existing.StartedAt))
	assert.Nil(t, existing.CompletedAt)
}

func TestGetMission_NotFound(t *testing.T) {
	service, repoMock, cacheMock, _ := newTestMissionService(t)
	ctx := context.Background()

	cacheMock.EXPECT().Get(ctx, "m404").Return(nil, nil)
	repoMock.EXPECT().GetByID(ctx, "m404").Return(nil, models.ErrNotFound)

	_, err := service.GetMission(ctx, "m404")

	require.Error(t, err)
	assert.True(t, apperror.IsBiz(err))
	assert.Equal(t, "Mission id m404 not found", err.Error())
}

func TestDeleteMission_NotFound(t *testing.T) {
	service, repoMock, _, _ := newTestMissionService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, "m404").Return(nil, models.ErrNotFound)

	err := service.DeleteMission(ctx, "m404")

	assert.True(t, apperror.IsBiz(err))
}

func TestListMissions(t *testing.T) {
	service, repoMock, _, _ := newTestMissionService(t)
	ctx := context.Background()

	repoMock.EXPECT().Count(ctx).Return(int64(1), nil)
	repoMock.EXPECT().List(ctx, 5, 0).Return([]*models.Mission{{ID: "m1"}}, nil)

	page, err := service.ListMissions(ctx, pagination.Default())

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Len(t, page.Items, 1)
}
