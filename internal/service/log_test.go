package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/uav_fleet_system/internal/apperror"
	"github.com/shenikar/uav_fleet_system/internal/models"
	"github.com/shenikar/uav_fleet_system/internal/pagination"
	"github.com/shenikar/uav_fleet_system/internal/service/mocks"
	"github.com/shenikar/uav_fleet_system/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogService(t *testing.T) (LogService, *mocks.MockLogRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockLogRepository(ctrl)
	return NewLogService(repoMock, logger.NewNop()), repoMock
}

func TestRecord(t *testing.T) {
	service, repoMock := newTestLogService(t)
	ctx := context.Background()

	repoMock.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, l *models.Log) error {
			assert.NotEmpty(t, l.ID)
			assert.Equal(t, models.LogWarn, l.LogType)
			assert.Equal(t, "battery low", l.Message)
			return nil
		})

	require.NoError(t, service.Record(ctx, models.LogWarn, "battery low"))
}

func TestCreateLog_DefaultsToInfo(t *testing.T) {
	service, repoMock := newTestLogService(t)
	ctx := context.Background()
	entry := &models.Log{Message: "hello"}

	repoMock.EXPECT().Create(ctx, entry).Return(nil)

	require.NoError(t, service.CreateLog(ctx, entry))
	assert.Equal(t, models.LogInfo, entry.LogType)
}

func TestCreateLog_RepositoryError(t *testing.T) {
	service, repoMock := newTestLogService(t)
	ctx := context.Background()

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("disk full"))

	err := service.CreateLog(ctx, &models.Log{Message: "x"})
	assert.Equal(t, apperror.KindDatabase, apperror.KindOf(err))
}

func TestGetLog_NotFound(t *testing.T) {
	service, repoMock := newTestLogService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, "l404").Return(nil, models.ErrNotFound)

	_, err := service.GetLog(ctx, "l404")
	assert.Equal(t, "Log id l404 not found", err.Error())
}

func TestListLogs(t *testing.T) {
	service, repoMock := newTestLogService(t)
	ctx := context.Background()

	repoMock.EXPECT().Count(ctx).Return(int64(12), nil)
	repoMock.EXPECT().List(ctx, 10, 10).Return([]*models.Log{{ID: "l11"}, {ID: "l12"}}, nil)

	page, err := service.ListLogs(ctx, pagination.Params{Page: 2, Size: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(12), page.Total)
	assert.Len(t, page.Items, 2)
}

func TestRecentLogs(t *testing.T) {
	service, repoMock := newTestLogService(t)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx, 3, 0).Return([]*models.Log{{ID: "a"}}, nil)

	logs, err := service.RecentLogs(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	_, err = service.RecentLogs(ctx, 0)
	assert.True(t, apperror.IsBiz(err))
}
