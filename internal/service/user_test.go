package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/uav_fleet_system/internal/apperror"
	"github.com/shenikar/uav_fleet_system/internal/models"
	"github.com/shenikar/uav_fleet_system/internal/service/mocks"
	webhook_mocks "github.com/shenikar/uav_fleet_system/internal/webhook/mocks"
	"github.com/shenikar/uav_fleet_system/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserService(t *testing.T) (*userService, *mocks.MockUserRepository, *mocks.MockLogRecorder, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockUserRepository(ctrl)
	recorderMock := mocks.NewMockLogRecorder(ctrl)
	publisherMock := webhook_mocks.NewMockPublisher(ctrl)

	svc := NewUserService(repoMock, recorderMock, publisherMock, logger.NewNop())
	return svc.(*userService), repoMock, recorderMock, publisherMock
}

func TestCreateUser_HashesPasswordAndRecordsLog(t *testing.T) {
	service, repoMock, recorderMock, publisherMock := newTestUserService(t)
	ctx := context.Background()
	user := &models.User{Name: "alice", Role: models.RoleOperator}

	repoMock.EXPECT().Create(ctx, user).Return(nil)
	recorderMock.EXPECT().Record(ctx, models.LogInfo, gomock.Any()).Return(nil)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	require.NoError(t, service.CreateUser(ctx, user, "s3cret"))
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
}

func TestCreateUser_LogFailureIsIgnored(t *testing.T) {
	service, repoMock, recorderMock, publisherMock := newTestUserService(t)
	ctx := context.Background()

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	recorderMock.EXPECT().Record(ctx, models.LogInfo, gomock.Any()).Return(errors.New("db down"))
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	require.NoError(t, service.CreateUser(ctx, &models.User{Name: "bob"}, "pw"))
}

func TestUpdateUser_EmptyPasswordKeepsHash(t *testing.T) {
	service, repoMock, recorderMock, publisherMock := newTestUserService(t)
	ctx := context.Background()
	existing := &models.User{ID: "u1", Name: "alice", PasswordHash: "old-hash", Role: models.RoleViewer}

	repoMock.EXPECT().GetByID(ctx, "u1").Return(existing, nil)
	repoMock.EXPECT().Update(ctx, existing).Return(nil)
	recorderMock.EXPECT().Record(ctx, models.LogInfo, "User u1 updated").Return(nil)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	err := service.UpdateUser(ctx, "u1", models.UserUpdate{Name: ptr(""), Password: ptr(""), Role: ptr(models.RoleAdmin)})

	require.NoError(t, err)
	assert.Equal(t, "alice", existing.Name)
	assert.Equal(t, "old-hash", existing.PasswordHash)
	assert.Equal(t, models.RoleAdmin, existing.Role)
}

func TestUpdateUser_NewPasswordIsHashed(t *testing.T) {
	service, repoMock, recorderMock, publisherMock := newTestUserService(t)
	ctx := context.Background()
	existing := &models.User{ID: "u1", Name: "alice", PasswordHash: "old-hash"}

	repoMock.EXPECT().GetByID(ctx, "u1").Return(existing, nil)
	repoMock.EXPECT().Update(ctx, existing).Return(nil)
	recorderMock.EXPECT().Record(ctx, models.LogInfo, gomock.Any()).Return(nil)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	require.NoError(t, service.UpdateUser(ctx, "u1", models.UserUpdate{Password: ptr("new")}))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte("new")))
}

func TestDeleteUser_NotFound(t *testing.T) {
	service, repoMock, _, _ := newTestUserService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, "u404").Return(nil, models.ErrNotFound)

	err := service.DeleteUser(ctx, "u404")

	require.Error(t, err)
	assert.True(t, apperror.IsBiz(err))
	assert.Equal(t, "User id u404 not found", err.Error())
}
