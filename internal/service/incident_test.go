package service

import (
	"context"
	"testing"

	"github.com/shenikar/uav_fleet_system/internal/apperror"
	"github.com/shenikar/uav_fleet_system/internal/models"
	"github.com/shenikar/uav_fleet_system/internal/service/mocks"
	webhook_mocks "github.com/shenikar/uav_fleet_system/internal/webhook/mocks"
	"github.com/shenikar/uav_fleet_system/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *mocks.MockEntityCache[models.Incident], *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	cacheMock := mocks.NewMockEntityCache[models.Incident](ctrl)
	webhookMock := webhook_mocks.NewMockPublisher(ctrl)

	service := NewIncidentService(repoMock, cacheMock, webhookMock, logger.NewNop())
	return service.(*incidentService), repoMock, cacheMock, webhookMock
}

func TestCreateIncident_DefaultStatus(t *testing.T) {
	service, repoMock, _, webhookMock := newTestIncidentService(t)
	ctx := context.Background()
	incident := &models.Incident{Title: "Пожар", Severity: 3, CreatedBy: "u1"}

	repoMock.EXPECT().Create(ctx, incident).Return(nil)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	require.NoError(t, service.CreateIncident(ctx, incident))
	assert.Equal(t, models.IncidentOpen, incident.Status)
	assert.NotEmpty(t, incident.ID)
}

func TestGetIncident_FromCache(t *testing.T) {
	// Подготовка
	service, _, cacheMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	expected := &models.Incident{ID: "i1", Title: "Тестовый инцидент из кеша"}

	// Ожидания
	cacheMock.EXPECT().Get(ctx, "i1").Return(expected, nil).Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, "i1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestUpdateIncident_EmptyTitleIgnored(t *testing.T) {
	service, repoMock, cacheMock, webhookMock := newTestIncidentService(t)
	ctx := context.Background()
	existing := &models.Incident{ID: "i1", Title: "Пожар", Description: "дым", Status: models.IncidentOpen}

	repoMock.EXPECT().GetByID(ctx, "i1").Return(existing, nil)
	repoMock.EXPECT().Update(ctx, existing).Return(nil)
	cacheMock.EXPECT().Invalidate(ctx, "i1").Return(nil)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	err := service.UpdateIncident(ctx, "i1", models.IncidentUpdate{
		Title:       ptr(""),
		Description: ptr(""),
		Status:      ptr(models.IncidentResolved),
	})

	require.NoError(t, err)
	assert.Equal(t, "Пожар", existing.Title)
	assert.Equal(t, "", existing.Description)
	assert.Equal(t, models.IncidentResolved, existing.Status)
}

func TestDeleteIncident_NotFound(t *testing.T) {
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, "i404").Return(nil, models.ErrNotFound)

	err := service.DeleteIncident(ctx, "i404")

	require.Error(t, err)
	assert.True(t, apperror.IsBiz(err))
	assert.Equal(t, "Incident id i404 not found", err.Error())
}
