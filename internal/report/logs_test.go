package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/shenikar/uav_fleet_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLogsXLSX(t *testing.T) {
	created := time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)
	logs := []*models.Log{
		{ID: "l2", LogType: models.LogWarn, Message: "battery low", CreatedAt: created},
		{ID: "l1", LogType: models.LogInfo, Message: "User u1 created", CreatedAt: created.Add(-time.Minute)},
	}

	data, err := LogsXLSX(logs)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{logsSheet}, f.GetSheetList())

	rows, err := f.GetRows(logsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, LogsHeader, rows[0])
	assert.Equal(t, []string{"l2", "Warn", "battery low", "2025-04-02T09:30:00Z"}, rows[1])
	assert.Equal(t, "l1", rows[2][0])
}

func TestLogsXLSX_Empty(t *testing.T) {
	data, err := LogsXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(logsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
