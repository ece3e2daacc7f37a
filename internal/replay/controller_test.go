package replay

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/sentinel_monitoring_system/internal/models"
	"github.com/shenikar/sentinel_monitoring_system/internal/replay/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestController — вспомогательная функция для создания контроллера с моком загрузчика
func newTestController(t *testing.T, step time.Duration) (*Controller, *mocks.MockHistoryFetcher) {
	ctrl := gomock.NewController(t)
	fetcherMock := mocks.NewMockHistoryFetcher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	controller := NewController(fetcherMock, logger, 6, step)
	return controller, fetcherMock
}

func frames(timestamps ...float64) []models.ReplayFrame {
	result := make([]models.ReplayFrame, 0, len(timestamps))
	for _, ts := range timestamps {
		result = append(result, models.ReplayFrame{Timestamp: ts})
	}
	return result
}

func TestSelect_LoadsSortedAndStartsAtLastFrame(t *testing.T) {
	// Подготовка: бэкенд отдает кадры в произвольном порядке
	controller, fetcherMock := newTestController(t, 100*time.Millisecond)
	ctx := context.Background()

	fetcherMock.EXPECT().
		FetchHistory(ctx, "DEV_1", 6).
		Return(frames(30, 10, 20), nil).
		Times(1)

	// Действие
	err := controller.Select(ctx, "DEV_1")

	// Проверки: кадры по возрастанию, указатель на последнем
	require.NoError(t, err)
	status := controller.Status()
	assert.Equal(t, StatePaused, status.State)
	assert.Equal(t, 3, status.FrameCount)
	assert.Equal(t, 2, status.Index)
	require.NotNil(t, status.Frame)
	assert.Equal(t, float64(30), status.Frame.Timestamp)
}

func TestSelect_FetchFailureReturnsToIdle(t *testing.T) {
	// Подготовка
	controller, fetcherMock := newTestController(t, 100*time.Millisecond)
	ctx := context.Background()
	fetchErr := fmt.Errorf("backend unavailable")

	fetcherMock.EXPECT().
		FetchHistory(ctx, "DEV_1", 6).
		Return(nil, fetchErr).
		Times(1)

	// Действие
	err := controller.Select(ctx, "DEV_1")

	// Проверки: IDLE, кадры пусты, ошибка сохранена для индикации
	require.Error(t, err)
	status := controller.Status()
	assert.Equal(t, StateIdle, status.State)
	assert.Equal(t, 0, status.FrameCount)
	assert.ErrorIs(t, status.LastError, fetchErr)
}

func TestPlay_AutoStopsAtLastFrame(t *testing.T) {
	// Подготовка
	controller, fetcherMock := newTestController(t, 2*time.Millisecond)
	ctx := context.Background()

	fetcherMock.EXPECT().
		FetchHistory(ctx, "DEV_1", 6).
		Return(frames(1, 2, 3, 4, 5), nil).
		Times(1)
	require.NoError(t, controller.Select(ctx, "DEV_1"))

	// Отматываем в начало и запускаем
	require.NoError(t, controller.Seek(0))
	require.NoError(t, controller.Play())
	assert.Equal(t, StatePlaying, controller.Status().State)

	// Проверки: воспроизведение останавливается ровно на последнем кадре
	require.Eventually(t, func() bool {
		status := controller.Status()
		return status.State == StatePaused && status.Index == status.FrameCount-1
	}, time.Second, time.Millisecond)

	// Указатель никогда не выходит за границы
	status := controller.Status()
	assert.Equal(t, 4, status.Index)
}

func TestPlay_WithoutFramesIsError(t *testing.T) {
	controller, _ := newTestController(t, time.Millisecond)

	assert.Error(t, controller.Play())
}

func TestSeek_ClampsAndPauses(t *testing.T) {
	// Подготовка
	controller, fetcherMock := newTestController(t, 50*time.Millisecond)
	ctx := context.Background()

	fetcherMock.EXPECT().
		FetchHistory(ctx, "DEV_1", 6).
		Return(frames(1, 2, 3), nil).
		Times(1)
	require.NoError(t, controller.Select(ctx, "DEV_1"))
	require.NoError(t, controller.Play())

	// Действие: ручная перемотка за границы
	require.NoError(t, controller.Seek(99))

	// Проверки: индекс отсекается, воспроизведение на паузе
	status := controller.Status()
	assert.Equal(t, StatePaused, status.State)
	assert.Equal(t, 2, status.Index)

	require.NoError(t, controller.Seek(-5))
	assert.Equal(t, 0, controller.Status().Index)
}

func TestSelect_SwitchDeviceDiscardsFrames(t *testing.T) {
	// Подготовка
	controller, fetcherMock := newTestController(t, 50*time.Millisecond)
	ctx := context.Background()

	fetcherMock.EXPECT().
		FetchHistory(ctx, "DEV_1", 6).
		Return(frames(1, 2, 3), nil).
		Times(1)
	fetcherMock.EXPECT().
		FetchHistory(ctx, "DEV_2", 6).
		Return(frames(7), nil).
		Times(1)

	require.NoError(t, controller.Select(ctx, "DEV_1"))

	// Действие: выбор другого устройства
	require.NoError(t, controller.Select(ctx, "DEV_2"))

	// Проверки
	status := controller.Status()
	assert.Equal(t, "DEV_2", status.DeviceID)
	assert.Equal(t, 1, status.FrameCount)
	assert.Equal(t, 0, status.Index)
}

func TestClose_ResetsToIdle(t *testing.T) {
	// Подготовка
	controller, fetcherMock := newTestController(t, 2*time.Millisecond)
	ctx := context.Background()

	fetcherMock.EXPECT().
		FetchHistory(ctx, "DEV_1", 6).
		Return(frames(1, 2, 3), nil).
		Times(1)
	require.NoError(t, controller.Select(ctx, "DEV_1"))
	require.NoError(t, controller.Seek(0))
	require.NoError(t, controller.Play())

	// Действие
	controller.Close()

	// Проверки: IDLE, кадры освобождены, таймер остановлен
	status := controller.Status()
	assert.Equal(t, StateIdle, status.State)
	assert.Equal(t, 0, status.FrameCount)
	assert.Nil(t, status.Frame)

	// Состояние стабильно: тикер не продолжает двигать указатель
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, StateIdle, controller.Status().State)
}

func TestSelect_EmptyHistory(t *testing.T) {
	controller, fetcherMock := newTestController(t, time.Millisecond)
	ctx := context.Background()

	fetcherMock.EXPECT().
		FetchHistory(ctx, "DEV_1", 6).
		Return(nil, nil).
		Times(1)

	require.NoError(t, controller.Select(ctx, "DEV_1"))

	status := controller.Status()
	assert.Equal(t, StatePaused, status.State)
	assert.Equal(t, 0, status.FrameCount)
	assert.Nil(t, status.Frame)
	assert.Error(t, controller.Play())
}
