package replay

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shenikar/sentinel_monitoring_system/internal/models"
	"github.com/sirupsen/logrus"
)

// State - состояние контроллера воспроизведения
type State string

const (
	StateIdle    State = "IDLE"
	StateLoading State = "LOADING"
	StatePlaying State = "PLAYING"
	StatePaused  State = "PAUSED"
)

// HistoryFetcher определяет контракт для загрузки исторической телеметрии
type HistoryFetcher interface {
	FetchHistory(ctx context.Context, deviceID string, hours int) ([]models.ReplayFrame, error)
}

// Status - снимок состояния контроллера для слоя API
type Status struct {
	State      State
	DeviceID   string
	FrameCount int
	Index      int
	Frame      *models.ReplayFrame
	LastError  error
}

// Controller - тактическое воспроизведение истории одного выбранного
// устройства в стиле VCR. Кадры загружаются заново на каждый выбор
// и не попадают в живой стор.
type Controller struct {
	mu      sync.Mutex
	fetcher HistoryFetcher
	logger  *logrus.Logger

	windowHours int
	step        time.Duration

	state      State
	deviceID   string
	frames     []models.ReplayFrame
	index      int
	generation uint64
	lastErr    error
	stopPlay   chan struct{}
}

func NewController(fetcher HistoryFetcher, logger *logrus.Logger, windowHours int, step time.Duration) *Controller {
	return &Controller{
		fetcher:     fetcher,
		logger:      logger,
		windowHours: windowHours,
		step:        step,
		state:       StateIdle,
		index:       -1,
	}
}

// Select выбирает устройство и загружает окно его истории. Кадры
// сортируются по возрастанию timestamp, указатель ставится на последний
// (самый свежий) кадр. Смена выбора во время загрузки отбрасывает
// устаревший результат. Ошибка загрузки возвращает контроллер в IDLE
// с пустыми кадрами, ошибка сохраняется для индикации.
func (c *Controller) Select(ctx context.Context, deviceID string) error {
	log := c.logger.WithFields(logrus.Fields{
		"component": "replay",
		"device_id": deviceID,
	})

	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.stopPlaybackLocked()
	c.state = StateLoading
	c.deviceID = deviceID
	c.frames = nil
	c.index = -1
	c.lastErr = nil
	c.mu.Unlock()

	log.Info("Loading telemetry history")
	frames, err := c.fetcher.FetchHistory(ctx, deviceID, c.windowHours)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != gen {
		// Выбор сменился, пока запрос был в полете
		log.Debug("History fetch result is stale, discarding")
		return nil
	}

	if err != nil {
		log.WithError(err).Error("Failed to load telemetry history")
		c.state = StateIdle
		c.deviceID = ""
		c.lastErr = err
		return fmt.Errorf("replay: could not load history for %s: %w", deviceID, err)
	}

	sort.Slice(frames, func(i, j int) bool {
		return frames[i].Timestamp < frames[j].Timestamp
	})
	c.frames = frames
	if len(frames) > 0 {
		c.index = len(frames) - 1
	}
	c.state = StatePaused

	log.WithField("frames", len(frames)).Info("Telemetry history loaded")
	return nil
}

// Play запускает воспроизведение: указатель двигается на один кадр
// каждые step, пока не дойдет до последнего, затем автоматически
// возвращается в PAUSED.
func (c *Controller) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StatePlaying {
		return nil
	}
	if c.state != StatePaused || len(c.frames) == 0 {
		return fmt.Errorf("replay: no frames loaded")
	}

	stop := make(chan struct{})
	c.stopPlay = stop
	c.state = StatePlaying
	go c.runPlayback(stop)
	return nil
}

func (c *Controller) runPlayback(stop chan struct{}) {
	ticker := time.NewTicker(c.step)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.state != StatePlaying || c.stopPlay != stop {
				c.mu.Unlock()
				return
			}
			if c.index >= len(c.frames)-1 {
				// Дошли до последнего кадра - автостоп
				c.state = StatePaused
				c.stopPlay = nil
				c.mu.Unlock()
				return
			}
			c.index++
			c.mu.Unlock()
		}
	}
}

// Pause останавливает воспроизведение, указатель остается на месте
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StatePlaying {
		c.stopPlaybackLocked()
		c.state = StatePaused
	}
}

// Seek переводит указатель на заданный индекс и принудительно ставит
// воспроизведение на паузу. Индекс за границами отсекается до
// [0, len(frames)-1], семантика ползунка.
func (c *Controller) Seek(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.frames) == 0 {
		return fmt.Errorf("replay: no frames loaded")
	}

	if index < 0 {
		index = 0
	}
	if index > len(c.frames)-1 {
		index = len(c.frames) - 1
	}

	c.stopPlaybackLocked()
	c.index = index
	c.state = StatePaused
	return nil
}

// Close сбрасывает контроллер в IDLE и освобождает кадры
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.stopPlaybackLocked()
	c.state = StateIdle
	c.deviceID = ""
	c.frames = nil
	c.index = -1
	c.lastErr = nil
}

// Status возвращает снимок состояния контроллера
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	status := Status{
		State:      c.state,
		DeviceID:   c.deviceID,
		FrameCount: len(c.frames),
		Index:      c.index,
		LastError:  c.lastErr,
	}
	if c.index >= 0 && c.index < len(c.frames) {
		frame := c.frames[c.index]
		status.Frame = &frame
	}
	return status
}

func (c *Controller) stopPlaybackLocked() {
	if c.stopPlay != nil {
		close(c.stopPlay)
		c.stopPlay = nil
	}
}
