package telemetry

import (
	"context"
	"encoding/json"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"dc-atlas-api-server/internal/models"
	"dc-atlas-api-server/internal/socket"
	"dc-atlas-api-server/internal/store"
)

// Frame is one facility's telemetry sample as pushed to subscribers.
type Frame struct {
	ID   string              `json:"id"`
	Name string              `json:"name"`
	Data models.RealTimeData `json:"data"`
	At   time.Time           `json:"at"`
}

// Simulator jitters each facility's telemetry around its seeded baseline on a
// fixed interval, writes the sample back to the store, and broadcasts the
// batch through the hub. The data is simulated, there are no live sensors.
type Simulator struct {
	store     *store.DataCenterStore
	hub       *socket.Hub
	interval  time.Duration
	log       *zap.Logger
	rng       *rand.Rand
	baselines map[string]models.RealTimeData
}

func NewSimulator(s *store.DataCenterStore, hub *socket.Hub, interval time.Duration, log *zap.Logger) *Simulator {
	return &Simulator{
		store:     s,
		hub:       hub,
		interval:  interval,
		log:       log,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		baselines: make(map[string]models.RealTimeData),
	}
}

// Run ticks until the context is cancelled.
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("telemetry simulator started", zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			s.log.Info("telemetry simulator stopped")
			return
		case <-ticker.C:
			s.tick(time.Now())
		}
	}
}

func (s *Simulator) tick(now time.Time) {
	frames := make([]Frame, 0, s.store.Count())
	for _, dc := range s.store.List() {
		base, ok := s.baselines[dc.ID]
		if !ok {
			// Admin-created facilities adopt their submitted telemetry
			// as the baseline.
			base = dc.RealTimeData
			s.baselines[dc.ID] = base
		}

		sample := models.RealTimeData{
			Temperature:    round1(base.Temperature + s.jitter(2)),
			Humidity:       round1(base.Humidity + s.jitter(5)),
			PowerUsage:     round1(base.PowerUsage + s.jitter(3)),
			NetworkLatency: round1(maxf(0.1, base.NetworkLatency+s.jitter(1))),
			Uptime:         base.Uptime,
		}
		if err := s.store.UpdateRealTime(dc.ID, sample); err != nil {
			// Deleted between List and update; skip.
			continue
		}
		frames = append(frames, Frame{ID: dc.ID, Name: dc.Name, Data: sample, At: now})
	}

	if s.hub.ClientCount() == 0 || len(frames) == 0 {
		return
	}
	payload, err := json.Marshal(frames)
	if err != nil {
		s.log.Error("telemetry frame encode failed", zap.Error(err))
		return
	}
	s.hub.Broadcast(payload)
}

// jitter returns a uniform value in (-variance/2, variance/2).
func (s *Simulator) jitter(variance float64) float64 {
	return (s.rng.Float64() - 0.5) * variance
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
