package metrics

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// DecisionMetric describes one move choice made by an agent.
type DecisionMetric struct {
	Tier       string
	Workers    int
	Duration   time.Duration
	Candidates int
	Band       string // highest scoring band of the chosen move
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	Action string
	Forced bool
	DecisionMetric
}

type GameMetric struct {
	ID             uuid.UUID
	StartingPlayer int // Player ID
	Winner         int // Player ID, 0 when nobody won
	Phase          string
	Sequences      [2]int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(tier string, workers int)
	AddCandidates(n int)
	SetBand(band string)
	Complete() DecisionMetric
}

type collector struct {
	tier       string
	workers    int
	startTime  time.Time
	candidates atomic.Int32
	band       atomic.Value
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(tier string, workers int) {
	m.startTime = time.Now()
	m.tier = tier
	m.workers = workers
	m.candidates.Store(0)
	m.band.Store("")
}

func (m *collector) AddCandidates(n int) {
	m.candidates.Add(int32(n))
}

func (m *collector) SetBand(band string) {
	m.band.Store(band)
}

func (m *collector) Complete() DecisionMetric {
	band, _ := m.band.Load().(string)
	return DecisionMetric{
		Tier:       m.tier,
		Workers:    m.workers,
		Duration:   time.Since(m.startTime),
		Candidates: int(m.candidates.Load()),
		Band:       band,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(tier string, workers int) {}
func (m *dummyCollector) AddCandidates(n int)            {}
func (m *dummyCollector) SetBand(band string)            {}
func (m *dummyCollector) Complete() DecisionMetric       { return DecisionMetric{} }
