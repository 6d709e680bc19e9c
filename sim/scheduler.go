package sim

import (
	"reflect"
	"time"
)

// Stage is one step of the tick state machine.
type Stage interface {
	Execute(frame *TickFrame)
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	StageCount      int
	Ticks           int64
	TotalExecutions int64
	Stages          []StageStats
}

// StageStats provides execution statistics for a single stage.
type StageStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type stageStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs stages in registration order.
type Scheduler struct {
	stages     []Stage
	stageStats []*stageStatsInternal
	ticks      int64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		stages: make([]Stage, 0),
	}
}

// Register appends a stage. Stages run in the order they were registered.
func (s *Scheduler) Register(stage Stage) {
	s.stages = append(s.stages, stage)

	stageType := reflect.TypeOf(stage)
	if stageType.Kind() == reflect.Ptr {
		stageType = stageType.Elem()
	}

	s.stageStats = append(s.stageStats, &stageStatsInternal{
		name:        stageType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once runs every stage against frame. Changes queued on frame.Commands are flushed
// after each stage, so the next stage sees them.
func (s *Scheduler) Once(frame *TickFrame) {
	s.ticks++

	for i, stage := range s.stages {
		start := time.Now()
		stage.Execute(frame)
		if frame.Commands.Pending() {
			frame.Commands.Flush(frame.Pieces)
		}
		duration := time.Since(start)

		stats := s.stageStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
}

// Stats returns statistics about stage execution.
func (s *Scheduler) Stats() SchedulerStats {
	stats := SchedulerStats{
		StageCount: len(s.stages),
		Ticks:      s.ticks,
		Stages:     make([]StageStats, len(s.stageStats)),
	}

	var totalExecs int64
	for i, internal := range s.stageStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Stages[i] = StageStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
