package model

import (
	"encoding/json"
	"sync"
)

// StageType 流式建议的阶段
type StageType string

const (
	StageHeuristic StageType = "heuristic"
	StageLLM       StageType = "llm"
)

// AllStages 所有阶段
var AllStages = []StageType{StageHeuristic, StageLLM}

// StageStatus 阶段状态
type StageStatus string

const (
	StatusPending StageStatus = "pending"
	StatusDone    StageStatus = "done"
	StatusError   StageStatus = "error"
)

// StageState 单个阶段的状态
type StageState struct {
	Status StageStatus `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// StageMap 并发安全的阶段状态map
type StageMap struct {
	m sync.Map
}

// Set 设置阶段状态
func (s *StageMap) Set(stage StageType, state *StageState) {
	s.m.Store(stage, state)
}

// Get 获取阶段状态
func (s *StageMap) Get(stage StageType) *StageState {
	v, ok := s.m.Load(stage)
	if !ok {
		return nil
	}
	return v.(*StageState)
}

// CountDone 统计已结束的阶段
func (s *StageMap) CountDone() int {
	count := 0
	s.m.Range(func(_, v interface{}) bool {
		if state := v.(*StageState); state.Status == StatusDone || state.Status == StatusError {
			count++
		}
		return true
	})
	return count
}

// MarshalJSON 实现json序列化
func (s *StageMap) MarshalJSON() ([]byte, error) {
	m := make(map[StageType]*StageState)
	s.m.Range(func(k, v interface{}) bool {
		m[k.(StageType)] = v.(*StageState)
		return true
	})
	return json.Marshal(m)
}

// StreamState SSE每次输出的完整状态
type StreamState struct {
	StreamID      string    `json:"streamId"`
	Status        string    `json:"status"` // "running" | "completed" | "error"
	Overall       int       `json:"overall"`
	CurrentAction string    `json:"currentAction"`
	Stages        *StageMap `json:"stages"`
	Error         string    `json:"error,omitempty"`
}

// NewStreamState 创建初始状态
func NewStreamState(streamID string) *StreamState {
	stages := &StageMap{}
	for _, stage := range AllStages {
		stages.Set(stage, &StageState{Status: StatusPending})
	}
	return &StreamState{
		StreamID: streamID,
		Status:   "running",
		Stages:   stages,
	}
}
