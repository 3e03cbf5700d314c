package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/naciro2010/ProfileForge/internal/model"
)

// HeartbeatInterval 心跳间隔
const HeartbeatInterval = 15 * time.Second

// Writer SSE写入器，每次推送完整的 StreamState
type Writer struct {
	w         http.ResponseWriter
	flusher   http.Flusher
	mu        sync.Mutex
	state     *model.StreamState
	stopHeart chan struct{}
	stopOnce  sync.Once
}

// NewWriter 写入SSE响应头并启动心跳
func NewWriter(w http.ResponseWriter, streamID string) (*Writer, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	writer := &Writer{
		w:         w,
		flusher:   flusher,
		state:     model.NewStreamState(streamID),
		stopHeart: make(chan struct{}),
	}

	go writer.heartbeat(HeartbeatInterval)

	return writer, nil
}

// heartbeat 定期发送心跳保持连接
func (s *Writer) heartbeat(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			data, _ := json.Marshal(map[string]interface{}{
				"streamId":      s.state.StreamID,
				"status":        "heartbeat",
				"overall":       s.state.Overall,
				"currentAction": s.state.CurrentAction,
			})
			fmt.Fprintf(s.w, "data: %s\n\n", data)
			s.flusher.Flush()
			s.mu.Unlock()
		case <-s.stopHeart:
			return
		}
	}
}

// StopHeartbeat 停止心跳，可重复调用
func (s *Writer) StopHeartbeat() {
	s.stopOnce.Do(func() { close(s.stopHeart) })
}

// StreamID 当前流的ID
func (s *Writer) StreamID() string {
	return s.state.StreamID
}

func (s *Writer) send() error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(s.w, "data: %s\n\n", data); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// SetAction 更新当前动作和进度并发送，进度只增不减
func (s *Writer) SetAction(progress int, action string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if progress > s.state.Overall {
		s.state.Overall = progress
	}
	s.state.CurrentAction = action
	return s.send()
}

// SetStage 阶段完成，附带数据
func (s *Writer) SetStage(stage model.StageType, data interface{}, action string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Stages.Set(stage, &model.StageState{Status: model.StatusDone, Data: data})
	s.state.CurrentAction = action
	s.recalcOverall()
	return s.send()
}

// SetStageError 阶段失败
func (s *Writer) SetStageError(stage model.StageType, errMsg, action string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Stages.Set(stage, &model.StageState{Status: model.StatusError, Error: errMsg})
	s.state.CurrentAction = action
	s.recalcOverall()
	return s.send()
}

// SendError 全局错误，流随之结束
func (s *Writer) SendError(errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status = "error"
	s.state.CurrentAction = "Suggestion failed"
	s.state.Error = errMsg
	return s.send()
}

// Done 全部完成
func (s *Writer) Done() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status = "completed"
	s.state.Overall = 100
	s.state.CurrentAction = "Suggestion completed"
	return s.send()
}

// recalcOverall 按已结束阶段数计算进度（只增不减）
func (s *Writer) recalcOverall() {
	overall := s.state.Stages.CountDone() * 100 / len(model.AllStages)
	if overall > s.state.Overall {
		s.state.Overall = overall
	}
}
