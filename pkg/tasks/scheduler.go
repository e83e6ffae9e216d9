// Package tasks 负责后台定时任务的注册与调度。
package tasks

import (
	"fmt"
	"scholar-ai-go/pkg/log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler 包装 cron.Cron，为每个任务记录开始与耗时日志。
type Scheduler struct {
	cron *cron.Cron

	mu   sync.Mutex
	jobs map[string]cron.EntryID
}

// NewScheduler 创建一个调度器。spec 使用标准五段式或 @every 这类描述符。
func NewScheduler() *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		jobs: make(map[string]cron.EntryID),
	}
}

// Register 按 spec 注册一个具名任务。
func (s *Scheduler) Register(name, spec string, fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[name]; ok {
		return fmt.Errorf("job %q already registered", name)
	}
	id, err := s.cron.AddFunc(spec, wrap(name, fn))
	if err != nil {
		return fmt.Errorf("invalid schedule %q for job %s: %w", spec, name, err)
	}
	s.jobs[name] = id
	return nil
}

// Start 在后台启动调度。
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info("Scheduler started")
}

// Stop 停止调度并等待正在运行的任务结束。
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Info("Scheduler stopped")
}

func wrap(name string, fn func()) func() {
	return func() {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("scheduled job panicked", "job", name, "panic", r)
			}
		}()
		fn()
		log.Infow("scheduled job finished", "job", name, "latency", time.Since(start).String())
	}
}
