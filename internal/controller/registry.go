package controller

import (
	"context"
	"scholar-ai-go/internal/service"
	"scholar-ai-go/pkg/log"
	"sync"
	"time"
)

// Registry 按访客 ID 保存工作区，首次访问时创建，空闲超时后由定时任务清理。
type Registry struct {
	prefs service.PreferenceService
	gen   service.GenerationService
	now   func() time.Time

	mu         sync.Mutex
	workspaces map[string]*Workspace
}

// NewRegistry 创建一个空的工作区注册表。
func NewRegistry(prefs service.PreferenceService, gen service.GenerationService) *Registry {
	return &Registry{
		prefs:      prefs,
		gen:        gen,
		now:        time.Now,
		workspaces: make(map[string]*Workspace),
	}
}

// Get 返回访客的工作区，不存在时创建一个，并刷新访问时间。
func (r *Registry) Get(ctx context.Context, visitorID string) (*Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ws, ok := r.workspaces[visitorID]; ok {
		ws.Touch(r.now())
		return ws, nil
	}
	ws, err := NewWorkspace(ctx, visitorID, r.prefs, r.gen)
	if err != nil {
		return nil, err
	}
	ws.Touch(r.now())
	r.workspaces[visitorID] = ws
	log.Debugw("workspace created", "visitorId", visitorID, "workspaces", len(r.workspaces))
	return ws, nil
}

// EvictIdle 移除空闲时间超过 ttl 的工作区，返回移除的数量。
func (r *Registry) EvictIdle(ttl time.Duration) int {
	cutoff := r.now().Add(-ttl)
	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for id, ws := range r.workspaces {
		if ws.LastSeen().Before(cutoff) {
			ws.Close()
			delete(r.workspaces, id)
			evicted++
			log.Debugw("workspace evicted", "visitorId", id, "lastSeen", ws.LastSeen())
		}
	}
	return evicted
}

// Len 返回当前保存的工作区数量。
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}
