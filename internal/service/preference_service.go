package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"scholar-ai-go/internal/model"
	"scholar-ai-go/internal/repository"
	"scholar-ai-go/pkg/log"
)

// PreferenceService 负责三条偏好记录的类型化读写。
// 记录不存在或内容损坏时返回默认值，只有存储本身出错才返回错误。
type PreferenceService interface {
	LoadTheme(ctx context.Context, visitorID string) (model.ThemeSettings, error)
	SaveTheme(ctx context.Context, visitorID string, theme model.ThemeSettings) error
	LoadTasks(ctx context.Context, visitorID string) ([]model.Task, error)
	SaveTasks(ctx context.Context, visitorID string, tasks []model.Task) error
	LoadPlan(ctx context.Context, visitorID string) (*model.StudyPlan, error)
	SavePlan(ctx context.Context, visitorID string, plan *model.StudyPlan) error
}

type preferenceService struct {
	prefRepo repository.PreferenceRepository
}

// NewPreferenceService 创建一个新的 PreferenceService 实例。
func NewPreferenceService(prefRepo repository.PreferenceRepository) PreferenceService {
	return &preferenceService{prefRepo: prefRepo}
}

// LoadTheme 读取主题设置，未知的主题色会被重置为默认值。
func (s *preferenceService) LoadTheme(ctx context.Context, visitorID string) (model.ThemeSettings, error) {
	theme := model.DefaultTheme()
	found, err := s.load(ctx, visitorID, model.PreferenceKeyTheme, &theme)
	if err != nil || !found {
		return model.DefaultTheme(), err
	}
	if err := theme.Validate(); err != nil {
		log.Warnw("stored theme has unknown accent, resetting", "visitorId", visitorID, "accent", theme.Accent)
		theme.Accent = model.DefaultTheme().Accent
	}
	return theme, nil
}

func (s *preferenceService) SaveTheme(ctx context.Context, visitorID string, theme model.ThemeSettings) error {
	return s.save(ctx, visitorID, model.PreferenceKeyTheme, theme)
}

// LoadTasks 读取任务列表，没有记录时返回空列表。
func (s *preferenceService) LoadTasks(ctx context.Context, visitorID string) ([]model.Task, error) {
	var tasks []model.Task
	found, err := s.load(ctx, visitorID, model.PreferenceKeyTasks, &tasks)
	if err != nil {
		return nil, err
	}
	if !found || tasks == nil {
		return []model.Task{}, nil
	}
	return tasks, nil
}

func (s *preferenceService) SaveTasks(ctx context.Context, visitorID string, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	return s.save(ctx, visitorID, model.PreferenceKeyTasks, tasks)
}

// LoadPlan 读取最近一次生成的学习计划，没有记录时返回 nil。
func (s *preferenceService) LoadPlan(ctx context.Context, visitorID string) (*model.StudyPlan, error) {
	var plan *model.StudyPlan
	found, err := s.load(ctx, visitorID, model.PreferenceKeyPlan, &plan)
	if err != nil || !found {
		return nil, err
	}
	return plan, nil
}

func (s *preferenceService) SavePlan(ctx context.Context, visitorID string, plan *model.StudyPlan) error {
	return s.save(ctx, visitorID, model.PreferenceKeyPlan, plan)
}

// load 把记录解码到 out，返回记录是否存在且可用。
func (s *preferenceService) load(ctx context.Context, visitorID, key string, out interface{}) (bool, error) {
	raw, err := s.prefRepo.Get(ctx, visitorID, key)
	if errors.Is(err, repository.ErrPreferenceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Warnw("stored preference is not valid JSON, using default", "visitorId", visitorID, "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (s *preferenceService) save(ctx context.Context, visitorID, key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return s.prefRepo.Put(ctx, visitorID, key, string(b))
}
