// Package repository 定义了偏好记录的持久化接口和实现。
package repository

import (
	"context"
	"errors"
	"fmt"
	"scholar-ai-go/internal/model"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrPreferenceNotFound 表示该访客从未写入过这条记录。
var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceRepository 接口定义了按访客隔离的键值记录的读写操作。
// 记录值是整体读写的 JSON 文本，不做部分更新，后写者覆盖先写者。
type PreferenceRepository interface {
	Get(ctx context.Context, visitorID, key string) (string, error)
	Put(ctx context.Context, visitorID, key, value string) error
}

// gormPreferenceRepository 是 PreferenceRepository 接口的 GORM 实现。
type gormPreferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository 创建一个新的 GORM 版 PreferenceRepository 实例。
func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &gormPreferenceRepository{db: db}
}

// Get 读取一条记录的原始 JSON 文本。
func (r *gormPreferenceRepository) Get(ctx context.Context, visitorID, key string) (string, error) {
	var pref model.Preference
	err := r.db.WithContext(ctx).
		Where("visitor_id = ? AND pref_key = ?", visitorID, key).
		First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrPreferenceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get preference %s: %w", key, err)
	}
	return pref.Value, nil
}

// Put 以 upsert 的方式整体写入一条记录。
func (r *gormPreferenceRepository) Put(ctx context.Context, visitorID, key, value string) error {
	pref := model.Preference{VisitorID: visitorID, Key: key, Value: value}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "visitor_id"}, {Name: "pref_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		return fmt.Errorf("failed to put preference %s: %w", key, err)
	}
	return nil
}

// memoryPreferenceRepository 把记录保存在进程内存里，用于测试和 preferences.backend=memory 的本地运行，重启即丢失。
type memoryPreferenceRepository struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryPreferenceRepository 创建一个内存版 PreferenceRepository。
func NewMemoryPreferenceRepository() PreferenceRepository {
	return &memoryPreferenceRepository{data: make(map[string]string)}
}

func (r *memoryPreferenceRepository) Get(_ context.Context, visitorID, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.data[visitorID+"\x00"+key]
	if !ok {
		return "", ErrPreferenceNotFound
	}
	return v, nil
}

func (r *memoryPreferenceRepository) Put(_ context.Context, visitorID, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[visitorID+"\x00"+key] = value
	return nil
}
