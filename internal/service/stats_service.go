package service

import (
	"context"
	"encoding/json"
	"time"

	"odyssey_backend/internal/model"
	"odyssey_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	statsCacheKey = "odyssey:stats:snapshot"
	statsCacheTTL = 30 * time.Second
)

// ModuleStat 单个模块的推导视图
type ModuleStat struct {
	ID       string             `json:"id"`
	Title    string             `json:"title"`
	Status   model.ModuleStatus `json:"status"`
	Progress int                `json:"progress"`
}

// StatsSnapshot 指挥舱统计面板的聚合视图，全部由会话实时推导
type StatsSnapshot struct {
	ExperiencePoints int          `json:"experiencePoints"`
	Rank             int          `json:"rank"`
	NextRankXP       int          `json:"nextRankXp"`
	OverallProgress  int          `json:"overallProgress"`
	ProjectSync      int          `json:"projectSync"`
	ModulesCompleted int          `json:"modulesCompleted"`
	ModulesTotal     int          `json:"modulesTotal"`
	CompletedDays    int          `json:"completedDays"`
	CurrentModuleID  string       `json:"currentModuleId,omitempty"`
	CurrentModule    string       `json:"currentModule,omitempty"`
	Modules          []ModuleStat `json:"modules"`
	GeneratedAt      time.Time    `json:"generatedAt"`
}

// StatsService 统计快照，短 TTL 缓存于 redis，任何变更意图提交后失效
type StatsService struct {
	session *SessionService
	redis   *redis.Client
}

func NewStatsService(session *SessionService, rdb *redis.Client) *StatsService {
	s := &StatsService{session: session, redis: rdb}
	session.SetOnMutate(func() {
		s.Invalidate(context.Background())
	})
	return s
}

// Snapshot 取统计快照，优先命中缓存
func (s *StatsService) Snapshot(ctx context.Context) (StatsSnapshot, error) {
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, statsCacheKey).Result()
		if err == nil {
			var snap StatsSnapshot
			if err := json.Unmarshal([]byte(cached), &snap); err == nil {
				return snap, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("统计缓存读取失败", zap.Error(err))
		}
	}

	snap := s.compute()

	if s.redis != nil {
		data, err := json.Marshal(snap)
		if err == nil {
			if err := s.redis.Set(ctx, statsCacheKey, data, statsCacheTTL).Err(); err != nil {
				logger.Log.Warn("统计缓存写入失败", zap.Error(err))
			}
		}
	}
	return snap, nil
}

func (s *StatsService) compute() StatsSnapshot {
	session := s.session.Snapshot()

	snap := StatsSnapshot{
		ExperiencePoints: session.ExperiencePoints,
		Rank:             Rank(session.ExperiencePoints),
		NextRankXP:       Rank(session.ExperiencePoints) * 10000,
		OverallProgress:  OverallProgress(session.Roadmap),
		ProjectSync:      ProjectSync(session.ProjectTasks),
		ModulesTotal:     len(session.Roadmap),
		Modules:          make([]ModuleStat, 0, len(session.Roadmap)),
		GeneratedAt:      time.Now(),
	}
	for i := range session.Roadmap {
		m := &session.Roadmap[i]
		progress := ModuleProgress(m, session.CompletedDays)
		snap.Modules = append(snap.Modules, ModuleStat{
			ID:       m.ID,
			Title:    m.Title,
			Status:   m.Status,
			Progress: progress,
		})
		if m.Status == model.ModuleCompleted {
			snap.ModulesCompleted++
		}
	}
	if current := CurrentModule(session.Roadmap); current != nil {
		snap.CurrentModuleID = current.ID
		snap.CurrentModule = current.Title
	}
	for _, days := range session.CompletedDays {
		snap.CompletedDays += len(days)
	}
	return snap
}

// Invalidate 会话变更后使缓存失效
func (s *StatsService) Invalidate(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, statsCacheKey).Err(); err != nil {
		logger.Log.Warn("统计缓存失效失败", zap.Error(err))
	}
}
