package service

import (
	"math"

	"odyssey_backend/internal/model"
)

// ModuleProgress 模块完成百分比：已验证天数占日程天数的四舍五入百分比。
// 空日程恒为 0。只统计落在日程内的天号，历史脏数据不计入
func ModuleProgress(module *model.RoadmapModule, completedDays map[string][]int) int {
	total := len(module.DailySchedule)
	if total == 0 {
		return 0
	}
	done := 0
	for _, day := range completedDays[module.ID] {
		if module.HasDay(day) {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// OverallProgress 整体进度 = 已完成模块占比（百分比，四舍五入）
func OverallProgress(roadmap []model.RoadmapModule) int {
	if len(roadmap) == 0 {
		return 0
	}
	completed := 0
	for i := range roadmap {
		if roadmap[i].Status == model.ModuleCompleted {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(roadmap)) * 100))
}

// CurrentModule 第一个 CURRENT 模块，不存在返回 nil
func CurrentModule(roadmap []model.RoadmapModule) *model.RoadmapModule {
	for i := range roadmap {
		if roadmap[i].Status == model.ModuleCurrent {
			return &roadmap[i]
		}
	}
	return nil
}

// Rank 段位：每 10000 经验升一级，起始 1 级
func Rank(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/10000 + 1
}

// ProjectSync 项目任务完成率（百分比）。无任务为 0
func ProjectSync(tasks []model.ProjectTask) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for i := range tasks {
		if tasks[i].Completed {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(tasks)) * 100))
}
