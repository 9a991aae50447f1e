package cron

import (
	"Daybook/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine        *cron.Cron
	trashSweepJob *job.TrashSweepJob
}

func NewCronManager(trashSweepJob *job.TrashSweepJob) *Manager {
	return &Manager{
		engine:        cron.New(cron.WithSeconds()),
		trashSweepJob: trashSweepJob,
	}
}

// RegisterJobs 注册定时任务
// 清理任务每小时触发一次，任务内部的 24 小时门限决定是否真正执行
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@hourly", s.trashSweepJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
