package job

import (
	"Daybook/internal/pkg/consts"
	"Daybook/internal/pkg/logger"
	"Daybook/internal/pkg/redis"
	"Daybook/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// TrashSweepJob 周期触发回收站到期清扫。真正的执行频率由 Redis 中的
// 上次执行时间戳限制为每天至多一次；多实例重复触发是安全的，
// 依赖的是清扫本身的幂等而不是互斥。
type TrashSweepJob struct {
	trashSvc service.TrashService
}

func NewTrashSweepJob(trashSvc service.TrashService) *TrashSweepJob {
	return &TrashSweepJob{
		trashSvc: trashSvc,
	}
}

func (s *TrashSweepJob) Run() {
	traceID := "job-trash-" + uuid.NewString()
	ctx := logger.WithTraceID(context.Background(), traceID)
	s.RunIfNeeded(ctx)
}

// RunIfNeeded 门限未到则不做任何事。清扫成功后记录本次执行时间
// （即使清除数量为零）；失败时不更新时间戳，下次触发会重试。
func (s *TrashSweepJob) RunIfNeeded(ctx context.Context) {
	lastRun, err := redis.GetValue(ctx, consts.TrashCleanupRunKey)
	if err != nil {
		log.ErrorContext(ctx, "read cleanup last-run timestamp error", "err", err)
		return
	}

	if !ShouldRunCleanup(lastRun, time.Now()) {
		return
	}

	count, err := s.trashSvc.SweepExpired(ctx)
	if err != nil {
		log.ErrorContext(ctx, "trash sweep failed", "err", err)
		return
	}

	if err = redis.SetValue(ctx, consts.TrashCleanupRunKey, time.Now().Format(time.RFC3339)); err != nil {
		log.ErrorContext(ctx, "record cleanup last-run timestamp error", "err", err)
	}

	log.InfoContext(ctx, "trash sweep finished", "purged", count)
}

// ShouldRunCleanup 没有执行记录、记录无法解析或距上次执行超过 24 小时时返回 true
func ShouldRunCleanup(lastRun string, now time.Time) bool {
	if lastRun == "" {
		return true
	}
	t, err := time.Parse(time.RFC3339, lastRun)
	if err != nil {
		return true
	}
	return now.Sub(t) > consts.CleanupInterval
}
