package wire

import (
	"Daybook/internal/api"
	"Daybook/internal/api/handler"
	"Daybook/internal/job"
	"Daybook/internal/pkg/cron"
	"Daybook/internal/repository"
	"Daybook/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router        *gin.Engine
	CronMgr       *cron.Manager
	TrashSweepJob *job.TrashSweepJob
}

func BuildApplication(db *mongo.Database) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	trashRepo := repository.NewTrashRepo(db)
	reactionRepo := repository.NewReactionRepo(db)
	visitorRepo := repository.NewVisitorRepo(db)

	postService := service.NewPostService(postRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)
	trashService := service.NewTrashService(trashRepo, postRepo, commentRepo)
	syncService := service.NewSyncService(postRepo, commentRepo, reactionRepo)
	reactionService := service.NewReactionService(reactionRepo, postRepo, commentRepo, syncService)
	visitorService := service.NewVisitorService(visitorRepo)
	adminService := service.NewAdminService()

	handlers := &api.HandlersGroup{
		PostHandler:     handler.NewPostHandler(postService, trashService),
		CommentHandler:  handler.NewCommentHandler(commentService, trashService),
		ReactionHandler: handler.NewReactionHandler(reactionService, postService),
		TrashHandler:    handler.NewTrashHandler(trashService),
		SyncHandler:     handler.NewSyncHandler(syncService),
		VisitorHandler:  handler.NewVisitorHandler(visitorService),
		AdminHandler:    handler.NewAdminHandler(adminService),
	}

	router := api.SetupRouter(handlers)

	trashSweepJob := job.NewTrashSweepJob(trashService)
	cronMgr := cron.NewCronManager(trashSweepJob)

	return &ApplicationContainer{
		Router:        router,
		CronMgr:       cronMgr,
		TrashSweepJob: trashSweepJob,
	}, nil
}
