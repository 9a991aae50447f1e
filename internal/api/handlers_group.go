package api

import "Daybook/internal/api/handler"

// HandlersGroup 汇总全部 HTTP Handler
type HandlersGroup struct {
	PostHandler     *handler.PostHandler
	CommentHandler  *handler.CommentHandler
	ReactionHandler *handler.ReactionHandler
	TrashHandler    *handler.TrashHandler
	SyncHandler     *handler.SyncHandler
	VisitorHandler  *handler.VisitorHandler
	AdminHandler    *handler.AdminHandler
}
