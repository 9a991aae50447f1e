package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("参数错误")
	ErrPostNotFound       = errors.New("帖子不存在")
	ErrCommentNotFound    = errors.New("评论不存在")
	ErrTrashNotFound      = errors.New("回收站条目不存在")
	ErrTrashOrphanComment = errors.New("无法恢复：原帖子已不存在")
	ErrTrashTypeInvalid   = errors.New("未知的回收站条目类型")
	ErrReactionInvalid    = errors.New("不支持的表态类型")
	ErrTargetInvalid      = errors.New("表态目标无效")
	ErrMoodInvalid        = errors.New("不支持的心情类型")
	ErrPasswordIncorrect  = errors.New("密码错误")
	UnauthorizedError     = errors.New("权限不足")
	UnExpectedError       = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrPostNotFound:       NotFound,
	ErrCommentNotFound:    NotFound,
	ErrTrashNotFound:      NotFound,
	ErrTrashOrphanComment: Conflict,
	ErrTrashTypeInvalid:   BadRequest,
	ErrReactionInvalid:    BadRequest,
	ErrTargetInvalid:      BadRequest,
	ErrMoodInvalid:        BadRequest,
	ErrPasswordIncorrect:  Unauthorized,
	UnauthorizedError:     Unauthorized,
	UnExpectedError:       InternalServerError,
}
