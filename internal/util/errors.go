package util

import "errors"

var (
	ErrUserNotFound     = errors.New("用户不存在")
	ErrEmailRegistered  = errors.New("该邮箱已被注册")
	ErrInvalidLogin     = errors.New("invalid credentials")
	ErrPermissionDenied = errors.New("permission denied")
	ErrResumeNotFound   = errors.New("resume review not found")
	ErrFileTooLarge     = errors.New("file exceeds size limit")
	ErrUnsupportedFile  = errors.New("unsupported file type")
)
