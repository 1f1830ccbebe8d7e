package service

import "errors"

// 业务规则错误，handler 层用 errors.Is 翻译成响应码
var (
	ErrInvalidTarget           = errors.New("不能对自己执行该操作")
	ErrUserNotFound            = errors.New("用户不存在")
	ErrAlreadyConnected        = errors.New("已经建立联系")
	ErrRequestAlreadyPending   = errors.New("已有待处理的联系申请")
	ErrRequestNotFound         = errors.New("联系申请不存在或已处理")
	ErrCannotUnfollowConnected = errors.New("已建立联系，需先解除联系")
)
