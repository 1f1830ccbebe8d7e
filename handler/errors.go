package handler

import (
	"Linkup/pkg/response"
	"Linkup/service"
	"errors"
	"net/http"
)

// translateError 把业务规则错误翻译成响应码，
// 其余错误按存储层异常处理
func translateError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidTarget):
		return response.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		return response.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyConnected):
		return response.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrRequestAlreadyPending):
		return response.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrRequestNotFound):
		return response.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrCannotUnfollowConnected):
		return response.NewError(http.StatusConflict, err.Error())
	default:
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
}
