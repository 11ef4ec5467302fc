package errors

import (
	"context"
	"errors"

	hzte "github.com/cloudwego/hertz/pkg/common/errors"

	"cadastro-pessoas/pkg/core/repository/dao"
)

// region 错误处理工具函数

// FromError 将任意错误转换为对外可见的 API 错误
// 参数说明：
//   - err: handler、hook 或 DAO 返回的错误
//
// 返回值：
//   - *hzte.Error: Meta 中带有 *Detail 的公开错误
//   - bool: 是否为未预期的内部错误（需要记录日志）
func FromError(err error) (*hzte.Error, bool) {
	if err == nil {
		return nil, false
	}

	// 已经是公开错误，直接返回
	if hzErr := publicError(err); hzErr != nil {
		return hzErr, false
	}

	switch {
	case errors.Is(err, dao.ErrNotFound):
		return ErrNotFound, false
	case errors.Is(err, dao.ErrDuplicateEntry):
		// 唯一索引兜底（并发请求绕过了 hook 检查）
		return NewValidation("registro duplicado"), false
	case errors.Is(err, dao.ErrForeignKey):
		return NewValidation("registro relacionado não encontrado"), false
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ErrUnavailable, false
	}

	// 兜底处理：不向客户端暴露原始错误
	return ErrInternal, true
}

// IsDuplicateError 判断是否为重复记录错误
func IsDuplicateError(err error) bool {
	return errors.Is(err, dao.ErrDuplicateEntry)
}
