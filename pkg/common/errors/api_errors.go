// pkg/common/errors/api_errors.go

/*
  - 使用实例
    if hzteErr, ok := err.(*hzte.Error); ok {
    // 安全访问 Meta
    }

    detail := errors.DetailOf(err) // 获取状态码和字段错误
*/
package errors

import (
	"errors"

	hzte "github.com/cloudwego/hertz/pkg/common/errors"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// FieldError is one field-level problem reported to the client.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Detail is carried in hzte.Error.Meta for every public API error.
type Detail struct {
	Status int
	Errors []FieldError
}

// 定义原始错误
var (
	rawErrValidation  = errors.New("validation failed")
	rawErrNotFound    = errors.New("resource not found")
	rawErrUnavailable = errors.New("service unavailable")
	rawErrInternal    = errors.New("internal server error")
)

// 包装成 Hertz 错误类型
var (
	ErrNotFound    = hzte.New(rawErrNotFound, hzte.ErrorTypePublic, &Detail{Status: consts.StatusNotFound})
	ErrUnavailable = hzte.New(rawErrUnavailable, hzte.ErrorTypePublic, &Detail{Status: consts.StatusServiceUnavailable})
	ErrInternal    = hzte.New(rawErrInternal, hzte.ErrorTypePublic, &Detail{Status: consts.StatusInternalServerError})
)

// NewValidation 400 错误；message 为空时使用默认文案
func NewValidation(message string, fields ...FieldError) *hzte.Error {
	err := rawErrValidation
	if message != "" {
		err = errors.New(message)
	}
	return hzte.New(err, hzte.ErrorTypePublic, &Detail{
		Status: consts.StatusBadRequest,
		Errors: fields,
	})
}

// NewNotFound 404 错误
func NewNotFound(message string) *hzte.Error {
	err := rawErrNotFound
	if message != "" {
		err = errors.New(message)
	}
	return hzte.New(err, hzte.ErrorTypePublic, &Detail{Status: consts.StatusNotFound})
}

// DetailOf returns the Detail attached to err, or nil when err is not a public API error.
func DetailOf(err error) *Detail {
	if hzErr := publicError(err); hzErr != nil {
		return hzErr.Meta.(*Detail)
	}
	return nil
}

// publicError walks the chain for the first public *hzte.Error carrying a Detail.
// ctx.Error wraps plain errors in a private *hzte.Error, so errors.As alone is not enough.
func publicError(err error) *hzte.Error {
	for err != nil {
		if hzErr, ok := err.(*hzte.Error); ok && hzErr.IsType(hzte.ErrorTypePublic) {
			if _, ok := hzErr.Meta.(*Detail); ok {
				return hzErr
			}
		}
		err = errors.Unwrap(err)
	}
	return nil
}

// IsValidation reports whether err is a 400 API error.
func IsValidation(err error) bool {
	d := DetailOf(err)
	return d != nil && d.Status == consts.StatusBadRequest
}

// IsNotFound reports whether err is a 404 API error.
func IsNotFound(err error) bool {
	d := DetailOf(err)
	return d != nil && d.Status == consts.StatusNotFound
}
