package errors

import "fmt"

// 错误码
const (
	CodeSuccess         = 200
	CodeBadRequest      = 400
	CodeNotFound        = 404
	CodeParentNotFound  = 424
	CodeConflict        = 409
	CodeInternalError   = 500
	CodeDatabaseError   = 501
	CodeValidationError = 503
)

// AppError 应用错误
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is/As链
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新错误
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// 预定义错误
var (
	ErrBadRequest    = New(CodeBadRequest, "请求参数错误")
	ErrNotFound      = New(CodeNotFound, "记录不存在")
	ErrInternalError = New(CodeInternalError, "内部服务器错误")
	ErrDatabaseError = New(CodeDatabaseError, "数据库错误")

	// 具体业务错误
	ErrValidation     = New(CodeValidationError, "数据验证失败")
	ErrDuplicateName  = New(CodeConflict, "项目名称已存在")
	ErrParentNotFound = New(CodeParentNotFound, "所属项目不存在")
)

// IsCode 判断错误是否为指定业务码的AppError
func IsCode(err error, code int) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}
