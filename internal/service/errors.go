package service

import "fmt"

// ErrorKind classifies pipeline failures into the closed set of outcomes the
// caller can react to.
type ErrorKind string

const (
	// KindPersistence 主库或统计库操作未生效（期望影响一行却影响零行，
	// 或底层存储报错）。
	KindPersistence ErrorKind = "persistence"
	// KindIndex 搜索索引 I/O 失败。此时主库变更已经提交。
	KindIndex ErrorKind = "index"
	// KindNotFound 目标文章不存在或不属于请求方。
	KindNotFound ErrorKind = "not_found"
	// KindInternal 其余不可恢复的内部错误。
	KindInternal ErrorKind = "internal"
)

// Stable numeric codes exposed on the wire alongside the kind.
const (
	codeInternal    = 5000
	codePersistence = 5001
	codeIndex       = 5002
	codeNotFound    = 4040
)

// OpError is the single error type surfaced by the mutation pipeline.
type OpError struct {
	Kind    ErrorKind
	Code    int
	Message string
	Err     error
}

func (e *OpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Is matches any OpError of the same kind, so callers can test against the
// exported kind sentinels below with errors.Is.
func (e *OpError) Is(target error) bool {
	t, ok := target.(*OpError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Kind sentinels for errors.Is checks.
var (
	ErrPersistence = &OpError{Kind: KindPersistence}
	ErrIndex       = &OpError{Kind: KindIndex}
	ErrNotFound    = &OpError{Kind: KindNotFound}
	ErrInternal    = &OpError{Kind: KindInternal}
)

func persistenceError(message string, err error) *OpError {
	return &OpError{Kind: KindPersistence, Code: codePersistence, Message: message, Err: err}
}

func indexError(message string, err error) *OpError {
	return &OpError{Kind: KindIndex, Code: codeIndex, Message: message, Err: err}
}

func notFoundError(message string) *OpError {
	return &OpError{Kind: KindNotFound, Code: codeNotFound, Message: message}
}

func internalError(message string, err error) *OpError {
	return &OpError{Kind: KindInternal, Code: codeInternal, Message: message, Err: err}
}
