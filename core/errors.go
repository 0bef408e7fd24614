package core

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX）
//
// 注意：空结果、偏好中出现目录外的类目/地点等"无匹配"情形不是错误，
// 只有无法构造合法特征空间（目录缺失/不可读）才按错误处理。
type DomainError struct {
	Code    string // 错误代码（如 "NOT_FOUND", "UNAVAILABLE"）
	Message string // 错误消息
	Module  string // 模块名称（如 "catalog", "store", "pipeline"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// IsDomainError 检查错误是否为 DomainError 类型
func IsDomainError(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(*DomainError)
	return ok
}

// GetDomainError 获取 DomainError，如果不是则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	ErrorCodeNotFound     = "NOT_FOUND"     // 资源不存在
	ErrorCodeNotSupported = "NOT_SUPPORTED" // 操作不支持
	ErrorCodeUnavailable  = "UNAVAILABLE"   // 数据/服务不可用
	ErrorCodeInvalidInput = "INVALID_INPUT" // 输入无效
)

// 模块名称常量
const (
	ModuleCatalog  = "catalog"
	ModuleStore    = "store"
	ModuleFeature  = "feature"
	ModulePipeline = "pipeline"
)

// ErrCatalogUnavailable 表示目录数据不可用（摄入失败），当前请求必须快速失败。
var ErrCatalogUnavailable = NewDomainError(ModuleCatalog, ErrorCodeUnavailable, "catalog: data unavailable")

// ErrCatalogEmpty 表示目录快照为空，无法构造特征空间。
var ErrCatalogEmpty = NewDomainError(ModuleCatalog, ErrorCodeInvalidInput, "catalog: empty snapshot")
