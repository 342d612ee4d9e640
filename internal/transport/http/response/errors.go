package response

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"go-user-api/internal/domain"
)

const (
	msgValidation = "Validation error"
	msgInternal   = "Internal server error"
)

// FieldViolation 422 响应里 data 的元素
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FromError 业务错误到 HTTP 状态码 + 信封的唯一映射点。
// 未能归类的错误（含 StoreUnavailable）一律 500，不向客户端泄露内部错误文本。
func FromError(err error) (int, Body) {
	var nf *domain.NotFoundError
	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound, Failure(nil, nf.Error())
	case errors.Is(err, domain.ErrUsernameExists),
		errors.Is(err, domain.ErrEmailExists),
		errors.Is(err, domain.ErrNoFieldsToUpdate):
		return http.StatusConflict, Failure(nil, err.Error())
	default:
		return http.StatusInternalServerError, Failure(nil, msgInternal)
	}
}

// FromBindError 请求形状校验失败 → 422，data 为字段级违规列表。
// 请求体超限（MaxBytesReader 截断）单独映射为 413。
func FromBindError(err error) (int, Body) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge, Failure(nil, "Request body too large")
	}
	return http.StatusUnprocessableEntity, Failure(violations(err), msgValidation)
}

// Violation 单条违规的 422（如路径参数解析失败）
func Violation(field, message string) (int, Body) {
	return http.StatusUnprocessableEntity,
		Failure([]FieldViolation{{Field: field, Message: message}}, msgValidation)
}

func violations(err error) []FieldViolation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// JSON 语法错误等非字段级失败，不透出解码器原文
		return []FieldViolation{{Field: "body", Message: "invalid request body"}}
	}
	out := make([]FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldViolation{Field: fieldName(fe), Message: ruleMessage(fe)})
	}
	return out
}

func fieldName(fe validator.FieldError) string { return fe.Field() }

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "oneof":
		return "value is not a valid enumeration member; permitted: " + fe.Param()
	case "min":
		return "ensure this value is greater than or equal to " + fe.Param()
	default:
		return "invalid value"
	}
}
