package response

import "time"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// TimeLayout 信封时间戳的固定格式
const TimeLayout = "2006-01-02T15:04:05.000000Z07:00"

// Body 统一响应信封
type Body struct {
	Status       string `json:"status"`
	Data         any    `json:"data"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
}

// Paginated 列表响应信封，total 为全表行数
type Paginated struct {
	Status       string `json:"status"`
	Data         any    `json:"data"`
	Total        int64  `json:"total"`
	Page         int    `json:"page"`
	Limit        int    `json:"limit"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
}

func now() string { return time.Now().Format(TimeLayout) }

func Success(data any, msg string) Body {
	return Body{Status: StatusSuccess, Data: data, Message: msg, ResponseTime: now()}
}

func Failure(data any, msg string) Body {
	return Body{Status: StatusError, Data: data, Message: msg, ResponseTime: now()}
}

func Page(data any, total int64, page, limit int, msg string) Paginated {
	return Paginated{
		Status: StatusSuccess, Data: data,
		Total: total, Page: page, Limit: limit,
		Message: msg, ResponseTime: now(),
	}
}
