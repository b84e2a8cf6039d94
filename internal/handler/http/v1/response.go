package v1

const (
	CodeSuccess = 0
	CodeFailure = 1
)

// Response - единый конверт ответа API
// @Description Единый конверт ответа: code 0 - успех, 1 - ошибка
type Response[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Ok оборачивает успешный результат
func Ok[T any](data T) Response[T] {
	return Response[T]{Code: CodeSuccess, Message: "ok", Data: data}
}

// Fail оборачивает ошибку, data всегда null
func Fail(message string) Response[any] {
	return Response[any]{Code: CodeFailure, Message: message, Data: nil}
}
