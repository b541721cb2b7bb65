package serverutils

type BaseResponse[T any] struct {
	Success   bool                   `json:"success"`
	Code      int                    `json:"code"`
	Message   string                 `json:"message"`
	ErrorCode string                 `json:"error_code,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Data      T                      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{
		Success: true,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) BaseResponse[any] {
	return BaseResponse[any]{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// CodedErrorResponse carries a stable machine readable error code so scripts
// can branch on the failure kind.
func CodedErrorResponse(code int, errorCode, message string, details map[string]interface{}) BaseResponse[any] {
	return BaseResponse[any]{
		Success:   false,
		Code:      code,
		Message:   message,
		ErrorCode: errorCode,
		Details:   details,
	}
}
