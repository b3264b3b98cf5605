package dto

import "net/http"

// ReturnModel is the uniform envelope every service call produces.
type ReturnModel[T any] struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Data       T      `json:"data"`
}

func Succeeded[T any](message string, data T) ReturnModel[T] {
	return ReturnModel[T]{Success: true, Message: message, StatusCode: http.StatusOK, Data: data}
}

func Failed[T any](statusCode int, message string, data T) ReturnModel[T] {
	return ReturnModel[T]{Success: false, Message: message, StatusCode: statusCode, Data: data}
}
