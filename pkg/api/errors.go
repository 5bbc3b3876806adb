package api

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Code    string `json:"code,omitempty"`    // код ошибки, например DRV-0404
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
