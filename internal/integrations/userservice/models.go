package userservice

// User модель пользователя из сервиса аккаунтов
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"is_staff"`
}

// ErrorResponse модель ошибки от сервиса аккаунтов
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
