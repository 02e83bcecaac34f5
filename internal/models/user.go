package models

// User — авторизованный пользователь приложения (техник или админ).
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"` // "technician" или "admin"
}
