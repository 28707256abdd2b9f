package models

// Определяем константы для ролей
const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

// AllRoles возвращает слайс всех определенных ролей.
func AllRoles() []string {
	return []string{
		RoleAdmin,
		RoleUser,
	}
}

// HasRole проверяет, есть ли у пользователя указанная роль.
func HasRole(userRoles []string, targetRole string) bool {
	for _, role := range userRoles {
		if role == targetRole {
			return true
		}
	}
	return false
}
