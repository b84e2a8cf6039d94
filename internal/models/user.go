package models

import (
	"time"

	"github.com/shenikar/uav_fleet_system/internal/patch"
)

// Role - роль пользователя
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleOperator Role = "Operator"
	RoleViewer   Role = "Viewer"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserUpdate - частичное обновление пользователя. Password - открытый пароль,
// сервис хеширует его перед применением.
type UserUpdate struct {
	Name     *string
	Password *string
	Role     *Role
}

// Fields не содержит пароль: хеш применяется сервисом отдельно
func (u UserUpdate) Fields(usr *User) []patch.Field {
	return []patch.Field{
		patch.NonEmpty("name", u.Name, &usr.Name),
		patch.Present("role", u.Role, &usr.Role),
	}
}
