package domain

import (
	"context"
	"time"
)

// Role 闭集枚举，取值在边界层校验
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	}
	return false
}

type User struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex:idx_users_username;size:64;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex:idx_users_email;size:191;not null" json:"email"`
	FirstName string    `gorm:"size:64;not null" json:"first_name"`
	LastName  string    `gorm:"size:64;not null" json:"last_name"`
	Role      Role      `gorm:"size:16;not null" json:"role"`
	Active    bool      `gorm:"not null" json:"active"` // 默认值由 Service 填充，列上挂 default 会吞掉 false
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// NewUser 创建入参，Active 为 nil 时默认 true
type NewUser struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Role      Role
	Active    *bool
}

// UserPatch 部分更新入参。沿用原有语义：零值视为"未提供"，
// 因此无法经此路径把字段清空或把 Active 置为 false（已知限制）。
type UserPatch struct {
	FirstName string
	LastName  string
	Role      Role
	Active    bool
}

// Empty 所有字段均为零值
func (p UserPatch) Empty() bool {
	return p.FirstName == "" && p.LastName == "" && p.Role == "" && !p.Active
}

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	// List 按主键升序返回一页，保证分页稳定
	List(ctx context.Context, offset, limit int) ([]User, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, u *User) error
}

type UserService interface {
	Create(ctx context.Context, in NewUser) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	ListPage(ctx context.Context, page, limit int) ([]User, int64, error)
	Update(ctx context.Context, id int64, patch UserPatch) (*User, error)
	Delete(ctx context.Context, id int64) error
}
