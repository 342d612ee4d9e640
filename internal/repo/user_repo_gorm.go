package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"go-user-api/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

var _ domain.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("find user by id", err)
	}
	return &u, nil
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("find user by username", err)
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("find user by email", err)
	}
	return &u, nil
}

func (r *UserRepo) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).
		Order("id asc").
		Offset(offset).Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, storeErr("list users", err)
	}
	return users, nil
}

func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error; err != nil {
		return 0, storeErr("count users", err)
	}
	return total, nil
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// 预检查不是原子的，并发下靠唯一约束兜底，这里把冲突翻译回业务错误
		if dup, derr := dupKeyError(err); dup {
			return derr
		}
		return storeErr("create user", err)
	}
	return nil
}

func (r *UserRepo) Update(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		if dup, derr := dupKeyError(err); dup {
			return derr
		}
		return storeErr("update user", err)
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Delete(u).Error; err != nil {
		return storeErr("delete user", err)
	}
	return nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, op, err)
}

// dupKeyError 不依赖 gorm.ErrDuplicatedKey 的翻译是否开启，消息匹配兜底；
// 约束名含列名（idx_users_username / idx_users_email），据此区分冲突类别。
// 分不出来时按用户名冲突报告，与预检查的先后次序一致。
func dupKeyError(err error) (bool, error) {
	msg := strings.ToLower(err.Error())
	isDup := errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
	if !isDup {
		return false, nil
	}
	if strings.Contains(msg, "email") {
		return true, domain.ErrEmailExists
	}
	return true, domain.ErrUsernameExists
}
