package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"go-user-api/internal/domain"
)

type UserService struct {
	repo domain.UserRepository
	log  *zap.Logger
}

func NewUserService(repo domain.UserRepository, log *zap.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

var _ domain.UserService = (*UserService)(nil)

// Create 先查用户名、再查邮箱，两者同时冲突时报用户名冲突
func (s *UserService) Create(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	existing, err := s.repo.FindByUsername(ctx, in.Username)
	if err != nil {
		s.log.Error("username check failed", zap.String("username", in.Username), zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameExists
	}

	existing, err = s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error("email check failed", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailExists
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now()
	u := &domain.User{
		Username:  in.Username,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      in.Role,
		Active:    active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrUsernameExists) || errors.Is(err, domain.ErrEmailExists) {
			// 预检查之后、插入之前被并发请求抢先，唯一约束兜住
			return nil, err
		}
		s.log.Error("create user failed", zap.String("username", in.Username), zap.Error(err))
		return nil, err
	}
	return u, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("get user failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if u == nil {
		return nil, domain.NewNotFound(id)
	}
	return u, nil
}

// ListPage page/limit 均 ≥1（边界已校验）。total 是全表行数，
// 越界页返回空切片加真实 total，不算错误。
func (s *UserService) ListPage(ctx context.Context, page, limit int) ([]domain.User, int64, error) {
	offset := (page - 1) * limit
	users, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		s.log.Error("list users failed", zap.Int("page", page), zap.Int("limit", limit), zap.Error(err))
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Error("count users failed", zap.Error(err))
		return nil, 0, err
	}
	return users, total, nil
}

// Update 零值字段视为"未提供"而被跳过；全部被跳过时报 NoFieldsToUpdate，
// 不发生任何写入。
func (s *UserService) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("update fetch failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if u == nil {
		return nil, domain.NewNotFound(id)
	}

	if patch.Empty() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if patch.FirstName != "" {
		u.FirstName = patch.FirstName
	}
	if patch.LastName != "" {
		u.LastName = patch.LastName
	}
	if patch.Role != "" {
		u.Role = patch.Role
	}
	if patch.Active {
		u.Active = true
	}

	u.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, u); err != nil {
		s.log.Error("update user failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("delete fetch failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if u == nil {
		return domain.NewNotFound(id)
	}
	if err := s.repo.Delete(ctx, u); err != nil {
		s.log.Error("delete user failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}
