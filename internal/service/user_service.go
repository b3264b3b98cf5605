package service

import (
	"context"

	"go.uber.org/zap"

	"go-todo-api/internal/apperr"
	"go-todo-api/internal/core/auth"
	"go-todo-api/internal/domain"
	"go-todo-api/internal/dto"
	"go-todo-api/internal/repo"
	"go-todo-api/pkg/utils"
)

type UserService struct {
	repo  domain.UserRepository
	rules UserRules
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewUserService(r domain.UserRepository, jwter *auth.JWTer, l *zap.Logger) *UserService {
	return &UserService{repo: r, jwter: jwter, log: l}
}

// Register creates the account and then assigns the default role; the
// role assignment runs only after a successful create.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (dto.ReturnModel[dto.TokenResponse], error) {
	if err := s.rules.PasswordMustBeStrong(req.Password, "password"); err != nil {
		return dto.ReturnModel[dto.TokenResponse]{}, err
	}
	user := domain.User{
		ID:           utils.NewID(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: utils.HashPassword(req.Password),
	}
	if err := s.rules.IdentityResult(s.repo.Create(ctx, &user)); err != nil {
		return dto.ReturnModel[dto.TokenResponse]{}, err
	}
	if err := s.assignRole(ctx, &user, domain.RoleUser); err != nil {
		return dto.ReturnModel[dto.TokenResponse]{}, err
	}
	token, err := s.jwter.Issue(user.ID, user.Role)
	if err != nil {
		return dto.ReturnModel[dto.TokenResponse]{}, apperr.Internal("issue token failed", err)
	}
	s.log.Info("user registered", zap.String("id", user.ID))
	return dto.Succeeded("user registered", dto.TokenResponse{Token: token, User: toUserResponse(user)}), nil
}

func (s *UserService) assignRole(ctx context.Context, u *domain.User, role string) error {
	u.Role = role
	return s.rules.IdentityResult(s.repo.Update(ctx, u))
}

// Login checks the account exists before any password comparison.
func (s *UserService) Login(ctx context.Context, req dto.LoginRequest) (dto.ReturnModel[dto.TokenResponse], error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return dto.ReturnModel[dto.TokenResponse]{}, err
	}
	if err := s.rules.ExistsCheck(user); err != nil {
		return dto.ReturnModel[dto.TokenResponse]{}, err
	}
	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return dto.ReturnModel[dto.TokenResponse]{}, apperr.Business("wrong password")
	}
	token, err := s.jwter.Issue(user.ID, user.Role)
	if err != nil {
		return dto.ReturnModel[dto.TokenResponse]{}, apperr.Internal("issue token failed", err)
	}
	return dto.Succeeded("login successful", dto.TokenResponse{Token: token, User: toUserResponse(*user)}), nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (dto.ReturnModel[dto.UserResponse], error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return dto.ReturnModel[dto.UserResponse]{}, err
	}
	if err := s.rules.ExistsCheck(user); err != nil {
		return dto.ReturnModel[dto.UserResponse]{}, err
	}
	return dto.Succeeded("user fetched", toUserResponse(*user)), nil
}

func (s *UserService) Update(ctx context.Context, id string, req dto.UserUpdateRequest) (dto.ReturnModel[dto.UserResponse], error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ReturnModel[dto.UserResponse]{}, err
	}
	if err := s.rules.ExistsCheck(user); err != nil {
		return dto.ReturnModel[dto.UserResponse]{}, err
	}
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Username = req.Username
	if err := s.rules.IdentityResult(s.repo.Update(ctx, user)); err != nil {
		return dto.ReturnModel[dto.UserResponse]{}, err
	}
	return dto.Succeeded("user updated", toUserResponse(*user)), nil
}

func (s *UserService) ChangePassword(ctx context.Context, id string, req dto.ChangePasswordRequest) (dto.ReturnModel[dto.UserResponse], error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ReturnModel[dto.UserResponse]{}, err
	}
	if err := s.rules.ExistsCheck(user); err != nil {
		return dto.ReturnModel[dto.UserResponse]{}, err
	}
	if !utils.CheckPassword(req.CurrentPassword, user.PasswordHash) {
		return dto.ReturnModel[dto.UserResponse]{}, apperr.Business("wrong password")
	}
	if err := s.rules.PasswordMustBeStrong(req.NewPassword, "newPassword"); err != nil {
		return dto.ReturnModel[dto.UserResponse]{}, err
	}
	user.PasswordHash = utils.HashPassword(req.NewPassword)
	if err := s.rules.IdentityResult(s.repo.Update(ctx, user)); err != nil {
		return dto.ReturnModel[dto.UserResponse]{}, err
	}
	s.log.Info("password changed", zap.String("id", id))
	return dto.Succeeded("password changed", toUserResponse(*user)), nil
}

func (s *UserService) Delete(ctx context.Context, id string) (dto.ReturnModel[dto.UserResponse], error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ReturnModel[dto.UserResponse]{}, err
	}
	if err := s.rules.ExistsCheck(user); err != nil {
		return dto.ReturnModel[dto.UserResponse]{}, err
	}
	if err := s.repo.Delete(ctx, user); err != nil {
		if repo.IsForeignKeyViolation(err) {
			return dto.ReturnModel[dto.UserResponse]{}, apperr.Business("user has todos and cannot be deleted")
		}
		return dto.ReturnModel[dto.UserResponse]{}, err
	}
	s.log.Info("user deleted", zap.String("id", id))
	return dto.Succeeded("user deleted", toUserResponse(*user)), nil
}
