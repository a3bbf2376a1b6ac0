package user

import (
	"context"
	"fmt"

	"parcelservice/internal/entities"
)

type User struct {
	repository Repository
}

func New(repository Repository) *User {
	return &User{
		repository: repository,
	}
}

// Register creates an account on first registration. Role defaults to
// customer; re-registering an email fails with ErrConflict.
func (s *User) Register(ctx context.Context, userModify entities.UserModify) (int64, error) {
	if userModify.Email == nil {
		return 0, ErrMissingRequiredFields
	}
	if !isValidEmail(*userModify.Email) {
		return 0, ErrInvalidEmail
	}

	if userModify.Role == nil {
		role := entities.DefaultRoleType
		userModify.Role = &role
	} else if !isValidRole(userModify.Role.String()) {
		return 0, ErrInvalidRole
	}

	id, err := s.repository.Create(ctx, userModify)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	return id, nil
}

func (s *User) GetUsers(ctx context.Context) ([]entities.User, error) {
	users, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

func (s *User) GetRole(ctx context.Context, email string) (entities.UserRoleType, error) {
	if !isValidEmail(email) {
		return "", ErrInvalidEmail
	}

	userEntity, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	return userEntity.Role, nil
}

// UpdateRole is the admin-driven role edit; roles never change any other way.
func (s *User) UpdateRole(ctx context.Context, email string, role entities.UserRoleType) (*entities.User, error) {
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !isValidRole(role.String()) {
		return nil, ErrInvalidRole
	}

	userEntity, err := s.repository.UpdateRoleByEmail(ctx, email, role)
	if err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}
	return userEntity, nil
}
