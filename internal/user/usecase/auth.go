package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"medication-reminder/internal/model"
	"medication-reminder/internal/user"
	"medication-reminder/internal/user/repository"
	"medication-reminder/pkg/scope"
)

const minPasswordLen = 6

func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return user.AuthOutput{}, user.ErrEmailRequired
	}
	if len(input.Password) < minPasswordLen {
		return user.AuthOutput{}, user.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "user usecase: hash password: %v", err)
		return user.AuthOutput{}, err
	}

	u, err := uc.repo.Insert(ctx, repository.InsertOptions{
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hash),
		Age:          input.Age,
		Phone:        input.Phone,
		Diseases:     input.Diseases,
	})
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return user.AuthOutput{}, user.ErrEmailTaken
	}
	if err != nil {
		return user.AuthOutput{}, err
	}

	return uc.issueFor(ctx, u)
}

func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	u, err := uc.repo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}
	if err != nil {
		return user.AuthOutput{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(input.Password)); err != nil {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	return uc.issueFor(ctx, u)
}

func (uc *implUseCase) issueFor(ctx context.Context, u model.User) (user.AuthOutput, error) {
	token, err := uc.scope.Issue(scope.Payload{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
	})
	if err != nil {
		uc.l.Errorf(ctx, "user usecase: issue token: %v", err)
		return user.AuthOutput{}, err
	}
	return user.AuthOutput{Token: token, User: toOutput(u)}, nil
}

func toOutput(u model.User) user.UserOutput {
	return user.UserOutput{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Age:      u.Age,
		Phone:    u.Phone,
		Diseases: u.Diseases,
	}
}
