package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sntxs/sge-api-main/internal/core/domain"
	"github.com/sntxs/sge-api-main/internal/port"
	"github.com/sntxs/sge-api-main/internal/validate"
)

var (
	ErrInvalidEmail    = errors.New("invalid e-mail address")
	ErrInvalidPhone    = errors.New("invalid phone number, digits only")
	ErrInvalidCpf      = errors.New("invalid CPF")
	ErrInvalidPassword = errors.New("password must be 6 to 12 characters and contain a digit")
	ErrMissingField    = errors.New("name, username, CPF and sector are required")
)

// NewUserInput carries the mutable user fields. Email, PhoneNumber and
// Password are optional on update; an empty Password keeps the current hash.
type NewUserInput struct {
	Name        string
	Email       string
	PhoneNumber string
	Cpf         string
	Username    string
	Password    string
	IsAdmin     bool
	SectorID    string
}

type UserService struct {
	repo port.UserRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewUserService(repo port.UserRepository, log *zap.Logger) *UserService {
	return &UserService{repo: repo, log: log, now: time.Now}
}

func validateUserInput(in NewUserInput) error {
	if in.Name == "" || in.Username == "" || in.Cpf == "" || in.SectorID == "" {
		return ErrMissingField
	}
	if in.Email != "" && !validate.Email(in.Email) {
		return ErrInvalidEmail
	}
	if in.PhoneNumber != "" {
		if len(in.PhoneNumber) != 11 || !validate.OnlyDigits(in.PhoneNumber) || !validate.PhoneNumber(in.PhoneNumber) {
			return ErrInvalidPhone
		}
	}
	if !validate.Cpf(in.Cpf) {
		return ErrInvalidCpf
	}
	return nil
}

func (s *UserService) Create(ctx context.Context, in NewUserInput) (*domain.User, error) {
	if err := validateUserInput(in); err != nil {
		return nil, err
	}
	if !validate.Password(in.Password) {
		return nil, ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		Cpf:          in.Cpf,
		Username:     in.Username,
		PasswordHash: string(hash),
		IsAdmin:      in.IsAdmin,
		SectorID:     in.SectorID,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("user created", zap.String("user_id", u.ID), zap.String("username", u.Username))
	return &u, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.UserDetail, error) {
	return s.repo.ListUsers(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.UserDetail, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id string, in NewUserInput) error {
	if err := validateUserInput(in); err != nil {
		return err
	}

	current, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return err
	}

	hash := current.PasswordHash
	if in.Password != "" {
		if !validate.Password(in.Password) {
			return ErrInvalidPassword
		}
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		hash = string(h)
	}

	u := domain.User{
		ID:           id,
		Name:         in.Name,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		Cpf:          in.Cpf,
		Username:     in.Username,
		PasswordHash: hash,
		IsAdmin:      in.IsAdmin,
		SectorID:     in.SectorID,
		CreatedAt:    current.CreatedAt,
	}

	if err := s.repo.UpdateUser(ctx, u); err != nil {
		return err
	}
	s.log.Info("user updated", zap.String("user_id", id))
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.String("user_id", id))
	return nil
}
