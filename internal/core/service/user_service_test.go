package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sntxs/sge-api-main/internal/core/domain"
)

type recordingUserRepo struct {
	mockUserRepo
	created *domain.User
	updated *domain.User
	stored  *domain.UserDetail
}

func (r *recordingUserRepo) CreateUser(ctx context.Context, u domain.User) error {
	r.created = &u
	return nil
}

func (r *recordingUserRepo) UpdateUser(ctx context.Context, u domain.User) error {
	r.updated = &u
	return nil
}

func (r *recordingUserRepo) GetUser(ctx context.Context, id string) (*domain.UserDetail, error) {
	if r.stored == nil {
		return nil, domain.ErrUserNotFound
	}
	return r.stored, nil
}

func validInput() NewUserInput {
	return NewUserInput{
		Name:        "João da Silva",
		Email:       "joao@empresa.com.br",
		PhoneNumber: "11987654321",
		Cpf:         "529.982.247-25",
		Username:    "joao",
		Password:    "senha123",
		SectorID:    "sector-1",
	}
}

func TestCreateUser_HashesPassword(t *testing.T) {
	repo := &recordingUserRepo{}
	svc := NewUserService(repo, zap.NewNop())

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Error("expected generated id")
	}
	if created.PasswordHash == "senha123" {
		t.Fatal("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("senha123")) != nil {
		t.Error("stored hash does not match password")
	}
}

func TestCreateUser_Validation(t *testing.T) {
	svc := NewUserService(&recordingUserRepo{}, zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*NewUserInput)
		wantErr error
	}{
		{"missing name", func(in *NewUserInput) { in.Name = "" }, ErrMissingField},
		{"missing sector", func(in *NewUserInput) { in.SectorID = "" }, ErrMissingField},
		{"bad email", func(in *NewUserInput) { in.Email = "not-an-email" }, ErrInvalidEmail},
		{"short phone", func(in *NewUserInput) { in.PhoneNumber = "1198765432" }, ErrInvalidPhone},
		{"letters in phone", func(in *NewUserInput) { in.PhoneNumber = "11a87654321" }, ErrInvalidPhone},
		{"bad cpf", func(in *NewUserInput) { in.Cpf = "52998224724" }, ErrInvalidCpf},
		{"weak password", func(in *NewUserInput) { in.Password = "curta" }, ErrInvalidPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			if _, err := svc.Create(ctx, in); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestUpdateUser_EmptyPasswordKeepsHash(t *testing.T) {
	repo := &recordingUserRepo{
		stored: &domain.UserDetail{User: domain.User{
			ID:           "user-1",
			PasswordHash: "$existing-hash",
		}},
	}
	svc := NewUserService(repo, zap.NewNop())

	in := validInput()
	in.Password = ""
	if err := svc.Update(context.Background(), "user-1", in); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if repo.updated.PasswordHash != "$existing-hash" {
		t.Errorf("expected existing hash to be kept, got %q", repo.updated.PasswordHash)
	}
}

func TestUpdateUser_NewPasswordRehashed(t *testing.T) {
	repo := &recordingUserRepo{
		stored: &domain.UserDetail{User: domain.User{ID: "user-1", PasswordHash: "$old"}},
	}
	svc := NewUserService(repo, zap.NewNop())

	in := validInput()
	in.Password = "nova1234"
	if err := svc.Update(context.Background(), "user-1", in); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(repo.updated.PasswordHash), []byte("nova1234")) != nil {
		t.Error("new password not hashed into the update")
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc := NewUserService(&recordingUserRepo{}, zap.NewNop())

	err := svc.Update(context.Background(), "missing", validInput())
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
