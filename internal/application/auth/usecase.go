package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/dto"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/repository"
	"github.com/aryaman2519/My-Bussiness-Manager/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registration and login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register creates an owner account with its business profile. The password
// is bcrypt hashed; a taken email returns ErrEmailAlreadyExists.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || len(in.Password) < 6 || in.Name == "" || in.BusinessName == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:              uuid.New().String(),
		Email:           in.Email,
		PasswordHash:    string(hash),
		Name:            in.Name,
		Role:            entity.RoleOwner,
		Status:          "active",
		BusinessName:    in.BusinessName,
		BusinessAddress: in.BusinessAddress,
		BusinessPhone:   in.BusinessPhone,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifies email/password and returns a signed JWT plus the user.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(
		uc.jwtCfg.Secret, user.ID, user.DataOwnerID(), user.Role,
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes,
	)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Me returns the authenticated user's profile.
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// ListStaff returns the staff accounts of the owner, for handler pickers.
func (uc *AuthUseCase) ListStaff(ownerID string) ([]*dto.UserResponse, error) {
	staff, err := uc.userRepo.ListStaff(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(staff))
	for _, u := range staff {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Role:            u.Role,
		BusinessName:    u.BusinessName,
		BusinessAddress: u.BusinessAddress,
		BusinessPhone:   u.BusinessPhone,
		CreatedAt:       u.CreatedAt,
	}
}
