package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/database"
	"travel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClientInfo is recorded with each new session.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*utils.SessionUser, error)
	Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*utils.SessionUser, error)
	EnsureAdmin(ctx context.Context) error
}

type authService struct {
	repo   *repository.Repository // grouping userRepo & sessionRepo
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
		now:    time.Now,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*utils.SessionUser, error) {
	// 1. Validasi input
	if err := validate(req); err != nil {
		s.log.Warn("Register validation failed", zap.Error(err))
		return nil, err
	}

	if req.Phone == s.config.Admin.Phone {
		s.log.Warn("Registration attempt with reserved phone")
		return nil, invalidField("phone", "This phone number is reserved")
	}

	dob, err := utils.ParseWireDate(req.DateOfBirth)
	if err != nil {
		return nil, invalidField("date_of_birth", err.Error())
	}
	if !dob.Before(s.now()) {
		return nil, invalidField("date_of_birth", "Date of birth must be in the past")
	}

	// 2. Cek phone sudah terdaftar
	existingUser, err := s.repo.User.FindByPhone(ctx, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("check phone: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("phone number %w", ErrConflict)
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	user := &entity.User{
		Phone:        req.Phone,
		PasswordHash: hashedPassword,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		DateOfBirth:  dob,
		Email:        req.Email,
		Gender:       req.Gender,
		Role:         entity.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 4. Save user; a concurrent registration surfaces as a unique violation
	if err := s.repo.User.Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("phone number %w", ErrConflict)
		}
		return nil, err
	}

	s.log.Info("User registered", zap.String("phone", user.Phone))

	su := response.UserToSessionUser(user)
	return &su, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.AuthResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Login validation failed", zap.Error(err))
		return nil, err
	}

	user, err := s.repo.User.FindByPhone(ctx, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil {
		utils.CompareDummyHash(req.Password)
		s.log.Warn("Login failed", zap.String("reason", "unknown phone"))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login failed", zap.String("reason", "wrong password"))
		return nil, ErrInvalidCredentials
	}

	session, err := s.createSession(ctx, user.Phone, client)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in", zap.String("phone", user.Phone))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return invalidField("token", "Invalid token format")
	}

	err = s.repo.Session.Revoke(ctx, tokenUUID.String())
	if errors.Is(err, repository.ErrSessionNotFound) {
		s.log.Warn("Logout with unknown or revoked session")
		return fmt.Errorf("session %w", ErrNotFound)
	}
	if err != nil {
		return err
	}

	s.log.Info("User logged out")
	return nil
}

// Authenticate resolves a bearer token to the identity of its owner.
// It returns nil when the token is unknown, expired or revoked.
func (s *authService) Authenticate(ctx context.Context, token string) (*utils.SessionUser, error) {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}

	session, err := s.repo.Session.FindValidSession(ctx, tokenUUID.String())
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	user, err := s.repo.User.FindByPhone(ctx, session.UserPhone)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	su := response.UserToSessionUser(user)
	return &su, nil
}

// EnsureAdmin provisions the reserved administrator account when a bootstrap
// password is configured.
func (s *authService) EnsureAdmin(ctx context.Context) error {
	if s.config.Admin.Password == "" {
		s.log.Info("Admin bootstrap skipped, no password configured")
		return nil
	}

	hashedPassword, err := utils.HashPassword(s.config.Admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := s.now()
	admin := &entity.User{
		Phone:        s.config.Admin.Phone,
		PasswordHash: hashedPassword,
		FirstName:    "Site",
		LastName:     "Administrator",
		DateOfBirth:  time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
		Email:        "admin@travel-booking.local",
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.User.UpsertAdmin(ctx, admin); err != nil {
		return err
	}

	s.log.Info("Admin account ensured", zap.String("phone", admin.Phone))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) createSession(ctx context.Context, phone string, client ClientInfo) (*entity.Session, error) {
	now := s.now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserPhone: phone,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: now.Add(time.Duration(s.config.Session.TTLHours) * time.Hour),
	}
	if client.UserAgent != "" {
		session.UserAgent = &client.UserAgent
	}
	if client.IPAddress != "" {
		session.IPAddress = &client.IPAddress
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
