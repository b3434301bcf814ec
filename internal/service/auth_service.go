package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"flowa-be/internal/dto"
	"flowa-be/internal/entity"
	"flowa-be/internal/pkg/apperror"
	"flowa-be/internal/pkg/logger"
	"flowa-be/internal/pkg/mailer"
	"flowa-be/internal/pkg/serverutils"
	"flowa-be/internal/repository/contract"
	"flowa-be/internal/repository/specification"
	"flowa-be/internal/repository/unitofwork"
	"flowa-be/pkg/events"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const verificationCodeTTL = 10 * time.Minute

// TokenIssuer signs bearer tokens for signed-in users.
type TokenIssuer struct {
	Secret string
	TTL    time.Duration
}

func (t TokenIssuer) Issue(user *entity.User) (string, error) {
	token, err := serverutils.IssueToken(t.Secret, user.Id, string(user.Role), t.TTL)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return token, nil
}

func (t TokenIssuer) respond(user *entity.User) (*dto.AuthResponse, error) {
	token, err := t.Issue(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Id:    user.Id,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
		Token: token,
	}, nil
}

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	BeginRegistration(ctx context.Context, req *dto.BeginRegistrationRequest) error
	CompleteRegistration(ctx context.Context, req *dto.CompleteRegistrationRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	pending      contract.PendingRegistrationRepository
	emailService mailer.IEmailService
	tokens       TokenIssuer
	activity     *ActivityEmitter
	logger       logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	pending contract.PendingRegistrationRepository,
	emailService mailer.IEmailService,
	tokens TokenIssuer,
	activity *ActivityEmitter,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		pending:      pending,
		emailService: emailService,
		tokens:       tokens,
		activity:     activity,
		logger:       log,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// selfAssignableRole downgrades anything outside the creator roles.
func selfAssignableRole(role string) entity.UserRole {
	if r := entity.UserRole(role); r == entity.UserRoleBrandManager || r == entity.UserRoleContentCreator {
		return r
	}
	return entity.UserRoleContentCreator
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n), nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	user, err := s.createUser(ctx, req.Name, req.Email, req.Password, selfAssignableRole(req.Role))
	if err != nil {
		return nil, err
	}
	return s.tokens.respond(user)
}

func (s *authService) BeginRegistration(ctx context.Context, req *dto.BeginRegistrationRequest) error {
	email := normalizeEmail(req.Email)
	if err := s.ensureEmailFree(ctx, s.uowFactory.NewUnitOfWork(ctx), email); err != nil {
		return err
	}

	code, err := generateCode()
	if err != nil {
		return apperror.Internal(err)
	}
	s.pending.Save(&entity.PendingRegistration{Email: email, Code: code}, verificationCodeTTL)

	if err := s.emailService.SendVerificationCode(email, code); err != nil {
		return apperror.Upstream(err, "Failed to send verification code")
	}
	s.logger.Info("AuthService", "Verification code sent", map[string]interface{}{"email": email})
	return nil
}

func (s *authService) CompleteRegistration(ctx context.Context, req *dto.CompleteRegistrationRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	reg, ok := s.pending.Get(email)
	if !ok || reg.Code != req.Code {
		return nil, apperror.Validation("Invalid or expired verification code")
	}
	if _, ok := s.pending.Consume(email); !ok {
		return nil, apperror.Validation("Invalid or expired verification code")
	}

	user, err := s.createUser(ctx, req.Name, email, req.Password, entity.UserRoleContentCreator)
	if err != nil {
		return nil, err
	}
	if err := s.emailService.SendWelcome(user.Email, user.Name); err != nil {
		s.logger.Warn("AuthService", "Failed to send welcome email", map[string]interface{}{"error": err.Error()})
	}
	return s.tokens.respond(user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil || user.PasswordHash == nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	return s.tokens.respond(user)
}

func (s *authService) ensureEmailFree(ctx context.Context, uow unitofwork.UnitOfWork, email string) error {
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return apperror.Internal(err)
	}
	if existing != nil {
		return apperror.Validation("User already exists")
	}
	return nil
}

func (s *authService) createUser(ctx context.Context, name, email, password string, role entity.UserRole) (*entity.User, error) {
	email = normalizeEmail(email)
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.ensureEmailFree(ctx, uow, email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	hashStr := string(hash)

	now := time.Now()
	user := &entity.User{
		Id:           uuid.New(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: &hashStr,
		Role:         role,
		ApiKeys:      []entity.ApiKey{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique index still rejects a concurrent registration of the same email.
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, apperror.Validation("User already exists")
		}
		return nil, apperror.Internal(err)
	}

	s.logger.Info("AuthService", "User registered", map[string]interface{}{"user_id": user.Id.String(), "role": string(role)})
	s.activity.Emit(ctx, events.New(events.UserRegistered, user.Id, map[string]interface{}{
		"userId": user.Id.String(),
		"role":   string(role),
	}))
	return user, nil
}
