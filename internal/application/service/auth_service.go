package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/invinci009/rmw/internal/domain/entity"
	"github.com/invinci009/rmw/internal/domain/enum"
	"github.com/invinci009/rmw/internal/domain/repository"
	"github.com/invinci009/rmw/pkg/apperror"
	"github.com/invinci009/rmw/pkg/otp"
	"github.com/invinci009/rmw/pkg/sms"
	"github.com/invinci009/rmw/pkg/utils"
)

// indianMobile matches a 10-digit Indian mobile number starting 6-9.
var indianMobile = regexp.MustCompile(`^[6-9]\d{9}$`)

// AuthService handles admin login and customer OTP authentication
type AuthService struct {
	userRepo   repository.UserRepository
	otpStore   *otp.Store
	smsSender  sms.Sender
	jwtManager *utils.JWTManager
	devEchoOTP bool
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	otpStore *otp.Store,
	smsSender sms.Sender,
	jwtManager *utils.JWTManager,
	devEchoOTP bool,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		otpStore:   otpStore,
		smsSender:  smsSender,
		jwtManager: jwtManager,
		devEchoOTP: devEchoOTP,
	}
}

// AuthResult carries the issued token and the authenticated user
type AuthResult struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// AdminLogin authenticates an admin by email and password
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperror.NewBadRequestError("Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email, enum.UserRoleAdmin)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	userEmail := ""
	if user.Email != nil {
		userEmail = *user.Email
	}
	token, err := s.jwtManager.GenerateToken(user.ID, string(user.Role), user.Phone, userEmail)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}

// SendOTP generates and delivers a one-time code to the phone. The returned
// code is non-empty only when dev echo is enabled.
func (s *AuthService) SendOTP(ctx context.Context, phone string) (string, error) {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return "", err
	}

	code, err := otp.GenerateCode()
	if err != nil {
		return "", err
	}

	s.otpStore.Put(normalized, code)

	message := fmt.Sprintf("Your Republic Motor Works verification code is %s. Valid for 5 minutes.", code)
	if err := s.smsSender.Send(normalized, message); err != nil {
		return "", err
	}

	if s.devEchoOTP {
		return code, nil
	}
	return "", nil
}

// VerifyOTP checks the code and logs the customer in, creating the account on
// first verification. Name is required only for new customers.
func (s *AuthService) VerifyOTP(ctx context.Context, phone, code, name string) (*AuthResult, error) {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return nil, err
	}

	if !s.otpStore.Verify(normalized, code) {
		return nil, apperror.ErrInvalidOTP
	}

	user, err := s.userRepo.GetByPhone(ctx, normalized, enum.UserRoleCustomer)
	if err != nil {
		return nil, err
	}

	if user == nil {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, apperror.NewBadRequestError("Name is required for new customers")
		}
		user = &entity.User{
			Name:  name,
			Phone: normalized,
			Role:  enum.UserRoleCustomer,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	userEmail := ""
	if user.Email != nil {
		userEmail = *user.Email
	}
	token, err := s.jwtManager.GenerateToken(user.ID, string(user.Role), user.Phone, userEmail)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}

// NormalizePhone strips formatting and country prefix, keeping the last 10
// digits, and validates the result as an Indian mobile number.
func NormalizePhone(phone string) (string, error) {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) > 10 {
		d = d[len(d)-10:]
	}
	if !indianMobile.MatchString(d) {
		return "", apperror.NewBadRequestError("Invalid phone number")
	}
	return d, nil
}
