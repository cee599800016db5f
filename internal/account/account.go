// Package account serves the mocked account screens: login, signup, profile
// and order history. Nothing here is persisted or checked against a backend.
package account

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("email and password are required")
	ErrInvalidSignup      = errors.New("invalid signup request")
)

var phonePattern = regexp.MustCompile(`^\d{3}-\d{4}-\d{4}$`)

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
}

type Profile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

var mockProfile = Profile{
	Name:    "홍길동",
	Email:   "hong@example.com",
	Phone:   "010-1234-5678",
	Address: "서울특별시 강남구 테헤란로 123",
}

var mockOrders = []domain.OrderHistoryEntry{
	{ID: 1, Date: "2025-11-02", Items: "블랙 맨투맨, 청바지", Total: 69000, Status: domain.OrderStatusShipping},
	{ID: 2, Date: "2025-10-28", Items: "화이트 셔츠", Total: 39000, Status: domain.OrderStatusDelivered},
	{ID: 3, Date: "2025-10-28", Items: "화이트 셔츠", Total: 39000, Status: domain.OrderStatusDelivered},
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Login accepts any non-empty email and password and hands out a throwaway token
func (s *Service) Login(email, password string) (*LoginResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	name := mockProfile.Name
	if local, _, ok := strings.Cut(email, "@"); ok && local != "" {
		name = local
	}
	return &LoginResponse{
		Token: uuid.NewString(),
		User:  domain.User{ID: 1, Email: email, Name: name},
	}, nil
}

func (s *Service) Signup(req SignupRequest) (*domain.User, error) {
	if err := validateSignup(req); err != nil {
		return nil, err
	}
	return &domain.User{ID: 1, Email: req.Email, Name: req.Name}, nil
}

func validateSignup(req SignupRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidSignup)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("%w: email is malformed", ErrInvalidSignup)
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidSignup)
	}
	if req.Password != req.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", ErrInvalidSignup)
	}
	if !phonePattern.MatchString(req.Phone) {
		return fmt.Errorf("%w: phone must look like 010-1234-5678", ErrInvalidSignup)
	}
	return nil
}

func (s *Service) Profile() Profile {
	return mockProfile
}

// Orders returns the fixed order history
func (s *Service) Orders() []domain.OrderHistoryEntry {
	out := make([]domain.OrderHistoryEntry, len(mockOrders))
	copy(out, mockOrders)
	return out
}
