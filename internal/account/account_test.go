package account

import (
	"testing"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	svc := NewService()

	resp, err := svc.Login("kim@example.com", "secret")
	require.NoError(t, err)

	_, parseErr := uuid.Parse(resp.Token)
	assert.NoError(t, parseErr)
	assert.Equal(t, "kim@example.com", resp.User.Email)
	assert.Equal(t, "kim", resp.User.Name)
}

func TestLogin_TokensAreNotReused(t *testing.T) {
	svc := NewService()

	first, err := svc.Login("kim@example.com", "secret")
	require.NoError(t, err)
	second, err := svc.Login("kim@example.com", "secret")
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestLogin_MissingFields(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name, email, password string
	}{
		{"no email", "", "secret"},
		{"blank email", "   ", "secret"},
		{"no password", "kim@example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Login(tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Nil(t, resp)
		})
	}
}

func validSignup() SignupRequest {
	return SignupRequest{
		Name:            "김철수",
		Email:           "kim@example.com",
		Password:        "secret",
		ConfirmPassword: "secret",
		Phone:           "010-1234-5678",
		Address:         "서울특별시",
	}
}

func TestSignup(t *testing.T) {
	user, err := NewService().Signup(validSignup())
	require.NoError(t, err)
	assert.Equal(t, "김철수", user.Name)
	assert.Equal(t, "kim@example.com", user.Email)
}

func TestSignup_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *SignupRequest)
	}{
		{"missing name", func(r *SignupRequest) { r.Name = "" }},
		{"bad email", func(r *SignupRequest) { r.Email = "not-an-email" }},
		{"missing password", func(r *SignupRequest) { r.Password, r.ConfirmPassword = "", "" }},
		{"password mismatch", func(r *SignupRequest) { r.ConfirmPassword = "other" }},
		{"bad phone", func(r *SignupRequest) { r.Phone = "01012345678" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			tt.mutate(&req)

			user, err := NewService().Signup(req)
			assert.ErrorIs(t, err, ErrInvalidSignup)
			assert.Nil(t, user)
		})
	}
}

func TestProfile(t *testing.T) {
	p := NewService().Profile()
	assert.Equal(t, "홍길동", p.Name)
	assert.Equal(t, "hong@example.com", p.Email)
}

func TestOrders(t *testing.T) {
	svc := NewService()

	orders := svc.Orders()
	require.Len(t, orders, 3)
	assert.Equal(t, "블랙 맨투맨, 청바지", orders[0].Items)
	assert.Equal(t, int64(69000), orders[0].Total)
	assert.Equal(t, domain.OrderStatusShipping, orders[0].Status)
	assert.Equal(t, domain.OrderStatusDelivered, orders[2].Status)

	orders[0].Total = 0
	assert.Equal(t, int64(69000), svc.Orders()[0].Total)
}
