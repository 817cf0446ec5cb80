package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/marmos91/storefront/pkg/models"
)

func TestNewJWTService_ValidConfig(t *testing.T) {
	config := JWTConfig{
		Secret:        "test-secret-key-must-be-32-chars!",
		Issuer:        "test-issuer",
		TokenDuration: 24 * time.Hour,
	}

	service, err := NewJWTService(config)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if service == nil {
		t.Fatal("Expected service to be non-nil")
	}
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	config := JWTConfig{
		Secret: "",
		Issuer: "test-issuer",
	}

	_, err := NewJWTService(config)
	if !errors.Is(err, ErrInvalidSecretLength) {
		t.Fatalf("Expected ErrInvalidSecretLength, got: %v", err)
	}
}

func TestNewJWTService_ShortSecret(t *testing.T) {
	config := JWTConfig{
		Secret: "short",
		Issuer: "test-issuer",
	}

	_, err := NewJWTService(config)
	if !errors.Is(err, ErrInvalidSecretLength) {
		t.Fatalf("Expected ErrInvalidSecretLength, got: %v", err)
	}
}

func TestNewJWTService_Defaults(t *testing.T) {
	config := JWTConfig{
		Secret: "test-secret-key-must-be-32-chars!",
	}

	service, err := NewJWTService(config)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if service.TokenDuration() != DefaultTokenDuration {
		t.Errorf("Expected default token duration %v, got %v", DefaultTokenDuration, service.TokenDuration())
	}
}

func TestGenerate(t *testing.T) {
	config := JWTConfig{
		Secret:        "test-secret-key-must-be-32-chars!",
		Issuer:        "test-issuer",
		TokenDuration: 24 * time.Hour,
	}

	service, _ := NewJWTService(config)

	user := &models.User{
		ID:    "test-uuid",
		Login: "alice@example.com",
	}

	token, err := service.Generate(user)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if token.Token == "" {
		t.Error("Expected non-empty token")
	}
	if token.TokenType != "Bearer" {
		t.Errorf("Expected TokenType 'Bearer', got '%s'", token.TokenType)
	}
	if token.ExpiresIn != int64(24*time.Hour/time.Second) {
		t.Errorf("Expected ExpiresIn %d, got %d", int64(24*time.Hour/time.Second), token.ExpiresIn)
	}
	if token.ExpiresAt.Before(time.Now()) {
		t.Error("Expected ExpiresAt in the future")
	}
}

func TestValidate(t *testing.T) {
	config := JWTConfig{
		Secret:        "test-secret-key-must-be-32-chars!",
		Issuer:        "test-issuer",
		TokenDuration: 24 * time.Hour,
	}

	service, _ := NewJWTService(config)

	user := &models.User{
		ID:    "test-uuid",
		Login: "alice@example.com",
	}

	token, _ := service.Generate(user)

	claims, err := service.Validate(token.Token)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if claims.UserID != "test-uuid" {
		t.Errorf("Expected UserID 'test-uuid', got '%s'", claims.UserID)
	}
	if claims.Login != "alice@example.com" {
		t.Errorf("Expected login 'alice@example.com', got '%s'", claims.Login)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("Expected issuer 'test-issuer', got '%s'", claims.Issuer)
	}
}

func TestValidate_InvalidToken(t *testing.T) {
	config := JWTConfig{
		Secret:        "test-secret-key-must-be-32-chars!",
		Issuer:        "test-issuer",
		TokenDuration: 24 * time.Hour,
	}

	service, _ := NewJWTService(config)

	_, err := service.Validate("invalid-token")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Expected ErrInvalidToken, got: %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	serviceA, _ := NewJWTService(JWTConfig{
		Secret: "test-secret-key-must-be-32-chars!",
	})
	serviceB, _ := NewJWTService(JWTConfig{
		Secret: "another-secret-key-that-is-32-ch!",
	})

	user := &models.User{ID: "test-uuid", Login: "alice@example.com"}
	token, _ := serviceA.Generate(user)

	_, err := serviceB.Validate(token.Token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Expected ErrInvalidToken for wrong secret, got: %v", err)
	}
}

func TestValidate_ExpiredToken(t *testing.T) {
	config := JWTConfig{
		Secret:        "test-secret-key-must-be-32-chars!",
		Issuer:        "test-issuer",
		TokenDuration: time.Nanosecond,
	}

	service, _ := NewJWTService(config)

	user := &models.User{ID: "test-uuid", Login: "alice@example.com"}
	token, _ := service.Generate(user)

	// Token lifetime is one nanosecond; it is expired by now
	time.Sleep(10 * time.Millisecond)

	_, err := service.Validate(token.Token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("Expected ErrExpiredToken, got: %v", err)
	}
}

func TestValidate_TamperedToken(t *testing.T) {
	config := JWTConfig{
		Secret:        "test-secret-key-must-be-32-chars!",
		Issuer:        "test-issuer",
		TokenDuration: 24 * time.Hour,
	}

	service, _ := NewJWTService(config)

	user := &models.User{ID: "test-uuid", Login: "alice@example.com"}
	token, _ := service.Generate(user)

	tampered := token.Token[:len(token.Token)-2] + "xx"

	_, err := service.Validate(tampered)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Expected ErrInvalidToken for tampered token, got: %v", err)
	}
}
