package service

//go:generate mockgen -source authentication.go -destination mock/authentication.go -package mock

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/billup/billup-web/internal/session/app/external"
	"github.com/billup/billup-web/internal/session/domain"
)

var (
	ErrLoginFailed         = errors.New("login failed")
	ErrInvalidRegistration = errors.New("invalid registration")
	ErrRegistrationFailed  = errors.New("registration failed")
)

var phoneNumberPattern = regexp.MustCompile(`^\+[1-9]\d{8,14}$`)

var registrationMessages = map[string]string{
	"Name":             "Name must be between 1 and 50 characters.",
	"Surname":          "Surname must be between 1 and 50 characters.",
	"Residency":        "Residency must be between 1 and 50 characters.",
	"Email":            "Enter a valid email address.",
	"PhoneNumber":      "Phone number must be in international format, e.g. +48123456789.",
	"Role":             "Choose an account type.",
	"Password":         "Password must be 8 to 50 characters long and contain an uppercase letter, a lowercase letter, a digit and a special character.",
	"RepeatedPassword": "Passwords do not match.",
}

type (
	Registration struct {
		Name             string `validate:"required,min=1,max=50"`
		Surname          string `validate:"required,min=1,max=50"`
		Residency        string `validate:"required,min=1,max=50"`
		Email            string `validate:"required,email"`
		PhoneNumber      string `validate:"required,max=15,phone"`
		Role             string `validate:"required,oneof=CLIENT COMPANY"`
		Password         string `validate:"required,min=8,max=50,password"`
		RepeatedPassword string `validate:"required,eqfield=Password"`
	}

	// ValidationError describes the first invalid registration field.
	ValidationError struct {
		Field   string
		Message string
	}

	SessionController interface {
		SetAuthData(context.Context, domain.BearerToken) error
		SaveRefreshToken(string)
	}

	Authentication interface {
		Login(ctx context.Context, session SessionController, credentials external.Credentials) error
		Register(ctx context.Context, registration Registration) error
	}
)

func (e ValidationError) Error() string {
	return e.Message
}

func (e ValidationError) Unwrap() error {
	return ErrInvalidRegistration
}

type authentication struct {
	authAPI  external.AuthAPI
	validate *validator.Validate
}

func NewAuthentication(authAPI external.AuthAPI) Authentication {
	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneNumberPattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return isStrongPassword(fl.Field().String())
	})

	return &authentication{
		authAPI:  authAPI,
		validate: validate,
	}
}

// Login stores the refresh token only after the access token was adopted by the session.
func (a *authentication) Login(ctx context.Context, session SessionController, credentials external.Credentials) error {
	tokens, err := a.authAPI.Login(ctx, credentials)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	err = session.SetAuthData(ctx, tokens.AccessToken)
	if err != nil {
		return err
	}

	if tokens.RefreshToken != "" {
		session.SaveRefreshToken(tokens.RefreshToken)
	}
	return nil
}

func (a *authentication) Register(ctx context.Context, registration Registration) error {
	err := a.validate.Struct(registration)
	if err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			field := fieldErrs[0].Field()
			return ValidationError{Field: field, Message: registrationMessages[field]}
		}
		return fmt.Errorf("%w: %w", ErrInvalidRegistration, err)
	}

	err = a.authAPI.Register(ctx, external.NewUser{
		Name:        registration.Name,
		Surname:     registration.Surname,
		Residency:   registration.Residency,
		Email:       registration.Email,
		Password:    registration.Password,
		PhoneNumber: registration.PhoneNumber,
		Role:        registration.Role,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	return nil
}

func isStrongPassword(password string) bool {
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	return upper && lower && digit && special
}
