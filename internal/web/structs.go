package web

import (
	"errors"
	"regexp"

	"github.com/gofiber/fiber/v2"
)

// Request errors carry message keys, translated when flashed.
var (
	errNameEmpty       = errors.New("auth.signup.name_empty")
	errNameInvalid     = errors.New("auth.signup.name_invalid")
	errEmailEmpty      = errors.New("auth.signup.email_empty")
	errPasswordEmpty   = errors.New("auth.signup.password_empty")
	errPasswordConfirm = errors.New("validation.password.confirmed")
)

var nameRegexp = regexp.MustCompile(`^[A-Za-z][\w.-]+$`)

type signupRequest struct {
	name     string
	email    string
	password string
}

func parseSignUpRequest(ctx *fiber.Ctx) (signupRequest, error) {
	var err error
	name := ctx.FormValue("username", "")
	err = errors.Join(err, validateUserName(name))
	email := ctx.FormValue("email", "")
	if email == "" {
		err = errors.Join(err, errEmailEmpty)
	}
	password := ctx.FormValue("password", "")
	err = errors.Join(err, validatePassword(password))
	passwordRepeat := ctx.FormValue("password-repeat", "")
	if passwordRepeat != password {
		err = errors.Join(err, errPasswordConfirm)
	}
	if err != nil {
		return signupRequest{}, err
	}
	return signupRequest{
		name:     name,
		email:    email,
		password: password,
	}, nil
}

type signInRequest struct {
	name     string
	password string
}

func parseSignInRequest(ctx *fiber.Ctx) (req signInRequest, err error) {
	name := ctx.FormValue("username", "")
	if name == "" {
		err = errors.Join(err, errNameEmpty)
	}
	password := ctx.FormValue("password", "")
	err = errors.Join(err, validatePassword(password))
	if err != nil {
		return signInRequest{}, err
	}
	return signInRequest{
		name:     name,
		password: password,
	}, nil
}

func validatePassword(password string) error {
	if password == "" {
		return errPasswordEmpty
	}
	return nil
}

func validateUserName(name string) error {
	if name == "" {
		return errNameEmpty
	}
	if !nameRegexp.MatchString(name) {
		return errNameInvalid
	}
	return nil
}
