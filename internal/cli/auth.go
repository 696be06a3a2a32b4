package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/popxauth/internal/common"
	"github.com/dmitrijs2005/popxauth/internal/models"
)

// getSimpleText, getPassword and getYesNo are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getYesNo = GetYesNo

// Register collects the registration form interactively and creates the
// account via the session manager. A successful registration also logs
// the user in.
//
// The password byte slice is securely wiped before returning. Any I/O or
// service error is printed and returned unchanged.
func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone number", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email address", os.Stdout)
	if err != nil {
		return err
	}
	company, err := getSimpleText(a.reader, "Company name (optional)", os.Stdout)
	if err != nil {
		return err
	}
	isAgency, err := getYesNo(a.reader, "Are you an agency?", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	input := models.AccountInput{
		FullName:    fullName,
		PhoneNumber: phone,
		Email:       email,
		CompanyName: company,
		IsAgency:    isAgency,
		Secret:      string(password),
	}

	sess, err := a.sessions.Register(ctx, input)
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Account created, logged in as %s", sess.Email))
	return nil
}

// Login prompts for credentials and tries to authenticate.
//
// The password is securely wiped before returning. Any error from the
// underlying session manager is printed and returned.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email address", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.sessions.Login(ctx, email, string(password))
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Logged in as %s", sess.Email))
	return nil
}

// Logout clears the current session. It never fails.
func (a *App) Logout(ctx context.Context) error {
	a.sessions.Logout(ctx)
	printlnFn("Logged out")
	return nil
}
