package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rvault/recipevault/internal/common"
	"github.com/rvault/recipevault/internal/gateway"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and password and creates an account. On
// success the session is logged in immediately. The password bytes are wiped
// before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, email, password); err != nil {
		fmt.Println(gateway.PublicMessage(err))
		return err
	}

	a.email = email
	fmt.Println("Success!")
	return nil
}

// Login prompts for credentials and authenticates. Failure reasons are shown
// through gateway.PublicMessage, so a failed login never reveals whether the
// email exists. The password bytes are wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, password); err != nil {
		fmt.Println(gateway.PublicMessage(err))
		return err
	}

	a.email = email
	fmt.Println("Logged in")
	return nil
}

// Logout drops the session tokens.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	a.email = ""
	fmt.Println("Logged out")
	return nil
}
