package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/simplechat/internal/directory"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	user, err := c.directory.Authenticate(ctx, username, password)
	if err != nil {
		// Неудачный вход не меняет состояние сессии
		switch {
		case errors.Is(err, directory.ErrUserNotFound):
			return fmt.Errorf("user %q is not registered", username)
		case errors.Is(err, directory.ErrWrongPassword):
			return errors.New("wrong password")
		default:
			return err
		}
	}

	if err := c.session.Login(ctx, user); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Logged in as: %s\n", user.Username)

	return nil
}
