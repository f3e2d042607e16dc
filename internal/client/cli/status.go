package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	ref, err := c.session.Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}

	if ref == nil {
		c.io.Println("Status: Not logged in")
		c.io.Println()
		c.io.Println("Run 'simplechat login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Logged in")
	c.io.Printf("Username: %s\n", ref.Username)

	// Дополняем статус датой регистрации из каталога
	users, err := c.directory.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	for i := range users {
		if strings.EqualFold(users[i].Username, ref.Username) {
			c.io.Printf("Registered: %s\n", users[i].CreatedAt.Format(time.RFC3339))
			break
		}
	}

	return nil
}
