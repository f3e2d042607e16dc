package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runUsers(ctx context.Context) error {
	c.io.Println("=== Registered Users ===")
	c.io.Println()

	users, err := c.directory.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if len(users) == 0 {
		c.io.Println("No users registered yet.")
		c.io.Println()
		c.io.Println("Use 'simplechat register' to create the first account.")
		return nil
	}

	// Отмечаем текущего пользователя, если сессия есть
	current := ""
	if ref, err := c.session.Current(ctx); err == nil && ref != nil {
		current = ref.Username
	}

	c.io.Printf("Found %d user(s):\n", len(users))
	c.io.Println()

	for i, user := range users {
		marker := ""
		if current != "" && strings.EqualFold(user.Username, current) {
			marker = " (you)"
		}
		c.io.Printf("%d. %s%s\n", i+1, user.Username, marker)
	}

	return nil
}
