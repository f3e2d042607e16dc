package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runHistory(ctx context.Context, args []string) error {
	ref, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	var peer string
	if len(args) > 0 {
		peer = args[0]
	} else {
		peer, err = c.io.ReadInput("Peer: ")
		if err != nil {
			return fmt.Errorf("failed to read peer: %w", err)
		}
	}

	c.io.Printf("=== Conversation with %s ===\n", peer)
	c.io.Println()

	messages, err := c.messaging.Conversation(ctx, ref.Username, peer)
	if err != nil {
		return fmt.Errorf("failed to load conversation: %w", err)
	}

	if len(messages) == 0 {
		c.io.Println("No messages yet.")
		c.io.Println()
		c.io.Printf("Use 'simplechat send %s <text>' to start the conversation.\n", peer)
		return nil
	}

	// Сообщения уже отсортированы по времени отправки
	for _, m := range messages {
		c.io.Printf("[%s] %s: %s\n", m.Ts.Local().Format("2006-01-02 15:04:05"), m.From, m.Text)
	}

	return nil
}
