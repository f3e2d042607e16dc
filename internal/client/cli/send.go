package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/simplechat/internal/messaging"
)

func (c *Cli) runSend(ctx context.Context, args []string) error {
	// Отправитель определяется по сохраненной сессии
	ref, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	// Получатель: аргумент или интерактивный ввод
	var to string
	if len(args) > 0 {
		to = args[0]
	} else {
		to, err = c.io.ReadInput("To: ")
		if err != nil {
			return fmt.Errorf("failed to read recipient: %w", err)
		}
	}

	// Текст: остаток аргументов или интерактивный ввод
	var text string
	if len(args) > 1 {
		text = strings.Join(args[1:], " ")
	} else {
		text, err = c.io.ReadInput("Message: ")
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}
	}

	msg, err := c.messaging.Send(ctx, ref.Username, to, text)
	if err != nil {
		switch {
		case errors.Is(err, messaging.ErrSelfMessage):
			return errors.New("you cannot message yourself")
		case errors.Is(err, messaging.ErrEmptyText):
			return errors.New("message text cannot be empty")
		case errors.Is(err, messaging.ErrUnknownRecipient):
			return fmt.Errorf("user %q is not registered", to)
		default:
			return err
		}
	}

	c.io.Printf("✓ Message sent to %s\n", msg.To)

	return nil
}
