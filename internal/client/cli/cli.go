package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/simplechat/internal/client/iocli"
	"github.com/iudanet/simplechat/internal/directory"
	"github.com/iudanet/simplechat/internal/messaging"
	"github.com/iudanet/simplechat/internal/models"
	"github.com/iudanet/simplechat/internal/session"
)

// Cli диспетчеризует команды пользователя в сервисы.
// Слой чисто pull-based: каждая команда перечитывает состояние через
// сервисы, никаких кешей и подписок на изменения нет.
type Cli struct {
	io        iocli.IO
	directory *directory.Service
	messaging *messaging.Service
	session   *session.Manager
}

func New(io iocli.IO, dir *directory.Service, msg *messaging.Service, sess *session.Manager) *Cli {
	return &Cli{
		io:        io,
		directory: dir,
		messaging: msg,
		session:   sess,
	}
}

// Run выполняет одну команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "users":
		return c.runUsers(ctx)
	case "send":
		return c.runSend(ctx, args)
	case "history":
		return c.runHistory(ctx, args)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// requireSession возвращает текущую сессию или ошибку, если пользователь
// не авторизован
func (c *Cli) requireSession(ctx context.Context) (*models.SessionRef, error) {
	ref, err := c.session.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if ref == nil {
		return nil, errors.New("not logged in. Please run 'simplechat login' first")
	}
	return ref, nil
}

func PrintUsage() {
	fmt.Println("SimpleChat")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  simplechat [OPTIONS] COMMAND [ARGS]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version             Show version information")
	fmt.Println("  --db PATH             Path to local database (default: simplechat.db)")
	fmt.Println("  --backend NAME        Storage backend: bolt or sqlite (default: bolt)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register              Register new user")
	fmt.Println("  login                 Login as an existing user")
	fmt.Println("  logout                Logout and clear the saved session")
	fmt.Println("  status                Show current session status")
	fmt.Println("  users                 List registered users")
	fmt.Println("  send <to> [text]      Send a message (prompts for text if omitted)")
	fmt.Println("  history <peer>        Show the conversation with another user")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  simplechat register")
	fmt.Println("  simplechat login")
	fmt.Println("  simplechat users")
	fmt.Println("  simplechat send bob Hello there!")
	fmt.Println("  simplechat history bob")
	fmt.Println("  simplechat --db ~/chat.db --backend sqlite status")
}
