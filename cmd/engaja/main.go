package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/engajamento/engaja/internal/client/api"
	"github.com/engajamento/engaja/internal/client/config"
	"github.com/engajamento/engaja/internal/client/services"
	"github.com/engajamento/engaja/internal/client/session"
	"github.com/engajamento/engaja/internal/client/storage"
	"github.com/engajamento/engaja/internal/logging"
	"github.com/engajamento/engaja/internal/tui"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "--version", "-v":
			fmt.Println("engaja " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		}
	}

	cfg := config.LoadConfig()

	env, err := newEnv(cfg)
	if err != nil {
		return err
	}
	defer env.Close()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "login":
			return runLogin(env.store)
		case "logout":
			env.store.Logout(context.Background())
			fmt.Println("Sessão encerrada.")
			return nil
		default:
			printHelp()
			return fmt.Errorf("unknown command %q", os.Args[1])
		}
	}

	app := tui.NewApp(env.store, env.services)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// env bundles everything a command needs: logger, local storage, API client,
// session store, and the entity services.
type env struct {
	store    *session.Store
	services tui.Services

	logFile *os.File
	close   func()
}

func newEnv(cfg *config.Config) (*env, error) {
	dir, err := appDir()
	if err != nil {
		return nil, err
	}

	// The TUI owns stdout, so logs go to a file next to the database.
	logFile, err := os.OpenFile(filepath.Join(dir, "engaja.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log := logging.NewFileLogger(logFile, slog.LevelInfo)

	dsn := cfg.StorageDSN
	if dsn == "" {
		dsn = filepath.Join(dir, "engaja.db")
	}
	db, err := storage.Open(context.Background(), dsn)
	if err != nil {
		logFile.Close()
		return nil, err
	}

	client := api.New(cfg.ServerURL,
		api.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		api.WithInvalidStatuses(cfg.InvalidStatuses...),
		api.WithLogger(log),
	)

	store := session.New(client, storage.NewSQLiteRecords(db), log)

	return &env{
		store: store,
		services: tui.Services{
			Leaders:    services.NewLeaders(client, store),
			Activities: services.NewActivities(client),
			People:     services.NewPeople(client, store),
			Reviews:    services.NewReviews(client),
		},
		logFile: logFile,
		close: func() {
			db.Close()
			logFile.Close()
		},
	}, nil
}

func (e *env) Close() {
	if e.close != nil {
		e.close()
	}
}

// appDir returns the per-user directory holding the database and log file,
// creating it if needed.
func appDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config dir: %w", err)
	}
	dir := filepath.Join(base, "engaja")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return dir, nil
}

// runLogin prompts for credentials on the terminal and starts a session, so
// the next plain `engaja` run opens already signed in.
func runLogin(store *session.Store) error {
	ctx := context.Background()
	store.Restore(ctx)
	if store.Authenticated() {
		fmt.Println("Já existe uma sessão ativa. Use `engaja logout` primeiro.")
		return nil
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("E-mail: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read email: %w", err)
	}
	email = strings.TrimSpace(email)

	fmt.Print("Senha: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	if err := store.Login(ctx, email, string(password)); err != nil {
		if api.IsStatus(err, http.StatusUnauthorized) {
			return fmt.Errorf("login ou senha incorretos")
		}
		return fmt.Errorf("login: %w", err)
	}

	if u := store.User(); u != nil {
		fmt.Printf("Bem-vindo(a), %s!\n", u.Name)
	}
	return nil
}

func printHelp() {
	fmt.Print(`engaja - acompanhamento do programa de engajamento

Uso:
  engaja            abre a interface de terminal
  engaja login      inicia uma sessão pelo terminal
  engaja logout     encerra a sessão atual
  engaja version    mostra a versão

Opções:
  -c, -config  caminho do arquivo de configuração JSON
  -a           URL do servidor
  -d           DSN do banco sqlite local
  -t           timeout HTTP em segundos
  -s           lista de status HTTP que invalidam a sessão (ex.: 401,422)
`)
}
