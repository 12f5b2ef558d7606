package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/breakwise/breakwise/internal/config"
	"github.com/breakwise/breakwise/internal/logging"
	"github.com/breakwise/breakwise/internal/server"
)

// ServeCmd serves the TUI over SSH
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file checked for client keys (default ~/.ssh/authorized_keys)" type:"path"`
	Host           string `help:"Host to bind to (default from config.toml or localhost)"`
	Port           int    `help:"Port to listen on (default from config.toml or 23234)"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	address := s.address(cli.settings)

	keys, err := cli.keyBindings()
	if err != nil {
		return err
	}

	authorizedKeys := s.AuthorizedKeys
	if authorizedKeys == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		authorizedKeys = filepath.Join(home, ".ssh", "authorized_keys")
	}

	logging.Logger.Info("Starting breakwise SSH server",
		"address", address,
		"db_path", cli.Container.DBPath,
		"authorized_keys", authorizedKeys)

	srv, err := server.NewServer(server.Options{
		Address:            address,
		AuthorizedKeysPath: authorizedKeys,
		DBPath:             cli.Container.DBPath,
		HostKeyPath:        config.GetHostKeyPath(),
		Keys:               keys,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(stdout, "SSH server listening on %s\n", srv.Address())
	return srv.Start(ctx)
}

// address applies flag > config.toml > default for host and port
func (s *ServeCmd) address(settings *config.Settings) string {
	merged := config.Settings{}
	if settings != nil {
		merged = *settings
	}
	if s.Host != "" {
		merged.SSHHost = s.Host
	}
	if s.Port != 0 {
		port := s.Port
		merged.SSHPort = &port
	}
	return merged.SSHAddress()
}
