package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stuffbucket/linewire/internal/config"
	"github.com/stuffbucket/linewire/internal/logging"
	"github.com/stuffbucket/linewire/internal/proto"
	"github.com/stuffbucket/linewire/internal/transport"
)

var serveProfile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a device profile over a socket",
	Long:  `Load a device profile and answer its line protocol on the configured unix socket or TCP address.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveProfile, "profile", "p", "", "profile path (default: state dir profile.toml)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadProfile(serveProfile)
	if err != nil {
		return err
	}
	if err := logging.Init(cfg.LogPath); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	tr, ok := transport.ByName(cfg.Transport)
	if !ok {
		return fmt.Errorf("unknown transport: %s", cfg.Transport)
	}
	if cfg.Transport == config.TransportUnix {
		if err := os.MkdirAll(filepath.Dir(cfg.Listen), 0o755); err != nil {
			return fmt.Errorf("create socket directory: %w", err)
		}
	}

	l, err := transport.NewListener(transport.ListenerConfig{
		Address:   cfg.Listen,
		Transport: tr,
		Build: func(out io.Writer) (*proto.Engine, error) {
			return buildEngine(cfg, out)
		},
	})
	if err != nil {
		return err
	}
	defer l.Close()

	logging.L().Info("serving profile",
		"name", cfg.Name, "listen", cfg.Listen, "transport", cfg.Transport,
		"states", len(cfg.States), "commands", len(cfg.Commands))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		l.Close()
	}()
	l.Start(ctx)
	return nil
}
