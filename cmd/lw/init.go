package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stuffbucket/linewire/internal/config"
)

var (
	initPath  string
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter device profile",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initPath, "profile", "p", "", "where to write the profile (default: state dir profile.toml)")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing profile")
}

func runInit(_ *cobra.Command, _ []string) error {
	path := initPath
	if path == "" {
		path = config.DefaultProfilePath()
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("profile %s already exists (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create profile directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.Starter), 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}

	fmt.Println(success("wrote " + path))
	fmt.Println(subtle("Serve it with:"), command("lw serve -p "+path))
	return nil
}
