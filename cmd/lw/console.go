package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stuffbucket/linewire/internal/config"
	"github.com/stuffbucket/linewire/internal/transport"
)

var (
	consoleProfile string
	consoleConnect bool
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Interactive protocol console",
	Long: `Read command lines from stdin and run them against the profile's
engine. With --connect, lines go to a running server instead of a local
engine.`,
	RunE: runConsole,
}

func init() {
	consoleCmd.Flags().StringVarP(&consoleProfile, "profile", "p", "", "profile path")
	consoleCmd.Flags().BoolVarP(&consoleConnect, "connect", "c", false, "attach to the running server instead of a local engine")
}

func runConsole(_ *cobra.Command, _ []string) error {
	cfg, err := loadProfile(consoleProfile)
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		fmt.Println(title("linewire console"), subtle("("+cfg.Name+")"))
		fmt.Println(subtle("Type command lines; Ctrl-D exits. Try"), command("@lw.registration"))
	}

	if consoleConnect {
		return remoteConsole(cfg, interactive)
	}
	return localConsole(cfg, interactive)
}

func localConsole(cfg *config.Config, interactive bool) error {
	engine, err := buildEngine(cfg, os.Stdout)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	for prompt(interactive); scanner.Scan(); prompt(interactive) {
		engine.FeedString(scanner.Text() + cfg.Delimiter)
		for {
			processed, perr := engine.Process()
			if perr != nil {
				fmt.Println(errorf("error: " + perr.Error()))
				continue
			}
			if !processed {
				break
			}
		}
	}
	return scanner.Err()
}

func remoteConsole(cfg *config.Config, interactive bool) error {
	tr, ok := transport.ByName(cfg.Transport)
	if !ok {
		return fmt.Errorf("unknown transport: %s", cfg.Transport)
	}
	client := transport.NewClient(cfg.Listen, tr)
	if !client.IsRunning() {
		fmt.Fprintln(os.Stderr, errorf("no server at "+cfg.Listen))
		fmt.Fprintln(os.Stderr, subtle("Start one with:"), command("lw serve"))
		return fmt.Errorf("server not running")
	}

	scanner := bufio.NewScanner(os.Stdin)
	for prompt(interactive); scanner.Scan(); prompt(interactive) {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		responses, err := client.Send(line)
		if err != nil {
			return err
		}
		for _, resp := range responses {
			if strings.HasPrefix(resp, "error:") {
				fmt.Println(errorf(resp))
				continue
			}
			fmt.Println(value(resp))
		}
	}
	return scanner.Err()
}

func prompt(interactive bool) {
	if interactive {
		fmt.Print(key("lw> "))
	}
}
