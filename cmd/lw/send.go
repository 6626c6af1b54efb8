package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stuffbucket/linewire/internal/transport"
)

var (
	sendProfile string
	sendAddr    string
)

var sendCmd = &cobra.Command{
	Use:   "send <command line>",
	Short: "Send one command line to a running server",
	Long:  `Send a command line to a running linewire server and print its response lines.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSend,
}

func init() {
	sendCmd.Flags().StringVarP(&sendProfile, "profile", "p", "", "profile path for the target address")
	sendCmd.Flags().StringVarP(&sendAddr, "addr", "a", "", "override the target address (transport inferred from the profile)")
}

func runSend(_ *cobra.Command, args []string) error {
	cfg, err := loadProfile(sendProfile)
	if err != nil {
		return err
	}
	addr := cfg.Listen
	if sendAddr != "" {
		addr = sendAddr
	}
	tr, ok := transport.ByName(cfg.Transport)
	if !ok {
		return fmt.Errorf("unknown transport: %s", cfg.Transport)
	}

	client := transport.NewClient(addr, tr)
	responses, err := client.Send(strings.Join(args, " "))
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
	return nil
}
