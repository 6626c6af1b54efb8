package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var configProfile string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved device profile",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().StringVarP(&configProfile, "profile", "p", "", "profile path")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadProfile(configProfile)
	if err != nil {
		return err
	}

	fmt.Println(title("Linewire Profile"))
	fmt.Printf("  %s %s\n", key("Name:"), value(cfg.Name))
	fmt.Printf("  %s %s\n", key("Listen:"), value(cfg.Listen))
	fmt.Printf("  %s %s\n", key("Transport:"), value(cfg.Transport))
	fmt.Printf("  %s %s\n", key("Delimiter:"), value(strconv.Quote(cfg.Delimiter)))
	fmt.Printf("  %s %s\n", key("Log:"), value(cfg.LogPath))
	fmt.Println()

	fmt.Println(subtle("  States:"))
	for _, s := range cfg.States {
		bounds := ""
		if s.Min != nil || s.Max != nil {
			lo, hi := "-inf", "+inf"
			if s.Min != nil {
				lo = strconv.FormatFloat(*s.Min, 'g', -1, 64)
			}
			if s.Max != nil {
				hi = strconv.FormatFloat(*s.Max, 'g', -1, 64)
			}
			bounds = " [" + lo + ", " + hi + "]"
		}
		fmt.Printf("  %s %s%s\n", key(s.Name+":"), value(s.Kind), subtle(bounds))
	}
	fmt.Println()

	fmt.Println(subtle("  Commands:"))
	for _, c := range cfg.Commands {
		fmt.Printf("  %s", key(c.Qualifier+":"))
		for _, a := range c.Args {
			req := "required"
			if a.Optional {
				req = "optional"
			}
			fmt.Printf(" %s", value(a.Name+"("+req+","+cfg.ArgKind(a)+")"))
		}
		fmt.Println()
	}
	return nil
}
