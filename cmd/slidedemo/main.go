// SPDX-License-Identifier: Unlicense OR MIT

// Command slidedemo runs a draggable panel on one of the render
// backends. Drag the panel along its axis and release to spring
// it to the nearer bound; space toggles between the bounds.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	backendFlag string
	profileFlag string
)

var rootCmd = &cobra.Command{
	Use:           "slidedemo",
	Short:         "Drag a sliding panel around",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := loadProfile(profileFlag)
		if err != nil {
			return err
		}
		switch backendFlag {
		case "ebiten":
			return runEbiten(profile)
		case "term":
			return runTerm(profile)
		default:
			return fmt.Errorf("unknown backend %q (want ebiten or term)", backendFlag)
		}
	},
}

func init() {
	rootCmd.Flags().StringVar(&backendFlag, "backend", "ebiten", "render backend: ebiten or term")
	rootCmd.Flags().StringVar(&profileFlag, "profile", "", "yaml profile for the control")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "slidedemo:", err)
		os.Exit(1)
	}
}
