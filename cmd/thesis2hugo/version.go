// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of thesis2hugo",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("thesis2hugo %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
