package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "critbit-demo",
	Short: "Exercises a clustered crit-bit tree from the command line",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(walkCmd)
}
