package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "skillbot",
		Short: "Kakao skill webhook server for the converted support content",
	}
	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the skill server",
		Run: func(cmd *cobra.Command, args []string) {
			runServe()
		},
	})
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
