package main

import (
	"log"

	"github.com/sobadon/epgd/cmd/epgd/run"
	"github.com/sobadon/epgd/cmd/epgd/version"
	"github.com/spf13/cobra"
)

func main() {
	execute()
}

func execute() {
	var rootCmd = &cobra.Command{
		Use:   "epgd",
		Short: "reconcile and enrich epg",
	}

	rootCmd.AddCommand(run.Command())
	rootCmd.AddCommand(version.Command())

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}
