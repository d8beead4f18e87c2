package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Molcarrus/stegnoapp/internal/cli"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		cpuProfile    string
		memProfileDir string
		teardowns     []func()
	)

	rootCmd := &cobra.Command{
		Use:          "stegnoapp",
		Short:        "Hide arbitrary files inside the least significant bits of images",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cpuProfile != "" {
				cpuProfileFile, err := os.Create(cpuProfile)
				if err != nil {
					return err
				}
				cli.StartCPUProfiler(cpuProfileFile)
				teardowns = append(teardowns, func() {
					cli.StopCPUProfiler()
					cpuProfileFile.Close()
				})
			}
			if memProfileDir != "" {
				cli.StartMemoryProfiler(memProfileDir)
				teardowns = append(teardowns, cli.StopMemoryProfiler)
			}

			if len(teardowns) > 0 {
				// Profile dumps should survive a Ctrl-C mid-encode
				c := make(chan os.Signal, 2)
				signal.Notify(c, os.Interrupt, syscall.SIGTERM)
				go func() {
					<-c
					for _, teardown := range teardowns {
						teardown()
					}
					os.Exit(0)
				}()
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			for _, teardown := range teardowns {
				teardown()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(cli.ImageCommands(), cli.ServeAppCommand())
	return rootCmd
}
