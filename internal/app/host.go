package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"ohosinfo/internal/hostinfo"
)

// NewHostCommand reports on the machine ohosinfo runs on. It is a
// development-host convenience; on-device queries go through the native
// attributes instead.
func NewHostCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "host",
		Short: "Show information about the local host",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := hostinfo.Collect()
			if err != nil {
				return fmt.Errorf("collecting host information: %w", err)
			}

			if jsonOut {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Hostname:       %s\n", report.Hostname)
			fmt.Fprintf(out, "OS:             %s\n", report.OS)
			fmt.Fprintf(out, "Platform:       %s %s\n", report.Platform, report.PlatformVersion)
			fmt.Fprintf(out, "Kernel:         %s (%s)\n", report.KernelVersion, report.Arch)
			fmt.Fprintf(out, "Uptime:         %ds\n", report.UptimeSeconds)
			if report.CPUModel != "" {
				fmt.Fprintf(out, "CPU:            %s (%d cores)\n", report.CPUModel, report.CPUCores)
			}
			if report.MemoryTotal > 0 {
				fmt.Fprintf(out, "Memory:         %d bytes (%.2f%% used)\n", report.MemoryTotal, report.MemoryPercent)
			}
			if report.DiskTotal > 0 {
				fmt.Fprintf(out, "Disk:           %d bytes (%.2f%% used)\n", report.DiskTotal, report.DiskPercent)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print host report as JSON")
	return cmd
}
