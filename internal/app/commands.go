package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"ohosinfo/deviceinfo"
)

func NewInfoCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show all available device and OS attributes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOut {
				data, err := json.MarshalIndent(deviceinfo.Collect(), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			available := 0
			for _, attr := range deviceinfo.Attributes() {
				value, err := deviceinfo.Query(attr)
				if err != nil {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %s\n", attr, value)
				available++
			}
			if available == 0 {
				return fmt.Errorf("no device attributes available: %w", deviceinfo.ErrUnavailable)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print attributes as JSON")
	return cmd
}

func NewGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [attribute]",
		Short: "Print a single device or OS attribute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := deviceinfo.Query(deviceinfo.Attribute(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List queryable attribute names",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, attr := range deviceinfo.Attributes() {
				fmt.Fprintln(cmd.OutOrStdout(), attr)
			}
			return nil
		},
	}
}
