package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/speakpipe/speakpipe/internal/audio"
)

func newDevicesCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List audio capture devices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			devices, err := audio.ListCaptureDevices()
			if err != nil {
				return err
			}

			if len(devices) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no capture devices found")
				return nil
			}

			for _, d := range devices {
				marker := "  "
				if d.IsDefault {
					marker = "* "
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", marker, d.Name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\n* default device; pass a name substring via --device")
			return nil
		},
	}
}
