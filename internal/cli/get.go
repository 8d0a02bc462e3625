package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get <filename>",
		Short: "Retrieve a stored STL file",
		Args:  cobra.ExactArgs(1),
		Run:   runGet,
	}

	cmd.Flags().StringP("output", "o", "", "Write payload to a file instead of stdout")

	RootCmd.AddCommand(cmd)
}

func runGet(cmd *cobra.Command, args []string) {
	out, _ := cmd.Flags().GetString("output")

	svc, cat, err := openService()
	if err != nil {
		exitErr("open catalog", err)
	}
	defer cat.Close()

	payload, err := svc.GetFile(cmd.Context(), args[0])
	if err != nil {
		exitErr("get", err)
	}

	if out == "" {
		os.Stdout.Write(payload)
		return
	}
	if err := os.WriteFile(out, payload, 0o644); err != nil {
		exitErr("write file", err)
	}
}
