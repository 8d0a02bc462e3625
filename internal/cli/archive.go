package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "archive <filename>...",
		Short: "Bundle stored models into a ZIP archive",
		Long:  "Bundle the named catalogue files into one ZIP archive. Fails without writing anything if any file is missing.",
		Run:   runArchive,
	}

	cmd.Flags().StringP("output", "o", "", "Output path (default: models_<timestamp>.zip)")

	RootCmd.AddCommand(cmd)
}

func runArchive(cmd *cobra.Command, args []string) {
	out, _ := cmd.Flags().GetString("output")

	svc, cat, err := openService()
	if err != nil {
		exitErr("open catalog", err)
	}
	defer cat.Close()

	data, n, err := svc.BuildArchive(cmd.Context(), args)
	if err != nil {
		exitErr("archive", err)
	}

	if out == "" {
		out = fmt.Sprintf("models_%s.zip", time.Now().Format("20060102_150405"))
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		exitErr("write archive", err)
	}
	fmt.Printf("wrote %s (%d files, %d bytes)\n", out, n, len(data))
}
