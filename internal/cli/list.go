package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List generated models, newest first",
		Run:   runList,
	}

	cmd.Flags().Bool("names-only", false, "Only output filenames")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	namesOnly, _ := cmd.Flags().GetBool("names-only")

	svc, cat, err := openService()
	if err != nil {
		exitErr("open catalog", err)
	}
	defer cat.Close()

	records, err := svc.ListFiles(cmd.Context())
	if err != nil {
		exitErr("list", err)
	}

	if namesOnly {
		for _, r := range records {
			fmt.Println(r.Filename)
		}
		return
	}

	b, _ := json.MarshalIndent(records, "", "  ")
	fmt.Println(string(b))
}
