package cli

import (
	"fmt"

	"doris-art/datastore"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Inspect the content documents",
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every document key with its file and size",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()
		tw := tablewriter.NewWriter(cmd.OutOrStdout())
		tw.SetHeader([]string{"KEY", "FILE", "PRESENT", "SIZE", "BACKUPS"})
		for _, k := range datastore.AllKeys {
			ok, size, err := s.Exists(k)
			if err != nil {
				return err
			}
			backups, err := s.ListBackups(k)
			if err != nil {
				return err
			}
			present, sz := "no", "-"
			if ok {
				present, sz = "yes", fmt.Sprintf("%d", size)
			}
			tw.Append([]string{string(k), k.FileName(), present, sz, fmt.Sprintf("%d", len(backups))})
		}
		tw.Render()
		return nil
	},
}

var docsShowCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Print a document as stored",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openStore().ReadRaw(datastore.Key(args[0]))
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	},
}

func init() {
	docsCmd.AddCommand(docsListCmd, docsShowCmd)
}
