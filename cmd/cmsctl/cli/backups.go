package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"doris-art/datastore"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	flagBackupsKey  string
	flagBackupsJSON bool
)

var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List, prune and restore document backups",
}

var backupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		key := datastore.Key(flagBackupsKey)
		if key != "" && !key.Valid() {
			return fmt.Errorf("%w: %q", datastore.ErrUnknownDocument, key)
		}
		items, err := openStore().ListBackups(key)
		if err != nil {
			return err
		}
		if flagBackupsJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		}
		tw := tablewriter.NewWriter(cmd.OutOrStdout())
		tw.SetHeader([]string{"KEY", "CREATED_AT", "SIZE", "NAME"})
		for _, it := range items {
			tw.Append([]string{string(it.Key), it.CreatedAt.Format(time.RFC3339), fmt.Sprintf("%d", it.Size), it.Name})
		}
		tw.Render()
		return nil
	},
}

var backupsCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Keep the newest backups per document and delete the rest",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()
		before, err := s.ListBackups("")
		if err != nil {
			return err
		}
		if err := s.CleanupBackups(); err != nil {
			return err
		}
		after, err := s.ListBackups("")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d backup(s), %d kept\n", len(before)-len(after), len(after))
		return nil
	},
}

var backupsRestoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Make a backup the live document again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := openStore().RestoreBackup(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "restored %s from %s\n", key, args[0])
		return nil
	},
}

func init() {
	backupsCmd.AddCommand(backupsListCmd, backupsCleanupCmd, backupsRestoreCmd)
	backupsListCmd.Flags().StringVar(&flagBackupsKey, "key", "", "Only list backups of this document")
	backupsListCmd.Flags().BoolVar(&flagBackupsJSON, "json", false, "Output JSON")
}
