package cli

import (
	"doris-art/config"
	"doris-art/datastore"

	"github.com/spf13/cobra"
)

var (
	flagDataDir   string
	flagBackupDir string
)

var rootCmd = &cobra.Command{
	Use:           "cmsctl",
	Short:         "Operate the site's content store",
	Long:          "cmsctl manages the JSON documents and backups behind the site and prepares admin credentials.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

// openStore resolves the directories from flags, then the environment.
func openStore() *datastore.Store {
	config.LoadStorageEnv()
	dataDir, backupDir := config.DATA_DIR, config.BACKUP_DIR
	if flagDataDir != "" {
		dataDir = flagDataDir
		if flagBackupDir == "" {
			backupDir = ""
		}
	}
	if flagBackupDir != "" {
		backupDir = flagBackupDir
	}
	return datastore.New(dataDir, backupDir)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory (default $DATA_DIR or ./data)")
	rootCmd.PersistentFlags().StringVar(&flagBackupDir, "backup-dir", "", "Backup directory (default $BACKUP_DIR or <data-dir>/backups)")

	rootCmd.AddCommand(hashPasswordCmd)
	rootCmd.AddCommand(backupsCmd)
	rootCmd.AddCommand(docsCmd)
}
