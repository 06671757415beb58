// Backup command copies the database file to a uniquely named sibling.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/propdesk/propdesk/internal/sqlite"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up the property database",
	Long: `Backup copies the database file to a uniquely named .bak sibling in
the data directory.

Example:
  propdesk backup`,
	RunE: runBackup,
}

func runBackup(cmd *cobra.Command, args []string) error {
	src := sqlite.DBPath(storeDataDir)
	dst := filepath.Join(storeDataDir, fmt.Sprintf("propdesk-%s.bak", uuid.New().String()))

	if err := copyFile(src, dst); err != nil {
		return fmt.Errorf("backup: %w", err)
	}
	fmt.Printf("Backed up database to %s\n", dst)
	return nil
}

// copyFile copies src to dst, syncing dst before returning.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
