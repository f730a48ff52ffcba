package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jeevansaathi/saathi-cli/internal/backup"
)

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Create a backup of the database." default:"1"`
	List    BackupListCmd    `cmd:"" help:"List available backups."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore the database from a backup."`
}

// backupManager refuses non-file backends; PostgreSQL users should rely on
// pg_dump instead.
func backupManager(ctx *Context) (*backup.Manager, error) {
	path := ctx.Store.GetConfigPath()
	if strings.HasPrefix(path, "postgres://") || strings.HasPrefix(path, "postgresql://") {
		return nil, fmt.Errorf("backups are only supported for the SQLite backend; use pg_dump for PostgreSQL")
	}
	return backup.NewManager(path), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	path, err := mgr.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	fmt.Println(header("Backups"))
	for _, b := range backups {
		fmt.Printf("%s  %s\n", bold(filepath.Base(b.Path)),
			dim(fmt.Sprintf("%s, %.1f KB", b.Timestamp.Format("2006-01-02 15:04:05"), float64(b.Size)/1024)))
	}
	return nil
}

type BackupRestoreCmd struct {
	Name string `arg:"" help:"Backup file name (from 'backup list') or full path."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}

	path := c.Name
	if !filepath.IsAbs(path) {
		path = filepath.Join(mgr.BackupDir(), c.Name)
	}

	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close database before restore: %w", err)
	}
	if err := mgr.Restore(path); err != nil {
		return err
	}
	fmt.Println("Database restored.")
	return nil
}
