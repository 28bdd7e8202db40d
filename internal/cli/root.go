// Package cli implements the prefsctl command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"moviehub/internal/common"
	"moviehub/internal/config"
	"moviehub/internal/database"
	"moviehub/internal/services"
)

type options struct {
	dataDir string
	verbose bool
}

// session is an opened store plus the database backing it
type session struct {
	db     *database.Database
	store  *services.PreferencesStore
	dbPath string
}

func (s *session) Close() error {
	return s.db.Close()
}

// NewRootCmd builds the prefsctl command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "prefsctl",
		Short:         "Inspect and change MovieHub preferences",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "app data directory (default: MOVIEHUB_DATA_DIR or the user config dir)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log storage warnings to stderr")

	root.AddCommand(
		newShowCmd(opts),
		newSetCmd(opts),
		newResetCmd(opts),
		newPathCmd(opts),
	)
	return root
}

func (o *options) databasePath() string {
	if o.dataDir != "" {
		return filepath.Join(o.dataDir, common.DatabaseFileName)
	}
	return config.New().DatabasePath
}

func (o *options) open(cmd *cobra.Command) (*session, error) {
	path := o.databasePath()
	if err := common.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := database.NewDatabase(path)
	if err != nil {
		return nil, err
	}

	var logOut io.Writer = io.Discard
	if o.verbose {
		logOut = cmd.ErrOrStderr()
	}
	logger := slog.New(slog.NewTextHandler(logOut, nil))

	return &session{
		db:     db,
		store:  services.NewPreferencesStore(db, logger),
		dbPath: path,
	}, nil
}

func newPathCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the storage database path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), opts.databasePath())
			return nil
		},
	}
}
