package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"moviehub/internal/models"
	"moviehub/internal/services"
)

// fieldSetters maps CLI field names to a parser that applies the value
var fieldSetters = map[string]func(store *services.PreferencesStore, value string) error{
	"thumbnails": boolField(func(s *services.PreferencesStore, v bool) { s.SetEnableThumbnails(v) }),
	"autoplay":   boolField(func(s *services.PreferencesStore, v bool) { s.SetEnableAutoplay(v) }),
	"discover":   boolField(func(s *services.PreferencesStore, v bool) { s.SetEnableDiscover(v) }),
	"source-order": func(s *services.PreferencesStore, value string) error {
		s.SetSourceOrder(parseSourceList(value))
		return nil
	},
	"source-order-enabled": boolField(func(s *services.PreferencesStore, v bool) { s.SetEnableSourceOrder(v) }),
}

func boolField(set func(*services.PreferencesStore, bool)) func(*services.PreferencesStore, string) error {
	return func(s *services.PreferencesStore, value string) error {
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q (use true/false/1/0)", value)
		}
		set(s, v)
		return nil
	}
}

// parseSourceList splits a comma separated list, dropping blank entries
func parseSourceList(value string) []string {
	parts := lo.Map(strings.Split(value, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	return lo.Compact(parts)
}

func fieldNames() []string {
	names := lo.Keys(fieldSetters)
	slices.Sort(names)
	return names
}

func newShowCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printPreferences(cmd.OutOrStdout(), sess.store.State(), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the current preferences state as indented JSON")
	return cmd
}

func newSetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "set <field> <value>",
		Short:     "Set a preference field",
		Long:      "Set a preference field. Fields: " + strings.Join(fieldNames(), ", ") + ".\nsource-order takes a comma separated list; pass \"\" to clear it.",
		Args:      cobra.ExactArgs(2),
		ValidArgs: fieldNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, value := args[0], args[1]

			apply, ok := fieldSetters[field]
			if !ok {
				return fmt.Errorf("unknown field %q (valid: %s)", field, strings.Join(fieldNames(), ", "))
			}

			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := apply(sess.store, value); err != nil {
				return fmt.Errorf("%s: %w", field, err)
			}
			return printPreferences(cmd.OutOrStdout(), sess.store.State(), false)
		},
	}
}

func newResetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore default preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			defaults := models.DefaultPreferences()
			sess.store.SetEnableThumbnails(defaults.EnableThumbnails)
			sess.store.SetEnableAutoplay(defaults.EnableAutoplay)
			sess.store.SetEnableDiscover(defaults.EnableDiscover)
			sess.store.SetSourceOrder(defaults.SourceOrder)
			sess.store.SetEnableSourceOrder(defaults.EnableSourceOrder)

			return printPreferences(cmd.OutOrStdout(), sess.store.State(), false)
		},
	}
}

func printPreferences(w io.Writer, prefs models.PreferencesState, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(prefs.Clone())
	}

	order := "(none)"
	if len(prefs.SourceOrder) > 0 {
		order = strings.Join(prefs.SourceOrder, ", ")
	}

	fmt.Fprintf(w, "thumbnails:           %t\n", prefs.EnableThumbnails)
	fmt.Fprintf(w, "autoplay:             %t\n", prefs.EnableAutoplay)
	fmt.Fprintf(w, "discover:             %t\n", prefs.EnableDiscover)
	fmt.Fprintf(w, "source-order:         %s\n", order)
	fmt.Fprintf(w, "source-order-enabled: %t\n", prefs.EnableSourceOrder)
	return nil
}
