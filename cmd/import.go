package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <deck.json>...",
	Short: "Import words from JSON deck files",
	Long: `Import words from one or more JSON deck files. Each file holds an array of
words. Re-importing a word (same id, or same term) updates its content and
keeps its learning progress.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open deck: %w", err)
			}
			res, err := a.store.ImportDeck(ctx, f)
			f.Close()
			if err != nil {
				return fmt.Errorf("import %s: %w", path, err)
			}

			fmt.Fprintf(a.out, "%s: %d added, %d updated\n", path, res.Added, res.Updated)
			a.log.WithFields(logrus.Fields{
				"file":    path,
				"added":   res.Added,
				"updated": res.Updated,
			}).Debug("deck imported")
		}
		return nil
	},
}
