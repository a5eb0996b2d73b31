package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"vincit.fi/photo-report/backend"
)

func newExportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export <out.json>",
		Short: "Write the images in list order to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: opts.withSession(false, func(cmd *cobra.Command, args []string, session *backend.Session) error {
			if err := session.Export(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d images to %s\n", session.RecordStore.Len(), args[0])
			return nil
		}),
	}
}

func newImportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <in.json>",
		Short: "Replace all images with the contents of a JSON file",
		Long: `Replaces every image of the session with the entries of the file, in
file order. Unknown keys are ignored. The session is left unchanged when the
file is not an array of objects or an entry has no file_path.`,
		Args: cobra.ExactArgs(1),
		RunE: opts.withSession(true, func(cmd *cobra.Command, args []string, session *backend.Session) error {
			if err := session.Import(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d images from %s\n", session.RecordStore.Len(), args[0])
			return nil
		}),
	}
}
