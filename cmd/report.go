package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"vincit.fi/photo-report/api/apitype"
	"vincit.fi/photo-report/backend"
	"vincit.fi/photo-report/common/util"
)

func newReportCmd(opts *options) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "report <out.docx>",
		Short: "Write the report document",
		Long: `Writes a Word document with two images per page in list order. Each
image gets its timestamp, its sequence number and an empty description row.

The title is printed on top of every page.`,
		Example: `  photo-report report site-visit.docx --title "工程照片"`,
		Args:    cobra.ExactArgs(1),
		RunE: opts.withSession(false, func(cmd *cobra.Command, args []string, session *backend.Session) error {
			if cmd.Flags().Changed("title") {
				session.RecordStore.SetReportTitle(title)
			}
			pages, err := session.Report(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d pages to %s\n", pages, args[0])
			return nil
		}),
	}

	cmd.Flags().StringVar(&title, "title", "", "title printed on every page")

	return cmd
}

func newPreviewCmd(opts *options) *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "preview <id> <out.png>",
		Short: "Write the image scaled to fit a display box",
		Long: `Writes the image scaled down to fit the box, keeping the aspect ratio.
Images that already fit are written as they are. The format follows the
extension of the output file.`,
		Args: cobra.ExactArgs(2),
		RunE: opts.withSession(false, func(cmd *cobra.Command, args []string, session *backend.Session) error {
			box := opts.params.PreviewSize()
			if cmd.Flags().Changed("width") || cmd.Flags().Changed("height") {
				box = apitype.SizeOf(width, height)
			}
			size, err := session.Preview(apitype.RecordId(args[0]), box, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s preview to %s\n", size, args[1])
			return nil
		}),
	}

	cmd.Flags().IntVar(&width, "width", util.DefaultPreviewWidth, "maximum width in pixels")
	cmd.Flags().IntVar(&height, "height", util.DefaultPreviewHeight, "maximum height in pixels")

	return cmd
}

func newResolveCmd(opts *options) *cobra.Command {
	var showTags bool

	cmd := &cobra.Command{
		Use:   "resolve <id>",
		Short: "Print the timestamp text the report would show",
		Args:  cobra.ExactArgs(1),
		RunE: opts.withSession(false, func(cmd *cobra.Command, args []string, session *backend.Session) error {
			value, err := session.Resolve(apitype.RecordId(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, value)

			if showTags {
				tags, err := util.LoadExifTags(args[0])
				if err != nil {
					return fmt.Errorf("%w: reading EXIF of '%s': %s", apitype.ErrIO, args[0], err)
				}
				for _, tag := range tags {
					fmt.Fprintf(out, "%s: %s\n", tag.Name, tag.Value)
				}
			}
			return nil
		}),
	}

	cmd.Flags().BoolVar(&showTags, "tags", false, "also print every EXIF tag of the image")

	return cmd
}
