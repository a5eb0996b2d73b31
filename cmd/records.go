package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"vincit.fi/photo-report/api/apitype"
	"vincit.fi/photo-report/backend"
	"vincit.fi/photo-report/common/util"
)

func newAddCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add <paths...>",
		Short: "Add images to the end of the list",
		Long: `Adds images to the end of the list with empty timestamp fields.

An image that is already in the list is reset to empty values but keeps its
place in the list.`,
		Args: cobra.MinimumNArgs(1),
		RunE: opts.withSession(true, func(cmd *cobra.Command, args []string, session *backend.Session) error {
			paths := util.NewSet(args...).Values()
			session.RecordStore.Add(paths)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d images, %d in total\n", len(paths), session.RecordStore.Len())
			return nil
		}),
	}
}

func newRemoveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an image from the list",
		Args:  cobra.ExactArgs(1),
		RunE: opts.withSession(true, func(cmd *cobra.Command, args []string, session *backend.Session) error {
			return session.RecordStore.Remove(apitype.RecordId(args[0]))
		}),
	}
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print the stored values of an image",
		Args:  cobra.ExactArgs(1),
		RunE: opts.withSession(false, func(cmd *cobra.Command, args []string, session *backend.Session) error {
			imageRecord, err := session.RecordStore.Get(apitype.RecordId(args[0]))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "file_path:      %s\n", imageRecord.Path())
			for _, field := range apitype.TimeFields() {
				fmt.Fprintf(out, "%-15s %s\n", string(field)+":", imageRecord.Time().Get(field))
			}
			fmt.Fprintf(out, "use_image_time: %t\n", imageRecord.UseImageTime())
			fmt.Fprintf(out, "rotate_image:   %t\n", imageRecord.RotateImage())
			return nil
		}),
	}
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the images in list order with their report timestamps",
		Args:  cobra.NoArgs,
		RunE: opts.withSession(false, func(cmd *cobra.Command, args []string, session *backend.Session) error {
			job, err := session.Job()
			if err != nil {
				return err
			}
			for i, imageRecord := range job.Records() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", i, imageRecord.Path(), session.TimestampResolver.Resolve(imageRecord))
			}
			return nil
		}),
	}
}

func newMoveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move an image to another place in the list",
		Long: `Moves the image at 0-based index <from> to index <to>. The images in
between shift by one. The list order is the page order of the report.`,
		Args: cobra.ExactArgs(2),
		RunE: opts.withSession(true, func(cmd *cobra.Command, args []string, session *backend.Session) error {
			if from, err := parseIndex(args[0]); err != nil {
				return err
			} else if to, err := parseIndex(args[1]); err != nil {
				return err
			} else {
				return session.RecordStore.Move(from, to)
			}
		}),
	}
}

func parseIndex(value string) (int, error) {
	index, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s' is not an index", apitype.ErrOutOfRange, value)
	}
	return index, nil
}
