package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"vincit.fi/photo-report/api/apitype"
	"vincit.fi/photo-report/backend"
)

func newSetTimeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "set-time <id> <field> <value>",
		Short: "Set one timestamp field of an image",
		Long: `Sets one of the fields year, month, day, hour, minute or second.

Values are stored as typed. The year is printed as given, so enter ROC
years when the report should show them.`,
		Example: `  photo-report set-time DSC001.jpg year 108
  photo-report set-time DSC001.jpg month 09`,
		Args: cobra.ExactArgs(3),
		RunE: opts.withSession(true, func(cmd *cobra.Command, args []string, session *backend.Session) error {
			return session.RecordStore.UpdateTimestampField(apitype.RecordId(args[0]), args[1], args[2])
		}),
	}
}

func newUseImageTimeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "use-image-time <id> <true|false>",
		Short: "Use the EXIF capture time of the image as its timestamp",
		Args:  cobra.ExactArgs(2),
		RunE: opts.withSession(true, func(cmd *cobra.Command, args []string, session *backend.Session) error {
			value, err := parseFlag(args[1])
			if err != nil {
				return err
			}
			return session.RecordStore.UpdateUseImageTime(apitype.RecordId(args[0]), value)
		}),
	}
}

func newRotateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rotate <id> <true|false>",
		Short: "Mark an image to be rotated",
		Long:  `Stores the rotate flag of an image. The flag is kept in the session and in exports; reports do not rotate pictures.`,
		Args:  cobra.ExactArgs(2),
		RunE: opts.withSession(true, func(cmd *cobra.Command, args []string, session *backend.Session) error {
			value, err := parseFlag(args[1])
			if err != nil {
				return err
			}
			return session.RecordStore.UpdateRotateImage(apitype.RecordId(args[0]), value)
		}),
	}
}

func parseFlag(value string) (bool, error) {
	flag, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: '%s' is not true or false", apitype.ErrInvalidField, value)
	}
	return flag, nil
}
