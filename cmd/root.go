package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"vincit.fi/photo-report/backend"
	"vincit.fi/photo-report/common/logger"
	"vincit.fi/photo-report/common/util"
)

type options struct {
	sessionFile string
	configFile  string
	logLevel    string

	params *util.Params
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "photo-report",
		Short: "Build photo documentation reports from timestamped images",
		Long: `Photo-report keeps an ordered list of images with capture timestamps
in a session file and lays them out two per page into a Word document.

The timestamp of an image is either typed in field by field or read from
the EXIF capture time of the image, printed in the ROC calendar.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			return opts.initialize(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.sessionFile, "session", util.DefaultSessionFile, "session snapshot file")
	flags.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	flags.StringVar(&opts.logLevel, "log-level", util.DefaultLogLevel, "ERROR, WARN, INFO, DEBUG or TRACE")

	cmd.AddCommand(newAddCmd(opts))
	cmd.AddCommand(newRemoveCmd(opts))
	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newMoveCmd(opts))
	cmd.AddCommand(newSetTimeCmd(opts))
	cmd.AddCommand(newUseImageTimeCmd(opts))
	cmd.AddCommand(newRotateCmd(opts))
	cmd.AddCommand(newExportCmd(opts))
	cmd.AddCommand(newImportCmd(opts))
	cmd.AddCommand(newReportCmd(opts))
	cmd.AddCommand(newPreviewCmd(opts))
	cmd.AddCommand(newResolveCmd(opts))

	return cmd
}

// initialize builds the parameters: flag over environment over YAML over
// default.
func (s *options) initialize(cmd *cobra.Command) error {
	params := util.NewParams()
	if s.configFile != "" {
		if err := params.LoadFile(s.configFile); err != nil {
			return err
		}
	}
	params.ApplyEnvironment(os.LookupEnv)

	flags := cmd.Flags()
	if flags.Changed("session") {
		params.SetSessionFile(s.sessionFile)
	}
	if flags.Changed("log-level") {
		params.SetLogLevel(s.logLevel)
	}

	logLevel, ok := logger.ParseLogLevel(params.LogLevel())
	if !ok {
		return fmt.Errorf("invalid log level '%s'", params.LogLevel())
	}
	logger.Initialize(logLevel, cmd.ErrOrStderr())
	logger.Debug.Printf("Session file '%s'", params.SessionFile())

	s.params = params
	return nil
}

type sessionFunc func(cmd *cobra.Command, args []string, session *backend.Session) error

// withSession loads the session before fn. The session is written back when
// fn succeeds and save is set.
func (s *options) withSession(save bool, fn sessionFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		session := backend.NewSession(s.params)
		if err := session.Load(); err != nil {
			return err
		}
		if err := fn(cmd, args, session); err != nil {
			return err
		}
		if save {
			return session.Save()
		}
		return nil
	}
}
