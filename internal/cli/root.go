// Package cli implements the notes command-line interface: a list view, a
// detail view, and add/edit/delete actions over the note store. Each
// invocation is one user action: it opens the configured backend, loads the
// notes, runs the command, and detaches.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/notes/internal/paths"
	"github.com/mesh-intelligence/notes/pkg/backend"
	"github.com/mesh-intelligence/notes/pkg/notes"
	"github.com/mesh-intelligence/notes/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// annotationNoSession marks commands that run without opening the store.
const annotationNoSession = "no-session"

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	backend   string
	jsonMode  bool
	verbose   bool
}

// session is the state shared by one invocation: resolved directories,
// configuration, logger, the attached backend and the loaded store.
type session struct {
	flags rootFlags

	configDir   string
	dataDir     string
	backendName string
	cfg         *viper.Viper
	logger      *zap.Logger
	backend     types.Backend
	store       *notes.Store
}

// newRootCmd creates the top-level "notes" command with global flags
// and all subcommands registered. Commands share s.
func newRootCmd(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:   "notes",
		Short: "Keep a short list of text notes",
		Long: `Notes keeps an ordered list of text notes and saves it after every change.

Notes are addressed by position, starting at 0, as printed by "notes list".`,
		Version:       notes.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationNoSession] != "" || cmd.Name() == "help" {
				return nil
			}
			return s.open(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&s.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/notes)")
	root.PersistentFlags().StringVar(&s.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/.notes-db)")
	root.PersistentFlags().StringVar(&s.flags.backend, "backend", "", "storage backend: sqlite, file, memory (default from config.yaml)")
	root.PersistentFlags().BoolVar(&s.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&s.flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(s))
	root.AddCommand(newListCmd(s))
	root.AddCommand(newShowCmd(s))
	root.AddCommand(newAddCmd(s))
	root.AddCommand(newEditCmd(s))
	root.AddCommand(newDeleteCmd(s))

	return root
}

// Execute runs the root command against the process arguments and exits with
// the appropriate code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns its exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	s := &session{}
	root := newRootCmd(s)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if closeErr := s.close(); closeErr != nil && err == nil {
		err = sysError(fmt.Errorf("detach backend: %w", closeErr))
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// open resolves directories, loads config.yaml, builds the logger, attaches
// the backend and initializes the store.
func (s *session) open(logOut io.Writer) error {
	configDir, err := paths.ResolveConfigDir(s.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError(fmt.Errorf("load config: %w", err))
	}

	logger, err := newLogger(logOut, cfg.GetString(cfgKeyLogLevel), s.flags.verbose)
	if err != nil {
		return userError(err)
	}

	dataDir, err := paths.ResolveDataDir(s.flags.dataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return sysError(fmt.Errorf("resolve data dir: %w", err))
	}

	backendName := cfg.GetString(cfgKeyBackend)
	if s.flags.backend != "" {
		backendName = s.flags.backend
	}
	b, err := backend.Open(types.Config{Backend: backendName, DataDir: dataDir}, logger)
	if err != nil {
		if errors.Is(err, types.ErrBackendUnknown) || errors.Is(err, types.ErrBackendEmpty) {
			return userError(fmt.Errorf("%w (valid: sqlite, file, memory)", err))
		}
		return sysError(err)
	}

	s.configDir = configDir
	s.dataDir = dataDir
	s.backendName = backendName
	s.cfg = cfg
	s.logger = logger
	s.backend = b

	s.store = notes.New(b, notes.WithLogger(logger))
	if err := s.store.Initialize(); err != nil {
		return sysError(err)
	}

	logger.Debug("session opened",
		zap.String("backend", backendName),
		zap.String("config_dir", configDir),
		zap.String("data_dir", dataDir),
	)
	return nil
}

// close detaches the backend and flushes the logger. Safe to call when open
// never ran or failed part way.
func (s *session) close() error {
	var err error
	if s.backend != nil {
		err = s.backend.Detach()
		s.backend = nil
	}
	if s.logger != nil {
		_ = s.logger.Sync()
	}
	return err
}
