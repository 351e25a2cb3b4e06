package cmd

import (
	"errors"
	"log"
	"log/slog"
	"os"
	"simassert/src/assert"
	"simassert/src/config"
	"simassert/src/logging"
	"simassert/src/shell"
	"simassert/src/shutdown"
	"simassert/src/usererrors"
	"simassert/src/utils"
	"simassert/src/version"
	"strings"

	"github.com/alecthomas/kong"
)

var CLI struct {
	// Commands
	Check   checkArgs   `cmd:"" help:"assert a condition, print a diagnostic line and exit 1 if it does not hold"`
	Compose composeArgs `cmd:"" help:"print the diagnostic line of a classification without exiting"`
	Kinds   kindsArgs   `cmd:"" help:"list all error classifications and their message templates"`
	Config  struct{}    `cmd:"" help:"print application config in ENV format"`
	Version struct{}    `cmd:"" help:"print version information" default:"1"`
}

// ExitCodeUsage is the status for invalid arguments or configuration. It differs from
// usererrors.ExitCode so scripts can tell a failed assertion from a broken invocation.
const ExitCodeUsage = 2

// Execute runs the command line and returns the exit status for main. A failed assertion does
// not return: the reporter ends the process with usererrors.ExitCode.
func Execute(args []string) int {
	err := Run(args)
	if err != nil {
		log.Print(err)
		return ExitCodeUsage
	}
	return 0
}

func Run(args []string) error {
	//===============================================================
	//====================== Initialize Config ======================
	//===============================================================
	configModule := config.NewConfig()
	LoadConfigDeclarations(configModule)
	err := configModule.LoadEnvs()
	if err != nil {
		return err
	}
	err = configModule.Validate()
	if err != nil {
		return err
	}

	//===============================================================
	//====================== Initialize Logger ======================
	//===============================================================
	logLevel, logLevelErr := logging.ParseLogLevel(configModule.Get("SIMASSERT_LOG_LEVEL"))
	logFilter := []string{}
	for f := range strings.SplitSeq(configModule.Get("SIMASSERT_LOG_FILTER"), ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		logFilter = append(logFilter, f)
	}
	prettyPrintHandler := logging.NewPrettyPrintHandler(
		os.Stderr,
		shell.IsTerminal(os.Stderr),
		logLevel,
		logFilter,
	)
	var logDir *string
	if configModule.Get("SIMASSERT_LOG_DIR") != "" {
		logDir = utils.Pointer(configModule.Get("SIMASSERT_LOG_DIR"))
	}
	slogManager := logging.NewSlogManager(logging.SlogManagerOpts{
		LogLevel:           logLevel,
		AdditionalHandlers: []slog.Handler{prettyPrintHandler},
		LogDir:             logDir,
		Shutdown:           shutdown.DefaultShutdown,
	})
	cmdLogger := slogManager.CreateLogger("cmd")
	shutdown.DefaultShutdown.SetLogger(slogManager.CreateLogger("shutdown"))
	if logLevelErr != nil {
		cmdLogger.Warn("Error parsing log level. Using default log level: info", "error", logLevelErr)
	}

	//===============================================================
	//================== Initialize Assertion Path ==================
	//===============================================================
	reporter := usererrors.NewReporter(usererrors.ReporterOpts{
		Out:    os.Stderr,
		Exit:   shutdown.Abort,
		Colors: ColorEnabled(configModule.Get("SIMASSERT_COLOR"), os.Stderr),
		Logger: slogManager.CreateLogger("usererrors"),
	})
	usererrors.SetDefault(reporter)

	//===============================================================
	//========================= Parse Args ==========================
	//===============================================================
	parser, err := kong.New(
		&CLI,
		kong.Name("simassert"),
		kong.Description("fatal user error assertions for simulation configuration checks"),
		kong.Exit(shutdown.Exit),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: false,
			Summary: true,
			Tree:    true,
		}),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) {
			_ = parseErr.Context.PrintUsage(true)
		}
		return err
	}

	//===============================================================
	//======================= Execute Command =======================
	//===============================================================
	switch ctx.Command() {
	case "check <condition>":
		return RunCheck(&CLI.Check, reporter, cmdLogger)
	case "compose":
		return RunCompose(&CLI.Compose, os.Stdout)
	case "kinds":
		return RunKinds(&CLI.Kinds, os.Stdout)
	case "config":
		_, err := os.Stdout.WriteString(configModule.AsEnvs())
		return err
	case "version":
		return version.NewVersion().PrintVersionInfo(os.Stdout)
	default:
		return ctx.PrintUsage(true)
	}
}

func LoadConfigDeclarations(configModule *config.Config) {
	assert.Assert(configModule != nil)

	configModule.Declare(config.ConfigDeclaration{
		Key:          "SIMASSERT_LOG_LEVEL",
		DefaultValue: utils.Pointer("info"),
		Description:  utils.Pointer("minimum level of log records printed to stderr: debug, info, warn or error, unknown values fall back to info"),
	})
	configModule.Declare(config.ConfigDeclaration{
		Key:          "SIMASSERT_LOG_FILTER",
		DefaultValue: utils.Pointer(""),
		Description:  utils.Pointer("comma separated list of components to print logs for, empty prints all"),
		Validate:     config.Tag("printascii"),
	})
	configModule.Declare(config.ConfigDeclaration{
		Key:          "SIMASSERT_LOG_DIR",
		DefaultValue: utils.Pointer(""),
		Description:  utils.Pointer("directory for the rotated json log file, empty disables file logging"),
	})
	configModule.Declare(config.ConfigDeclaration{
		Key:          "SIMASSERT_COLOR",
		DefaultValue: utils.Pointer("auto"),
		Description:  utils.Pointer("color the diagnostic line of failed assertions"),
		Validate:     config.OneOf("auto", "always", "never"),
	})
}

// ColorEnabled resolves a SIMASSERT_COLOR mode for the given stream.
func ColorEnabled(mode string, stream *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return shell.IsTerminal(stream)
	}
}
