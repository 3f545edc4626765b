package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/ferrolite/mainline"
	"github.com/ferrolite/mainline/internal/config"
	"github.com/ferrolite/mainline/internal/termination"
	"github.com/ferrolite/mainline/pkg/event"
	"github.com/ferrolite/mainline/pkg/log"
)

const longHelp = `mainlined hosts a process inside the unified lifecycle: initialize,
guarded run, shutdown. Native interrupt and shutdown notifications are
translated into termination events; the daemon exits with the
conventional code for the cause that ended it.`

const exampleUsage = `  mainlined
  mainlined --config /etc/mainlined/config.toml --daemon
  mainlined --debug`

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	logger := log.NewZerologAdapter()

	var (
		cfgPath     string
		daemon      bool
		debugMode   bool
		watchConfig bool
	)

	root := &cobra.Command{
		Use:     "mainlined",
		Short:   "Host a process inside the unified lifecycle",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Explicitly-set flags override both file and environment.
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			opts := []mainline.Option{
				mainline.WithLogger(logger),
				mainline.WithConfigFile(cfgPath),
			}
			if changed["daemon"] {
				opts = append(opts, mainline.WithConfigOverride(config.ScopeApplication, config.KeyDaemon, daemon))
			}
			if changed["debug"] {
				opts = append(opts, mainline.WithDebug(debugMode))
			}
			if watchConfig {
				opts = append(opts, mainline.WithConfigWatcher())
			}

			app, err := mainline.New(mainline.Descriptor{
				ShortName: "mainlined",
				Version:   getVersion(),
			}, opts...)
			if err != nil {
				return err
			}

			os.Exit(app.Main(func() int {
				return waitForTermination(app, logger)
			}))
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: ~/.mainlined/config.toml)")
	root.Flags().BoolVar(&daemon, "daemon", false, "daemon mode: session logoff does not terminate the process")
	root.Flags().BoolVar(&debugMode, "debug", false, "bypass the crash guard for in-process debugging")
	root.Flags().BoolVar(&watchConfig, "watch-config", false, "reload the config file when it changes")

	if err := root.Execute(); err != nil {
		logger.Error("mainlined", log.Err(err))
		os.Exit(1)
	}
}

// waitForTermination blocks until a termination request arrives and maps
// its cause to the conventional process exit code.
func waitForTermination(app *mainline.App, logger log.Logger) int {
	for evt := range app.Events() {
		if evt.Type() != event.TypeTerminationRequested {
			continue
		}
		cause := terminationCause(evt)
		logger.Info("termination requested", log.String("cause", cause))
		switch cause {
		case termination.CauseUserInterrupt.String():
			return mainline.ExitInterrupt
		case termination.CauseSystemShutdown.String(), termination.CauseSystemLogoff.String():
			return mainline.ExitTerminate
		default:
			return mainline.ExitSuccess
		}
	}
	return mainline.ExitSuccess
}

func terminationCause(evt cloudevents.Event) string {
	var payload termination.Payload
	if err := evt.DataAs(&payload); err != nil {
		return termination.CauseUnknown.String()
	}
	return payload.Cause
}
