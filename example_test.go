package mainline_test

import (
	"os"

	"github.com/ferrolite/mainline"
	"github.com/ferrolite/mainline/pkg/event"
	"github.com/ferrolite/mainline/pkg/log"
)

// Example shows a console application hosting its run phase inside the
// unified lifecycle: it runs until the OS asks it to terminate, then
// exits with the code the entry function returns.
func Example() {
	app, err := mainline.New(mainline.Descriptor{
		ShortName: "example",
		Version:   "1.0.0",
		DumpCallback: func(label string, reason interface{}) {
			// Write a crash artifact for label here.
		},
	},
		mainline.WithLogger(log.NewZerologAdapter()),
		mainline.WithConfigWatcher(),
	)
	if err != nil {
		os.Exit(mainline.ExitInitFailure)
	}

	os.Exit(app.Main(func() int {
		for evt := range app.Events() {
			if evt.Type() == event.TypeTerminationRequested {
				return mainline.ExitSuccess
			}
		}
		return mainline.ExitSuccess
	}))
}
