package app

// Main is the console/daemon entry adapter. It initializes the
// lifecycle, installs the termination bridge, hosts the run phase on the
// calling thread and shuts down, returning the run phase's exit code.
//
// Initialization failure is the only condition reported to the OS as a
// failure status; the run phase is never reached in that case.
func (a *App) Main(entry EntryFunc) int {
	if err := a.initialize(); err != nil {
		return ExitInitFailure
	}

	a.bridge.Install()

	code := a.runEntry(entry)

	a.teardown()
	a.ctrl.Shutdown()
	return code
}
