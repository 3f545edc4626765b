//go:build !windows

package termination

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/ferrolite/mainline/pkg/log"
)

// install registers the POSIX signal set. SIGKILL cannot be trapped and
// is only part of the classification table; SIGPIPE does not represent
// an intent to terminate and is explicitly ignored here so a dead peer
// never kills the process.
func (b *Bridge) install() func() {
	signal.Ignore(syscall.SIGPIPE)

	sigCh := make(chan os.Signal, 8)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

	done := make(chan struct{})
	go b.dispatch(sigCh, done)

	return func() {
		signal.Stop(sigCh)
		close(sigCh)
		<-done
	}
}

// dispatch drains the signal channel for the lifetime of the
// installation. The only work done per signal is classification, one
// log line and a non-blocking event post.
func (b *Bridge) dispatch(sigCh <-chan os.Signal, done chan<- struct{}) {
	defer close(done)
	for sig := range sigCh {
		req, post := ClassifySignal(sig)
		name := SignalName(sig)
		b.logger.Info("caught signal",
			log.String("signal", name),
			log.String("cause", req.Cause.String()),
		)
		if post {
			b.post(req, name)
		}
	}
}
