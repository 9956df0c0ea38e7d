package voyager

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// newLogger returns a level/subsys keyed logfmt logger, the same shape the
// teacher attaches to every Spacecraft via SCLogInit: a synchronized
// stdout writer wrapped with a static key/value pair identifying the
// component, so orchestrator/solver/action-model lines can be grepped
// independently when several runs are interleaved in a test log.
func newLogger(subsys string) kitlog.Logger {
	l := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	l = kitlog.With(l, "subsys", subsys)
	return l
}

// nopLogger is used by components constructed without an explicit logger
// (unit tests, library callers who don't want stdout chatter).
func nopLogger() kitlog.Logger {
	return kitlog.NewNopLogger()
}
