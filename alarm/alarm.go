// Package alarm builds the alarm callbacks taken by the guarded operations
// of chainfn, so that absent values can be logged and counted without
// writing the callbacks by hand.
//
//	a, err := alarm.New(alarm.WithZapLogger(logger), alarm.WithName("users"))
//	if err != nil {
//		return err
//	}
//	chainfn.ForEachWeak(rows, store, a.Signal)
//	user := chainfn.ApplySafe(id, lookup, alarm.For[int](a))
//
// chainfn itself never logs. An Alarm logs at warn level on every signal.
package alarm

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
	"go.uber.org/zap"
)

// DefaultMessage is logged when no message is configured.
const DefaultMessage = "absent value"

// Alarm logs and counts the absent values reported to it.
// An Alarm is safe for concurrent use.
type Alarm struct {
	name    string
	message string
	zap     *zap.Logger
	hclog   hclog.Logger
	count   atomic.Uint64
}

// New returns an Alarm configured by opt.
//
// Without a logger option the Alarm only counts signals.
func New(opt ...Option) (*Alarm, error) {
	opts, err := getOpts(opt...)
	if err != nil {
		return nil, err
	}

	a := &Alarm{
		name:    opts.withName,
		message: opts.withMessage,
		zap:     opts.withZapLogger,
		hclog:   opts.withHclogLogger,
	}
	if a.zap == nil {
		a.zap = zap.NewNop()
	}
	if a.name != "" {
		a.zap = a.zap.Named(a.name)
		if a.hclog != nil {
			a.hclog = a.hclog.Named(a.name)
		}
	}
	return a, nil
}

// Signal records one absent value. Its signature matches the alarm taken
// by chainfn.ForEachWeak and chainfn.ForEachStrict.
func (a *Alarm) Signal() {
	n := a.count.Add(1)
	a.zap.Warn(a.message, zap.Uint64("count", n))
	if a.hclog != nil {
		a.hclog.Warn(a.message, "count", n)
	}
}

// Count returns the number of signals recorded so far.
func (a *Alarm) Count() uint64 {
	return a.count.Load()
}

// For returns an alarm taking the input value that failed to produce a
// result, as expected by chainfn.ApplySafe. The value is logged along with
// the message.
func For[T any](a *Alarm) func(T) {
	if a == nil {
		panic(errors.New("alarm: For called with a nil Alarm"))
	}
	return func(v T) {
		n := a.count.Add(1)
		a.zap.Warn(a.message, zap.Any("value", v), zap.Uint64("count", n))
		if a.hclog != nil {
			a.hclog.Warn(a.message, "value", fmt.Sprintf("%v", v), "count", n)
		}
	}
}
