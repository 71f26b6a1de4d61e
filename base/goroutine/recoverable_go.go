package goroutine

import (
	"runtime/debug"

	"github.com/gaslex/goapi/base/log"
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

type options struct {
	beforeStart    func()
	afterEnded     func()
	afterRecovered func(panic interface{}, stack []byte)
	logger         log.Logger
}

type Option func(*options)

func WithBeforeStart(f func()) Option {
	return func(o *options) {
		o.beforeStart = f
	}
}

func WithAfterEnded(f func()) Option {
	return func(o *options) {
		o.afterEnded = f
	}
}

func WithAfterRecovered(f func(panic interface{}, stack []byte)) Option {
	return func(o *options) {
		o.afterRecovered = f
	}
}

// WithLogger sets the logger the recovered panic is reported on
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// RecoverableGo runs f on a new goroutine. The returned channel receives the
// panic if f panics and is closed otherwise.
func RecoverableGo(f func(), opts ...Option) chan *PanicEvent {
	o := options{logger: log.Log()}
	for _, opt := range opts {
		opt(&o)
	}

	panicChan := make(chan *PanicEvent, 1)

	go func() {
		defer func() {
			if o.afterEnded != nil {
				o.afterEnded()
			}

			if p := recover(); p != nil {
				stack := debug.Stack()

				o.logger.WithFields(log.Fields{
					"err":   p,
					"stack": string(stack),
				}).Error("panic")

				if o.afterRecovered != nil {
					o.afterRecovered(p, stack)
				}

				panicChan <- &PanicEvent{p, stack}
			} else {
				close(panicChan)
			}
		}()

		if o.beforeStart != nil {
			o.beforeStart()
		}

		f()
	}()

	return panicChan
}
