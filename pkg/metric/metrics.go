package metric

import "time"

type (
	Labels map[string]string

	Metrics interface {
		With(Labels) Metrics
		Increment(key string)
		Duration(key string, duration time.Duration)
	}
)

func NewStub() Metrics {
	return stub{}
}

type stub struct{}

func (s stub) With(Labels) Metrics {
	return s
}

func (s stub) Increment(string) {}

func (s stub) Duration(string, time.Duration) {}
