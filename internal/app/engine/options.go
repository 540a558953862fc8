package engine

// Options represents configuration options for the Engine.
type Options struct {
	PublishBuffer int
}

// DefaultEngineOptions returns the default engine options.
func DefaultEngineOptions() *Options {
	return &Options{
		PublishBuffer: 256,
	}
}
