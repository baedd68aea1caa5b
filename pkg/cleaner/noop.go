package cleaner

// NoopCleaner passes content through without modification. Selection
// falls back to it when no option is enabled or every enabled cleaner
// failed, so the result always names the cleaner that produced it.
type NoopCleaner struct{}

// NewNoop creates a new no-op cleaner.
func NewNoop() *NoopCleaner {
	return &NoopCleaner{}
}

// Clean returns the input unchanged.
func (c *NoopCleaner) Clean(text string) (string, error) {
	return text, nil
}

// Name returns the cleaner type.
func (c *NoopCleaner) Name() string {
	return "noop"
}
