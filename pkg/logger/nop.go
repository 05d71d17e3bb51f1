package logger

type nop struct{}

// NewNop returns a Logger that discards everything. Intended for tests.
func NewNop() Logger {
	return nop{}
}

func (nop) Debug(string, ...Field) {}
func (nop) Info(string, ...Field)  {}
func (nop) Warn(string, ...Field)  {}
func (nop) Error(string, ...Field) {}

func (n nop) With(...Field) Logger { return n }
