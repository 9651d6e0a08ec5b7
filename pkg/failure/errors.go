package failure

type Severity int

// caller control flow
const (
	SeverityFatal Severity = iota
	SeverityRecoverable
)

func (s Severity) String() string {
	switch s {
	case SeverityFatal:
		return "fatal"
	case SeverityRecoverable:
		return "recoverable"
	default:
		return "unknown"
	}
}

// ClassifiedError is returned by every operation that crosses the network
// boundary. Severity tells the caller whether trying again can help.
type ClassifiedError interface {
	error
	Severity() Severity
}
