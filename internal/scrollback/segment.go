package scrollback

import "fmt"

// Style tags a segment with the role it plays in the scrollback.
type Style int

const (
	Spacer Style = iota
	Stdout
	Stderr
	Command
	Error
)

// Styles lists every style in declaration order.
var Styles = []Style{Spacer, Stdout, Stderr, Command, Error}

// String returns the lower-case style name used in config files.
func (s Style) String() string {
	switch s {
	case Spacer:
		return "spacer"
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	case Command:
		return "command"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

// ParseStyle is the inverse of Style.String.
func ParseStyle(name string) (Style, bool) {
	for _, s := range Styles {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// IsStream reports whether output chunks may be appended to segments of s.
func (s Style) IsStream() bool { return s == Stdout || s == Stderr }

// Segment is one styled run of text.
type Segment struct {
	Style Style
	Text  string
}
