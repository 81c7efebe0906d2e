package chrome

// SystemButton is the logical role of a window control.
type SystemButton int

const (
	// Unknown is a sentinel and never a valid registration target.
	Unknown SystemButton = iota
	WindowIcon
	Help
	Minimize
	Maximize
	Close

	buttonCount
)

// String returns the lower-case role name used in scene files.
func (b SystemButton) String() string {
	switch b {
	case WindowIcon:
		return "window-icon"
	case Help:
		return "help"
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	case Close:
		return "close"
	default:
		return "unknown"
	}
}

// ParseSystemButton maps a role name back to its SystemButton. It returns
// Unknown and false for names that do not denote a registrable role.
func ParseSystemButton(name string) (SystemButton, bool) {
	for b := WindowIcon; b < buttonCount; b++ {
		if b.String() == name {
			return b, true
		}
	}
	return Unknown, false
}

// SystemButtons returns the registrable roles in hit-test order.
func SystemButtons() []SystemButton {
	out := make([]SystemButton, 0, buttonCount-1)
	for b := WindowIcon; b < buttonCount; b++ {
		out = append(out, b)
	}
	return out
}

func (b SystemButton) valid() bool {
	return b > Unknown && b < buttonCount
}
