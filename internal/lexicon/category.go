package lexicon

// Category identifies the behavioral signal a pattern detects.
// Manipulation categories are matched against other-speaker transcript
// segments; confidence categories are matched against authored text.
type Category int

const (
	CategoryUnknown Category = iota

	// Manipulation categories.
	Gaslighting
	GuiltTrip
	BlameShift
	Control
	Belittling

	// Confidence categories. Assured is the only positive one: it marks
	// language worth keeping, not language to fix.
	Hedge
	Apology
	SelfDeprecation
	PermissionSeeking
	Minimizer
	Assured
)

func (c Category) String() string {
	switch c {
	case Gaslighting:
		return "gaslighting"
	case GuiltTrip:
		return "guilt_trip"
	case BlameShift:
		return "blame_shift"
	case Control:
		return "control"
	case Belittling:
		return "belittling"
	case Hedge:
		return "hedge"
	case Apology:
		return "apology"
	case SelfDeprecation:
		return "self_deprecation"
	case PermissionSeeking:
		return "permission_seeking"
	case Minimizer:
		return "minimizer"
	case Assured:
		return "assured"
	default:
		return "unknown"
	}
}

// ParseCategory is the inverse of String. Unrecognized names map to
// CategoryUnknown rather than an error; persisted rows from older
// lexicon revisions should degrade, not fail.
func ParseCategory(s string) Category {
	switch s {
	case "gaslighting":
		return Gaslighting
	case "guilt_trip":
		return GuiltTrip
	case "blame_shift":
		return BlameShift
	case "control":
		return Control
	case "belittling":
		return Belittling
	case "hedge":
		return Hedge
	case "apology":
		return Apology
	case "self_deprecation":
		return SelfDeprecation
	case "permission_seeking":
		return PermissionSeeking
	case "minimizer":
		return Minimizer
	case "assured":
		return Assured
	default:
		return CategoryUnknown
	}
}

// MarshalText makes categories render as their names in JSON payloads.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a category name.
func (c *Category) UnmarshalText(b []byte) error {
	*c = ParseCategory(string(b))
	return nil
}
