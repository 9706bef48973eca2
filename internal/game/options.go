package game

// OptionsKind classifies how a choice list may be answered.
type OptionsKind int

const (
	// OptionsMandatory requires the caller to pick one of the listed
	// options.
	OptionsMandatory OptionsKind = iota
	// OptionsOptional allows the caller to decline by resolving with no
	// choice.
	OptionsOptional
	// OptionsWithDefault allows declining; the engine then picks a default.
	OptionsWithDefault
)

// Choice is one selectable option presented to the caller.
type Choice struct {
	Index int
	Label string
}

// Options is the option list presented for the current pending step.
type Options struct {
	Kind    OptionsKind
	Choices []Choice
}

// IsEmpty reports whether there is nothing to choose.
func (o Options) IsEmpty() bool { return len(o.Choices) == 0 }

// ResolutionResult is the outcome of one resolution step.
type ResolutionResult int

const (
	// Complete means the pending queue drained and all effects settled.
	Complete ResolutionResult = iota
	// TryAgain means internal work happened; call Resolve again with no
	// choice.
	TryAgain
	// PendingChoice means the caller must supply a choice index.
	PendingChoice
)

// String returns the display name of the resolution result.
func (r ResolutionResult) String() string {
	switch r {
	case Complete:
		return "complete"
	case TryAgain:
		return "try again"
	case PendingChoice:
		return "pending choice"
	}
	return "unknown"
}
