package monitor

import "fmt"

type State uint32

const (
	WaitingForActivation State = iota
	Submitted
	PollingForInclusion
	Confirmed
	Mismatch
	Failed
)

var stateNames = [...]string{
	WaitingForActivation: "WaitingForActivation",
	Submitted:            "Submitted",
	PollingForInclusion:  "PollingForInclusion",
	Confirmed:            "Confirmed",
	Mismatch:             "Mismatch",
	Failed:               "Failed",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint32(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IsTerminal reports whether no further transitions are possible.
func (s State) IsTerminal() bool {
	return s == Confirmed || s == Mismatch || s == Failed
}
