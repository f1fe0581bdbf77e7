package animdata

import (
	"fmt"
	"github.com/gostonefire/animdata/internal/conf"
	"sort"
)

// FrameMax - Number of frame slots in the frame data of a record, and hence the exclusive
// upper bound for trigger frames
const FrameMax int = conf.FrameMax

// Trigger - A single action trigger, i.e. a sound or event code fired when animation
// playback reaches one specific frame. Instances are immutable and only obtained through
// NewTrigger, which validates both fields.
type Trigger struct {
	frame int
	code  uint8
}

// NewTrigger - Returns a Trigger given a frame within [0, FrameMax) and a code
// within [1, 3].
func NewTrigger(frame int, code uint8) (trigger Trigger, err error) {
	if frame < 0 || frame >= conf.FrameMax {
		err = ValidationError{
			msg:   fmt.Sprintf("frame must be between 0 and %d (got %d)", conf.FrameMax-1, frame),
			Field: "frame",
		}
		return
	}
	if code < conf.CodeMin || code > conf.CodeMax {
		err = ValidationError{
			msg:   fmt.Sprintf("code must be between %d and %d (got %d)", conf.CodeMin, conf.CodeMax, code),
			Field: "code",
		}
		return
	}

	trigger = Trigger{frame: frame, code: code}

	return
}

// Frame - Returns the frame the trigger fires on
func (T Trigger) Frame() int {
	return T.frame
}

// Code - Returns the trigger code
func (T Trigger) Code() uint8 {
	return T.code
}

// ActionTriggers - The set of action triggers of one record, keyed by frame with at most
// one trigger per frame. Iteration over Triggers is sorted ascending by frame. The zero
// value is an empty set; non-empty sets are only obtained through NewActionTriggers or
// TriggersFromCodes, both of which validate every member.
type ActionTriggers struct {
	triggers []Trigger
}

// NewActionTriggers - Returns an ActionTriggers holding the given triggers sorted
// ascending by frame. Every trigger is validated as by NewTrigger, and two triggers on
// the same frame are rejected regardless of their codes.
func NewActionTriggers(triggers []Trigger) (actionTriggers ActionTriggers, err error) {
	// Empty sets keep a nil slice so that records compare equal no matter whether they
	// were constructed or decoded
	if len(triggers) == 0 {
		return
	}

	sorted := make([]Trigger, len(triggers))
	copy(sorted, triggers)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].frame < sorted[j].frame })

	for i, trigger := range sorted {
		_, err = NewTrigger(trigger.frame, trigger.code)
		if err != nil {
			return
		}
		if i > 0 && sorted[i-1].frame == trigger.frame {
			err = ValidationError{
				msg:   fmt.Sprintf("cannot assign two triggers to frame %d", trigger.frame),
				Field: "triggers",
			}
			return
		}
	}

	actionTriggers = ActionTriggers{triggers: sorted}

	return
}

// TriggersFromCodes - Returns an ActionTriggers built from a dense frame code array as
// stored in a record, where index is frame number and value is trigger code. Zero bytes
// are absent triggers, codes outside [1, 3] are rejected, and array positions beyond
// FrameMax are ignored.
func TriggersFromCodes(codes []uint8) (actionTriggers ActionTriggers, err error) {
	var trigger Trigger
	var triggers []Trigger
	for frame, code := range codes {
		if frame >= conf.FrameMax {
			break
		}
		if code == 0 {
			continue
		}
		trigger, err = NewTrigger(frame, code)
		if err != nil {
			return
		}
		triggers = append(triggers, trigger)
	}

	// Frames arrive in ascending order from the array index, no sort needed
	actionTriggers = ActionTriggers{triggers: triggers}

	return
}

// Len - Returns the number of triggers in the set
func (A ActionTriggers) Len() int {
	return len(A.triggers)
}

// Triggers - Returns the triggers sorted ascending by frame. The returned slice is a
// copy and can be modified freely by the caller.
func (A ActionTriggers) Triggers() []Trigger {
	triggers := make([]Trigger, len(A.triggers))
	copy(triggers, A.triggers)

	return triggers
}

// Code - Returns the code of the trigger on the given frame, or 0 when no trigger
// occupies it
func (A ActionTriggers) Code(frame int) uint8 {
	for _, trigger := range A.triggers {
		if trigger.frame == frame {
			return trigger.code
		}
		if trigger.frame > frame {
			break
		}
	}

	return 0
}

// FrameCodes - Returns the dense frame code array form of the set, with index as frame
// number and value as trigger code or 0 for frames without a trigger
func (A ActionTriggers) FrameCodes() (codes [conf.FrameMax]uint8) {
	for _, trigger := range A.triggers {
		codes[trigger.frame] = trigger.code
	}

	return
}
