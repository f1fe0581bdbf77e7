package animdata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// recordJSON - Interchange form of a record. Triggers is kept raw so that the frame
// keys can be emitted ascending by frame rather than in Go map order.
type recordJSON struct {
	CofName            *string         `json:"cof_name"`
	FramesPerDirection *uint32         `json:"frames_per_direction"`
	AnimationSpeed     *uint32         `json:"animation_speed"`
	Triggers           json.RawMessage `json:"triggers"`
}

// MarshalJSON - Encodes the record as its JSON interchange form. The triggers object
// maps decimal frame numbers to codes with keys ascending by frame.
func (R Record) MarshalJSON() ([]byte, error) {
	var triggers bytes.Buffer
	triggers.WriteByte('{')
	for i, trigger := range R.triggers.triggers {
		if i > 0 {
			triggers.WriteByte(',')
		}
		fmt.Fprintf(&triggers, "%q:%d", strconv.Itoa(trigger.frame), trigger.code)
	}
	triggers.WriteByte('}')

	return json.Marshal(recordJSON{
		CofName:            &R.cofName,
		FramesPerDirection: &R.framesPerDirection,
		AnimationSpeed:     &R.animationSpeed,
		Triggers:           triggers.Bytes(),
	})
}

// UnmarshalJSON - Decodes a record from its JSON interchange form, re-validating every
// field as by NewRecord. All four keys are required; trigger frame keys are decimal
// strings since JSON has no integer mapping keys.
func (R *Record) UnmarshalJSON(data []byte) error {
	var aux struct {
		CofName            *string          `json:"cof_name"`
		FramesPerDirection *uint32          `json:"frames_per_direction"`
		AnimationSpeed     *uint32          `json:"animation_speed"`
		Triggers           map[string]uint8 `json:"triggers"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch {
	case aux.CofName == nil:
		return fmt.Errorf("missing key cof_name")
	case aux.FramesPerDirection == nil:
		return fmt.Errorf("missing key frames_per_direction")
	case aux.AnimationSpeed == nil:
		return fmt.Errorf("missing key animation_speed")
	case aux.Triggers == nil:
		return fmt.Errorf("missing key triggers")
	}

	triggerList := make([]Trigger, 0, len(aux.Triggers))
	for frameKey, code := range aux.Triggers {
		frame, err := strconv.Atoi(frameKey)
		if err != nil {
			return fmt.Errorf("trigger frame must be an integer (got %q)", frameKey)
		}
		trigger, err := NewTrigger(frame, code)
		if err != nil {
			return err
		}
		triggerList = append(triggerList, trigger)
	}
	triggers, err := NewActionTriggers(triggerList)
	if err != nil {
		return err
	}

	record, err := NewRecord(*aux.CofName, *aux.FramesPerDirection, *aux.AnimationSpeed, triggers)
	if err != nil {
		return err
	}
	*R = record

	return nil
}
