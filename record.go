package animdata

import (
	"fmt"
	"github.com/gostonefire/animdata/internal/conf"
	"github.com/gostonefire/animdata/internal/hash"
	"unicode"
)

// CofNameLength - Exact number of characters in a COF name
const CofNameLength int = conf.CofNameLength

// Record - One AnimData record, i.e. the metadata of a single animation. Instances are
// immutable value objects and only obtained through NewRecord or by decoding; to derive
// a changed record, construct a new one.
type Record struct {
	cofName            string
	framesPerDirection uint32
	animationSpeed     uint32
	triggers           ActionTriggers
}

// NewRecord - Returns a Record after validating the COF name. The name must be exactly
// 7 ASCII characters with no null character among them; frames per direction and
// animation speed are full range uint32 values and carry no further constraint.
//
// A trigger frame at or beyond framesPerDirection is deliberately not rejected here, it
// is reported by FindOutOfBoundsTriggers instead so the caller can decide how hard to
// treat it.
func NewRecord(cofName string, framesPerDirection, animationSpeed uint32, triggers ActionTriggers) (record Record, err error) {
	if len(cofName) != conf.CofNameLength {
		err = ValidationError{
			msg:     fmt.Sprintf("cof name must have exactly %d characters (%q has %d)", conf.CofNameLength, cofName, len(cofName)),
			CofName: cofName,
			Field:   "cof_name",
		}
		return
	}
	for i := 0; i < len(cofName); i++ {
		if cofName[i] == 0 {
			err = ValidationError{
				msg:     fmt.Sprintf("cof name must not contain a null character (found in %q)", cofName),
				CofName: cofName,
				Field:   "cof_name",
			}
			return
		}
		if cofName[i] > unicode.MaxASCII {
			err = ValidationError{
				msg:     fmt.Sprintf("cof name must be ASCII (found byte 0x%02x in %q)", cofName[i], cofName),
				CofName: cofName,
				Field:   "cof_name",
			}
			return
		}
	}

	record = Record{
		cofName:            cofName,
		framesPerDirection: framesPerDirection,
		animationSpeed:     animationSpeed,
		triggers:           triggers,
	}

	return
}

// CofName - Returns the COF name of the record
func (R Record) CofName() string {
	return R.cofName
}

// FramesPerDirection - Returns the total frame count for one facing of the animation
func (R Record) FramesPerDirection() uint32 {
	return R.framesPerDirection
}

// AnimationSpeed - Returns the playback speed of the animation. The codec treats the
// value as opaque.
func (R Record) AnimationSpeed() uint32 {
	return R.animationSpeed
}

// Triggers - Returns the action triggers of the record
func (R Record) Triggers() ActionTriggers {
	return R.triggers
}

// Bucket - Returns the hash table bucket the record belongs to in the binary form
func (R Record) Bucket() int {
	return hash.Bucket(R.cofName)
}
