package animdata

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"github.com/gostonefire/animdata/internal/conf"
)

// bytesToRecord - Converts one fixed-size record at offset in buf to a Record.
// It returns the number of bytes consumed so the caller can advance its cursor.
func bytesToRecord(buf []byte, offset int) (record Record, n int, err error) {
	if offset < 0 || offset+conf.RecordLength > len(buf) {
		err = FormatError{msg: "cannot unpack record", Offset: offset}
		return
	}

	nameField := buf[offset : offset+conf.CofNameFieldLength]
	name := nameField
	if i := bytes.IndexByte(nameField, 0); i >= 0 {
		name = nameField[:i]
	}

	framesPerDirection := binary.LittleEndian.Uint32(buf[offset+conf.FramesPerDirectionOffset:])
	animationSpeed := binary.LittleEndian.Uint32(buf[offset+conf.AnimationSpeedOffset:])

	triggers, tErr := TriggersFromCodes(buf[offset+conf.FrameDataOffset : offset+conf.RecordLength])
	if tErr != nil {
		err = DataError{msg: fmt.Sprintf("invalid record field: %v", tErr), Offset: offset}
		return
	}

	record, rErr := NewRecord(string(name), framesPerDirection, animationSpeed, triggers)
	if rErr != nil {
		err = DataError{msg: fmt.Sprintf("invalid record field: %v", rErr), Offset: offset}
		return
	}

	n = conf.RecordLength

	return
}

// recordToBytes - Converts a Record to its fixed-size binary form. The COF name is
// written left-justified into its field and padded with null bytes. Records satisfy
// every field invariant by construction, so the conversion cannot fail.
func recordToBytes(record Record) (buf []byte) {
	buf = make([]byte, conf.RecordLength)

	copy(buf, record.cofName)
	binary.LittleEndian.PutUint32(buf[conf.FramesPerDirectionOffset:], record.framesPerDirection)
	binary.LittleEndian.PutUint32(buf[conf.AnimationSpeedOffset:], record.animationSpeed)

	codes := record.triggers.FrameCodes()
	copy(buf[conf.FrameDataOffset:], codes[:])

	return
}
