// Package txt reads and writes the tabbed text form of AnimData records, a tab
// separated table with one row per record and one FrameDataNNN column per frame slot.
// Columns are located by header name, not by position.
package txt

import (
	"encoding/csv"
	"fmt"
	"github.com/gostonefire/animdata"
	"io"
	"strconv"
)

// Column names of the three scalar record fields
const (
	columnCofName            = "CofName"
	columnFramesPerDirection = "FramesPerDirection"
	columnAnimationSpeed     = "AnimationSpeed"
)

// FileError - Custom error to inform that a tabbed text file is malformed or holds an
// invalid record field. Row and Column identify the failing cell where known and are -1
// otherwise; row 0 is the first row after the header.
type FileError struct {
	msg        string
	Row        int
	Column     int
	ColumnName string
}

// Error - Used to notify that a tabbed text file could not be processed
func (E FileError) Error() string {
	s := E.msg
	if E.Row >= 0 {
		s += fmt.Sprintf(" (row %d)", E.Row)
	}
	if E.ColumnName != "" {
		s += fmt.Sprintf(" (column %s)", E.ColumnName)
	} else if E.Column >= 0 {
		s += fmt.Sprintf(" (column %d)", E.Column)
	}

	return s
}

// Load - Reads AnimData records from the tabbed text in r, in row order. An empty input
// yields an empty record list. Any malformed row or invalid field aborts the whole load
// with a FileError; there is no partial recovery.
func Load(r io.Reader) (records []animdata.Record, err error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		err = nil
		return
	}
	if err != nil {
		err = FileError{msg: fmt.Sprintf("cannot parse tabbed text file: %v", err), Row: 0, Column: -1}
		return
	}

	columnIndices := make(map[string]int, len(header))
	for i, name := range header {
		columnIndices[name] = i
	}

	cofNameIndex, err := columnIndex(columnIndices, columnCofName)
	if err != nil {
		return
	}
	framesPerDirectionIndex, err := columnIndex(columnIndices, columnFramesPerDirection)
	if err != nil {
		return
	}
	animationSpeedIndex, err := columnIndex(columnIndices, columnAnimationSpeed)
	if err != nil {
		return
	}
	frameDataIndices := make([]int, animdata.FrameMax)
	for frame := 0; frame < animdata.FrameMax; frame++ {
		frameDataIndices[frame], err = columnIndex(columnIndices, frameDataColumn(frame))
		if err != nil {
			return
		}
	}

	var record animdata.Record
	for row := 0; ; row++ {
		cells, rErr := reader.Read()
		if rErr == io.EOF {
			break
		}
		if rErr != nil {
			err = FileError{msg: fmt.Sprintf("cannot parse tabbed text file: %v", rErr), Row: row, Column: -1}
			records = nil
			return
		}

		record, err = rowToRecord(cells, cofNameIndex, framesPerDirectionIndex, animationSpeedIndex, frameDataIndices)
		if err != nil {
			err = annotate(err, row, header)
			records = nil
			return
		}
		records = append(records, record)
	}

	return
}

// Dump - Writes records to w as tabbed text, in list order, with the header row first
func Dump(w io.Writer, records []animdata.Record) (err error) {
	writer := csv.NewWriter(w)
	writer.Comma = '\t'
	writer.UseCRLF = true

	header := make([]string, 0, 3+animdata.FrameMax)
	header = append(header, columnCofName, columnFramesPerDirection, columnAnimationSpeed)
	for frame := 0; frame < animdata.FrameMax; frame++ {
		header = append(header, frameDataColumn(frame))
	}
	err = writer.Write(header)
	if err != nil {
		return
	}

	row := make([]string, 0, len(header))
	for _, record := range records {
		codes := record.Triggers().FrameCodes()

		row = row[:0]
		row = append(row,
			record.CofName(),
			strconv.FormatUint(uint64(record.FramesPerDirection()), 10),
			strconv.FormatUint(uint64(record.AnimationSpeed()), 10),
		)
		for _, code := range codes {
			row = append(row, strconv.Itoa(int(code)))
		}
		err = writer.Write(row)
		if err != nil {
			return
		}
	}

	writer.Flush()
	err = writer.Error()

	return
}

// rowToRecord - Builds one record from the cells of a row. Returned FileErrors carry
// the failing column but not the row; the caller adds that via annotate.
func rowToRecord(cells []string, cofNameIndex, framesPerDirectionIndex, animationSpeedIndex int, frameDataIndices []int) (record animdata.Record, err error) {
	cofName, err := cell(cells, cofNameIndex)
	if err != nil {
		return
	}
	framesPerDirection, err := uint32Cell(cells, framesPerDirectionIndex)
	if err != nil {
		return
	}
	animationSpeed, err := uint32Cell(cells, animationSpeedIndex)
	if err != nil {
		return
	}

	var code uint8
	var trigger animdata.Trigger
	var triggerList []animdata.Trigger
	for frame, index := range frameDataIndices {
		code, err = codeCell(cells, index)
		if err != nil {
			return
		}
		if code == 0 {
			continue
		}
		trigger, err = animdata.NewTrigger(frame, code)
		if err != nil {
			err = FileError{msg: fmt.Sprintf("invalid record field: %v", err), Row: -1, Column: index}
			return
		}
		triggerList = append(triggerList, trigger)
	}
	triggers, err := animdata.NewActionTriggers(triggerList)
	if err != nil {
		err = FileError{msg: fmt.Sprintf("invalid record field: %v", err), Row: -1, Column: -1}
		return
	}

	record, err = animdata.NewRecord(cofName, framesPerDirection, animationSpeed, triggers)
	if err != nil {
		err = FileError{msg: fmt.Sprintf("invalid record field: %v", err), Row: -1, Column: cofNameIndex}
		return
	}

	return
}

// columnIndex - Returns the index of a named column
func columnIndex(columnIndices map[string]int, columnName string) (index int, err error) {
	index, ok := columnIndices[columnName]
	if !ok {
		err = FileError{msg: "missing column", Row: -1, Column: -1, ColumnName: columnName}
	}

	return
}

// cell - Returns the value of the cell at column in a row
func cell(cells []string, column int) (value string, err error) {
	if column >= len(cells) {
		err = FileError{msg: "missing cell", Row: -1, Column: column}
		return
	}
	value = cells[column]

	return
}

// uint32Cell - Returns the cell at column converted to a uint32
func uint32Cell(cells []string, column int) (value uint32, err error) {
	s, err := cell(cells, column)
	if err != nil {
		return
	}
	parsed, pErr := strconv.ParseUint(s, 10, 32)
	if pErr != nil {
		err = FileError{msg: fmt.Sprintf("cannot convert cell value %q to integer", s), Row: -1, Column: column}
		return
	}
	value = uint32(parsed)

	return
}

// codeCell - Returns the cell at column converted to a frame code byte
func codeCell(cells []string, column int) (code uint8, err error) {
	s, err := cell(cells, column)
	if err != nil {
		return
	}
	parsed, pErr := strconv.ParseUint(s, 10, 8)
	if pErr != nil {
		err = FileError{msg: fmt.Sprintf("cannot convert cell value %q to integer", s), Row: -1, Column: column}
		return
	}
	code = uint8(parsed)

	return
}

// annotate - Fills in the row, and the column name where the column is known, of a
// FileError produced while building a record
func annotate(err error, row int, header []string) error {
	fileErr, ok := err.(FileError)
	if !ok {
		return err
	}
	fileErr.Row = row
	if fileErr.ColumnName == "" && fileErr.Column >= 0 && fileErr.Column < len(header) {
		fileErr.ColumnName = header[fileErr.Column]
	}

	return fileErr
}

// frameDataColumn - Returns the header name of the frame data column for a frame
func frameDataColumn(frame int) string {
	return fmt.Sprintf("FrameData%03d", frame)
}
