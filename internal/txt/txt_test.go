//go:build unit

package txt

import (
	"bytes"
	"github.com/gostonefire/animdata"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func testRecords(t *testing.T) []animdata.Record {
	t.Helper()

	t5, err := animdata.NewTrigger(5, 1)
	assert.NoError(t, err, "create trigger on frame 5")
	t10, err := animdata.NewTrigger(10, 2)
	assert.NoError(t, err, "create trigger on frame 10")
	triggers, err := animdata.NewActionTriggers([]animdata.Trigger{t5, t10})
	assert.NoError(t, err, "create action triggers")

	withTriggers, err := animdata.NewRecord("AAAAAAA", 20, 256, triggers)
	assert.NoError(t, err, "create record with triggers")
	plain, err := animdata.NewRecord("AAAAAAB", 30, 128, animdata.ActionTriggers{})
	assert.NoError(t, err, "create record without triggers")

	return []animdata.Record{withTriggers, plain}
}

func TestDump(t *testing.T) {
	t.Run("writes the header row first", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer

		// Execute
		err := Dump(&buf, nil)

		// Check
		assert.NoError(t, err, "dump empty record list")
		header := strings.SplitN(buf.String(), "\r\n", 2)[0]
		assert.True(t, strings.HasPrefix(header, "CofName\tFramesPerDirection\tAnimationSpeed\tFrameData000\t"), "header starts with the scalar columns")
		assert.True(t, strings.HasSuffix(header, "\tFrameData143"), "header ends with the last frame column")
		assert.Equal(t, 3+144, len(strings.Split(header, "\t")), "one column per field")
	})

	t.Run("writes one row per record with dense frame codes", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer

		// Execute
		err := Dump(&buf, testRecords(t))

		// Check
		assert.NoError(t, err, "dump records")
		lines := strings.Split(strings.TrimRight(buf.String(), "\r\n"), "\r\n")
		assert.Equal(t, 3, len(lines), "header plus two records")

		cells := strings.Split(lines[1], "\t")
		assert.Equal(t, "AAAAAAA", cells[0])
		assert.Equal(t, "20", cells[1])
		assert.Equal(t, "256", cells[2])
		assert.Equal(t, "1", cells[3+5], "code 1 on frame 5")
		assert.Equal(t, "2", cells[3+10], "code 2 on frame 10")
		assert.Equal(t, "0", cells[3+11], "no code on frame 11")
	})
}

func TestLoad(t *testing.T) {
	t.Run("round trips records through tabbed text", func(t *testing.T) {
		// Prepare
		records := testRecords(t)
		var buf bytes.Buffer
		err := Dump(&buf, records)
		assert.NoError(t, err, "dump records")

		// Execute
		loaded, err := Load(&buf)

		// Check
		assert.NoError(t, err, "load records")
		assert.Equal(t, records, loaded, "round trip through tabbed text")
	})

	t.Run("locates columns by header name, not position", func(t *testing.T) {
		// Prepare: scalar columns after the frame data, in swapped order
		var header strings.Builder
		for frame := 0; frame < animdata.FrameMax; frame++ {
			if frame > 0 {
				header.WriteByte('\t')
			}
			header.WriteString(frameDataColumn(frame))
		}
		header.WriteString("\tAnimationSpeed\tFramesPerDirection\tCofName")
		row := strings.TrimSuffix(strings.Repeat("0\t", animdata.FrameMax), "\t") + "\t256\t20\tAAAAAAA"
		in := header.String() + "\n" + row + "\n"

		// Execute
		records, err := Load(strings.NewReader(in))

		// Check
		assert.NoError(t, err, "load reordered columns")
		assert.Equal(t, 1, len(records))
		assert.Equal(t, "AAAAAAA", records[0].CofName())
		assert.Equal(t, uint32(20), records[0].FramesPerDirection())
		assert.Equal(t, uint32(256), records[0].AnimationSpeed())
	})

	t.Run("returns an empty record list for empty input", func(t *testing.T) {
		// Execute
		records, err := Load(strings.NewReader(""))

		// Check
		assert.NoError(t, err, "load empty input")
		assert.Empty(t, records)
	})

	t.Run("fails with the column name on a missing column", func(t *testing.T) {
		// Prepare
		in := "CofName\tFramesPerDirection\n"

		// Execute
		_, err := Load(strings.NewReader(in))

		// Check
		var fileErr FileError
		assert.ErrorAs(t, err, &fileErr, "missing column rejected")
		assert.Equal(t, "AnimationSpeed", fileErr.ColumnName)
	})

	t.Run("fails with row and column on a bad integer cell", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer
		err := Dump(&buf, testRecords(t))
		assert.NoError(t, err, "dump records")
		in := strings.Replace(buf.String(), "\t256\t", "\tx\t", 1)

		// Execute
		_, err = Load(strings.NewReader(in))

		// Check
		var fileErr FileError
		assert.ErrorAs(t, err, &fileErr, "bad integer rejected")
		assert.Equal(t, 0, fileErr.Row)
		assert.Equal(t, "AnimationSpeed", fileErr.ColumnName)
	})

	t.Run("fails on a missing cell", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer
		err := Dump(&buf, testRecords(t))
		assert.NoError(t, err, "dump records")
		lines := strings.Split(buf.String(), "\r\n")
		lines[2] = "AAAAAAB\t30" // Second record cut after two cells

		// Execute
		_, err = Load(strings.NewReader(strings.Join(lines, "\r\n")))

		// Check
		var fileErr FileError
		assert.ErrorAs(t, err, &fileErr, "missing cell rejected")
		assert.Equal(t, 1, fileErr.Row)
	})

	t.Run("fails on an invalid frame code", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer
		err := Dump(&buf, testRecords(t))
		assert.NoError(t, err, "dump records")
		in := strings.Replace(buf.String(), "\t20\t256\t0\t", "\t20\t256\t4\t", 1)

		// Execute
		_, err = Load(strings.NewReader(in))

		// Check
		var fileErr FileError
		assert.ErrorAs(t, err, &fileErr, "code 4 rejected")
		assert.Equal(t, "FrameData000", fileErr.ColumnName)
	})
}
