// Package animdata implements the binary codec for the AnimData.D2 animation table
// used by Diablo II, together with validated in-memory record types, JSON interchange
// and integrity diagnostics. The binary form is a fixed table of 256 hash buckets,
// each prefixed by a little-endian uint32 record count and followed by that many
// fixed-size records. A record's bucket is never stored; it is implied by position and
// bound to the record contents through the COF name hash, which the decoder verifies.
//
// The codec is purely synchronous and keeps no state between calls; decoding and
// encoding of independent tables can run concurrently without coordination.
package animdata

import (
	"encoding/binary"
	"fmt"
	"github.com/gostonefire/animdata/internal/conf"
	"github.com/gostonefire/animdata/internal/hash"
	"io"
	"sort"
)

// BucketCount - Number of hash buckets in an AnimData.D2 file
const BucketCount int = conf.BucketCount

// Decode - Decodes a complete AnimData.D2 table from data.
//
// Records are returned bucket by bucket in bucket number order, preserving the stored
// order within each bucket. Decoding verifies that every record resides in the bucket
// its COF name hashes to, and that the buckets consume data exactly; any violation
// aborts the whole decode with a FormatError or DataError carrying the byte offset.
// There is no partial recovery.
func Decode(data []byte) (records []Record, err error) {
	var record Record
	var n int

	offset := 0
	for bucket := 0; bucket < conf.BucketCount; bucket++ {
		if offset+conf.RecordCountLength > len(data) {
			err = FormatError{msg: fmt.Sprintf("cannot unpack record count for bucket %d", bucket), Offset: offset}
			records = nil
			return
		}
		recordCount := int(binary.LittleEndian.Uint32(data[offset:]))
		offset += conf.RecordCountLength

		for i := 0; i < recordCount; i++ {
			record, n, err = bytesToRecord(data, offset)
			if err != nil {
				records = nil
				return
			}
			if h := hash.Bucket(record.CofName()); h != bucket {
				err = DataError{
					msg:    fmt.Sprintf("incorrect hash for cof name %q: expected %d but got %d", record.CofName(), bucket, h),
					Offset: offset,
				}
				records = nil
				return
			}
			records = append(records, record)
			offset += n
		}
	}

	if offset != len(data) {
		err = FormatError{
			msg:    fmt.Sprintf("data size mismatch: buckets use %d bytes but input is %d bytes", offset, len(data)),
			Offset: offset,
		}
		records = nil
		return
	}

	return
}

// Encode - Encodes records into the AnimData.D2 hash table form.
//
// Each record is routed to the bucket its COF name hashes to, preserving encounter
// order within a bucket, and buckets are emitted in bucket number order. Records are
// not deduplicated; the format is a hash routed multiset, so two records sharing a COF
// name are both kept (see FindDuplicateCofNames for flagging them). Records satisfy
// their invariants by construction, so encoding cannot fail.
func Encode(records []Record) (data []byte) {
	buckets := make([][]Record, conf.BucketCount)
	for _, record := range records {
		b := hash.Bucket(record.CofName())
		buckets[b] = append(buckets[b], record)
	}

	data = make([]byte, 0, conf.BucketCount*conf.RecordCountLength+len(records)*conf.RecordLength)
	var count [conf.RecordCountLength]byte
	for _, bucket := range buckets {
		binary.LittleEndian.PutUint32(count[:], uint32(len(bucket)))
		data = append(data, count[:]...)
		for _, record := range bucket {
			data = append(data, recordToBytes(record)...)
		}
	}

	return
}

// Load - Reads a complete AnimData.D2 table from r and decodes it as by Decode
func Load(r io.Reader) (records []Record, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	records, err = Decode(data)

	return
}

// Dump - Encodes records as by Encode and writes the result to w
func Dump(w io.Writer, records []Record) (err error) {
	_, err = w.Write(Encode(records))

	return
}

// SortRecordsByCofName - Sorts records in place by COF name in byte order. The sort is
// stable, so records sharing a COF name keep their relative order.
func SortRecordsByCofName(records []Record) {
	sort.SliceStable(records, func(i, j int) bool { return records[i].cofName < records[j].cofName })
}
