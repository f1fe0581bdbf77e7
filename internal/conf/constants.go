package conf

// BucketCount - Number of hash buckets in an AnimData.D2 file, one per possible hash value
const BucketCount int = 256

// RecordCountLength - Length of the record count prefixing each bucket - uint32 little-endian
const RecordCountLength int = 4

// CofNameLength - Exact number of significant characters in a COF name
const CofNameLength int = 7

// CofNameFieldLength - Length of the COF name field in a record, null-padded to 8 bytes
const CofNameFieldLength int = 8

// FramesPerDirectionOffset - Record offset to frames per direction - uint32 little-endian
const FramesPerDirectionOffset int = 8

// AnimationSpeedOffset - Record offset to animation speed - uint32 little-endian
const AnimationSpeedOffset int = 12

// FrameDataOffset - Record offset to the dense frame code array
const FrameDataOffset int = 16

// FrameMax - Number of frame slots in the frame code array of a record
const FrameMax int = 144

// RecordLength - Total length of one fixed-size record
const RecordLength int = FrameDataOffset + FrameMax

// CodeMin - Lowest valid trigger code
const CodeMin uint8 = 1

// CodeMax - Highest valid trigger code
const CodeMax uint8 = 3
