package chord

import (
	"github.com/HomingHamster/scale-and-chord-generator/model"
)

// RecordSize is the fixed width of one serialized chord: 1 for size,
// 1 for root, MaxSize for pitch classes padded with 0xFF.
const RecordSize = 2 + MaxSize

const padByte = 0xFF

// Serialize packs a chord candidate into a fixed-width record for the
// catalog files. Quality is not stored; it is recomputed on read.
func Serialize(c model.ChordCandidate) [RecordSize]byte {
	var res [RecordSize]byte
	res[0] = byte(len(c.PitchClasses))
	res[1] = byte(c.Root)
	for i := 2; i < RecordSize; i++ {
		res[i] = padByte
	}
	for i, pc := range c.PitchClasses {
		res[2+i] = byte(pc)
	}
	return res
}

func Deserialize(buf []byte) model.ChordCandidate {
	size := int(buf[0])
	var c model.ChordCandidate
	c.Root = model.PitchClass(buf[1])
	c.PitchClasses = make([]model.PitchClass, size)
	for i := 0; i < size; i++ {
		c.PitchClasses[i] = model.PitchClass(buf[2+i])
	}
	return c
}
