// Package audio wraps raw PCM from the speech model into a playable WAV
// container.
package audio

import (
	"bytes"
	"encoding/binary"
)

// PCM format produced by the speech model: single channel, 24 kHz,
// 16-bit linear samples.
const (
	NumChannels   = 1
	SampleRate    = 24000
	BitsPerSample = 16
)

// WrapPCM prepends a canonical 44-byte RIFF/WAVE header to raw PCM data.
func WrapPCM(pcm []byte) []byte {
	blockAlign := NumChannels * BitsPerSample / 8
	byteRate := SampleRate * blockAlign

	var buf bytes.Buffer
	buf.Grow(44 + len(pcm))

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(NumChannels))
	binary.Write(&buf, binary.LittleEndian, uint32(SampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(BitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}
