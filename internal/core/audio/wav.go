package audio

import (
	"encoding/binary"
	"fmt"
)

// Speech synthesis returns raw little-endian 16-bit mono PCM at 24kHz.
const (
	pcmSampleRate    = 24000
	pcmBitsPerSample = 16
	pcmChannels      = 1
)

// WrapPCM wraps raw PCM bytes into a playable WAV container.
func WrapPCM(pcm []byte) ([]byte, error) {
	if len(pcm) == 0 {
		return nil, fmt.Errorf("empty audio payload")
	}

	byteRate := pcmSampleRate * pcmChannels * pcmBitsPerSample / 8
	blockAlign := pcmChannels * pcmBitsPerSample / 8

	buf := make([]byte, 44+len(pcm))
	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+len(pcm)))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16) // PCM chunk size
	binary.LittleEndian.PutUint16(buf[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(buf[22:24], pcmChannels)
	binary.LittleEndian.PutUint32(buf[24:28], pcmSampleRate)
	binary.LittleEndian.PutUint32(buf[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(buf[34:36], pcmBitsPerSample)
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(len(pcm)))
	copy(buf[44:], pcm)

	return buf, nil
}
