package audio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPCM(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04}

	wav, err := WrapPCM(pcm)
	require.NoError(t, err)
	require.Len(t, wav, 44+len(pcm))

	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, "fmt ", string(wav[12:16]))
	assert.Equal(t, "data", string(wav[36:40]))

	assert.Equal(t, uint32(36+len(pcm)), binary.LittleEndian.Uint32(wav[4:8]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[20:22]), "PCM format")
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[22:24]), "mono")
	assert.Equal(t, uint32(24000), binary.LittleEndian.Uint32(wav[24:28]), "sample rate")
	assert.Equal(t, uint32(48000), binary.LittleEndian.Uint32(wav[28:32]), "byte rate")
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(wav[34:36]), "bit depth")
	assert.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(wav[40:44]))
	assert.Equal(t, pcm, wav[44:])
}

func TestWrapPCMEmpty(t *testing.T) {
	_, err := WrapPCM(nil)
	assert.Error(t, err)
}
