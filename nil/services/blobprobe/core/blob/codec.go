package blob

import (
	"fmt"

	"github.com/NilFoundation/blobprobe/nil/common/check"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto/kzg4844"
)

// Blob is exactly Profile.BlobSize() bytes of field elements.
type Blob []byte

func (b Blob) Hex() string {
	return hexutil.Encode(b)
}

// KZG converts the blob into the fixed-size representation used by the KZG library.
// Only blobs of the mainnet size can be converted.
func (b Blob) KZG() (*kzg4844.Blob, error) {
	var res kzg4844.Blob
	if len(b) != len(res) {
		return nil, fmt.Errorf("%w: %d bytes, kzg blob needs %d", ErrInvalidBlobSize, len(b), len(res))
	}
	copy(res[:], b)
	return &res, nil
}

// Codec packs arbitrary payloads into blobs and back.
// Every field element carries BytesPerFieldElement-1 data bytes followed by a zero byte,
// which keeps it below the BLS12-381 modulus. The payload is terminated by a single 0x80 byte
// followed by zero padding.
type Codec struct {
	profile Profile
}

func NewCodec(profile Profile) Codec {
	check.PanicIfErr(profile.Validate())
	return Codec{profile: profile}
}

func (c Codec) Profile() Profile {
	return c.profile
}

// BlobCount reserves room for the sentinel, so a payload filling whole blobs takes one more.
func (c Codec) BlobCount(payloadLen int) int {
	useful := c.profile.UsefulBytesPerBlob()
	return (payloadLen + 1 + useful - 1) / useful
}

func (c Codec) Encode(payload []byte) ([]Blob, error) {
	if len(payload) == 0 {
		return nil, ErrInvalidInput
	}
	if maxLen := c.profile.MaxUsefulBytesPerTx(); len(payload) > maxLen {
		return nil, fmt.Errorf("%w: %d bytes, at most %d fit into %d blobs",
			ErrPayloadTooLarge, len(payload), maxLen, c.profile.MaxBlobsPerTx)
	}

	blobCount := c.BlobCount(len(payload))
	padded := c.pad(payload, blobCount)

	useful := c.profile.UsefulBytesPerBlob()
	blobs := make([]Blob, 0, blobCount)
	for i := range blobCount {
		blobs = append(blobs, c.packFieldElements(padded[i*useful:(i+1)*useful]))
	}
	return blobs, nil
}

func (c Codec) pad(payload []byte, blobCount int) []byte {
	padded := make([]byte, blobCount*c.profile.UsefulBytesPerBlob())
	copy(padded, payload)
	padded[len(payload)] = sentinelByte
	return padded
}

func (c Codec) packFieldElements(chunk []byte) Blob {
	usable := c.profile.UsableBytesPerFieldElement()
	width := c.profile.BytesPerFieldElement

	blob := make(Blob, c.profile.BlobSize())
	for i := range c.profile.FieldElementsPerBlob {
		// the last byte of every element stays zero
		copy(blob[i*width:i*width+usable], chunk[i*usable:(i+1)*usable])
	}
	return blob
}

// Decode reverses Encode. The payload ends right before the last 0x80 byte
// that is followed only by zeros, so payloads containing 0x80 survive the round trip.
func (c Codec) Decode(blobs []Blob) ([]byte, error) {
	if len(blobs) == 0 {
		return nil, ErrEmptyBlobSet
	}

	usable := c.profile.UsableBytesPerFieldElement()
	width := c.profile.BytesPerFieldElement

	data := make([]byte, 0, len(blobs)*c.profile.UsefulBytesPerBlob())
	for blobIdx, blob := range blobs {
		if len(blob) != c.profile.BlobSize() {
			return nil, fmt.Errorf("%w: blob %d has %d bytes, expected %d",
				ErrInvalidBlobSize, blobIdx, len(blob), c.profile.BlobSize())
		}
		for i := range c.profile.FieldElementsPerBlob {
			element := blob[i*width : (i+1)*width]
			if element[usable] != 0 {
				return nil, fmt.Errorf("%w: blob %d, element %d", ErrNonCanonicalElement, blobIdx, i)
			}
			data = append(data, element[:usable]...)
		}
	}

	end := len(data) - 1
	for end >= 0 && data[end] == 0 {
		end--
	}
	if end < 0 || data[end] != sentinelByte {
		return nil, ErrMissingSentinel
	}
	return data[:end], nil
}
