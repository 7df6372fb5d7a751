package blob

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"
)

type CodecTestSuite struct {
	suite.Suite

	mainnet Codec
	devnet  Codec
}

func (s *CodecTestSuite) SetupSuite() {
	mainnet, err := ProfileByName(ProfileMainnet)
	s.Require().NoError(err)
	devnet, err := ProfileByName(ProfileDevnet)
	s.Require().NoError(err)

	s.mainnet = NewCodec(mainnet)
	s.devnet = NewCodec(devnet)
}

func (s *CodecTestSuite) TestHello() {
	blobs, err := s.mainnet.Encode([]byte("hello"))
	s.Require().NoError(err)
	s.Require().Len(blobs, 1)
	s.Require().Len(blobs[0], 131072)

	padded := s.mainnet.pad([]byte("hello"), 1)
	s.Equal([]byte{0x68, 0x65, 0x6c, 0x6c, 0x6f, 0x80, 0x00, 0x00}, padded[:8])

	element := make([]byte, 32)
	copy(element, []byte{0x68, 0x65, 0x6c, 0x6c, 0x6f, 0x80})
	s.Equal(element, []byte(blobs[0][:32]))
	s.Equal(bytes.Repeat([]byte{0}, len(blobs[0])-32), []byte(blobs[0][32:]))

	decoded, err := s.mainnet.Decode(blobs)
	s.Require().NoError(err)
	s.Equal([]byte("hello"), decoded)
}

func (s *CodecTestSuite) TestBlobCount() {
	useful := s.mainnet.Profile().UsefulBytesPerBlob()
	s.Equal(126976, useful)

	for _, tc := range []struct {
		length   int
		expected int
	}{
		{1, 1},
		{useful - 1, 1},
		{useful, 2},
		{useful + 1, 2},
		{s.mainnet.Profile().MaxUsefulBytesPerTx(), 2},
	} {
		length, expected := tc.length, tc.expected
		s.Equal(expected, s.mainnet.BlobCount(length), "payload of %d bytes", length)

		blobs, err := s.mainnet.Encode(bytes.Repeat([]byte{0x42}, length))
		s.Require().NoError(err, "payload of %d bytes", length)
		s.Len(blobs, expected, "payload of %d bytes", length)
		for _, blob := range blobs {
			s.Len(blob, s.mainnet.Profile().BlobSize())
		}
	}
}

func (s *CodecTestSuite) TestExactMultipleKeepsSentinel() {
	useful := s.devnet.Profile().UsefulBytesPerBlob()
	payload := bytes.Repeat([]byte{0xff}, useful)

	blobs, err := s.devnet.Encode(payload)
	s.Require().NoError(err)
	s.Require().Len(blobs, 2)
	s.Equal(byte(0x80), blobs[1][0])

	decoded, err := s.devnet.Decode(blobs)
	s.Require().NoError(err)
	s.Equal(payload, decoded)
}

func (s *CodecTestSuite) TestFieldElementsEndWithZero() {
	payload := bytes.Repeat([]byte{0xff}, s.devnet.Profile().MaxUsefulBytesPerTx())

	blobs, err := s.devnet.Encode(payload)
	s.Require().NoError(err)
	for blobIdx, blob := range blobs {
		for i := 31; i < len(blob); i += 32 {
			s.Zero(blob[i], "blob %d, byte %d", blobIdx, i)
		}
	}
}

func (s *CodecTestSuite) TestEmptyPayload() {
	_, err := s.mainnet.Encode(nil)
	s.Require().ErrorIs(err, ErrInvalidInput)

	_, err = s.mainnet.Encode([]byte{})
	s.Require().ErrorIs(err, ErrInvalidInput)
}

func (s *CodecTestSuite) TestPayloadTooLarge() {
	for _, codec := range []Codec{s.mainnet, s.devnet} {
		maxLen := codec.Profile().MaxUsefulBytesPerTx()

		_, err := codec.Encode(make([]byte, maxLen))
		s.Require().NoError(err)

		blobs, err := codec.Encode(make([]byte, maxLen+1))
		s.Require().ErrorIs(err, ErrPayloadTooLarge)
		s.Nil(blobs)
	}
}

func (s *CodecTestSuite) TestPayloadWithSentinelBytes() {
	payload := []byte{0x80, 0x00, 0x80, 0x00, 0x00}

	blobs, err := s.devnet.Encode(payload)
	s.Require().NoError(err)

	decoded, err := s.devnet.Decode(blobs)
	s.Require().NoError(err)
	s.Equal(payload, decoded)
}

func (s *CodecTestSuite) TestDecodeMalformed() {
	blobs, err := s.devnet.Encode([]byte("payload"))
	s.Require().NoError(err)
	blobSize := s.devnet.Profile().BlobSize()

	s.Run("EmptySet", func() {
		_, err := s.devnet.Decode(nil)
		s.Require().ErrorIs(err, ErrEmptyBlobSet)
	})

	s.Run("WrongSize", func() {
		_, err := s.devnet.Decode([]Blob{blobs[0][:blobSize-1]})
		s.Require().ErrorIs(err, ErrInvalidBlobSize)
	})

	s.Run("NonCanonical", func() {
		broken := bytes.Clone(blobs[0])
		broken[63] = 1
		_, err := s.devnet.Decode([]Blob{broken})
		s.Require().ErrorIs(err, ErrNonCanonicalElement)
	})

	s.Run("AllZeros", func() {
		_, err := s.devnet.Decode([]Blob{make(Blob, blobSize)})
		s.Require().ErrorIs(err, ErrMissingSentinel)
	})

	s.Run("NoSentinel", func() {
		broken := make(Blob, blobSize)
		broken[0] = 0x42
		_, err := s.devnet.Decode([]Blob{broken})
		s.Require().ErrorIs(err, ErrMissingSentinel)
	})
}

func (s *CodecTestSuite) TestKZGConversion() {
	blobs, err := s.mainnet.Encode([]byte("hello"))
	s.Require().NoError(err)

	kzgBlob, err := blobs[0].KZG()
	s.Require().NoError(err)
	s.Equal([]byte(blobs[0]), kzgBlob[:])

	small, err := s.devnet.Encode([]byte("hello"))
	s.Require().NoError(err)
	_, err = small[0].KZG()
	s.Require().ErrorIs(err, ErrInvalidBlobSize)
}

func (s *CodecTestSuite) TestHex() {
	blobs, err := s.devnet.Encode([]byte{0x01})
	s.Require().NoError(err)

	hex := blobs[0].Hex()
	s.Len(hex, 2+2*s.devnet.Profile().BlobSize())
	s.Equal("0x0180", hex[:6])
}

func TestCodec(t *testing.T) {
	t.Parallel()

	suite.Run(t, new(CodecTestSuite))
}

func checkRoundTrip(t *testing.T, codec Codec) {
	t.Helper()

	maxLen := codec.Profile().MaxUsefulBytesPerTx()
	rapid.Check(t, func(t *rapid.T) {
		length := rapid.IntRange(1, maxLen).Draw(t, "length")
		seed := rapid.Uint64().Draw(t, "seed")

		rng := rand.New(rand.NewPCG(seed, uint64(length)))
		payload := make([]byte, length)
		for i := range payload {
			payload[i] = byte(rng.UintN(256))
		}

		blobs, err := codec.Encode(payload)
		require.NoError(t, err)
		require.Len(t, blobs, codec.BlobCount(len(payload)))

		decoded, err := codec.Decode(blobs)
		require.NoError(t, err)
		require.Equal(t, payload, decoded)
	})
}

func TestRoundTripDevnet(t *testing.T) {
	t.Parallel()

	checkRoundTrip(t, NewCodec(profiles[ProfileDevnet]))
}

func TestRoundTripMainnet(t *testing.T) {
	t.Parallel()

	checkRoundTrip(t, NewCodec(DefaultProfile()))
}

func TestRoundTripShortPayloads(t *testing.T) {
	t.Parallel()

	codec := NewCodec(profiles[ProfileDevnet])
	rapid.Check(t, func(t *rapid.T) {
		payload := rapid.SliceOfN(rapid.Byte(), 1, 256).Draw(t, "payload")

		blobs, err := codec.Encode(payload)
		require.NoError(t, err)
		require.Len(t, blobs, 1)

		decoded, err := codec.Decode(blobs)
		require.NoError(t, err)
		require.Equal(t, payload, decoded)
	})
}
