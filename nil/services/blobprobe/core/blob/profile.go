package blob

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/params"
)

const (
	sentinelByte = 0x80

	ProfileMainnet = "mainnet"
	ProfileDevnet  = "devnet"
)

// Profile is the set of size constants shared by every component of a single deployment.
type Profile struct {
	Name                 string
	FieldElementsPerBlob int
	BytesPerFieldElement int
	MaxBlobsPerTx        int
}

var profiles = map[string]Profile{
	ProfileMainnet: {
		Name:                 ProfileMainnet,
		FieldElementsPerBlob: params.BlobTxFieldElementsPerBlob,
		BytesPerFieldElement: params.BlobTxBytesPerFieldElement,
		MaxBlobsPerTx:        2,
	},
	// Blob layout of the early EIP-4844 devnets.
	ProfileDevnet: {
		Name:                 ProfileDevnet,
		FieldElementsPerBlob: 1016,
		BytesPerFieldElement: params.BlobTxBytesPerFieldElement,
		MaxBlobsPerTx:        2,
	},
}

func DefaultProfile() Profile {
	return profiles[ProfileMainnet]
}

func ProfileByName(name string) (Profile, error) {
	profile, ok := profiles[strings.ToLower(name)]
	if !ok {
		return Profile{}, fmt.Errorf("%w %q, known profiles: %s", ErrUnknownProfile, name, strings.Join(ProfileNames(), ", "))
	}
	return profile, nil
}

func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (p Profile) Validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidProfile)
	case p.FieldElementsPerBlob <= 0:
		return fmt.Errorf("%w: field elements per blob must be positive, got %d", ErrInvalidProfile, p.FieldElementsPerBlob)
	case p.BytesPerFieldElement < 2:
		return fmt.Errorf("%w: field element must hold at least 2 bytes, got %d", ErrInvalidProfile, p.BytesPerFieldElement)
	case p.MaxBlobsPerTx <= 0:
		return fmt.Errorf("%w: max blobs per tx must be positive, got %d", ErrInvalidProfile, p.MaxBlobsPerTx)
	}
	return nil
}

// UsableBytesPerFieldElement is the data capacity of one element, the last byte is always zero.
func (p Profile) UsableBytesPerFieldElement() int {
	return p.BytesPerFieldElement - 1
}

func (p Profile) UsefulBytesPerBlob() int {
	return p.UsableBytesPerFieldElement() * p.FieldElementsPerBlob
}

// MaxUsefulBytesPerTx keeps one byte for the sentinel.
func (p Profile) MaxUsefulBytesPerTx() int {
	return p.UsefulBytesPerBlob()*p.MaxBlobsPerTx - 1
}

func (p Profile) BlobSize() int {
	return p.BytesPerFieldElement * p.FieldElementsPerBlob
}

func (p Profile) String() string {
	return p.Name
}

func (p Profile) MarshalText() ([]byte, error) {
	return []byte(p.Name), nil
}

func (p *Profile) UnmarshalText(text []byte) error {
	profile, err := ProfileByName(string(text))
	if err != nil {
		return err
	}
	*p = profile
	return nil
}
