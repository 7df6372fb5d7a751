package beacon

import "github.com/ethereum/go-ethereum/common/hexutil"

type HeadersResp struct {
	Data []struct {
		Root      string `json:"root"`
		Canonical bool   `json:"canonical"`
		Header    struct {
			Message   BlockHeader `json:"message"`
			Signature string      `json:"signature"`
		} `json:"header"`
	} `json:"data"`
}

type BlockHeader struct {
	Slot          uint64 `json:"slot,string"`
	ProposerIndex uint64 `json:"proposer_index,string"`
	ParentRoot    string `json:"parent_root"`
	StateRoot     string `json:"state_root"`
	BodyRoot      string `json:"body_root"`
}

type BlockResp struct {
	Version string `json:"version"`
	Data    struct {
		Message struct {
			Slot uint64 `json:"slot,string"`
			Body struct {
				// Early EIP-4844 devnets name the list blob_kzgs.
				BlobKzgs           []string `json:"blob_kzgs"`
				BlobKzgCommitments []string `json:"blob_kzg_commitments"`
			} `json:"body"`
		} `json:"message"`
	} `json:"data"`
}

// Commitments returns the block's commitment list under whichever name the node uses.
func (r *BlockResp) Commitments() []string {
	body := r.Data.Message.Body
	if body.BlobKzgs != nil {
		return body.BlobKzgs
	}
	if body.BlobKzgCommitments != nil {
		return body.BlobKzgCommitments
	}
	return []string{}
}

type BlobSidecar struct {
	Index         uint64        `json:"index,string"`
	Blob          hexutil.Bytes `json:"blob"`
	KzgCommitment string        `json:"kzg_commitment"`
	KzgProof      string        `json:"kzg_proof"`
}

type BlobSidecarsResp struct {
	Data []BlobSidecar `json:"data"`
}
