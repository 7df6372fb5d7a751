package logging

const (
	FieldComponent = "component"
	FieldChainId   = "chainId"

	FieldUrl       = "url"
	FieldReqId     = "reqId"
	FieldRpcMethod = "rpcMethod"

	FieldBlockNumber = "blockNumber"
	FieldSlot        = "slot"
	FieldHeadSlot    = "headSlot"

	FieldTxHash      = "txHash"
	FieldBlobCount   = "blobCount"
	FieldPayloadSize = "payloadSize"
	FieldProfile     = "profile"

	FieldCommitment         = "commitment"
	FieldExpectedCommitment = "expectedCommitment"
	FieldMonitorState       = "monitorState"
)
