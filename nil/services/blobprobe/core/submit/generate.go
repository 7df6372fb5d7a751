package submit

//go:generate go run github.com/matryer/moq -out eth_client_generated_mock.go -rm -stub -with-resets . EthClient
//go:generate go run github.com/matryer/moq -out submitter_generated_mock.go -rm -stub -with-resets . Submitter
