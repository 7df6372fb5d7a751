package chain

//go:generate go run github.com/matryer/moq -out reader_generated_mock.go -rm -stub -with-resets . Reader
