package internal

import (
	"fmt"
	"strings"
)

type ExportOption int

const (
	ExportOptionNone ExportOption = iota
	ExportOptionStdout
	ExportOptionGrpc
)

var exportOptionNames = map[ExportOption]string{
	ExportOptionNone:   "none",
	ExportOptionStdout: "stdout",
	ExportOptionGrpc:   "grpc",
}

func (o ExportOption) String() string {
	if name, ok := exportOptionNames[o]; ok {
		return name
	}
	return fmt.Sprintf("ExportOption(%d)", int(o))
}

func ParseExportOption(s string) (ExportOption, error) {
	for opt, name := range exportOptionNames {
		if strings.EqualFold(s, name) {
			return opt, nil
		}
	}
	return ExportOptionNone, fmt.Errorf("unknown metric export option %q", s)
}

type Config struct {
	ServiceName string

	MetricExportOption ExportOption
}
