package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/monitor"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/journal"
	"github.com/fatih/color"
)

type builder struct {
	strings.Builder
}

func (b *builder) writeLine(parts ...string) {
	for _, part := range parts {
		b.WriteString(part)
	}
	b.WriteString("\n")
}

func greenStr(format string, args ...any) string {
	return color.HiGreenString(format, args...)
}

func cyanStr(format string, args ...any) string {
	return color.HiCyanString(format, args...)
}

func yellowStr(format string, args ...any) string {
	return color.HiYellowString(format, args...)
}

func redStr(format string, args ...any) string {
	return color.HiRedString(format, args...)
}

func stateStr(state string) string {
	switch state {
	case monitor.Confirmed.String(), monitor.Submitted.String():
		return greenStr("%s", state)
	case monitor.Mismatch.String():
		return yellowStr("%s", state)
	case monitor.Failed.String():
		return redStr("%s", state)
	default:
		return state
	}
}

func formatReport(report *core.Report) string {
	var b builder
	b.writeLine(cyanStr("State:        "), stateStr(report.State.String()))
	b.writeLine(cyanStr("Profile:      "), report.Profile)
	b.writeLine(cyanStr("Payload:      "), fmt.Sprintf("%d bytes in %d blob(s)", report.PayloadSize, report.BlobCount))
	if report.TxHash != "" {
		b.writeLine(cyanStr("Transaction:  "), report.TxHash)
	}

	if outcome := report.Outcome; outcome != nil {
		b.writeLine(cyanStr("Expected:     "), outcome.Expected)
		if outcome.Record != nil {
			b.writeLine(cyanStr("Found:        "), fmt.Sprintf("%s (slot %d)", outcome.Record.Commitment, outcome.Record.Slot))
		} else {
			b.writeLine(cyanStr("Found:        "), yellowStr("nothing"))
		}
	}
	return b.String()
}

func formatHistory(entries []journal.Entry) string {
	if len(entries) == 0 {
		return "No runs recorded\n"
	}

	var b builder
	for _, entry := range entries {
		b.writeLine(
			cyanStr("#%d ", entry.Seq),
			entry.StartedAt.Format(time.DateTime), " ",
			stateStr(entry.State), " ",
			fmt.Sprintf("%s, %d bytes, %d blob(s)", entry.Profile, entry.PayloadSize, entry.BlobCount),
		)
		if entry.TxHash != "" {
			b.writeLine("    tx:       ", entry.TxHash)
		}
		if entry.Expected != "" {
			b.writeLine("    expected: ", entry.Expected)
		}
		if entry.Found != "" {
			b.writeLine("    found:    ", fmt.Sprintf("%s (slot %d)", entry.Found, entry.Slot))
		}
		if entry.Error != "" {
			b.writeLine("    error:    ", redStr("%s", entry.Error))
		}
	}
	return b.String()
}
