package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/avdva/floatmath"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func run(args ...string) (string, *observer.ObservedLogs, error) {
	core, logs := observer.New(zap.DebugLevel)
	a := &app{newLogger: func(bool) (*zap.Logger, error) {
		return zap.New(core), nil
	}}
	cmd := a.rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), logs, err
}

func TestCommands(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		args     string
		out      string
		warnings int
	}{
		{"add 0.1 0.2", "0.3", 0},
		{"sub 0.3 0.2", "0.1", 0},
		{"sub -- -0.3 0.2", "-0.5", 0},
		{"mul 0.097 100", "9.7", 0},
		{"div 1.21 1.1", "1.1", 0},
		{"div 2 3", "0.6666666666666666", 0},
		{"--prune 4 div 2 3", "0.6667", 0},
		{"-P 12 sub 1 0.9", "0.1", 0},
		{"sum", "0", 0},
		{"sum 0.1 0.2 0.3", "0.6", 0},
		{"product", "1", 0},
		{"product 0.1 0.2 0.3", "0.006", 0},
		{"prune 0.30000000000000004", "0.3", 0},
		{"prune -p 3 1.005", "1", 0},
		{"fraclen 1.001e-7", "10", 0},
		{"fraclen 1e21", "-21", 0},
		{"scale 1.001e-7", "1001", 0},
		{"check 9007199254740991", "true", 0},
		{"check 9007199254740992", "false", 1},
		{"add 9007199254740991 1", "9007199254740992", 1},
		{"--quiet add 9007199254740991 1", "9007199254740992", 0},
		{"add 9007199254740992 9007199254740992", "18014398509481984", 3},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			out, logs, err := run(strings.Fields(test.args)...)
			if a.NoError(err) {
				a.Equal(test.out+"\n", out)
				a.Equal(test.warnings, logs.FilterLevelExact(zap.WarnLevel).Len())
			}
		})
	}
}

func TestDebugLog(t *testing.T) {
	a := assert.New(t)
	_, logs, err := run("-v", "add", "0.1", "0.2")
	if a.NoError(err) {
		entries := logs.FilterMessage("computed").All()
		if a.Len(entries, 1) {
			fields := entries[0].ContextMap()
			a.Equal("add", fields["op"])
			a.Equal(0.3, fields["result"])
		}
	}
}

func TestCommandErrors(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		args string
		err  string
	}{
		{"add 1", "accepts 2 arg(s), received 1"},
		{"add 1 x", `bad operand #2 "x": parsing failed: unexpected symbol 'x' at pos 1`},
		{"sum 1 2 1.2.3", `bad operand #3 "1.2.3": parsing failed: unexpected delimeter at pos 4`},
		{"prune -p 0 1", "invalid argument: precision 0 is out of range [1, 100]"},
		{"--prune 101 add 1 2", "bad configuration: invalid argument: precision 101 is out of range [1, 100]"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			_, _, err := run(strings.Fields(test.args)...)
			a.EqualError(err, test.err)
		})
	}
	_, _, err := run("prune", "-p", "-1", "1")
	a.True(errors.Is(err, floatmath.ErrInvalidArgument))
}
