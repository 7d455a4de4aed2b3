// SPDX-License-Identifier: MIT

// Command pauliexp reads a Pauli sum, prints its canonical form and emits a
// circuit for exp(-i·alpha·H), optionally constrained to a device layout.
//
//	pauliexp --alpha 0.1 --topology grid:3x3 "0.5 X0 Z4 Y8 + Z1 Z2"
//	echo "X0 X1 + Y0 Y1" | pauliexp --sets --format qasm
package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/qpauli/circuit"
	"github.com/katalvlaran/qpauli/internal/config"
	"github.com/katalvlaran/qpauli/pauli"
	"github.com/katalvlaran/qpauli/qubit"
	"github.com/katalvlaran/qpauli/state"
	"github.com/katalvlaran/qpauli/topology"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// maxVerifyQubits bounds the state vector built by --verify.
const maxVerifyQubits = 16

// errVerify indicates the circuit and the reference evolution disagree.
var errVerify = errors.New("pauliexp: circuit does not match the term-by-term evolution")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// 1) Flags and configuration
	fs := pflag.NewFlagSet("pauliexp", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)
	showVersion := fs.BoolP("version", "v", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: pauliexp [flags] [expression | -]\n\nflags:\n%s", fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if *showVersion {
		fmt.Fprintf(stdout, "pauliexp %s (%s)\n", version, commit)
		return exitOK
	}
	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	// 2) Logging
	logger := log.NewWithOptions(stderr, log.Options{Prefix: "pauliexp"})
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	logger.SetLevel(level)
	logger.Debug("configuration", "config", spew.Sdump(cfg))

	if err = synthesize(cfg, fs.Args(), stdin, stdout, logger); err != nil {
		logger.Error("failed", "err", err)
		return exitError
	}

	return exitOK
}

// synthesize runs the pipeline: parse, group, synthesize, print, verify.
func synthesize(cfg config.Config, args []string, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	// 3) Hamiltonian
	expr := strings.TrimSpace(strings.Join(args, " "))
	if expr == "" || expr == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		expr = string(raw)
	}
	h, err := pauli.Parse(expr)
	if err != nil {
		return err
	}
	logger.Info("hamiltonian", "terms", h.Len(), "qubits", len(h.Qubits()), "hermitian", h.IsHermitian())
	fmt.Fprintf(stdout, "H = %s\n", h)

	// 4) Commuting sets
	if cfg.Sets {
		groups := pauli.CommutingSets(h)
		for i, g := range groups {
			fmt.Fprintf(stdout, "set %d: %s\n", i, g)
		}
		logger.Debug("commuting sets", "groups", spew.Sdump(groupKeys(groups)))
	}
	if !pauli.Commute(h, h) {
		logger.Warn("terms do not commute; the circuit is a first-order product formula")
	}

	// 5) Device
	device, err := topology.ParseLayout(cfg.Topology)
	if err != nil {
		return err
	}
	if device != nil {
		logger.Info("device", "qubits", device.VertexCount(), "couplers", device.EdgeCount(), "directed", device.Directed())
	}

	// 6) Circuit
	circ, err := pauli.ExpCircuit(h, cfg.Alpha, pauli.WithTopology(device))
	if err != nil {
		return err
	}
	logger.Info("circuit",
		"gates", circ.Len(),
		"cnot", circ.Count(circuit.KindCNOT),
		"swap", circ.Count(circuit.KindSWAP),
		"rz", circ.Count(circuit.KindRZ))

	switch cfg.Format {
	case config.FormatQASM:
		text, err := circ.QASM()
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, text)
	default:
		if circ.Len() > 0 {
			fmt.Fprintln(stdout, circ)
		}
	}

	// 7) Verification
	if cfg.Verify {
		return verify(h, cfg, circ, logger)
	}

	return nil
}

// verify runs circ and pauli.Evolve on the same probe state and compares them.
func verify(h pauli.Pauli, cfg config.Config, circ *circuit.Circuit, logger *log.Logger) error {
	register := qubit.Dedup(append(circ.Qubits(), h.Qubits()...))
	if len(register) > maxVerifyQubits {
		logger.Warn("skipping verification", "qubits", len(register), "max", maxVerifyQubits)
		return nil
	}
	psi, err := probe(register)
	if err != nil {
		return err
	}
	got, err := circ.Run(psi)
	if err != nil {
		return err
	}
	want, err := pauli.Evolve(h, cfg.Alpha, psi)
	if err != nil {
		return err
	}
	if !state.Close(got, want, cfg.Tolerance) {
		return fmt.Errorf("%w (tolerance %g)", errVerify, cfg.Tolerance)
	}
	logger.Info("verified", "qubits", len(register), "tolerance", cfg.Tolerance)

	return nil
}

// probe returns a normalised state with no vanishing amplitude.
func probe(register []qubit.Qubit) (*state.State, error) {
	amps := make([]complex128, 1<<len(register))
	for k := range amps {
		amps[k] = complex(float64(k%3)+1, float64(k%2))
	}
	s, err := state.FromAmplitudes(register, amps)
	if err != nil {
		return nil, err
	}

	return s.Scale(complex(1/math.Sqrt(s.Norm()), 0)), nil
}

func groupKeys(groups []pauli.Pauli) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.String()
	}

	return out
}
