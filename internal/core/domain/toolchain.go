package domain

import "go.trai.ch/zerr"

// Target is a named dispatch operation exposed by the CLI.
type Target string

const (
	// TargetBuild delegates to the tool's debug build.
	TargetBuild Target = "build"
	// TargetRelease delegates to the tool's optimized build.
	TargetRelease Target = "release"
	// TargetRun delegates to the tool's build-and-execute step.
	TargetRun Target = "run"
)

// Toolchain describes the external build tool the dispatcher delegates to.
// The dispatcher adds no semantics of its own: each target maps to exactly
// one invocation of the tool with a fixed argument list.
type Toolchain struct {
	Tool      string
	Build     []string
	Release   []string
	Run       []string
	TargetDir string
}

// DefaultToolchain returns the cargo toolchain the dispatcher wraps out of
// the box.
func DefaultToolchain() Toolchain {
	return Toolchain{
		Tool:      "cargo",
		Build:     []string{"build"},
		Release:   []string{"build", "--release"},
		Run:       []string{"run"},
		TargetDir: "target",
	}
}

// Argv returns the full command line for the given target, tool first.
func (tc Toolchain) Argv(target Target) ([]string, error) {
	var args []string

	switch target {
	case TargetBuild:
		args = tc.Build
	case TargetRelease:
		args = tc.Release
	case TargetRun:
		args = tc.Run
	default:
		return nil, zerr.With(ErrUnknownTarget, "target", string(target))
	}

	if tc.Tool == "" || len(args) == 0 {
		return nil, zerr.With(ErrInvalidToolchain, "target", string(target))
	}

	argv := make([]string, 0, len(args)+1)
	argv = append(argv, tc.Tool)
	argv = append(argv, args...)
	return argv, nil
}
