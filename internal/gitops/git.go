// Package gitops wraps the git CLI for the automation menu. Every call
// is a plain subprocess invocation; combined output is returned so the
// menu can show the user exactly what git said.
package gitops

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

func run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return out.String(), fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return out.String(), nil
}

// Version reports the installed git version; used as the availability
// check before the git module is offered in the menu.
func Version() (string, error) {
	out, err := run("--version")
	return strings.TrimSpace(out), err
}

func ListBranches() (string, error) {
	return run("branch")
}

func ListAllBranches() (string, error) {
	return run("branch", "-a")
}

func Status() (string, error) {
	return run("status")
}

func Push(remote, branch string) (string, error) {
	return run("push", remote, branch)
}

func SwitchBranch(name string) (string, error) {
	return run("switch", name)
}

func CurrentBranch() (string, error) {
	out, err := run("branch", "--show-current")
	return strings.TrimSpace(out), err
}
