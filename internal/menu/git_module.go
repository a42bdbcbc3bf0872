package menu

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pseudocodeus/csvprof/internal/gitops"
)

// GitModule exposes the git automation actions through the menu.
type GitModule struct {
	in  *bufio.Reader
	out io.Writer
}

func NewGitModule() *GitModule {
	return &GitModule{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

func (m *GitModule) Name() string { return "Git Automation" }

func (m *GitModule) Items() []MenuItem {
	return []MenuItem{
		{ID: "ls", Label: "List Branches", Priority: 1},
		{ID: "lsa", Label: "List All Branches", Priority: 2},
		{ID: "swb", Label: "Switch Branch", Priority: 3},
		{ID: "status", Label: "Check Status", Priority: 4},
		{ID: "push", Label: "Push to Repo", Priority: 5},
	}
}

// Setup ensures git is available before the module is offered.
func (m *GitModule) Setup() error {
	_, err := gitops.Version()
	return err
}

func (m *GitModule) Execute(id string) error {
	switch id {
	case "ls":
		return m.show(gitops.ListBranches())
	case "lsa":
		return m.show(gitops.ListAllBranches())
	case "status":
		return m.show(gitops.Status())
	case "swb":
		branch := m.prompt("Branch to switch to")
		if branch == "" {
			return fmt.Errorf("branch name is required")
		}
		return m.show(gitops.SwitchBranch(branch))
	case "push":
		remote := m.prompt("Remote [origin]")
		if remote == "" {
			remote = "origin"
		}
		branch := m.prompt("Branch")
		if branch == "" {
			current, err := gitops.CurrentBranch()
			if err != nil {
				return err
			}
			branch = current
		}
		return m.show(gitops.Push(remote, branch))
	default:
		return fmt.Errorf("unknown action: %s", id)
	}
}

func (m *GitModule) show(out string, err error) error {
	if out != "" {
		fmt.Fprintln(m.out, strings.TrimRight(out, "\n"))
	}
	return err
}

func (m *GitModule) prompt(label string) string {
	fmt.Fprintf(m.out, "%s: ", label)
	line, err := m.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}
