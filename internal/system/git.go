package system

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// GitInfo is the status bar's view of the working directory's repository.
type GitInfo struct {
	InRepo   bool
	Branch   string
	ShortSHA string
	Dirty    bool
}

// per-invocation limit so a slow repository never stalls the status bar
const gitCallTimeout = 800 * time.Millisecond

// GetGitInfo inspects the Git repository at dir and returns basic status.
// A missing git binary or a directory outside any work tree yields a zero
// GitInfo and no error.
func GetGitInfo(ctx context.Context, dir string) (GitInfo, error) {
	var gi GitInfo
	if _, err := exec.LookPath("git"); err != nil {
		return gi, nil
	}
	if out, err := git(ctx, dir, "rev-parse", "--is-inside-work-tree"); err != nil || out != "true" {
		return gi, nil
	}
	gi.InRepo = true

	if b, err := git(ctx, dir, "symbolic-ref", "--quiet", "--short", "HEAD"); err == nil {
		gi.Branch = b
	} else if b, err := git(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD"); err == nil {
		// detached head
		gi.Branch = b
	}
	if sha, err := git(ctx, dir, "rev-parse", "--short", "HEAD"); err == nil {
		gi.ShortSHA = sha
	}
	if st, err := git(ctx, dir, "status", "--porcelain"); err == nil {
		gi.Dirty = st != ""
	}
	return gi, nil
}

func git(ctx context.Context, dir string, args ...string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, gitCallTimeout)
	defer cancel()
	out, err := exec.CommandContext(cctx, "git", append([]string{"-C", dir}, args...)...).Output()
	return strings.TrimSpace(string(out)), err
}
