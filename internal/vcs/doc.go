// Package vcs queries Git for the set of files changed relative to HEAD.
//
// Git operations are performed via os/exec calls to the git binary rather
// than a Git library, so fourmat sees exactly the same diff the user sees
// in their terminal. A non-zero git exit aborts the caller; there are no
// retries.
package vcs
