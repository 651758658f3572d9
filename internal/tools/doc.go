// Package tools wraps the external code-quality tools fourmat
// coordinates: the isort import sorter, the black code formatter, and the
// flake8 style checker.
//
// Each tool is modeled as a pure argument-construction function paired
// with a single narrow subprocess boundary (run) shared by all three.
// Tool stdout/stderr are inherited, not captured: fourmat adds no
// formatting of its own on top of what the tools print.
//
// Each invocation is a stateless, blocking subprocess call with no
// retries. Runners never execute concurrently.
package tools
