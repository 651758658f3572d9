// Package project resolves what fourmat operates on: the project root
// paths listed in the .fourmat config file, and the selection of Python
// source files eligible for formatting and linting.
//
// The config file is a plain whitespace-separated path list with no
// schema, comments, or quoting rules. It is read fresh on every
// invocation and is the single source of truth for the path set.
package project
