// Package vcs runs version-control commands and reports their output.
package vcs
