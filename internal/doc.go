// Package internal holds helpers shared by the checker and the formatter:
// reading proposition files into lines.
//
// Subpackages:
//
// types: rule names, severities and the Issue reported by the checker.
//
// nolint: "//nolint" comments that suppress issues in proposition files.
package internal
