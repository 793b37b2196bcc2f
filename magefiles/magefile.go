//go:build mage

// Package main provides build targets for armkin using Mage.
//
// Usage:
//
//	mage build    Compile the armkin binary to bin/
//	mage test     Run all tests with the race detector
//	mage bench    Run the solver benchmarks
//	mage lint     Run golangci-lint
//	mage clean    Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "armkin"
	binaryDir  = "bin"
	cmdDir     = "./cmd/armkin"
)

// Build compiles the armkin binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs every package test with the race detector.
func Test() error {
	return sh.RunV(binGo, "test", "-race", "-count=1", "./...")
}

// Bench runs the matrix, fk and ik benchmarks.
func Bench() error {
	return sh.RunV(binGo, "test", "-run", "^$", "-bench", ".", "-benchmem", "./matrix/...", "./fk/...", "./ik/...")
}

// Lint runs go vet and golangci-lint.
func Lint() error {
	mg.Deps(Vet)
	return sh.RunV(binLint, "run", "./...")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV(binGo, "vet", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}
