//go:build mage

// Package main provides build targets for the notes project using Mage.
//
// Usage:
//
//	mage build          Compile notes binary to bin/
//	mage test           Run all tests
//	mage testShort      Run store and CLI tests only
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install notes to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "notes"
	binaryDir  = "bin"
	cmdDir     = "./cmd/notes"
)

// Build compiles the notes binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// TestShort runs the store and CLI tests only.
func TestShort() error {
	return sh.RunV(binGo, "test", "./pkg/...", "./internal/cli/...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
