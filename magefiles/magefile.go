//go:build mage

// Package main provides build targets for the shopfront project using Mage.
//
// Usage:
//
//	mage build            Compile the shopctl binary to bin/
//	mage test             Run all tests
//	mage testunit         Run only unit tests (exclude tests/integration)
//	mage testintegration  Run only the integration tests
//	mage lint             Run golangci-lint
//	mage clean            Remove build artifacts
//	mage install          Install shopctl to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "shopctl"
	binaryDir  = "bin"
	cmdDir     = "./cmd/shopctl"
)

// Build compiles the shopctl binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestUnit runs the package tests, excluding tests/integration.
func TestUnit() error {
	return sh.RunV("go", "test", "./pkg/...", "./internal/...", "./cmd/...")
}

// TestIntegration builds first, then runs the integration tests.
func TestIntegration() error {
	mg.Deps(Build)
	return sh.RunV("go", "test", "./tests/integration/...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm(binaryDir)
}

// Install installs shopctl to GOPATH/bin.
func Install() error {
	return sh.RunV("go", "install", cmdDir)
}
