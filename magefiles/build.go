//go:build mage
// +build mage

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const buildDir = "./build"

// All does what it says on the tin: lints, tests, and builds the
// binspect binary
func All() error {
	mg.SerialDeps(Lint, Test, Build)
	return nil
}

// Build generates the binspect binary
func Build() error {
	mg.SerialDeps(ensureBuildDir, Lint)

	fmt.Print("[BUILD] building binspect...")
	binaryOut := buildDir + "/binspect"
	err := sh.Run("go", "build", "-o", binaryOut, "./cmd/binspect")
	if err != nil {
		fmt.Println(" ERROR")
		return err
	}
	fmt.Println(" SUCCESS")
	return nil
}

// Lint runs golangci-lint on the code
func Lint() error {
	stdOut := bytes.NewBuffer(nil)
	stdErr := bytes.NewBuffer(nil)

	fmt.Fprintf(os.Stdout, "[BUILD][LINT] linting the code...")
	_, err := sh.Exec(nil, stdOut, stdErr, "golangci-lint", "run", "-v", "./...")
	if err != nil {
		fmt.Fprintf(os.Stdout, " ERROR!\n")
		fmt.Fprint(os.Stdout, stdOut.String())
		fmt.Fprint(os.Stderr, stdErr.String())
		return err
	}
	fmt.Fprintf(os.Stdout, " SUCCESS!\n")
	return nil
}

func ensureBuildDir() error {
	return os.MkdirAll(buildDir, os.ModeDir|0755)
}
