//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput          = "gen"
	sqliteFileLocation = "engel.sqlite"
	serverBin          = "./bin/server"
	certgenBin         = "./bin/certgen"
	serverConfigPath   = "configs/server.toml"
)

const (
	jetTool  = "github.com/go-jet/jet/v2/cmd/jet@v2.9.0"
	lintTool = "github.com/golangci/golangci-lint/cmd/golangci-lint@v1.52.2"
)

const testServerConfigPath = "test_configs/server.toml"

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds server binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-o", serverBin, "./cmd")
}

// Run starts server
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin, "-server-config", serverConfigPath)
}

// Cert writes a self signed certificate for the tls listener
func Cert() error {
	if err := sh.Run("go", "build", "-o", certgenBin, "./cmd/certgen"); err != nil {
		return err
	}
	return sh.Run(certgenBin, "-server-config", serverConfigPath)
}

// GenJet regenerates the jet models from a migrated database. Start the
// server once to create it.
func GenJet() error {
	if _, err := os.Stat(sqliteFileLocation); err != nil {
		return err
	}
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "run", jetTool, "-source", "sqlite", "-dsn", sqliteFileLocation, "-path", jetOutput)
}

func Test() error {
	return sh.RunV("go", "test", "./...")
}

func Lint() error {
	return sh.Run("go", "run", lintTool, "run", "./...")
}

// AutoTest runs the browser suite against a freshly built server
func AutoTest() error {
	mg.Deps(Build)
	if err := os.RemoveAll("internal/e2e/engel-e2e.sqlite"); err != nil {
		return err
	}
	return sh.RunV(
		"go", "test", "-v", "-tags", "e2e", "./internal/e2e/...",
		"-args", "-server-config", "../../"+testServerConfigPath, "-server-bin", "../../"+serverBin,
	)
}
