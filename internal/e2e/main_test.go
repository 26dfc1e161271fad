//go:build e2e

package e2e

import (
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}

func TestBrowser(t *testing.T) {
	t.Log("start autotests")
	suite.Run(t, &BrowserSuite{})
}
