//go:build e2e

package e2e

import (
	"context"
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/goserg/engelserver/internal/e2e/sel"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/suite"
)

const baseURL = "http://127.0.0.1:3100"

var (
	serverConfigPath string
	serverBin        string
)

func init() {
	flag.StringVar(&serverConfigPath, "server-config", "", "path to server configs")
	flag.StringVar(&serverBin, "server-bin", "../../bin/server", "path to the server binary")
}

type BrowserSuite struct {
	suite.Suite
	process *Process
}

// SetupSuite starts the server binary and waits until it answers.
func (s *BrowserSuite) SetupSuite() {
	s.Require().NotEmpty(serverConfigPath, "-server-config MUST be set")
	p := NewProcess(context.Background(), serverBin, "-server-config", serverConfigPath)
	s.process = p
	err := p.Start(context.Background())
	s.Require().NoError(err, "cant start process")

	if err := waitForStartup(time.Second * 10); err != nil {
		s.T().Fatalf("unable to start app: %v\n%s", err, p.Output())
	}
}

func waitForStartup(duration time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	ticker := time.NewTicker(time.Second / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r, _ := http.Get(baseURL + "/signin")
			if r != nil {
				r.Body.Close()
				if r.StatusCode == http.StatusOK {
					return nil
				}
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *BrowserSuite) TearDownSuite() {
	exitCode, err := s.process.Stop()
	if err != nil {
		s.T().Logf("cant stop process: %v", err)
	}
	s.T().Logf("process finished with code %d", exitCode)
}

func (s *BrowserSuite) newBrowser() (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(context.Background(), time.Second*20)
	ctx, cancel := chromedp.NewContext(ctx)
	return ctx, func() {
		cancel()
		cancelTimeout()
	}
}

func (s *BrowserSuite) TestGuestAccess() {
	ctx, cancel := s.newBrowser()
	defer cancel()

	err := chromedp.Run(ctx,
		s.CheckStatus(baseURL+"/angeltypes", http.StatusOK),
		s.CheckStatus(baseURL+"/signin", http.StatusOK),
		s.CheckStatus(baseURL+"/signup", http.StatusOK),
		s.CheckStatus(baseURL+"/angeltypes/9999", http.StatusNotFound),
		s.CheckRedirect(baseURL+"/settings/profile", "/signin"),
	)
	s.Require().NoError(err)
}

func (s *BrowserSuite) TestJoinAngelType() {
	ctx, cancel := s.newBrowser()
	defer cancel()

	var flashText string
	err := chromedp.Run(ctx,
		network.Enable(),
		s.SignUp("e2ealice", "e2ealice@example.com", "secret123"),
		s.SignIn("e2ealice", "secret123"),
		chromedp.Navigate(baseURL+"/angeltypes"),
		chromedp.Click(`a[href^="/angeltypes/"]`, chromedp.NodeVisible),
		chromedp.Click(sel.AngelTypeJoin, chromedp.NodeVisible),
		chromedp.Click(sel.ConfirmSubmit, chromedp.NodeVisible),
		chromedp.WaitVisible(sel.Flash),
		chromedp.Text(sel.Flash, &flashText),
		s.Screenshot("join.png"),
	)
	s.Require().NoError(err)
	s.Contains(flashText, "You joined")
}

func (s *BrowserSuite) TestChangeTheme() {
	ctx, cancel := s.newBrowser()
	defer cancel()

	var flashText, theme string
	var ok bool
	err := chromedp.Run(ctx,
		s.SignUp("e2ebob", "e2ebob@example.com", "secret123"),
		s.SignIn("e2ebob", "secret123"),
		chromedp.Navigate(baseURL+"/settings/theme"),
		chromedp.SetValue(sel.SettingsSelectTheme, "0", chromedp.ByQuery),
		chromedp.Click(sel.SettingsSave, chromedp.NodeVisible),
		chromedp.WaitVisible(sel.Flash),
		chromedp.Text(sel.Flash, &flashText),
		chromedp.AttributeValue("body", "data-theme", &theme, &ok),
	)
	s.Require().NoError(err)
	s.Contains(flashText, "Theme changed successfully.")
	s.True(ok)
	s.NotEmpty(theme)
}

func (s *BrowserSuite) SignUp(name, email, password string) chromedp.Tasks {
	return chromedp.Tasks{
		chromedp.Navigate(baseURL + "/signup"),
		chromedp.SendKeys(sel.SignUpFormUsername, name, chromedp.NodeVisible),
		chromedp.SendKeys(sel.SignUpFormEmail, email),
		chromedp.SendKeys(sel.SignUpFormPass, password),
		chromedp.SendKeys(sel.SignUpFormRepeat, password),
		chromedp.Click(sel.SignUpFormSubmit),
		chromedp.WaitVisible(sel.SignInFormSubmit),
	}
}

func (s *BrowserSuite) SignIn(name, password string) chromedp.Tasks {
	return chromedp.Tasks{
		chromedp.Navigate(baseURL + "/signin"),
		chromedp.SendKeys(sel.SignInFormUsername, name, chromedp.NodeVisible),
		chromedp.SendKeys(sel.SignInFormPass, password),
		chromedp.Click(sel.SignInFormSubmit),
		chromedp.WaitVisible(sel.NavSignOut),
	}
}

func (s *BrowserSuite) CheckStatus(path string, status int) chromedp.Tasks {
	return []chromedp.Action{
		chromedp.ActionFunc(func(ctx context.Context) error {
			resp, err := chromedp.RunResponse(ctx, chromedp.Navigate(path))
			if err != nil {
				return err
			}
			if int(resp.Status) != status {
				s.T().Errorf("%s answered with status %d, want %d", path, resp.Status, status)
			}
			return nil
		}),
	}
}

func (s *BrowserSuite) CheckRedirect(path, wantSuffix string) chromedp.Tasks {
	var location string
	return []chromedp.Action{
		chromedp.Navigate(path),
		chromedp.Location(&location),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if !strings.HasSuffix(location, wantSuffix) {
				s.T().Errorf("%s ended at %s, want %s", path, location, wantSuffix)
			}
			return nil
		}),
	}
}

// Screenshot keeps a picture of the page for failed runs.
func (s *BrowserSuite) Screenshot(name string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		if !s.T().Failed() {
			return nil
		}
		var buf []byte
		if err := chromedp.FullScreenshot(&buf, 80).Do(ctx); err != nil {
			return err
		}
		return os.WriteFile(name, buf, 0o644)
	})
}

var _ suite.SetupAllSuite = (*BrowserSuite)(nil)
