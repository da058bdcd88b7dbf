package capture

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	// DefaultListenAddr is the loopback address the callback listener
	// binds to. The matching redirect URI is http://localhost:8400/callback.
	DefaultListenAddr = "127.0.0.1:8400"

	// DefaultCallbackPath is the path component of the redirect URI.
	DefaultCallbackPath = "/callback"

	shutdownGrace = 2 * time.Second
)

const completionPage = `<!DOCTYPE html><html><body>
<p>Sign-in complete. You may close this window.</p>
</body></html>`

// Loopback captures the redirect by listening on a loopback address and
// opening the authorization URL in the system browser. The registered
// redirect URI of the application must point at the listener.
type Loopback struct {
	listenAddr   string
	callbackPath string
	openURL      func(url string) error
	logger       zerolog.Logger
}

// LoopbackOption modifies a Loopback instance.
type LoopbackOption func(*Loopback)

// WithListenAddr sets the loopback listen address.
func WithListenAddr(addr string) LoopbackOption {
	return func(l *Loopback) {
		l.listenAddr = addr
	}
}

// WithCallbackPath sets the path the listener accepts the redirect on.
func WithCallbackPath(path string) LoopbackOption {
	return func(l *Loopback) {
		l.callbackPath = path
	}
}

// WithOpenURL replaces the system-browser launcher (primarily for testing).
func WithOpenURL(open func(url string) error) LoopbackOption {
	return func(l *Loopback) {
		l.openURL = open
	}
}

// WithLogger sets the logger used for capture diagnostics.
func WithLogger(logger zerolog.Logger) LoopbackOption {
	return func(l *Loopback) {
		l.logger = logger
	}
}

// NewLoopback initializes a loopback capturer with the default listen
// address and system browser launcher.
func NewLoopback(options ...LoopbackOption) *Loopback {
	l := &Loopback{
		listenAddr:   DefaultListenAddr,
		callbackPath: DefaultCallbackPath,
		openURL:      openSystemBrowser,
		logger:       zerolog.Nop(),
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

// RedirectURI returns the redirect URI served by this capturer, for use when
// building the authorization request.
func (l *Loopback) RedirectURI() string {
	host := l.listenAddr
	if h, port, err := net.SplitHostPort(l.listenAddr); err == nil && (h == "127.0.0.1" || h == "::1") {
		host = net.JoinHostPort("localhost", port)
	}
	return "http://" + host + l.callbackPath
}

// Capture starts the listener, opens the authorization URL in the browser
// and blocks until the redirect arrives or the context is cancelled.
func (l *Loopback) Capture(ctx context.Context, authURL string) (string, error) {
	listener, err := net.Listen("tcp", l.listenAddr)
	if err != nil {
		return "", errors.Wrap(err, "[Capture] listening on callback address")
	}

	type result struct {
		finalURL string
	}
	resultCh := make(chan result, 1)

	mux := http.NewServeMux()
	mux.HandleFunc(l.callbackPath, func(w http.ResponseWriter, r *http.Request) {
		finalURL := "http://" + r.Host + r.URL.RequestURI()
		if !IsTerminalURL(finalURL) {
			http.Error(w, "unexpected callback", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, completionPage)
		select {
		case resultCh <- result{finalURL: finalURL}:
		default:
		}
	})

	server := &http.Server{Handler: mux}
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			l.logger.Err(err).Msg("callback listener stopped")
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	l.logger.Debug().Str("listen_addr", l.listenAddr).Msg("waiting for authorization redirect")
	if err := l.openURL(authURL); err != nil {
		return "", errors.Wrap(err, "[Capture] opening browser")
	}

	select {
	case r := <-resultCh:
		return r.finalURL, nil
	case <-ctx.Done():
		return "", errors.Wrap(ctx.Err(), "[Capture] waiting for redirect")
	}
}

// openSystemBrowser launches the platform's default browser.
func openSystemBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
