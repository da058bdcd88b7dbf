package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/common-nighthawk/go-figure"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/jrsteele09/go-auth-client/authorize"
	"github.com/jrsteele09/go-auth-client/capture"
	"github.com/jrsteele09/go-auth-client/internal/config"
	"github.com/jrsteele09/go-auth-client/oauthmodel"
	"github.com/jrsteele09/go-auth-client/token"
)

func main() {
	var (
		global       GlobalOptions
		loginCmd     LoginCommand
		tokenCmd     TokenCommand
		adminConsent AdminConsentCommand
	)

	parser := flags.NewParser(&global, flags.Default)
	parser.Usage = "[OPTIONS] <login|token|admin-consent>"

	mustAddCommand(parser, "login", "Request an authorization code",
		"Opens a browser, signs the user in and prints the authorization response.", &loginCmd)
	mustAddCommand(parser, "token", "Request tokens",
		"Exchanges an authorization code, or the client credentials, for tokens.", &tokenCmd)
	mustAddCommand(parser, "admin-consent", "Grant tenant-wide admin consent",
		"Opens a browser for a tenant administrator to approve the application.", &adminConsent)

	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	logger := newLogger(global.Verbose)
	displayAppname(config.New().GetAppName())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service, err := newService(logger, &global)
	if err != nil {
		logger.Fatal().Err(err).Msg("initialising client")
	}

	switch parser.Active.Name {
	case "login":
		err = runLogin(ctx, service, &global, &loginCmd)
	case "token":
		err = runToken(ctx, logger, service, &global, &tokenCmd)
	case "admin-consent":
		err = runAdminConsent(ctx, service, &global)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}

func mustAddCommand(parser *flags.Parser, name, short, long string, data interface{}) {
	if _, err := parser.AddCommand(name, short, long, data); err != nil {
		panic(err)
	}
}

func newService(logger zerolog.Logger, global *GlobalOptions) (*authorize.Service, error) {
	cfg := config.New()

	capturer, redirectURI := newCapturer(cfg, global)
	if global.RedirectURI == "" {
		global.RedirectURI = redirectURI
	}

	baseURL := global.BaseURL
	if baseURL == "" {
		baseURL = cfg.GetBaseAuthURL()
	}

	options := []authorize.ServiceOption{
		authorize.WithLogger(logger),
		authorize.WithBaseURL(baseURL),
		authorize.WithExchanger(token.NewExchanger(
			token.WithHTTPClient(&http.Client{Timeout: cfg.GetHTTPTimeout()}),
		)),
	}
	return authorize.NewService(capturer, options...)
}

// newCapturer picks the redirect capture strategy: a manual paste prompt for
// the out-of-band sentinel, a loopback listener for everything else.
func newCapturer(cfg config.Config, global *GlobalOptions) (capture.RedirectCapturer, string) {
	oob := global.RedirectURI == "" || global.RedirectURI == oauthmodel.OutOfBandRedirectURI
	if oob && global.ListenAddr == "" {
		return capture.NewPrompt(os.Stdin, os.Stderr), oauthmodel.OutOfBandRedirectURI
	}

	addr := global.ListenAddr
	if addr == "" {
		addr = cfg.GetListenAddr()
	}
	loopback := capture.NewLoopback(
		capture.WithListenAddr(addr),
		capture.WithCallbackPath(cfg.GetCallbackPath()),
	)
	return loopback, loopback.RedirectURI()
}

func runLogin(ctx context.Context, service *authorize.Service, global *GlobalOptions, cmd *LoginCommand) error {
	result, err := service.GetAuthorizationCode(ctx, oauthmodel.AuthorizationCodeRequest{
		ClientID:    global.ClientID,
		TenantID:    global.TenantID,
		RedirectURI: global.RedirectURI,
		Scopes:      global.Scopes,
		Prompt:      oauthmodel.Prompt(cmd.Prompt),
		APIVersion:  apiVersion(global.APIV2),
	})
	if err != nil {
		return err
	}
	if result == nil {
		return printEmpty()
	}
	return printResult(result)
}

func runToken(ctx context.Context, logger zerolog.Logger, service *authorize.Service, global *GlobalOptions, cmd *TokenCommand) error {
	bundle, err := service.GetToken(ctx, oauthmodel.TokenRequest{
		ClientID:          global.ClientID,
		ClientSecret:      cmd.ClientSecret,
		TenantID:          global.TenantID,
		RedirectURI:       global.RedirectURI,
		ResourceURI:       cmd.ResourceURI,
		Scopes:            global.Scopes,
		AuthorizationCode: cmd.AuthorizationCode,
		APIVersion:        apiVersion(global.APIV2),
	})
	if err != nil {
		return err
	}

	if cmd.ShowClaims && bundle.IDToken != nil {
		claims, err := token.InspectIDToken(*bundle.IDToken)
		if err != nil {
			logger.Warn().Err(err).Msg("could not inspect id token")
		} else if err := printResult(claims); err != nil {
			return err
		}
	}
	return printResult(bundle)
}

func runAdminConsent(ctx context.Context, service *authorize.Service, global *GlobalOptions) error {
	result, err := service.GrantAdminConsent(ctx, oauthmodel.AdminConsentRequest{
		ClientID:    global.ClientID,
		TenantID:    global.TenantID,
		RedirectURI: global.RedirectURI,
		APIVersion:  apiVersion(global.APIV2),
	})
	if err != nil {
		return err
	}
	if result == nil {
		return printEmpty()
	}
	return printResult(result)
}

func apiVersion(v2 bool) oauthmodel.APIVersion {
	if v2 {
		return oauthmodel.APIVersionV2
	}
	return oauthmodel.APIVersionV1
}

// printResult writes the outcome as indented JSON on stdout.
func printResult(result any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// printEmpty keeps the output machine-parseable when an authorization
// response was discarded or carried nothing.
func printEmpty() error {
	_, err := fmt.Println("{}")
	return err
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
