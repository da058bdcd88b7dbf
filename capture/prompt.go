package capture

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Prompt captures the redirect manually: it prints the authorization URL,
// asks the user to complete the sign-in in any browser, and reads the final
// redirected URL back from the input stream. This is the only capturer that
// works with the out-of-band redirect sentinel, where the provider displays
// the code instead of redirecting anywhere reachable.
//
// Capture blocks on the read until the user responds; the context is checked
// only before prompting, matching the indefinite user-bounded wait of an
// interactive login window.
type Prompt struct {
	in  io.Reader
	out io.Writer
}

// NewPrompt initializes a manual capturer reading from in and prompting on
// out.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: in, out: out}
}

// Capture prints the URL and reads the pasted final URL.
func (p *Prompt) Capture(ctx context.Context, authURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "[Capture] before prompting")
	}

	fmt.Fprintf(p.out, "Open the following URL in a browser and sign in:\n\n%s\n\n", authURL)
	fmt.Fprint(p.out, "Paste the final redirected URL (or the displayed code page URL) here: ")

	scanner := bufio.NewScanner(p.in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", errors.Wrap(err, "[Capture] reading response URL")
		}
		return "", errors.New("[Capture] input closed before a URL was provided")
	}
	return strings.TrimSpace(scanner.Text()), nil
}
