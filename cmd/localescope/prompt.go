// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"localescope/pkg/framework"
)

// terminalPrompter asks the key-style question on the terminal when
// neither configuration nor the active frameworks settle it. An empty
// answer or a read failure counts as a dismissal.
type terminalPrompter struct {
	in *bufio.Reader
}

func newTerminalPrompter() *terminalPrompter {
	return &terminalPrompter{in: bufio.NewReader(os.Stdin)}
}

func (p *terminalPrompter) ChooseKeyStyle(ctx context.Context) (framework.KeyStyle, bool, error) {
	fmt.Fprintln(os.Stderr, TitleStyle.Render("Key style undetermined."))
	fmt.Fprintln(os.Stderr, SubtitleStyle.Render(`  nested  t("account.login")  ->  {"account": {"login": "..."}}`))
	fmt.Fprintln(os.Stderr, SubtitleStyle.Render(`  flat    t("account.login")  ->  {"account.login": "..."}`))
	fmt.Fprint(os.Stderr, "Choose [nested/flat] (empty to skip): ")

	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		return "", false, nil
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "nested", "n":
		return framework.KeyStyleNested, true, nil
	case "flat", "f":
		return framework.KeyStyleFlat, true, nil
	default:
		return "", false, nil
	}
}
