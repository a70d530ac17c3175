// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"context"

	"localescope/pkg/framework"
)

// KeyStyle resolves the key style, memoized until invalidation.
//
// Resolution order: explicit override unless "auto"; then the first
// active framework (registry order) with a non-auto preference; then the
// interactive prompt. This is the engine's one suspension point: the
// call blocks until the user responds or dismisses. Dismissal (or a nil
// prompter, or a prompt error) commits "nested" to the override so
// future calls short-circuit without asking again.
func (c *Cache) KeyStyle(ctx context.Context) framework.KeyStyle {
	if c.keyStyle != "" {
		return c.keyStyle
	}

	if style := framework.KeyStyle(c.cfg.KeyStyle); style != "" && style != framework.KeyStyleAuto {
		c.keyStyle = style
		return style
	}

	for _, f := range c.frameworks {
		if f.KeyStyle != "" && f.KeyStyle != framework.KeyStyleAuto {
			c.keyStyle = f.KeyStyle
			return f.KeyStyle
		}
	}

	if c.prompter != nil {
		style, ok, err := c.prompter.ChooseKeyStyle(ctx)
		if err != nil {
			c.logger.Warn("key style prompt failed", "error", err)
		} else if ok {
			c.keyStyle = style
			return style
		}
	}

	// Dismissed: persist the default so the prompt never re-fires.
	c.cfg.KeyStyle = string(framework.KeyStyleNested)
	c.keyStyle = framework.KeyStyleNested
	return framework.KeyStyleNested
}
