//go:build !ebiten

package ui

import "tilelife/internal/core"

// Panel is a no-op placeholder used when the ebiten build tag is absent.
type Panel struct{}

// NewPanel returns nil in the headless build.
func NewPanel(any, int) *Panel { return nil }

// Update is a no-op in the headless build.
func (p *Panel) Update(int, *core.ControlState) {}

// Draw is a no-op in the headless build.
func (p *Panel) Draw(any, int) {}
