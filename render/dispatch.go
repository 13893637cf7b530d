package render

import (
	"fmt"

	"github.com/jaykit/jay/config"
	"github.com/jaykit/jay/dom"
	"github.com/jaykit/jay/element"
)

// Control tokens accepted by J as the first argument. They take
// precedence over tag interpretation.
const (
	TokenConfigure = "configure"
	TokenRenderAll = "render-all"
	TokenRerender  = "rerender-by-id"
)

// J is the variadic dispatch entry point. The first argument is
// either a control token — "configure" with a config overlay,
// "render-all", "rerender-by-id" with an id — or a tag/component,
// optionally followed by a property bag and children.
func (a *App) J(first any, args ...any) ([]*dom.Node, error) {
	if token, ok := first.(string); ok {
		switch token {
		case TokenConfigure:
			return nil, a.dispatchConfigure(args)
		case TokenRenderAll:
			return nil, a.RenderApp()
		case TokenRerender:
			if len(args) != 1 {
				return nil, fmt.Errorf("render: %s takes exactly one id", TokenRerender)
			}
			id, ok := args[0].(string)
			if !ok {
				return nil, fmt.Errorf("render: %s id must be a string, got %T", TokenRerender, args[0])
			}
			a.Rerender(id)
			return nil, nil
		}
	}

	tag, err := element.AsTag(first)
	if err != nil {
		return nil, err
	}

	var props element.Props
	children := args
	if len(args) > 0 {
		switch p := args[0].(type) {
		case nil:
			children = args[1:]
		case element.Props:
			props = p
			children = args[1:]
		case map[string]any:
			props = element.Props(p)
			children = args[1:]
		}
	}

	return a.builder.Build(element.Descriptor{Tag: tag, Props: props, Children: children})
}

func (a *App) dispatchConfigure(args []any) error {
	if len(args) != 1 {
		return fmt.Errorf("render: %s takes exactly one overlay", TokenConfigure)
	}
	switch overlay := args[0].(type) {
	case config.Config:
		a.Configure(overlay)
	case *config.Config:
		a.Configure(*overlay)
	default:
		return fmt.Errorf("render: %s expects a config overlay, got %T", TokenConfigure, args[0])
	}
	return nil
}
