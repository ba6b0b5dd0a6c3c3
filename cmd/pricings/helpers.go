package main

import (
	"context"
	"fmt"
	"io"

	"github.com/prussyuval/pricings-view/internal/common"
	"github.com/prussyuval/pricings-view/internal/config"
	"github.com/prussyuval/pricings-view/internal/model"
	"github.com/prussyuval/pricings-view/internal/pricing"
	"github.com/prussyuval/pricings-view/internal/tui/themes"
	"github.com/spf13/viper"
)

// loadDocument parses the payload named by args, or stdin when args is empty or "-".
func loadDocument(ctx context.Context, stdin io.Reader, args []string) (*model.Document, error) {
	if len(args) == 0 || args[0] == "-" {
		return pricing.ParseReader(ctx, stdin)
	}
	return pricing.ParseFile(args[0])
}

// configuredTheme resolves ui.theme. An unset theme selects the default.
func configuredTheme() (themes.Theme, error) {
	name := viper.GetString(config.KeyTheme)
	if name == "" {
		return themes.Default, nil
	}

	theme, ok := themes.Lookup(name)
	if !ok {
		return theme, fmt.Errorf("%w: unknown theme %q (valid options: %v)", common.ErrInvalidConfig, name, themes.Names)
	}
	return theme, nil
}
