package main

// Blank imports ensure plugin init() registration runs for the CLI binary.
import (
	_ "github.com/seerworks/styleseer/internal/enhance/plugins/shopify"
	_ "github.com/seerworks/styleseer/internal/enhance/plugins/wordpress"
)
