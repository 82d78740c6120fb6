// Package config loads editor settings.
//
// Settings live in one JSON document. User settings are merged leaf by
// leaf over the built-in defaults, so a user file only needs the keys
// it changes. Values are addressed with dotted paths ("grid.size",
// "interaction.doubleClickMs").
package config
