// Package config loads, normalizes, and validates the moviemood
// configuration file.
//
// Configuration lives in TOML at ~/.config/moviemood/config.toml, with a
// moviemood.toml in the working directory as a fallback. A missing file
// is not an error: defaults apply and the TMDB API key may arrive via
// the TMDB_API_KEY environment variable or a .env file in the working
// directory. Load always returns a fully normalized, validated config.
package config
