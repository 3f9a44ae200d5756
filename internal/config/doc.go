// Package config loads the optional JSON configuration shared by the
// cost calculator and the plotting tools.
package config
