// SPDX-License-Identifier: MIT

// Package config loads run parameters for the qs command from a YAML file
// and QS_* environment variables, on top of built-in defaults.
//
// Lookup order for the file (first hit wins), unless an explicit path is
// given: $XDG_CONFIG_HOME/qsieve, $HOME/.qsieve, the working directory.
// The file is named qs_config.yaml:
//
//	factor_base_size: 5
//	interval_size: 50
//	workers: 1
//	table: false
//	chart: ""
//
// Every key can be overridden by the matching environment variable,
// e.g. QS_INTERVAL_SIZE=2000.
package config
