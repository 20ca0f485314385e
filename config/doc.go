// SPDX-License-Identifier: MIT

// Package config reads the YAML parameter files of the npr drivers.
//
// Every key of a parameter struct is required unless its yaml tag carries
// omitempty. Load reports all missing keys at once (a key set to null or
// "" counts as missing), then decodes and checks value constraints
// declared with validate tags. WriteTemplate produces the empty parameter
// file a driver leaves behind when run without arguments.
package config
