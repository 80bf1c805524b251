// Copyright © 2025 tjj
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package commands defines the adapt CLI on top of an adapt.Registry.
//
// Commands
//
//   - convert    Convert text to a named target type
//   - formats    Print the date pattern table in priority order
//   - adapters   Print the registered (from, to) pairs
package commands
