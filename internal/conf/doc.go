// Package conf loads the settings of the confstore command itself: log
// level, log file, the store file it works on and whether output is
// colored. The store file contents are handled by package store.
//
// # Usage
//
//	cs := &conf.ConfigSource{
//	    Path:      conf.DefaultPath,
//	    DropInDir: conf.DefaultDropInDir,
//	}
//	config, err := cs.Read()
//
// # Load Order
//
// Config is loaded and applied in three layers:
//
//  1. Embedded defaults (default.toml)
//  2. Main config file: /etc/confstore/confstore.toml
//  3. Drop-in files: /etc/confstore/confstore.toml.d/*.toml, in lexicographic order
//
// # Internal Architecture
//
//   - configDTO: internal struct with pointer fields for TOML parsing.
//     Pointers allow distinguishing "not set" (nil) from "set to zero value".
//
//   - Config: public struct with value fields. Has Update() method
//     to apply DTO values.
//
//   - ConfigSource: orchestrates loading from multiple sources and manages
//     their merging.
//
//   - parseConfigDTO: function that parses TOML string into configDTO.
package conf
