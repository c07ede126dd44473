// FILE: lixenwraith/ini/doc.go

// Package ini provides a small INI configuration engine: it parses an INI file into
// an in-memory document, exposes typed read/write access through "Section:Key"
// addresses, binds whole sections into structs, and writes changes back atomically.
//
// Features:
//   - Two interchangeable load strategies (eager and streaming) sharing one parser
//   - Typed parse errors carrying the 1-based line number
//   - Change tracking: Save writes only when there are pending changes
//   - Section binding into structs via mapstructure, with validator tag support
//   - Atomic saves (temp file + rename)
//   - Export to TOML, YAML and JSON
//
// Quick Start:
//
//	type Profile struct {
//	    Name string
//	    Age  int
//	}
//
//	cfg, err := ini.Open("app.ini", ini.StrategyEager)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	theme, ok, _ := cfg.Get("Settings:Theme")
//	_ = cfg.Set("Settings:Theme", "Light")
//
//	profile, err := ini.Bind[Profile](cfg, "Profile")
//
//	if err := cfg.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// File format:
//
//	; comment
//	[Section]
//	key=value
//
// Concurrency:
// A Config is owned by a single goroutine. Callers sharing one instance across
// goroutines must serialize access themselves.
package ini
