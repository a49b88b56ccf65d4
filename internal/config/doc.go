// Package config provides the gridedit configuration.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (applied by cmd)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← GRIDEDIT_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← TOML
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// A config file looks like:
//
//	[editor]
//	row_capacity = 80
//	max_rows = 0
//	normalization = "nfc"
//
//	[history]
//	group_threshold = 500
//	group_all_edits = false
//
//	[logging]
//	level = "debug"
//	file = "/tmp/gridedit.log"
//
// Any setting can be overridden from the environment by upper-casing its
// path: GRIDEDIT_HISTORY_GROUP_THRESHOLD=250. GRIDEDIT_ROW_CAPACITY,
// GRIDEDIT_MAX_ROWS, GRIDEDIT_LOG_LEVEL and GRIDEDIT_LOG_FILE are
// accepted as short forms.
//
// # Basic Usage
//
//	cfg, err := config.Load(path)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ed := engine.New[int](cfg.Editor.RowCapacity, cfg.EditorOptions(logger)...)
package config
