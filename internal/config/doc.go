// Package config loads padview's TOML configuration file.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/padview/config.toml
//  3. If the file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or blank, use defaults for them
//
// # TOML Format
//
//	api_url = "https://api.spacexdata.com/v4/launchpads"
//	page_size = 5            # one of 5, 10, 15
//	request_timeout = "10s"  # Go duration string
//	log_file = "~/.local/state/padview/padview.log"
//
// All fields are optional. Setting log_file to an empty string disables
// logging entirely. Tilde expansion is applied to log_file.
//
// # Error Handling
//
// Load returns errors for unreadable files, invalid TOML, a page_size outside
// the selectable set, and unparsable or non-positive request timeouts. A
// missing config file is not an error.
package config
