// Package config loads runtime configuration for the topup command.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config (see parseJSON).
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-users string       users JSON source
//	-companies string   companies JSON source
//	-output string      report destination
//	-reference string   reference report to verify against ("" disables)
//	-ledger string      sqlite ledger DSN ("" disables)
//	-progress string    progress dots: always, auto or never
//	-log-level string   debug, info, warn or error
//	-version            print build information and exit
//
// # JSON schema
//
// Every key is optional. Absent keys keep the earlier value; a key set to
// "" clears it ("reference_file": "" disables verification):
//
//	{
//	  "users_file": "users.json",
//	  "companies_file": "companies.json",
//	  "output_file": "output.txt",
//	  "reference_file": "example_output.txt",
//	  "ledger_dsn": "topups.db",
//	  "progress": "auto",
//	  "log_level": "info"
//	}
package config
