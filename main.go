// =============================================================================
// Report Cleaner - Main Entry Point
// =============================================================================
//
// USAGE:
//   reportclean process <raw_file> <b|s>  - Clean an export, write CSV + SQL
//   reportclean schema <bookings|sales>   - Show the expected columns
//   reportclean version                   - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : Cobra command definitions
//   - internal/  : Schema maps, readers, validation, normalization, packaging
//   - pkg/       : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/report-cleaner/cmd"
)

func main() {
	cmd.Execute()
}
