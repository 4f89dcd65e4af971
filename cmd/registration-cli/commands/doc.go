// Package commands defines the registration-cli commands.
//
// Commands
//
//   - validate   Fill a registration form from flags and report its errors
//   - rules      Print the rule chain of every field
//
// Rule settings come from the same FORM_* environment variables the HTTP
// service reads, so both apply identical checks.
package commands
