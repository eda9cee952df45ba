// Package imports provides lint rules for TypeScript import specifiers.
//
// Rules in this package:
//   - IM01: Route files must import mapped directories through their alias
package imports
