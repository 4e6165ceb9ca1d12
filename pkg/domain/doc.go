// Package domain contains the value types exchanged between the record
// reader, the cipher pipeline and the CLI. They carry no behavior beyond
// plain data so they can be shared across packages.
package domain
