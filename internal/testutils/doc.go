// Package testutils provides helpers shared by tests across packages.
package testutils
