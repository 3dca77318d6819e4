// Package utils provides common utility functions used throughout the Changeling codebase.
//
// This package contains shared utilities that are used by multiple packages to avoid
// code duplication and ensure consistent behavior across the application.
package utils
