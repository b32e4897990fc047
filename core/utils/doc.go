// Package utils provides shared helper functions, mainly the loose type
// coercion needed when reading dynamically typed plist values.
package utils
