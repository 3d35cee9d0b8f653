// Package policy decides what happens to a mapping that failed validation:
// nothing, a logged warning, an error, or an automatic repair.
package policy
