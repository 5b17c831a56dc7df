// Package language defines the fixed catalogue of language codes the
// translator offers, their display names, and which of them may be used
// as a translation source or target.
package language
