// Package translation provides the Google Cloud Translation v2 client used
// by linguist. Every call issues exactly one POST request; failures of any
// kind are reported as ErrTranslationFailed.
package translation
