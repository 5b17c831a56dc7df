// Package models lists the OpenAI models that can transcribe voice input,
// so users can check what their API key gives access to.
package models
