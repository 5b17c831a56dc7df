// Package speech implements linguist's voice input: one utterance is recorded
// from the microphone with an external recorder command and then transcribed
// by a cloud speech-to-text service (OpenAI Whisper or Google Gemini).
//
// The Adapter ties both halves together. It reports whether voice input is
// possible on this host and runs one capture at a time, calling back exactly
// once with either the transcript or a short diagnostic reason.
package speech
