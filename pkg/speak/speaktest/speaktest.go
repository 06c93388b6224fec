// Package speaktest provides a Speaker that records utterances for tests.
package speaktest

// Recorder is a Speaker that records everything it is asked to say. If Err is
// set, Speak records the text and returns Err.
type Recorder struct {
	Texts []string
	Err   error
}

// Speak records text.
func (r *Recorder) Speak(text string) error {
	r.Texts = append(r.Texts, text)
	return r.Err
}

// Reset forgets all recorded texts.
func (r *Recorder) Reset() {
	r.Texts = nil
}
