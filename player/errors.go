package player

import "errors"

var ErrAudioInit = errors.New("audio init failed")

// InitError reports a tone generator that could not be constructed.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	if e.Err == nil {
		return ErrAudioInit.Error()
	}
	return ErrAudioInit.Error() + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error { return e.Err }

func (e *InitError) Is(target error) bool { return target == ErrAudioInit }
