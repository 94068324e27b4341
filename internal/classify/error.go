package classify

// CategoryError attaches a category to an upload failure without hiding the
// original error. Callers pull it out with errors.As and keep unwrapping to
// reach the underlying cause.
type CategoryError struct {
	Category Category
	Err      error
}

func (e *CategoryError) Error() string {
	return string(e.Category) + ": " + e.Err.Error()
}

func (e *CategoryError) Unwrap() error {
	return e.Err
}

// Wrap classifies err and returns it wrapped with its category. A nil err
// returns nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return &CategoryError{Category: Classify(err), Err: err}
}
