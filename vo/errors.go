package vo

import "fmt"

// MalformedURLError reports an href/src value the classifier could not make
// sense of.
type MalformedURLError struct {
	Raw    string
	Attr   string
	Reason string
}

func (e *MalformedURLError) Error() string {
	return fmt.Sprintf("malformed %s url %q: %s", e.Attr, e.Raw, e.Reason)
}

// ScanError reports a document that could not be fully scanned. Element holds
// the serialized form of the offending element so the message is actionable
// without reopening the file.
type ScanError struct {
	Element string
	Err     error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("error in element %s: %v", e.Element, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// IndexError reports the file whose scan aborted index construction.
type IndexError struct {
	File string
	Err  error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("error parsing file %q: %v", e.File, e.Err)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}
