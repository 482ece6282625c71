package translation

import "fmt"

// ConfigError reports an invalid translator configuration: unsupported
// language, missing credential, or conflicting source/target. It is raised
// before any network I/O.
type ConfigError struct {
	Vendor string
	Detail string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Vendor, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Vendor, e.Detail)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NetworkError reports a transport failure or a non-2xx vendor status.
// Body carries the raw vendor error payload when one was received.
type NetworkError struct {
	Vendor string
	Status int
	Body   string
	Err    error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: request failed: %v", e.Vendor, e.Err)
	case e.Body != "":
		return fmt.Sprintf("%s: status %d: %s", e.Vendor, e.Status, e.Body)
	default:
		return fmt.Sprintf("%s: status %d", e.Vendor, e.Status)
	}
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError reports a 2xx vendor body the adapter cannot interpret, so
// callers can tell "vendor unreachable" from "vendor API changed".
type ParseError struct {
	Vendor string
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: unexpected response: %s", e.Vendor, e.Detail)
}

// NotSupportedError reports an operation a given backend does not implement.
type NotSupportedError struct {
	Vendor    string
	Operation string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s: %s is not supported", e.Vendor, e.Operation)
}

func configErrorf(vendor, format string, args ...any) *ConfigError {
	return &ConfigError{Vendor: vendor, Detail: fmt.Sprintf(format, args...)}
}
