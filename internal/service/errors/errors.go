// Package errors provides custom errors for the relay services.
package errors

import (
	"fmt"
)

type (
	ServiceFoundNilStorage struct {
		Msg string
	}
	ServiceFoundNilSecretary struct {
		Msg string
	}
	ServiceFoundNilDependency struct {
		Msg string
	}
	ServiceIncorrectMappingLength struct {
		Length int
	}
	// MappingExhaustedError is returned when the bounded collision retry loop ran out of attempts.
	MappingExhaustedError struct {
		Attempts int
	}
	// ShortenerTimeoutError marks a shortening call that exceeded its deadline.
	ShortenerTimeoutError struct {
		Err error
	}
	// ShortenerNetworkError marks a transport-level failure of the shortening call.
	ShortenerNetworkError struct {
		Err error
	}
	// ShortenerResponseError marks a shortening response body that could not be interpreted.
	ShortenerResponseError struct {
		Msg string
	}
	// ShortenerAPIError marks an explicit non-success status reported by the shortening API.
	ShortenerAPIError struct {
		Status string
	}
)

func (e *ServiceFoundNilStorage) Error() string {
	return e.Msg
}

func (e *ServiceFoundNilSecretary) Error() string {
	return e.Msg
}

func (e *ServiceFoundNilDependency) Error() string {
	return e.Msg
}

func (e *ServiceIncorrectMappingLength) Error() string {
	return fmt.Sprintf("%d is not a valid mapping identifier length", e.Length)
}

func (e *MappingExhaustedError) Error() string {
	return fmt.Sprintf("mapping identifier space exhausted after %d attempts", e.Attempts)
}

func (e *ShortenerTimeoutError) Error() string {
	return fmt.Sprintf("%s: shortening call timed out", e.Err.Error())
}

func (e *ShortenerNetworkError) Error() string {
	return fmt.Sprintf("%s: shortening call failed", e.Err.Error())
}

func (e *ShortenerResponseError) Error() string {
	return fmt.Sprintf("%s: malformed shortening response", e.Msg)
}

func (e *ShortenerAPIError) Error() string {
	return fmt.Sprintf("shortening API reported status %q", e.Status)
}

func (e *ShortenerTimeoutError) Unwrap() error {
	return e.Err
}

func (e *ShortenerNetworkError) Unwrap() error {
	return e.Err
}
