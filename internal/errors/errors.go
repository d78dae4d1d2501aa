// Package errors provides structured error types for the Huddle application.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindPermission
	KindIO
	KindNetwork
	KindConfig
	KindCreation
	KindSend
	KindFetch
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindPermission:
		return "permission denied"
	case KindIO:
		return "I/O error"
	case KindNetwork:
		return "network error"
	case KindConfig:
		return "configuration error"
	case KindCreation:
		return "creation error"
	case KindSend:
		return "send error"
	case KindFetch:
		return "fetch error"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for Huddle.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Conversation errors
func ChannelCreateFailed(name string, err error) error {
	return E(Op("directory.CreateChannel"), KindCreation, fmt.Sprintf("failed to create channel %s", name), err)
}

func ChannelNameEmpty() error {
	return E(Op("directory.CreateChannel"), KindInvalid, "channel name is empty")
}

func DMCreateFailed(username string, err error) error {
	return E(Op("directory.CreateDM"), KindCreation, fmt.Sprintf("failed to start conversation with %s", username), err)
}

func ConversationsFetchFailed(err error) error {
	return E(Op("directory.List"), KindFetch, "failed to load conversations", err)
}

// Message errors
func MessagesFetchFailed(conversationID string, err error) error {
	return E(Op("feed.Load"), KindFetch, fmt.Sprintf("failed to load messages for %s", conversationID), err)
}

func MessageSendFailed(conversationID string, err error) error {
	return E(Op("feed.Send"), KindSend, fmt.Sprintf("failed to send message to %s", conversationID), err)
}

func MessageEmpty() error {
	return E(Op("feed.Send"), KindInvalid, "message is empty")
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Backend errors
func BackendUnreachable(url string, err error) error {
	return E(Op("backend.Do"), KindNetwork, fmt.Sprintf("backend %s unreachable", url), err)
}

func SubscribeFailed(conversationID string, err error) error {
	return E(Op("backend.Subscribe"), KindNetwork, fmt.Sprintf("failed to subscribe to %s", conversationID), err)
}
