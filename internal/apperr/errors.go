package apperr

import (
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInvalidEmailFormat Kind = iota + 1
	KindInvalidReferenceValue
	KindNotFound
	KindPersistenceFailure
)

// Error: ошибка, которую можно отдать клиенту: HTTP статус + текст detail.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

// Is сравнивает только Kind, чтобы работал errors.Is(err, apperr.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func (e *Error) Status() int {
	switch e.Kind {
	case KindInvalidEmailFormat, KindInvalidReferenceValue:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Pre-defined sentinels for errors.Is
var (
	ErrInvalidEmailFormat    = &Error{Kind: KindInvalidEmailFormat, Detail: "invalid email format"}
	ErrInvalidReferenceValue = &Error{Kind: KindInvalidReferenceValue, Detail: "invalid reference value"}
	ErrNotFound              = &Error{Kind: KindNotFound, Detail: "not found"}
	ErrPersistenceFailure    = &Error{Kind: KindPersistenceFailure, Detail: "persistence failure"}
)

func InvalidEmailFormat(email string) *Error {
	return &Error{Kind: KindInvalidEmailFormat, Detail: "Invalid email format: " + email}
}

// InvalidReferenceValue: значение справочника не найдено, field вида "service type".
func InvalidReferenceValue(field, value string) *Error {
	return &Error{Kind: KindInvalidReferenceValue, Detail: fmt.Sprintf("Invalid %s: %s", field, value)}
}

func NotFound(detail string) *Error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

func PersistenceFailure(err error) *Error {
	return &Error{Kind: KindPersistenceFailure, Detail: "persistence failure", Err: err}
}
