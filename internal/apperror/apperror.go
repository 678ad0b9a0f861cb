package apperror

import "errors"

type Kind string

const (
	NotEnrolled         Kind = "NOT_ENROLLED"
	QuizNotFound        Kind = "QUIZ_NOT_FOUND"
	QuizInactive        Kind = "QUIZ_INACTIVE"
	AlreadyPassed       Kind = "ALREADY_PASSED"
	AttemptNotFound     Kind = "ATTEMPT_NOT_FOUND"
	AttemptNotOwned     Kind = "ATTEMPT_NOT_OWNED"
	AlreadyGraded       Kind = "ALREADY_GRADED"
	TimeLimitExceeded   Kind = "TIME_LIMIT_EXCEEDED"
	QuizNotPassed       Kind = "QUIZ_NOT_PASSED"
	NotEnoughQuestions  Kind = "NOT_ENOUGH_QUESTIONS"
	CourseNotFound      Kind = "COURSE_NOT_FOUND"
	CertificateNotFound Kind = "CERTIFICATE_NOT_FOUND"
	Validation          Kind = "VALIDATION"
	StoreUnavailable    Kind = "STORE_UNAVAILABLE"
)

// FieldError is used to indicate an error with a specific request field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Error is a user-recoverable condition (or a wrapped store failure) raised by a service.
// Two errors match under errors.Is when their kinds are equal.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrNotEnrolled         = &Error{Kind: NotEnrolled, Message: "you are not enrolled in this course"}
	ErrQuizNotFound        = &Error{Kind: QuizNotFound, Message: "quiz not found"}
	ErrQuizInactive        = &Error{Kind: QuizInactive, Message: "this quiz is not available"}
	ErrAlreadyPassed       = &Error{Kind: AlreadyPassed, Message: "you have already passed this quiz"}
	ErrAttemptNotFound     = &Error{Kind: AttemptNotFound, Message: "attempt not found"}
	ErrAttemptNotOwned     = &Error{Kind: AttemptNotOwned, Message: "this attempt belongs to another user"}
	ErrAlreadyGraded       = &Error{Kind: AlreadyGraded, Message: "this attempt has already been graded"}
	ErrTimeLimitExceeded   = &Error{Kind: TimeLimitExceeded, Message: "the time limit for this attempt has expired"}
	ErrQuizNotPassed       = &Error{Kind: QuizNotPassed, Message: "you must pass the course quiz before generating a certificate"}
	ErrNotEnoughQuestions  = &Error{Kind: NotEnoughQuestions, Message: "a quiz needs at least 5 questions to be published"}
	ErrCourseNotFound      = &Error{Kind: CourseNotFound, Message: "course not found"}
	ErrCertificateNotFound = &Error{Kind: CertificateNotFound, Message: "certificate not found"}
	ErrStoreUnavailable    = &Error{Kind: StoreUnavailable, Message: "store unavailable"}
)

// Unavailable wraps a backing-store failure. Errors that already carry a kind pass through.
func Unavailable(err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	return &Error{Kind: StoreUnavailable, Message: ErrStoreUnavailable.Message, cause: err}
}

// Invalid builds a Validation error with per-field messages.
func Invalid(msg string, fields ...FieldError) error {
	return &Error{Kind: Validation, Message: msg, Fields: fields}
}

// KindOf reports the kind carried by err, StoreUnavailable for foreign errors and "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return StoreUnavailable
}

// Recoverable reports whether err is an expected user-facing condition.
func Recoverable(err error) bool {
	k := KindOf(err)
	return k != "" && k != StoreUnavailable
}
