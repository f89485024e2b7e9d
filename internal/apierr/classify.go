package apierr

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Field-level validation sub-codes emitted by the schema classifier.
const (
	FieldCodeMinLength = "VALIDATION_MIN_LENGTH"
	FieldCodeMaxLength = "VALIDATION_MAX_LENGTH"
	FieldCodeInvalid   = "VALIDATION_INVALID"
)

// invalidIDer is the capability a persistence-layer error exposes when an
// operation was given a malformed document id. The field and value come
// from the failing operation's own bookkeeping, not from re-parsing.
type invalidIDer interface {
	InvalidID() (field, value string)
}

// classifier inspects a raw failure and either recognizes its shape,
// returning the normalized error, or declines with nil. Classifiers must
// never panic while probing.
type classifier func(err error) *Error

// classifiers in priority order; Classify takes the first non-nil result.
var classifiers = []classifier{
	classifyMongo,
	classifyValidation,
	classifyToken,
	classifyPassthrough,
}

// Classify normalizes any raw failure into an *Error. It is total: when no
// classifier recognizes the shape, the failure becomes an opaque
// INTERNAL_SERVER_ERROR carrying no internal detail.
func Classify(err error) *Error {
	for _, classify := range classifiers {
		if apiErr := classify(err); apiErr != nil {
			return apiErr
		}
	}
	return New(CodeInternalServerError)
}

// mongoDocumentValidationFailure is the server code for a document that
// violates collection schema validation.
const mongoDocumentValidationFailure = 121

var (
	dupIndexRe = regexp.MustCompile(`index: ([^\s]+?)_\d+ `)
	dupKeyRe   = regexp.MustCompile(`dup key: \{ [^:]+: "?([^"}]*?)"? \}`)
)

// classifyMongo recognizes persistence-driver failures: duplicate unique
// key, schema validation failure, and malformed document ids.
func classifyMongo(err error) *Error {
	var invalidID invalidIDer
	if errors.As(err, &invalidID) {
		field, value := invalidID.InvalidID()
		return New(CodeValidationError).WithMeta(map[string]any{
			"field": field,
			"value": value,
		})
	}

	if mongo.IsDuplicateKeyError(err) {
		field, value := duplicateKeyInfo(err)
		return New(CodeDuplicateField).WithMeta(map[string]any{
			"field": field,
			"value": value,
		})
	}

	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		if writeErr.HasErrorCode(mongoDocumentValidationFailure) {
			return New(CodeValidationError)
		}
	}

	return nil
}

// duplicateKeyInfo extracts the conflicting field and value from a
// duplicate-key write error. The driver only surfaces them inside the
// server message, so this falls back to "field" when the message shape
// is unexpected.
func duplicateKeyInfo(err error) (string, string) {
	field, value := "field", ""

	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, we := range writeErr.WriteErrors {
			if m := dupIndexRe.FindStringSubmatch(we.Message); m != nil {
				field = m[1]
			}
			if m := dupKeyRe.FindStringSubmatch(we.Message); m != nil {
				value = m[1]
			}
		}
		return field, value
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		if m := dupIndexRe.FindStringSubmatch(cmdErr.Message); m != nil {
			field = m[1]
		}
		if m := dupKeyRe.FindStringSubmatch(cmdErr.Message); m != nil {
			value = m[1]
		}
	}
	return field, value
}

// classifyValidation recognizes request-schema validation failures. All
// issues are aggregated into one VALIDATION_ERROR; it never short-circuits
// on the first invalid field.
func classifyValidation(err error) *Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]Field, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, Field{
			Field: fieldPath(fe),
			Code:  fieldCode(fe),
			Meta:  fieldMeta(fe),
		})
	}
	return New(CodeValidationError).WithFields(fields)
}

// fieldPath derives the dot-joined path of the invalid field, dropping the
// root struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		return strings.Join(parts[1:], ".")
	}
	return fe.Field()
}

func fieldCode(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return FieldCodeMinLength
	case "max":
		return FieldCodeMaxLength
	default:
		return FieldCodeInvalid
	}
}

func fieldMeta(fe validator.FieldError) map[string]any {
	switch fe.Tag() {
	case "min":
		return map[string]any{"min": boundParam(fe.Param())}
	case "max":
		return map[string]any{"max": boundParam(fe.Param())}
	default:
		return nil
	}
}

// boundParam converts a numeric validator parameter to an int so the bound
// renders as a number in responses; non-numeric parameters pass through.
func boundParam(param string) any {
	if n, err := strconv.Atoi(param); err == nil {
		return n
	}
	return param
}

// classifyToken recognizes token-verification failures.
func classifyToken(err error) *Error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return New(CodeTokenExpired)
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenNotValidYet),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return New(CodeInvalidToken)
	}
	return nil
}

// classifyPassthrough uses an already-normalized *Error unchanged.
func classifyPassthrough(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}
