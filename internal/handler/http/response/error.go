package response

import (
	"errors"
	"net/http"

	"github.com/albaworks/timeclock-backend-go/internal/domain/auth"
	"github.com/albaworks/timeclock-backend-go/internal/domain/employee"
	"github.com/albaworks/timeclock-backend-go/internal/domain/user"
	"github.com/albaworks/timeclock-backend-go/internal/domain/workrecord"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/session"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrManagerPrivilegeRequired):
		Forbidden(w, "Manager privilege required")

	// Session errors
	case errors.Is(err, session.ErrNoSession):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, session.ErrNotAnEmployee):
		Forbidden(w, "Account is not linked to an employee")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNameExists):
		Conflict(w, "Employee name already exists")

	// Work record domain errors
	case errors.Is(err, workrecord.ErrWorkRecordNotFound):
		NotFound(w, "Work record not found")
	case errors.Is(err, workrecord.ErrShiftAlreadyOpen):
		Conflict(w, "An open shift already exists")
	case errors.Is(err, workrecord.ErrNoOpenShift):
		Conflict(w, "No open shift to clock out of")
	case errors.Is(err, workrecord.ErrInvalidDateRange):
		BadRequest(w, "Range start must not be after range end", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
