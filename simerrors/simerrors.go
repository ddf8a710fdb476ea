// Package simerrors defines the three error kinds a simulator run can fail
// with: InvalidWorkload, InvalidParameters, and IOError. Errors are
// google.golang.org/grpc/status values, the same convention the rest of this
// module's ancestry uses for structured errors even outside an RPC context,
// so callers can recover the kind with status.Code or the Is* helpers below.
package simerrors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	workloadCode   = codes.InvalidArgument
	parametersCode = codes.FailedPrecondition
	ioCode         = codes.Unavailable
)

// InvalidWorkload reports a parse or validation failure in the input rows:
// an unparsable integer, a missing or non-positive BurstTime, or a duplicate
// PID.
func InvalidWorkload(format string, args ...any) error {
	return status.Errorf(workloadCode, format, args...)
}

// InvalidParameters reports an invalid algorithm configuration, such as a
// non-positive RR quantum or an unknown algorithm name.
func InvalidParameters(format string, args ...any) error {
	return status.Errorf(parametersCode, format, args...)
}

// IOError wraps a failure to read the input file or write the result file.
func IOError(err error) error {
	return status.Errorf(ioCode, "%v", err)
}

// IsInvalidWorkload reports whether err (or its gRPC status) is an
// InvalidWorkload error.
func IsInvalidWorkload(err error) bool {
	return err != nil && status.Code(err) == workloadCode
}

// IsInvalidParameters reports whether err (or its gRPC status) is an
// InvalidParameters error.
func IsInvalidParameters(err error) bool {
	return err != nil && status.Code(err) == parametersCode
}

// IsIOError reports whether err (or its gRPC status) is an IOError.
func IsIOError(err error) bool {
	return err != nil && status.Code(err) == ioCode
}

// Diagnostic returns the single-line, stack-trace-free message an error
// should be reported to the user with.
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}
	if s, ok := status.FromError(err); ok {
		return s.Message()
	}
	return fmt.Sprint(err)
}
