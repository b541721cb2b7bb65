package server

import (
	"errors"

	"mist-provisioning-be/internal/pkg/serverutils"
	"mist-provisioning-be/internal/repository/contract"
	"mist-provisioning-be/internal/service"
	"mist-provisioning-be/pkg/mist"

	"github.com/gofiber/fiber/v2"
)

// classifyError maps proxy failures onto HTTP statuses and stable error codes.
func classifyError(err error) (serverutils.ClassifiedError, bool) {
	if errors.Is(err, service.ErrContextMissing) {
		return serverutils.ClassifiedError{Status: fiber.StatusBadRequest, ErrorCode: "CONTEXT_MISSING"}, true
	}

	if errors.Is(err, contract.ErrStoreUnavailable) {
		return serverutils.ClassifiedError{Status: fiber.StatusServiceUnavailable, ErrorCode: "STORE_UNAVAILABLE"}, true
	}

	if errors.Is(err, service.ErrProfileNotFound) {
		return serverutils.ClassifiedError{Status: fiber.StatusNotFound, ErrorCode: "NOT_FOUND"}, true
	}

	var upstreamErr *mist.UpstreamError
	if errors.As(err, &upstreamErr) {
		details := map[string]interface{}{"upstream_status": upstreamErr.StatusCode}
		if upstreamErr.Detail != "" {
			details["upstream_detail"] = upstreamErr.Detail
		}
		return serverutils.ClassifiedError{
			Status:    fiber.StatusBadGateway,
			ErrorCode: "UPSTREAM_REJECTED",
			Details:   details,
		}, true
	}

	var transportErr *mist.TransportError
	if errors.As(err, &transportErr) {
		return serverutils.ClassifiedError{Status: fiber.StatusGatewayTimeout, ErrorCode: "UPSTREAM_UNREACHABLE"}, true
	}

	return serverutils.ClassifiedError{}, false
}
