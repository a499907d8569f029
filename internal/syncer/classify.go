package syncer

import (
	"context"
	"errors"
	"io"
	"net"
	"net/url"
	"syscall"

	"github.com/MichalMitros/stock-sync/internal/platform/apiclient"
	"github.com/MichalMitros/stock-sync/internal/platform/models"
	"github.com/MichalMitros/stock-sync/internal/reconciler"
)

// Classify returns failure kind of channel sync error.
func Classify(err error) models.FailureKind {
	if err == nil {
		return models.FailureNone
	}

	switch {
	case errors.Is(err, models.ErrMalformedQuantity):
		return models.FailureMalformedQuantity
	case errors.Is(err, reconciler.ErrMalformedPrice):
		return models.FailureMalformedPrice
	case errors.Is(err, apiclient.ErrBadStatus):
		return models.FailureHTTPStatus
	case isTimeout(err):
		return models.FailureTimeout
	case isConnectionError(err):
		return models.FailureConnection
	default:
		return models.FailureGeneric
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnectionError(err error) bool {
	var (
		opErr  *net.OpError
		dnsErr *net.DNSError
	)

	return errors.As(err, &opErr) ||
		errors.As(err, &dnsErr) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		isDroppedConnection(err)
}

// isDroppedConnection reports whether transport lost connection before response.
// Truncated response bodies read after that are not connection errors.
func isDroppedConnection(err error) bool {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return false
	}

	return errors.Is(urlErr.Err, io.EOF) || errors.Is(urlErr.Err, io.ErrUnexpectedEOF)
}

func failureMessage(kind models.FailureKind) string {
	switch kind {
	case models.FailureTimeout:
		return "marketplace didn't respond in time"
	case models.FailureConnection:
		return "can't connect to marketplace"
	case models.FailureHTTPStatus:
		return "marketplace rejected request"
	case models.FailureMalformedQuantity:
		return "inventory contains malformed quantity"
	case models.FailureMalformedPrice:
		return "inventory contains malformed price"
	default:
		return "channel sync failed"
	}
}
