package client

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"club-booking/internal/domain/member"
	"club-booking/internal/pkg/config"
	"club-booking/internal/pkg/errs"
)

// LedgerClient triggers the booking purge on the ledger.
type LedgerClient struct {
	baseURL string
	http    *http.Client
}

func NewLedgerClient(cfg config.LedgerConfig) *LedgerClient {
	return &LedgerClient{
		baseURL: cfg.URL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// PurgeFutureBookings succeeds on any 2xx. Only 5xx and transport failures
// are marked unreachable; a 4xx is final.
func (c *LedgerClient) PurgeFutureBookings(ctx context.Context, code member.Code) error {
	endpoint := joinURL(c.baseURL, "/api/bookings/members/"+url.PathEscape(code.String()))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return unreachable(err, "failed to build purge request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return unreachable(err, "booking ledger unreachable")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= 500:
		return unexpectedStatus("booking ledger", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return errs.Newf("booking ledger rejected purge with status %d", resp.StatusCode)
	default:
		return nil
	}
}
