package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"club-booking/internal/domain/member"
	"club-booking/internal/pkg/config"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/pkg/metrics"
)

// MembershipClient asks the registry whether a member exists.
type MembershipClient struct {
	baseURL string
	http    *http.Client
}

func NewMembershipClient(cfg config.MembershipConfig) *MembershipClient {
	return &MembershipClient{
		baseURL: cfg.URL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// Exists trusts only a decoded answer from the registry's exists endpoint.
// Timeouts, transport failures and any other response, a 404 from a wrong
// base URL included, are reported as an unreachable registry.
func (c *MembershipClient) Exists(ctx context.Context, code member.Code) (bool, error) {
	ok, err := c.exists(ctx, code)
	switch {
	case err != nil:
		metrics.RecordMembershipCheck("unreachable")
	case ok:
		metrics.RecordMembershipCheck("found")
	default:
		metrics.RecordMembershipCheck("not_found")
	}
	return ok, err
}

type existsResponse struct {
	Exists *bool `json:"exists"`
}

func (c *MembershipClient) exists(ctx context.Context, code member.Code) (bool, error) {
	endpoint := joinURL(c.baseURL, "/api/members/"+url.PathEscape(code.String())+"/exists")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, unreachable(err, "failed to build membership request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, unreachable(err, "membership registry unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, unexpectedStatus("membership registry", resp.StatusCode)
	}

	var body existsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, unreachable(err, "membership registry sent an unreadable answer")
	}
	if body.Exists == nil {
		return false, unreachable(errs.New("exists field missing"), "membership registry sent an unreadable answer")
	}
	return *body.Exists, nil
}
