package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	sharedConfig "helpdesk/internal/shared/config"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// InviteClient sends user invitations through the identity provider's
// REST invitation endpoint.
type InviteClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
	logger   logger.Interface
}

func NewInviteClient(cfg sharedConfig.IdentityConfig, logger logger.Interface) *InviteClient {
	return &InviteClient{
		endpoint: cfg.InviteEndpoint,
		apiKey:   cfg.APIKey,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

// Configured reports whether the provider invitation API is usable.
func (c *InviteClient) Configured() bool {
	return c.endpoint != "" && c.apiKey != ""
}

type inviteRequest struct {
	EmailAddress   string            `json:"email_address"`
	PublicMetadata map[string]string `json:"public_metadata,omitempty"`
}

func (c *InviteClient) SendInvite(ctx context.Context, email, roleHint string) error {
	body := inviteRequest{EmailAddress: email}
	if roleHint != "" {
		body.PublicMetadata = map[string]string{"role": roleHint}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return apperrors.NewInternalError("failed to encode invitation", err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return apperrors.NewInternalError("failed to build invitation request", err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Errorw("invitation request failed", "error", err, "email", email)
		return apperrors.NewUpstreamError("identity provider unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Errorw("invitation rejected by identity provider",
			"status", resp.StatusCode, "body", string(snippet), "email", email)
		return apperrors.NewUpstreamError(fmt.Sprintf("identity provider returned status %d", resp.StatusCode))
	}

	return nil
}
