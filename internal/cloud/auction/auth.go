package auction

import (
	"context"
	"net/http"

	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/utils/api"
)

const (
	loginPath        = "/auth/login"
	registerPath     = "/auth/register"
	createAPIKeyPath = "/auth/create-api-key"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createAPIKeyPayload struct {
	Name string `json:"name"`
}

type apiKeyResponse struct {
	Key string `json:"key"`
}

func (c *client) Login(ctx context.Context, email, password string) (session.Session, error) {
	res, err := c.doJSON(ctx, http.MethodPost, loginPath, loginPayload{email, password}, api.RequestOptions{})
	if err != nil {
		return session.Session{}, err
	}

	var sess session.Session
	if err := decodeEnvelope(res, &sess); err != nil {
		return session.Session{}, err
	}
	if sess.Data == nil {
		return session.Session{}, errNoData
	}
	return sess, nil
}

func (c *client) Register(ctx context.Context, req RegisterRequest) (Profile, error) {
	res, err := c.doJSON(ctx, http.MethodPost, registerPath, req, api.RequestOptions{})
	if err != nil {
		return Profile{}, err
	}

	var profile Profile
	if err := decodeData(res, &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

func (c *client) CreateAPIKey(ctx context.Context, accessToken, name string) (string, error) {
	res, err := c.doJSON(ctx, http.MethodPost, createAPIKeyPath, createAPIKeyPayload{name}, api.RequestOptions{
		Header: http.Header{session.HeaderAuthorization: []string{"Bearer " + accessToken}},
	})
	if err != nil {
		return "", err
	}

	var key apiKeyResponse
	if err := decodeData(res, &key); err != nil {
		return "", err
	}
	return key.Key, nil
}
