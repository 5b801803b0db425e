// Package client is the HTTP api client the form controller talks through.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/crisvega/userhub/internal/domain/user"
)

// Variant selects which resource path the client talks to.
type Variant string

const (
	// VariantPlain is /users: light pre-checks only, the server trusts the body.
	VariantPlain Variant = "/users"
	// VariantSchema is /users-zod: the server runs the full rule set and
	// reports violations as {errors: [{path, message}]}.
	VariantSchema Variant = "/users-zod"
)

type Client struct {
	baseURL string
	path    string
	http    *http.Client
}

// New builds a client for the given server and variant. No request timeout
// is set; callers bound slow requests through ctx if they want a bound.
func New(baseURL string, variant Variant) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		path:    string(variant),
		http:    &http.Client{},
	}
}

type listResponse struct {
	Users   []user.User `json:"users"`
	Message string      `json:"message"`
}

// mutationResponse is the discriminated payload of every write: exactly one
// of the success keys, or an errors list.
type mutationResponse struct {
	UserRegistered *user.User        `json:"userRegistered"`
	UserUpdated    *user.User        `json:"userUpdated"`
	UserDeleted    *user.User        `json:"userDeleted"`
	Errors         []user.FieldError `json:"errors"`
	Message        string            `json:"message"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) ListUsers(ctx context.Context) ([]user.User, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.path, nil)

	if err != nil {
		return nil, "", err
	}

	resp, err := c.http.Do(req)

	if err != nil {
		return nil, "", err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, "", err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", apiError(resp.StatusCode, body)
	}

	var out listResponse

	if err := json.Unmarshal(body, &out); err != nil {
		return nil, "", err
	}

	return out.Users, out.Message, nil
}

// CreateUser posts a draft. Field errors come back as a value, not an error:
// the caller attaches them to the form and keeps editing.
func (c *Client) CreateUser(ctx context.Context, draft user.User) (user.User, []user.FieldError, error) {
	out, err := c.mutate(ctx, http.MethodPost, c.baseURL+c.path, draft)

	if err != nil {
		return user.User{}, nil, err
	}

	if len(out.Errors) > 0 {
		return user.User{}, out.Errors, nil
	}

	if out.UserRegistered == nil {
		return user.User{}, nil, fmt.Errorf("malformed response: no userRegistered")
	}

	return *out.UserRegistered, nil, nil
}

func (c *Client) UpdateUser(ctx context.Context, draft user.User) (user.User, []user.FieldError, error) {
	out, err := c.mutate(ctx, http.MethodPut, c.baseURL+c.path, draft)

	if err != nil {
		return user.User{}, nil, err
	}

	if len(out.Errors) > 0 {
		return user.User{}, out.Errors, nil
	}

	if out.UserUpdated == nil {
		return user.User{}, nil, fmt.Errorf("malformed response: no userUpdated")
	}

	return *out.UserUpdated, nil, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int) (user.User, error) {
	url := c.baseURL + c.path + "?id=" + strconv.Itoa(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)

	if err != nil {
		return user.User{}, err
	}

	resp, err := c.http.Do(req)

	if err != nil {
		return user.User{}, err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return user.User{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return user.User{}, apiError(resp.StatusCode, body)
	}

	var out mutationResponse

	if err := json.Unmarshal(body, &out); err != nil {
		return user.User{}, err
	}

	if out.UserDeleted == nil {
		return user.User{}, fmt.Errorf("malformed response: no userDeleted")
	}

	return *out.UserDeleted, nil
}

func (c *Client) mutate(ctx context.Context, method, url string, draft user.User) (mutationResponse, error) {
	payload, err := json.Marshal(draft)

	if err != nil {
		return mutationResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))

	if err != nil {
		return mutationResponse{}, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)

	if err != nil {
		return mutationResponse{}, err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return mutationResponse{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return mutationResponse{}, apiError(resp.StatusCode, body)
	}

	var out mutationResponse

	if err := json.Unmarshal(body, &out); err != nil {
		return mutationResponse{}, err
	}

	return out, nil
}

func apiError(status int, body []byte) error {
	var parsed errorResponse

	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		if parsed.Error.Code == "not_found" {
			return fmt.Errorf("%s: %w", parsed.Error.Message, user.ErrNotFound)
		}

		return fmt.Errorf("api error (%d): %s", status, parsed.Error.Message)
	}

	return fmt.Errorf("api error (%d)", status)
}
