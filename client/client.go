package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"sitelog/models"
)

// Auth supplies the stored access token for one authenticated call and
// clears persisted session state when authentication is rejected. It is
// passed explicitly at every call site instead of living in a global.
type Auth interface {
	Token() string
	Clear()
}

// TeamsCache keeps the last successfully fetched teams list so team
// selectors keep working when the backend is briefly unreachable.
type TeamsCache interface {
	PutTeams(teams []models.Team)
	CachedTeams() ([]models.Team, bool)
}

// Client translates domain operations into calls against the REST backend.
// All entity payloads cross the snake_case/camelCase boundary in wire.go.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *fasthttp.Client
	cache   TeamsCache
	now     func() time.Time
}

func New(baseURL string, timeout time.Duration, cache TeamsCache) *Client {
	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		http: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		cache: cache,
		now:   time.Now,
	}
}

// do runs one round-trip. auth may be nil for unauthenticated endpoints.
// out may be nil when the response body is irrelevant.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, auth Auth, body interface{}, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return ErrNetwork
	}

	var token string
	if auth != nil {
		token = auth.Token()
		if token == "" {
			return ErrAuthMissing
		}
		// Fail fast on a stale token: no request is sent and the session
		// is dropped so the next page load lands on the login screen.
		if TokenExpired(token, c.now()) {
			auth.Clear()
			return ErrAuthExpired
		}
	}

	uri := c.baseURL + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(uri)
	req.Header.SetMethod(method)
	req.Header.SetContentType("application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		req.SetBody(payload)
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if until := time.Until(deadline); until < timeout {
			timeout = until
		}
	}

	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		logrus.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).WithError(err).Warn("backend unreachable")
		return ErrNetwork
	}

	status := resp.StatusCode()
	switch {
	case status == fasthttp.StatusUnauthorized:
		if auth != nil {
			auth.Clear()
		}
		return ErrAuthFailed
	case status == fasthttp.StatusForbidden:
		return ErrForbidden
	case status < 200 || status > 299:
		detail := struct {
			Detail string `json:"detail"`
		}{}
		if err := json.Unmarshal(resp.Body(), &detail); err != nil || detail.Detail == "" {
			return &APIError{Status: status}
		}
		return &APIError{Status: status, Detail: detail.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// Login exchanges credentials for a token and the normalized user. Storing
// both is the caller's job; a nil user with nil error means the backend
// answered without a usable token.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	var res loginResponse
	err := c.do(ctx, fasthttp.MethodPost, "/auth/login", nil, nil, loginRequest{Email: email, Password: password}, &res)
	if err != nil {
		return nil, "", err
	}
	if res.AccessToken == "" {
		return nil, "", nil
	}
	user := decodeUser(res.User)
	return &user, res.AccessToken, nil
}

func (c *Client) GetUsers(ctx context.Context, auth Auth) ([]models.User, error) {
	var ws []userWire
	if err := c.do(ctx, fasthttp.MethodGet, "/users", nil, auth, nil, &ws); err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(ws))
	for _, w := range ws {
		users = append(users, decodeUser(w))
	}
	return users, nil
}

// GetTeams returns the team list, falling back to the last cached copy when
// the backend cannot be reached. Auth failures still propagate so the
// caller forces a re-login instead of rendering stale data forever.
func (c *Client) GetTeams(ctx context.Context, auth Auth) ([]models.Team, error) {
	var ws []teamWire
	err := c.do(ctx, fasthttp.MethodGet, "/teams", nil, auth, nil, &ws)
	if err != nil {
		if errors.Is(err, ErrAuthExpired) || errors.Is(err, ErrAuthFailed) || errors.Is(err, ErrAuthMissing) {
			return nil, err
		}
		if c.cache != nil {
			if cached, ok := c.cache.CachedTeams(); ok {
				logrus.WithError(err).Warn("teams fetch failed, serving cached list")
				return cached, nil
			}
		}
		logrus.WithError(err).Warn("teams fetch failed, no cache available")
		return []models.Team{}, nil
	}

	teams := make([]models.Team, 0, len(ws))
	for _, w := range ws {
		teams = append(teams, decodeTeam(w))
	}
	if c.cache != nil {
		c.cache.PutTeams(teams)
	}
	return teams, nil
}

func (c *Client) GetWorkers(ctx context.Context, auth Auth, teamID string) ([]models.Worker, error) {
	query := url.Values{}
	if teamID != "" {
		query.Set("team_id", teamID)
	}
	var ws []workerWire
	if err := c.do(ctx, fasthttp.MethodGet, "/workers", query, auth, nil, &ws); err != nil {
		return nil, err
	}
	workers := make([]models.Worker, 0, len(ws))
	for _, w := range ws {
		workers = append(workers, decodeWorker(w))
	}
	return workers, nil
}

func (c *Client) AddWorker(ctx context.Context, auth Auth, worker models.Worker) (models.Worker, error) {
	var w workerWire
	payload := workerCreateWire{Name: worker.Name, TeamID: worker.TeamID}
	if err := c.do(ctx, fasthttp.MethodPost, "/workers", nil, auth, payload, &w); err != nil {
		return models.Worker{}, err
	}
	return decodeWorker(w), nil
}

func (c *Client) DeleteWorker(ctx context.Context, auth Auth, id string) error {
	return c.do(ctx, fasthttp.MethodDelete, "/workers/"+url.PathEscape(id), nil, auth, nil, nil)
}

func (c *Client) GetWorkRecords(ctx context.Context, auth Auth, teamID string) ([]models.WorkRecord, error) {
	return c.workRecords(ctx, auth, teamID, "")
}

func (c *Client) GetWorkRecordsByDate(ctx context.Context, auth Auth, date, teamID string) ([]models.WorkRecord, error) {
	return c.workRecords(ctx, auth, teamID, date)
}

func (c *Client) workRecords(ctx context.Context, auth Auth, teamID, date string) ([]models.WorkRecord, error) {
	query := url.Values{}
	if teamID != "" {
		query.Set("team_id", teamID)
	}
	if date != "" {
		query.Set("work_date", date)
	}
	var ws []workRecordWire
	if err := c.do(ctx, fasthttp.MethodGet, "/work-records", query, auth, nil, &ws); err != nil {
		return nil, err
	}
	return decodeWorkRecords(ws), nil
}

func (c *Client) AddWorkRecord(ctx context.Context, auth Auth, record models.WorkRecord) (models.WorkRecord, error) {
	var w workRecordWire
	if err := c.do(ctx, fasthttp.MethodPost, "/work-records", nil, auth, encodeNewWorkRecord(record), &w); err != nil {
		return models.WorkRecord{}, err
	}
	return decodeWorkRecord(w), nil
}

func (c *Client) UpdateWorkRecord(ctx context.Context, auth Auth, id string, update WorkRecordUpdate) (models.WorkRecord, error) {
	var w workRecordWire
	if err := c.do(ctx, fasthttp.MethodPut, "/work-records/"+url.PathEscape(id), nil, auth, update.payload(), &w); err != nil {
		return models.WorkRecord{}, err
	}
	return decodeWorkRecord(w), nil
}

func (c *Client) DeleteWorkRecord(ctx context.Context, auth Auth, id string) error {
	return c.do(ctx, fasthttp.MethodDelete, "/work-records/"+url.PathEscape(id), nil, auth, nil, nil)
}

func (c *Client) GetEquipmentRecords(ctx context.Context, auth Auth, teamID string) ([]models.EquipmentRecord, error) {
	return c.equipmentRecords(ctx, auth, teamID, "")
}

func (c *Client) GetEquipmentRecordsByDate(ctx context.Context, auth Auth, date, teamID string) ([]models.EquipmentRecord, error) {
	return c.equipmentRecords(ctx, auth, teamID, date)
}

func (c *Client) equipmentRecords(ctx context.Context, auth Auth, teamID, date string) ([]models.EquipmentRecord, error) {
	query := url.Values{}
	if teamID != "" {
		query.Set("team_id", teamID)
	}
	if date != "" {
		query.Set("work_date", date)
	}
	var ws []equipmentRecordWire
	if err := c.do(ctx, fasthttp.MethodGet, "/equipment-records", query, auth, nil, &ws); err != nil {
		return nil, err
	}
	return decodeEquipmentRecords(ws), nil
}

func (c *Client) AddEquipmentRecord(ctx context.Context, auth Auth, record models.EquipmentRecord) (models.EquipmentRecord, error) {
	var w equipmentRecordWire
	if err := c.do(ctx, fasthttp.MethodPost, "/equipment-records", nil, auth, encodeNewEquipmentRecord(record), &w); err != nil {
		return models.EquipmentRecord{}, err
	}
	return decodeEquipmentRecord(w), nil
}

func (c *Client) UpdateEquipmentRecord(ctx context.Context, auth Auth, id string, update EquipmentRecordUpdate) (models.EquipmentRecord, error) {
	var w equipmentRecordWire
	if err := c.do(ctx, fasthttp.MethodPut, "/equipment-records/"+url.PathEscape(id), nil, auth, update.payload(), &w); err != nil {
		return models.EquipmentRecord{}, err
	}
	return decodeEquipmentRecord(w), nil
}

func (c *Client) DeleteEquipmentRecord(ctx context.Context, auth Auth, id string) error {
	return c.do(ctx, fasthttp.MethodDelete, "/equipment-records/"+url.PathEscape(id), nil, auth, nil, nil)
}

// GetLastWorkRecords returns every work record dated on the team's most
// recent recorded day. An empty history yields an empty slice.
func (c *Client) GetLastWorkRecords(ctx context.Context, auth Auth, teamID string) ([]models.WorkRecord, error) {
	records, err := c.GetWorkRecords(ctx, auth, teamID)
	if err != nil {
		return nil, err
	}
	lastDate := ""
	for _, r := range records {
		if r.WorkDate > lastDate {
			lastDate = r.WorkDate
		}
	}
	if lastDate == "" {
		return []models.WorkRecord{}, nil
	}
	out := make([]models.WorkRecord, 0, len(records))
	for _, r := range records {
		if r.WorkDate == lastDate {
			out = append(out, r)
		}
	}
	return out, nil
}

// GetLastEquipmentRecords is the equipment counterpart of
// GetLastWorkRecords.
func (c *Client) GetLastEquipmentRecords(ctx context.Context, auth Auth, teamID string) ([]models.EquipmentRecord, error) {
	records, err := c.GetEquipmentRecords(ctx, auth, teamID)
	if err != nil {
		return nil, err
	}
	lastDate := ""
	for _, r := range records {
		if r.WorkDate > lastDate {
			lastDate = r.WorkDate
		}
	}
	if lastDate == "" {
		return []models.EquipmentRecord{}, nil
	}
	out := make([]models.EquipmentRecord, 0, len(records))
	for _, r := range records {
		if r.WorkDate == lastDate {
			out = append(out, r)
		}
	}
	return out, nil
}
