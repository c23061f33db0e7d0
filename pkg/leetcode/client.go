package leetcode

//go:generate mockery -name Client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sidkik/leetsync/pkg/errors"
	"github.com/sidkik/leetsync/pkg/metrics"
	"github.com/sidkik/leetsync/pkg/version"
)

const (
	// DefaultGraphQLURL is the structured query endpoint.
	DefaultGraphQLURL = "https://leetcode.com/graphql"

	// DefaultAPIURL is the root of the REST API.
	DefaultAPIURL = "https://leetcode.com/api"

	// DefaultTimeout bounds each individual request.
	DefaultTimeout = 5 * time.Second

	referer = "https://leetcode.com"

	// maxErrorBody is how much of an unexpected reply is kept for the error
	// message.
	maxErrorBody = 256
)

// Client is used for reading a user's data from LeetCode. Every method is
// read-only on the remote side.
type Client interface {
	// Authenticate checks that the session is valid, and returns the
	// username it belongs to.
	Authenticate(ctx context.Context) (string, error)

	// ListSubmissions returns a page of the user's submissions across all
	// problems, newest first.
	ListSubmissions(ctx context.Context, cursor string, offset, limit int) (Page, error)

	// ListProblemSubmissions returns a page of the user's accepted
	// submissions for a single problem. The submissions don't include code.
	ListProblemSubmissions(ctx context.Context, titleSlug, cursor string,
		offset, limit int) (Page, error)

	// FetchSubmission returns a single submission, including its code.
	FetchSubmission(ctx context.Context, id int64) (Submission, error)

	// FetchProblem returns the metadata for a problem.
	FetchProblem(ctx context.Context, titleSlug string) (Problem, error)

	// ListProblems returns a page of the problemset.
	ListProblems(ctx context.Context, category string, skip, limit int) (ProblemList, error)
}

// Options configures a Client.
type Options struct {
	GraphQLURL string
	APIURL     string
	Session    string
	CSRFToken  string
	UserAgent  string
	Timeout    time.Duration
}

type httpClient struct {
	opts Options
	http *http.Client
}

// New creates a Client that talks to LeetCode over HTTP. Unset options fall
// back to the public endpoints.
func New(opts Options) Client {
	if opts.GraphQLURL == "" {
		opts.GraphQLURL = DefaultGraphQLURL
	}
	if opts.APIURL == "" {
		opts.APIURL = DefaultAPIURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = version.UserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	return httpClient{
		opts: opts,
		http: &http.Client{Timeout: opts.Timeout},
	}
}

func (c httpClient) Authenticate(ctx context.Context) (string, error) {
	var data struct {
		User *struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	err := c.graphql(ctx, "authenticate", userQuery, nil, &data)
	if err != nil {
		// A 4xx reply or a query error on the session check means the
		// credentials were rejected. Anything else is the remote being
		// unavailable.
		if rejected(err) {
			log.WithError(err).Debug("Session check failed")
			return "", errors.ErrInvalidSession
		}
		return "", err
	}

	if data.User == nil || data.User.Username == "" {
		return "", errors.ErrInvalidSession
	}
	return data.User.Username, nil
}

func (c httpClient) ListSubmissions(ctx context.Context, cursor string,
	offset, limit int) (Page, error) {

	query := url.Values{}
	query.Set("lastkey", cursor)
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))
	endpoint := fmt.Sprintf("%s/submissions/?%s", strings.TrimRight(c.opts.APIURL, "/"),
		query.Encode())

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return Page{}, errors.WithContext(err, "create request")
	}

	var body restSubmissionPage
	if err := c.do(ctx, "list submissions", req, &body); err != nil {
		return Page{}, err
	}

	page := Page{HasNext: body.HasNext, LastKey: body.LastKey}
	for _, s := range body.SubmissionsDump {
		page.Submissions = append(page.Submissions, s.toSubmission())
	}
	return page, nil
}

func (c httpClient) ListProblemSubmissions(ctx context.Context, titleSlug, cursor string,
	offset, limit int) (Page, error) {

	variables := map[string]interface{}{
		"questionSlug": titleSlug,
		"offset":       offset,
		"limit":        limit,
		"status":       statusCodeAccepted,
	}
	// The first page is requested with a null key.
	if cursor != "" {
		variables["lastKey"] = cursor
	}

	var data struct {
		List *struct {
			LastKey     *string         `json:"lastKey"`
			HasNext     bool            `json:"hasNext"`
			Submissions []gqlSubmission `json:"submissions"`
		} `json:"questionSubmissionList"`
	}
	err := c.graphql(ctx, "list problem submissions", questionSubmissionListQuery,
		variables, &data)
	if err != nil {
		return Page{}, err
	}
	if data.List == nil {
		return Page{}, errors.New("no submission list for %q", titleSlug)
	}

	page := Page{HasNext: data.List.HasNext}
	if data.List.LastKey != nil {
		page.LastKey = *data.List.LastKey
	}
	for _, s := range data.List.Submissions {
		page.Submissions = append(page.Submissions, Submission{
			ID:        int64(s.ID),
			Title:     s.Title,
			TitleSlug: s.TitleSlug,
			Status:    s.StatusDisplay,
			Lang:      s.Lang,
			Runtime:   s.Runtime,
			Memory:    s.Memory,
			Timestamp: int64(s.Timestamp),
		})
	}
	return page, nil
}

func (c httpClient) FetchSubmission(ctx context.Context, id int64) (Submission, error) {
	var data struct {
		Details *gqlSubmissionDetails `json:"submissionDetails"`
	}
	err := c.graphql(ctx, "fetch submission", submissionDetailsQuery,
		map[string]interface{}{"submissionId": id}, &data)
	if err != nil {
		return Submission{}, err
	}
	if data.Details == nil {
		return Submission{}, errors.New("submission %d not found", id)
	}

	d := data.Details
	questionID := int(d.Question.QuestionFrontendID)
	if questionID == 0 {
		questionID = int(d.Question.QuestionID)
	}
	status := ""
	if d.StatusCode == statusCodeAccepted {
		status = StatusAccepted
	}
	return Submission{
		ID:         id,
		Title:      d.Question.Title,
		TitleSlug:  d.Question.TitleSlug,
		QuestionID: questionID,
		Status:     status,
		Lang:       d.Lang.Name,
		Code:       d.Code,
		Runtime:    d.RuntimeDisplay,
		Memory:     d.MemoryDisplay,
		Timestamp:  int64(d.Timestamp),
	}, nil
}

func (c httpClient) FetchProblem(ctx context.Context, titleSlug string) (Problem, error) {
	var data struct {
		Question *gqlQuestion `json:"question"`
	}
	err := c.graphql(ctx, "fetch problem", questionInfoQuery,
		map[string]interface{}{"titleSlug": titleSlug}, &data)
	if err != nil {
		return Problem{}, err
	}
	if data.Question == nil {
		return Problem{}, errors.New("problem %q not found", titleSlug)
	}
	return data.Question.toProblem(), nil
}

func (c httpClient) ListProblems(ctx context.Context, category string,
	skip, limit int) (ProblemList, error) {

	variables := map[string]interface{}{
		"categorySlug": category,
		"filters":      map[string]interface{}{},
		"limit":        limit,
		"skip":         skip,
	}

	var data struct {
		List *struct {
			Total     int `json:"total"`
			Questions []struct {
				FrontendID string `json:"frontendQuestionId"`
				Title      string `json:"title"`
				TitleSlug  string `json:"titleSlug"`
				Difficulty string `json:"difficulty"`
				PaidOnly   bool   `json:"paidOnly"`
				Status     string `json:"status"`
			} `json:"questions"`
		} `json:"problemsetQuestionList"`
	}
	err := c.graphql(ctx, "list problems", problemsetQuestionListQuery, variables, &data)
	if err != nil {
		return ProblemList{}, err
	}
	if data.List == nil {
		return ProblemList{}, errors.New("no problemset for category %q", category)
	}

	list := ProblemList{Total: data.List.Total}
	for _, q := range data.List.Questions {
		list.Problems = append(list.Problems, ProblemSummary{
			FrontendID: q.FrontendID,
			Title:      q.Title,
			TitleSlug:  q.TitleSlug,
			Difficulty: q.Difficulty,
			PaidOnly:   q.PaidOnly,
			Status:     q.Status,
		})
	}
	return list, nil
}

// graphql runs `query` and decodes the `data` field of the response into
// `out`.
func (c httpClient) graphql(ctx context.Context, op, query string,
	variables map[string]interface{}, out interface{}) error {

	payload := map[string]interface{}{"query": query}
	if variables != nil {
		payload["variables"] = variables
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return errors.WithContext(err, "create payload")
	}

	req, err := http.NewRequest(http.MethodPost, c.opts.GraphQLURL, bytes.NewReader(payloadBytes))
	if err != nil {
		return errors.WithContext(err, "create request")
	}

	var resp gqlResponse
	if err := c.do(ctx, op, req, &resp); err != nil {
		return err
	}

	if len(resp.Errors) != 0 {
		var msgs []string
		for _, e := range resp.Errors {
			msgs = append(msgs, e.Message)
		}
		metrics.RemoteRequests.WithLabelValues(op, "failed").Inc()
		return errors.QueryError{Op: op, Messages: msgs}
	}

	if err := json.Unmarshal(resp.Data, out); err != nil {
		return c.failed(op, errors.WithContext(err, "decode data"))
	}
	return nil
}

// do sends `req` with the session credentials attached, and decodes the JSON
// body into `out`. Every failure is Transient: the caller decides whether
// it's worth retrying.
func (c httpClient) do(ctx context.Context, op string, req *http.Request, out interface{}) error {
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Referer", referer)
	req.Header.Set("Cookie", fmt.Sprintf("LEETCODE_SESSION=%s;csrftoken=%s",
		c.opts.Session, c.opts.CSRFToken))
	req.Header.Set("x-csrftoken", c.opts.CSRFToken)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return c.failed(op, err)
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return c.failed(op, errors.WithContext(err, "read body"))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.failed(op, statusError{code: resp.StatusCode, body: truncate(body)})
	}

	if err := json.Unmarshal(body, out); err != nil {
		return c.failed(op, errors.WithContext(err, "decode body"))
	}

	metrics.RemoteRequests.WithLabelValues(op, "ok").Inc()
	return nil
}

func (c httpClient) failed(op string, err error) error {
	metrics.RemoteRequests.WithLabelValues(op, "failed").Inc()
	return errors.Transient{Op: op, Err: err}
}

// statusError is a reply with a non-2xx status code.
type statusError struct {
	code int
	body string
}

func (err statusError) Error() string {
	return fmt.Sprintf("server responded with %d %s (%s)",
		err.code, http.StatusText(err.code), err.body)
}

// rejected returns whether the remote refused the request outright, as
// opposed to failing to answer it.
func rejected(err error) bool {
	switch cause := errors.RootCause(err).(type) {
	case errors.QueryError:
		return true
	case errors.Transient:
		statusErr, ok := cause.Err.(statusError)
		return ok && statusErr.code < 500
	}
	return false
}

func truncate(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBody {
		return s[:maxErrorBody] + "..."
	}
	return s
}
