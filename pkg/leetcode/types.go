package leetcode

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// StatusAccepted is the display status of a submission that passed all tests.
const StatusAccepted = "Accepted"

// Submission is a single judged submission.
type Submission struct {
	ID         int64
	Title      string
	TitleSlug  string
	QuestionID int
	Status     string
	Lang       string
	Code       string
	Runtime    string
	Memory     string

	// Timestamp is in seconds since the epoch. Listings return submissions
	// newest first.
	Timestamp int64
}

// Accepted returns whether the submission passed.
func (s Submission) Accepted() bool {
	return s.Status == StatusAccepted
}

// Page is one page of a paginated submission listing.
type Page struct {
	Submissions []Submission
	HasNext     bool

	// LastKey is the opaque cursor to pass back to fetch the next page.
	LastKey string
}

// TopicTag is a topic a problem is labelled with.
type TopicTag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Problem is the metadata for a single problem.
type Problem struct {
	QuestionID int
	Title      string
	TitleSlug  string
	Difficulty string
	Content    string
	Hints      []string
	TopicTags  []TopicTag
}

// ProblemSummary is an entry in the problemset listing.
type ProblemSummary struct {
	FrontendID string
	Title      string
	TitleSlug  string
	Difficulty string
	PaidOnly   bool
	Status     string
}

// ProblemList is one page of the problemset listing.
type ProblemList struct {
	Total    int
	Problems []ProblemSummary
}

// flexInt decodes integers that the API sometimes sends as JSON strings.
type flexInt int64

func (i *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*i = 0
		return nil
	}

	parsed, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	*i = flexInt(parsed)
	return nil
}

// restSubmission is the shape of an entry in `submissions_dump`.
type restSubmission struct {
	ID            flexInt `json:"id"`
	Title         string  `json:"title"`
	TitleSlug     string  `json:"title_slug"`
	QuestionID    flexInt `json:"question_id"`
	StatusDisplay string  `json:"status_display"`
	Lang          string  `json:"lang"`
	Code          string  `json:"code"`
	Runtime       string  `json:"runtime"`
	Memory        string  `json:"memory"`
	Timestamp     flexInt `json:"timestamp"`
}

func (s restSubmission) toSubmission() Submission {
	return Submission{
		ID:         int64(s.ID),
		Title:      s.Title,
		TitleSlug:  s.TitleSlug,
		QuestionID: int(s.QuestionID),
		Status:     s.StatusDisplay,
		Lang:       s.Lang,
		Code:       s.Code,
		Runtime:    s.Runtime,
		Memory:     s.Memory,
		Timestamp:  int64(s.Timestamp),
	}
}

type restSubmissionPage struct {
	SubmissionsDump []restSubmission `json:"submissions_dump"`
	HasNext         bool             `json:"has_next"`
	LastKey         string           `json:"last_key"`
}

type gqlQuestion struct {
	QuestionID         flexInt    `json:"questionId"`
	QuestionFrontendID flexInt    `json:"questionFrontendId"`
	Title              string     `json:"title"`
	TitleSlug          string     `json:"titleSlug"`
	Difficulty         string     `json:"difficulty"`
	Content            string     `json:"content"`
	Hints              []string   `json:"hints"`
	TopicTags          []TopicTag `json:"topicTags"`
}

func (q gqlQuestion) toProblem() Problem {
	id := int(q.QuestionFrontendID)
	if id == 0 {
		id = int(q.QuestionID)
	}
	return Problem{
		QuestionID: id,
		Title:      q.Title,
		TitleSlug:  q.TitleSlug,
		Difficulty: q.Difficulty,
		Content:    q.Content,
		Hints:      q.Hints,
		TopicTags:  q.TopicTags,
	}
}

type gqlSubmission struct {
	ID            flexInt `json:"id"`
	Title         string  `json:"title"`
	TitleSlug     string  `json:"titleSlug"`
	StatusDisplay string  `json:"statusDisplay"`
	Lang          string  `json:"lang"`
	Runtime       string  `json:"runtime"`
	Memory        string  `json:"memory"`
	Timestamp     flexInt `json:"timestamp"`
}

type gqlSubmissionDetails struct {
	RuntimeDisplay string  `json:"runtimeDisplay"`
	MemoryDisplay  string  `json:"memoryDisplay"`
	Code           string  `json:"code"`
	Timestamp      flexInt `json:"timestamp"`
	StatusCode     int     `json:"statusCode"`
	Lang           struct {
		Name string `json:"name"`
	} `json:"lang"`
	Question struct {
		QuestionID         flexInt `json:"questionId"`
		QuestionFrontendID flexInt `json:"questionFrontendId"`
		Title              string  `json:"title"`
		TitleSlug          string  `json:"titleSlug"`
	} `json:"question"`
}

// statusCodeAccepted is the numeric status the GraphQL API uses for
// accepted submissions.
const statusCodeAccepted = 10

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}
