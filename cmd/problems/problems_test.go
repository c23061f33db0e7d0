package problems

import (
	"bytes"
	"context"
	"testing"

	"github.com/buger/goterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sidkik/leetsync/pkg/errors"
	"github.com/sidkik/leetsync/pkg/leetcode"
	"github.com/sidkik/leetsync/pkg/leetcode/mocks"
)

type noopPauser struct {
	pauses int
}

func (p *noopPauser) Pause(ctx context.Context) error {
	p.pauses++
	return ctx.Err()
}

func TestList(t *testing.T) {
	client := &mocks.Client{}
	client.On("ListProblems", mock.Anything, "algorithms", 0, 2).Return(leetcode.ProblemList{
		Total: 3,
		Problems: []leetcode.ProblemSummary{
			{FrontendID: "1", Title: "Two Sum", TitleSlug: "two-sum", Difficulty: "Easy"},
			{FrontendID: "2", Title: "Add Two Numbers", TitleSlug: "add-two-numbers",
				Difficulty: "Medium"},
		},
	}, nil)
	client.On("ListProblems", mock.Anything, "algorithms", 2, 2).Return(leetcode.ProblemList{
		Total: 3,
		Problems: []leetcode.ProblemSummary{
			{FrontendID: "4", Title: "Median of Two Sorted Arrays",
				TitleSlug: "median-of-two-sorted-arrays", Difficulty: "Hard", PaidOnly: true},
		},
	}, nil)
	client.On("ListProblems", mock.Anything, "algorithms", 3, 2).Return(
		leetcode.ProblemList{Total: 3}, nil)

	var out bytes.Buffer
	pauser := &noopPauser{}
	err := list(context.Background(), &out, client, pauser, "algorithms", 2)
	assert.NoError(t, err)
	client.AssertExpectations(t)
	assert.Equal(t, 3, pauser.pauses)

	assert.Contains(t, out.String(), "two-sum")
	assert.Contains(t, out.String(), goterm.Color("Medium", goterm.YELLOW))
	assert.Contains(t, out.String(), "Median of Two Sorted Arrays (premium)")
	assert.Contains(t, out.String(), "\n3 problems\n")
}

func TestListError(t *testing.T) {
	client := &mocks.Client{}
	client.On("ListProblems", mock.Anything, DefaultCategory, 0, 100).Return(
		leetcode.ProblemList{}, assert.AnError)

	var out bytes.Buffer
	err := list(context.Background(), &out, client, &noopPauser{}, DefaultCategory, 100)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestListRetriesTransientFailures(t *testing.T) {
	client := &mocks.Client{}
	client.On("ListProblems", mock.Anything, DefaultCategory, 0, 100).Return(
		leetcode.ProblemList{}, errors.Transient{Op: "list problems", Err: errors.New("502")}).Once()
	client.On("ListProblems", mock.Anything, DefaultCategory, 0, 100).Return(leetcode.ProblemList{
		Total: 1,
		Problems: []leetcode.ProblemSummary{
			{FrontendID: "1", Title: "Two Sum", TitleSlug: "two-sum", Difficulty: "Easy"},
		},
	}, nil).Once()
	client.On("ListProblems", mock.Anything, DefaultCategory, 1, 100).Return(
		leetcode.ProblemList{Total: 1}, nil).Once()

	var out bytes.Buffer
	pauser := &noopPauser{}
	err := list(context.Background(), &out, client, pauser, DefaultCategory, 100)
	assert.NoError(t, err)
	client.AssertExpectations(t)
	assert.Equal(t, 3, pauser.pauses)
	assert.Contains(t, out.String(), "two-sum")
	assert.Contains(t, out.String(), "\n1 problems\n")
}

func TestDifficultyString(t *testing.T) {
	tests := []struct {
		difficulty string
		exp        string
	}{
		{"Easy", goterm.Color("Easy", goterm.GREEN)},
		{"Medium", goterm.Color("Medium", goterm.YELLOW)},
		{"Hard", goterm.Color("Hard", goterm.RED)},
		{"", ""},
	}

	for _, test := range tests {
		test := test
		t.Run(test.difficulty, func(t *testing.T) {
			assert.Equal(t, test.exp, difficultyString(test.difficulty))
		})
	}
}
