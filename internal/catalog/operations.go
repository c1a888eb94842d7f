// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

const allQuestionsDocument = `
query allQuestions {
	allQuestions: allQuestionsRaw {
		questionId
		title
		titleSlug
		difficulty
		isPaidOnly
	}
}`

const questionListDocument = `
query problemsetQuestionList($categorySlug: String, $limit: Int, $skip: Int, $filters: QuestionListFilterInput) {
	problemsetQuestionList: questionList(
		categorySlug: $categorySlug
		limit: $limit
		skip: $skip
		filters: $filters
	) {
		questions: data {
			title
			titleSlug
			difficulty
			questionId
			frontendQuestionId: questionFrontendId
			isPaidOnly
		}
	}
}`

// operation is a parsed GraphQL document with a single named operation.
type operation struct {
	name     string
	document string
}

var (
	allQuestionsOp = mustOperation(allQuestionsDocument)
	questionListOp = mustOperation(questionListDocument)
)

// parseOperation parses doc and returns its only operation. Documents with
// zero, several, or anonymous operations are rejected.
func parseOperation(doc string) (operation, error) {
	qd, err := parser.ParseQuery(&ast.Source{Name: "catalog", Input: doc})
	if err != nil {
		return operation{}, fmt.Errorf("parse graphql document: %w", err)
	}
	if len(qd.Operations) != 1 {
		return operation{}, fmt.Errorf("expected one operation, got %d", len(qd.Operations))
	}
	op := qd.Operations[0]
	if op.Name == "" {
		return operation{}, fmt.Errorf("operation must be named")
	}
	return operation{name: op.Name, document: doc}, nil
}

func mustOperation(doc string) operation {
	op, err := parseOperation(doc)
	if err != nil {
		panic(err)
	}
	return op
}
