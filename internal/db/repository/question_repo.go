package repository

import (
	"context"
	"database/sql"
	"strings"
)

const (
	questionColumns = `id, question, answer, category, difficulty`

	listQuestionsQuery = `SELECT ` + questionColumns + ` FROM questions ORDER BY id`

	listQuestionsByCategoryQuery = `SELECT ` + questionColumns + ` FROM questions WHERE category = $1 ORDER BY id`

	searchQuestionsQuery = `SELECT ` + questionColumns + ` FROM questions
WHERE question ILIKE '%' || $1 || '%' ESCAPE '\'
ORDER BY id`

	insertQuestionQuery = `INSERT INTO questions (question, answer, category, difficulty)
VALUES ($1, $2, $3, $4)
RETURNING ` + questionColumns

	deleteQuestionQuery = `DELETE FROM questions WHERE id = $1`

	randomQuestionQuery = `SELECT ` + questionColumns + ` FROM questions
WHERE id <> ALL($1)
ORDER BY random()
LIMIT 1`

	randomQuestionInCategoryQuery = `SELECT ` + questionColumns + ` FROM questions
WHERE category = $1 AND id <> ALL($2)
ORDER BY random()
LIMIT 1`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QuestionRepository wraps SQL access to the questions table.
type QuestionRepository struct {
	db DBTX
}

// NewQuestionRepository wraps a database handle for question queries.
func NewQuestionRepository(db DBTX) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// List returns every question ordered by ascending id.
func (r *QuestionRepository) List(ctx context.Context) ([]Question, error) {
	return r.query(ctx, listQuestionsQuery)
}

// ListByCategory returns the questions of one category ordered by id.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int64) ([]Question, error) {
	return r.query(ctx, listQuestionsByCategoryQuery, categoryID)
}

// Search matches term as a case-insensitive literal substring of the question text.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]Question, error) {
	return r.query(ctx, searchQuestionsQuery, likeEscaper.Replace(term))
}

// Insert stores a new question and returns the persisted row.
func (r *QuestionRepository) Insert(ctx context.Context, params InsertQuestionParams) (Question, error) {
	row := r.db.QueryRowContext(ctx, insertQuestionQuery,
		params.Question, params.Answer, params.Category, params.Difficulty)
	return scanQuestion(row)
}

// Delete removes a question by id. It returns sql.ErrNoRows when nothing matched.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteQuestionQuery, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Random picks one question uniformly at random, skipping the ids in exclude.
// A categoryID of zero means any category. sql.ErrNoRows signals an exhausted pool.
func (r *QuestionRepository) Random(ctx context.Context, categoryID int64, exclude []int64) (Question, error) {
	if exclude == nil {
		// a NULL array would make "<> ALL" unknown for every row
		exclude = []int64{}
	}
	var row *sql.Row
	if categoryID == 0 {
		row = r.db.QueryRowContext(ctx, randomQuestionQuery, exclude)
	} else {
		row = r.db.QueryRowContext(ctx, randomQuestionInCategoryQuery, categoryID, exclude)
	}
	return scanQuestion(row)
}

func (r *QuestionRepository) query(ctx context.Context, query string, args ...any) ([]Question, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return questions, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuestion(s scanner) (Question, error) {
	var q Question
	err := s.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	return q, err
}
