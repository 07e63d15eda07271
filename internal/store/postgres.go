package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/camillamora/study-ai-companion-2026/internal/models"
)

// Postgres is the persistent Store. It holds the same per-user collections
// as Memory; questions travel as JSONB because the pipeline only ever reads
// an exam's questions back as a whole.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) CreateUser(user models.User) error {
	_, err := p.db.Exec(
		`INSERT INTO users (id, username, email, password, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.Email, user.Password, user.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (p *Postgres) UserByUsername(username string) (models.User, error) {
	var user models.User
	err := p.db.QueryRow(
		`SELECT id, username, COALESCE(email, ''), password, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.Username, &user.Email, &user.Password, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("select user: %w", err)
	}
	return user, nil
}

func (p *Postgres) AppendExam(userID string, rec models.ExamRecord) error {
	questions, err := json.Marshal(rec.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}

	_, err = p.db.Exec(
		`INSERT INTO exam_records (user_id, exam_id, exam_type, questions, total_questions, total_points, score, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		userID, rec.ExamID, rec.Type, questions, rec.TotalQuestions, rec.TotalPoints, rec.Score, rec.Status, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert exam record: %w", err)
	}
	return nil
}

func (p *Postgres) ExamsByUser(userID string) ([]models.ExamRecord, error) {
	rows, err := p.db.Query(
		`SELECT exam_id, exam_type, questions, total_questions, total_points, score, status, created_at
		 FROM exam_records WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select exam records: %w", err)
	}
	defer rows.Close()

	var recs []models.ExamRecord
	for rows.Next() {
		rec, err := scanExamRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (p *Postgres) FindExam(userID, examID string) (models.ExamRecord, bool, error) {
	row := p.db.QueryRow(
		`SELECT exam_id, exam_type, questions, total_questions, total_points, score, status, created_at
		 FROM exam_records WHERE user_id = $1 AND exam_id = $2 ORDER BY id LIMIT 1`,
		userID, examID,
	)

	rec, err := scanExamRecord(row)
	if err == sql.ErrNoRows {
		return models.ExamRecord{}, false, nil
	}
	if err != nil {
		return models.ExamRecord{}, false, err
	}
	return rec, true, nil
}

func (p *Postgres) AppendMaterial(userID string, m models.StudyMaterial) error {
	_, err := p.db.Exec(
		`INSERT INTO study_materials (user_id, material_id, material_type, topic, content, text_length, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		userID, m.ID, m.Type, m.Topic, m.Content, m.Length, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert study material: %w", err)
	}
	return nil
}

func (p *Postgres) MaterialsByUser(userID string) ([]models.StudyMaterial, error) {
	rows, err := p.db.Query(
		`SELECT material_id, material_type, topic, content, text_length, created_at
		 FROM study_materials WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select study materials: %w", err)
	}
	defer rows.Close()

	var mats []models.StudyMaterial
	for rows.Next() {
		var m models.StudyMaterial
		if err := rows.Scan(&m.ID, &m.Type, &m.Topic, &m.Content, &m.Length, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan study material: %w", err)
		}
		mats = append(mats, m)
	}
	return mats, rows.Err()
}

func (p *Postgres) MaterialByID(userID, materialID string) (models.StudyMaterial, bool, error) {
	var m models.StudyMaterial
	err := p.db.QueryRow(
		`SELECT material_id, material_type, topic, content, text_length, created_at
		 FROM study_materials WHERE user_id = $1 AND material_id = $2`,
		userID, materialID,
	).Scan(&m.ID, &m.Type, &m.Topic, &m.Content, &m.Length, &m.CreatedAt)

	if err == sql.ErrNoRows {
		return models.StudyMaterial{}, false, nil
	}
	if err != nil {
		return models.StudyMaterial{}, false, fmt.Errorf("select study material: %w", err)
	}
	return m, true, nil
}

func (p *Postgres) AppendFlashcards(userID string, cards []models.Flashcard) error {
	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, card := range cards {
		_, err := tx.Exec(
			`INSERT INTO flashcards (user_id, card_id, front, back, category, difficulty, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			userID, card.ID, card.Front, card.Back, card.Category, card.Difficulty, card.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert flashcard: %w", err)
		}
	}
	return tx.Commit()
}

func (p *Postgres) FlashcardsByUser(userID string) ([]models.Flashcard, error) {
	rows, err := p.db.Query(
		`SELECT card_id, front, back, category, difficulty, created_at
		 FROM flashcards WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select flashcards: %w", err)
	}
	defer rows.Close()

	var cards []models.Flashcard
	for rows.Next() {
		var card models.Flashcard
		if err := rows.Scan(&card.ID, &card.Front, &card.Back, &card.Category, &card.Difficulty, &card.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan flashcard: %w", err)
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

func (p *Postgres) DeleteMaterial(userID, id string) error {
	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	statements := []string{
		`DELETE FROM study_materials WHERE user_id = $1 AND material_id = $2`,
		`DELETE FROM flashcards WHERE user_id = $1 AND card_id = $2`,
		`DELETE FROM exam_records WHERE user_id = $1 AND exam_id = $2`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(stmt, userID, id); err != nil {
			return fmt.Errorf("cascade delete: %w", err)
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExamRecord(row rowScanner) (models.ExamRecord, error) {
	var rec models.ExamRecord
	var questions []byte

	err := row.Scan(&rec.ExamID, &rec.Type, &questions, &rec.TotalQuestions, &rec.TotalPoints, &rec.Score, &rec.Status, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return models.ExamRecord{}, err
	}
	if err != nil {
		return models.ExamRecord{}, fmt.Errorf("scan exam record: %w", err)
	}

	if len(questions) > 0 {
		if err := json.Unmarshal(questions, &rec.Questions); err != nil {
			return models.ExamRecord{}, fmt.Errorf("unmarshal questions: %w", err)
		}
	}
	return rec, nil
}
