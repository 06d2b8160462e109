package repository

import (
	"context"
	"time"

	"tripdesk/internal/domain"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

type submissionModel struct {
	ID           string     `gorm:"column:id;primaryKey"`
	OwnerID      int64      `gorm:"column:owner_id;index"`
	Kind         string     `gorm:"column:kind"`
	Data         []byte     `gorm:"column:data"`
	Status       string     `gorm:"column:status;index"`
	AdminMessage *string    `gorm:"column:admin_message"`
	DocumentURL  *string    `gorm:"column:document_url"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	DecidedAt    *time.Time `gorm:"column:decided_at"`
}

func (submissionModel) TableName() string { return "submissions" }

func toDomainSubmission(m submissionModel) *domain.Submission {
	var adminMessage, documentURL string
	if m.AdminMessage != nil {
		adminMessage = *m.AdminMessage
	}
	if m.DocumentURL != nil {
		documentURL = *m.DocumentURL
	}

	return &domain.Submission{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		Kind:         domain.SubmissionKind(m.Kind),
		Data:         append([]byte(nil), m.Data...),
		Status:       domain.SubmissionStatus(m.Status),
		AdminMessage: adminMessage,
		DocumentURL:  documentURL,
		CreatedAt:    m.CreatedAt,
		DecidedAt:    m.DecidedAt,
	}
}

func toSubmissionModel(s *domain.Submission) submissionModel {
	var adminMessage, documentURL *string
	if s.AdminMessage != "" {
		v := s.AdminMessage
		adminMessage = &v
	}
	if s.DocumentURL != "" {
		v := s.DocumentURL
		documentURL = &v
	}

	return submissionModel{
		ID:           s.ID,
		OwnerID:      s.OwnerID,
		Kind:         string(s.Kind),
		Data:         append([]byte(nil), s.Data...),
		Status:       string(s.Status),
		AdminMessage: adminMessage,
		DocumentURL:  documentURL,
		CreatedAt:    s.CreatedAt,
		DecidedAt:    s.DecidedAt,
	}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	m := toSubmissionModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSubmission(m)
	return nil
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	var m submissionModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSubmission(m), nil
}

func (r *SubmissionRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Submission, error) {
	var models []submissionModel
	tx := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]*domain.Submission, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainSubmission(m))
	}
	return out, nil
}

// ListByStatus returns newest-first; an empty status means all submissions.
func (r *SubmissionRepository) ListByStatus(ctx context.Context, status domain.SubmissionStatus) ([]*domain.Submission, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", string(status))
	}

	var models []submissionModel
	if tx := q.Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]*domain.Submission, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainSubmission(m))
	}
	return out, nil
}

// Decide moves a pending submission to a terminal status. The conditional
// update makes the first decision win: a second decision matches zero rows
// and reports false.
func (r *SubmissionRepository) Decide(ctx context.Context, id string, status domain.SubmissionStatus, adminMessage string, decidedAt time.Time) (bool, error) {
	updates := map[string]any{
		"status":     string(status),
		"decided_at": decidedAt,
	}
	if adminMessage != "" {
		updates["admin_message"] = adminMessage
	}

	tx := r.db.WithContext(ctx).
		Model(&submissionModel{}).
		Where("id = ? AND status = ?", id, string(domain.SubmissionPending)).
		Updates(updates)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *SubmissionRepository) SetDocumentURL(ctx context.Context, id string, url string) error {
	tx := r.db.WithContext(ctx).
		Model(&submissionModel{}).
		Where("id = ?", id).
		Update("document_url", url)
	return tx.Error
}
