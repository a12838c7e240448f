package repository

import (
	"github.com/tanzeemhub/reports-go/internal/domain/submission"
	"gorm.io/gorm"
)

type CommentRepo interface {
	Create(c *submission.SubmissionComment) error
	FindByID(id uint) (submission.SubmissionComment, error)
	Save(c *submission.SubmissionComment) error
	// ListTopLevel fetches top-level comments newest-first, each with its
	// direct replies oldest-first. Deleted comments are excluded unless
	// includeDeleted is set.
	ListTopLevel(submissionID uint, includeDeleted bool) ([]submission.SubmissionComment, error)
	WithTx(tx *gorm.DB) CommentRepo
}

type DBCommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *DBCommentRepo {
	return &DBCommentRepo{db: db}
}

func (r *DBCommentRepo) Create(c *submission.SubmissionComment) error {
	return r.db.Create(c).Error
}

func (r *DBCommentRepo) FindByID(id uint) (submission.SubmissionComment, error) {
	var c submission.SubmissionComment
	err := r.db.First(&c, id).Error
	return c, err
}

func (r *DBCommentRepo) Save(c *submission.SubmissionComment) error {
	return r.db.Save(c).Error
}

func (r *DBCommentRepo) ListTopLevel(submissionID uint, includeDeleted bool) ([]submission.SubmissionComment, error) {
	var comments []submission.SubmissionComment
	q := r.db.
		Where("submission_id = ? AND parent_id IS NULL", submissionID).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			db = db.Order("created_at asc")
			if !includeDeleted {
				db = db.Where("is_deleted = ?", false)
			}
			return db
		}).
		Order("created_at desc")
	if !includeDeleted {
		q = q.Where("is_deleted = ?", false)
	}
	err := q.Find(&comments).Error
	return comments, err
}

func (r *DBCommentRepo) WithTx(tx *gorm.DB) CommentRepo {
	if tx == nil {
		return r
	}
	return &DBCommentRepo{db: tx}
}
