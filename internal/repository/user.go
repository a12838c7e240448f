package repository

import (
	"github.com/tanzeemhub/reports-go/internal/domain/org"
	"github.com/tanzeemhub/reports-go/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(id uint) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	SaveUser(u *user.User) error
	ListUsersPaging(page, limit int) ([]user.User, int64, error)
	// ListEligibleSubmitters returns the muqam-level members a template
	// collects reports from, optionally narrowed to a scope.
	ListEligibleSubmitters(scope org.Scope) ([]user.User, error)
	// ListSubmittersWithoutSubmission returns eligible members who have no
	// submitted/approved submission against the template.
	ListSubmittersWithoutSubmission(templateID uint) ([]user.User, error)
	CountEligibleSubmitters() (int64, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	return u, err
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) ListUsersPaging(page, limit int) ([]user.User, int64, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}

	var total int64
	if err := r.db.Model(&user.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []user.User
	err := r.db.Offset((page - 1) * limit).Limit(limit).Order("id").Find(&users).Error
	return users, total, err
}

func (r *DBUserRepo) ListEligibleSubmitters(scope org.Scope) ([]user.User, error) {
	var users []user.User
	q := r.db.Model(&user.User{}).Where("level = ?", org.LevelMuqam)
	err := scope.Apply(q).Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListSubmittersWithoutSubmission(templateID uint) ([]user.User, error) {
	var users []user.User
	err := r.db.
		Where("level = ?", org.LevelMuqam).
		Where(`id NOT IN (
			SELECT user_id FROM report_submissions
			WHERE template_id = ? AND status IN ('submitted', 'approved')
		)`, templateID).
		Find(&users).Error
	return users, err
}

func (r *DBUserRepo) CountEligibleSubmitters() (int64, error) {
	var count int64
	err := r.db.Model(&user.User{}).Where("level = ?", org.LevelMuqam).Count(&count).Error
	return count, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}
