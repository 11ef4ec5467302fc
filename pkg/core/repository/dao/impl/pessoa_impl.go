package dao

import (
	"fmt"

	"gorm.io/gorm"

	"cadastro-pessoas/pkg/core/model"
	"cadastro-pessoas/pkg/core/repository/dao"
)

type GormPessoaRepository struct {
	*GormRepository[model.Pessoa]
}

var _ dao.PessoaRepository = (*GormPessoaRepository)(nil)

func NewGormPessoaRepository(db *gorm.DB) *GormPessoaRepository {
	return &GormPessoaRepository{GormRepository: NewGormRepository[model.Pessoa](db)}
}

func (r *GormPessoaRepository) Exists(tx *gorm.DB, id int64) (bool, error) {
	var count int64
	err := tx.Model(&model.Pessoa{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: failed to check pessoa", wrapGormError(err))
	}
	return count > 0, nil
}

// Check email usage, optionally ignoring one person (the one being updated)
func (r *GormPessoaRepository) IsEmailExists(tx *gorm.DB, email string, excludeID int64) (bool, error) {
	query := tx.Model(&model.Pessoa{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("%w: failed to check email", wrapGormError(err))
	}
	return count > 0, nil
}

func (r *GormPessoaRepository) FindWithEnderecos(tx *gorm.DB, id int64) (*model.Pessoa, error) {
	var pessoa model.Pessoa
	err := tx.Preload("Enderecos", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	}).First(&pessoa, id).Error
	if err != nil {
		return nil, wrapGormError(err)
	}
	if pessoa.Enderecos == nil {
		pessoa.Enderecos = []model.Endereco{}
	}
	return &pessoa, nil
}

func (r *GormPessoaRepository) UnlinkEnderecos(tx *gorm.DB, id int64) (int64, error) {
	result := tx.Model(&model.Endereco{}).
		Where("id_pessoa = ?", id).
		Update("id_pessoa", nil)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: failed to unlink enderecos", wrapGormError(result.Error))
	}
	return result.RowsAffected, nil
}
