package dao

import (
	"gorm.io/gorm"

	"cadastro-pessoas/pkg/core/model"
)

// PessoaRepository adds the person lookups used by validation hooks.
type PessoaRepository interface {
	Repository[model.Pessoa]

	// Exists reports whether a person with id exists.
	Exists(tx *gorm.DB, id int64) (bool, error)
	// IsEmailExists reports whether email is used by a person other than excludeID.
	// A zero excludeID excludes nobody.
	IsEmailExists(tx *gorm.DB, email string, excludeID int64) (bool, error)
	// FindWithEnderecos loads a person together with its addresses.
	FindWithEnderecos(tx *gorm.DB, id int64) (*model.Pessoa, error)
	// UnlinkEnderecos clears id_pessoa on every address of the person.
	UnlinkEnderecos(tx *gorm.DB, id int64) (int64, error)
}
