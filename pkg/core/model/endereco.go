package model

// Endereco is an address, optionally linked to a Pessoa through IDPessoa.
type Endereco struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	Logradouro *string `gorm:"type:varchar(120)"`
	Numero     *int    `gorm:"type:int"`
	Estado     *string `gorm:"type:char(2)"`
	Cidade     *string `gorm:"type:varchar(120)"`
	Bairro     *string `gorm:"type:varchar(120)"`
	IDPessoa   *int64  `gorm:"column:id_pessoa;index"`
}

func (Endereco) TableName() string {
	return "endereco"
}
