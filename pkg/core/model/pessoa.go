package model

// Pessoa is a registered person. Email is optional but unique when set.
type Pessoa struct {
	ID    int64   `gorm:"primaryKey;autoIncrement"`
	Nome  string  `gorm:"type:varchar(120);not null"`
	Idade *int    `gorm:"type:int"`
	Email *string `gorm:"type:varchar(120);uniqueIndex:idx_pessoa_email"`

	// Addresses are unlinked, not removed, when the person goes away.
	Enderecos []Endereco `gorm:"foreignKey:IDPessoa;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// TableName 定义映射表名
func (Pessoa) TableName() string {
	return "pessoa"
}
