package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	Matricule    string
	FullName     string
	CIN          string
	Phone        string
	Email        string
	Department   string
	JobPosition  string
	ContractType ContractType
	BaseSalary   *decimal.Decimal
	BiometricID  *int
	ShiftID      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

type ContractType string

const (
	ContractTypeCDI  ContractType = "CDI"
	ContractTypeCDD  ContractType = "CDD"
	ContractTypeSIVP ContractType = "SIVP"
)
