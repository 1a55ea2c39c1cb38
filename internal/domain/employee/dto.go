package employee

import (
	"github.com/karthago-hr/paie-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Matricule    string           `json:"matricule"`
	FullName     string           `json:"full_name"`
	CIN          string           `json:"cin"`
	Phone        string           `json:"phone"`
	Email        string           `json:"email"`
	Department   string           `json:"department"`
	JobPosition  string           `json:"job_position"`
	ContractType string           `json:"contract_type"`
	BaseSalary   *decimal.Decimal `json:"base_salary,omitempty"`
	BiometricID  *int             `json:"biometric_id,omitempty"`
	ShiftID      *string          `json:"shift_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Matricule) {
		errs = append(errs, validator.ValidationError{Field: "matricule", Message: "is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.CIN != "" && !validator.IsValidCIN(r.CIN) {
		errs = append(errs, validator.ValidationError{Field: "cin", Message: "must be 8 digits"})
	}
	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "must be a valid phone number"})
	}
	if !validator.IsInSlice(r.ContractType, []string{"CDI", "CDD", "SIVP"}) {
		errs = append(errs, validator.ValidationError{Field: "contract_type", Message: "must be one of CDI, CDD, SIVP"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string           `json:"-"`
	FullName     *string          `json:"full_name,omitempty"`
	Phone        *string          `json:"phone,omitempty"`
	Email        *string          `json:"email,omitempty"`
	Department   *string          `json:"department,omitempty"`
	JobPosition  *string          `json:"job_position,omitempty"`
	ContractType *string          `json:"contract_type,omitempty"`
	BaseSalary   *decimal.Decimal `json:"base_salary,omitempty"`
	BiometricID  *int             `json:"biometric_id,omitempty"`
	ShiftID      *string          `json:"shift_id,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "must be a valid phone number"})
	}
	if r.ContractType != nil && !validator.IsInSlice(*r.ContractType, []string{"CDI", "CDD", "SIVP"}) {
		errs = append(errs, validator.ValidationError{Field: "contract_type", Message: "must be one of CDI, CDD, SIVP"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string           `json:"id"`
	Matricule    string           `json:"matricule"`
	FullName     string           `json:"full_name"`
	CIN          string           `json:"cin,omitempty"`
	Phone        string           `json:"phone,omitempty"`
	Email        string           `json:"email,omitempty"`
	Department   string           `json:"department,omitempty"`
	JobPosition  string           `json:"job_position,omitempty"`
	ContractType string           `json:"contract_type"`
	BaseSalary   *decimal.Decimal `json:"base_salary,omitempty"`
	BiometricID  *int             `json:"biometric_id,omitempty"`
	ShiftID      *string          `json:"shift_id,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		Matricule:    e.Matricule,
		FullName:     e.FullName,
		CIN:          e.CIN,
		Phone:        e.Phone,
		Email:        e.Email,
		Department:   e.Department,
		JobPosition:  e.JobPosition,
		ContractType: string(e.ContractType),
		BaseSalary:   e.BaseSalary,
		BiometricID:  e.BiometricID,
		ShiftID:      e.ShiftID,
	}
}
