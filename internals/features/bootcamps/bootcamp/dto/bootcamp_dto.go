package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"devcamper_backend/internals/features/bootcamps/bootcamp/model"
)

type CreateBootcampRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Website       string          `json:"website"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	Location      *model.Location `json:"location"`
	Careers       []string        `json:"careers"`
	Housing       bool            `json:"housing"`
	JobAssistance bool            `json:"jobAssistance"`
	JobGuarantee  bool            `json:"jobGuarantee"`
	AcceptGi      bool            `json:"acceptGi"`
}

// ToModel builds an unsaved bootcamp owned by userID; validation runs on
// the model.
func (r CreateBootcampRequest) ToModel(userID uuid.UUID) *model.BootcampModel {
	b := &model.BootcampModel{
		Name:          r.Name,
		Description:   r.Description,
		Website:       r.Website,
		Phone:         r.Phone,
		Email:         r.Email,
		Address:       r.Address,
		Careers:       pq.StringArray(r.Careers),
		Housing:       r.Housing,
		JobAssistance: r.JobAssistance,
		JobGuarantee:  r.JobGuarantee,
		AcceptGi:      r.AcceptGi,
		UserID:        userID,
	}
	if r.Location != nil {
		b.Location = datatypes.NewJSONType(*r.Location)
	}
	b.Normalize()
	return b
}

// UpdateBootcampRequest is a partial update; absent fields keep their value.
type UpdateBootcampRequest struct {
	Name          *string         `json:"name"`
	Description   *string         `json:"description"`
	Website       *string         `json:"website"`
	Phone         *string         `json:"phone"`
	Email         *string         `json:"email"`
	Address       *string         `json:"address"`
	Location      *model.Location `json:"location"`
	Careers       *[]string       `json:"careers"`
	Housing       *bool           `json:"housing"`
	JobAssistance *bool           `json:"jobAssistance"`
	JobGuarantee  *bool           `json:"jobGuarantee"`
	AcceptGi      *bool           `json:"acceptGi"`
}

// Apply copies the present fields onto b and returns their columns.
func (r UpdateBootcampRequest) Apply(b *model.BootcampModel) []string {
	var cols []string
	setStr := func(dst *string, v *string, col string) {
		if v != nil {
			*dst = *v
			cols = append(cols, col)
		}
	}
	setBool := func(dst *bool, v *bool, col string) {
		if v != nil {
			*dst = *v
			cols = append(cols, col)
		}
	}

	setStr(&b.Name, r.Name, "name")
	setStr(&b.Description, r.Description, "description")
	setStr(&b.Website, r.Website, "website")
	setStr(&b.Phone, r.Phone, "phone")
	setStr(&b.Email, r.Email, "email")
	setStr(&b.Address, r.Address, "address")
	if r.Location != nil {
		b.Location = datatypes.NewJSONType(*r.Location)
		cols = append(cols, "location")
	}
	if r.Careers != nil {
		b.Careers = pq.StringArray(*r.Careers)
		cols = append(cols, "careers")
	}
	setBool(&b.Housing, r.Housing, "housing")
	setBool(&b.JobAssistance, r.JobAssistance, "job_assistance")
	setBool(&b.JobGuarantee, r.JobGuarantee, "job_guarantee")
	setBool(&b.AcceptGi, r.AcceptGi, "accept_gi")

	b.Normalize()
	return cols
}
