package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devcamper_backend/internals/features/bootcamps/bootcamp/model"
	helper "devcamper_backend/internals/helpers"
)

func validCreate() CreateBootcampRequest {
	return CreateBootcampRequest{
		Name:        "Devworks Bootcamp",
		Description: "Devworks is a full stack JavaScript Bootcamp",
		Website:     "https://devworks.com",
		Phone:       "(111) 111-1111",
		Email:       "Enroll@Devworks.com",
		Address:     "233 Bay State Rd Boston MA 02215",
		Location:    &model.Location{City: "Boston", State: "MA"},
		Careers:     []string{"Web Development", "UI/UX", "Business"},
		Housing:     true,
	}
}

func TestCreateBootcampRequest_ToModel(t *testing.T) {
	owner := uuid.New()
	b := validCreate().ToModel(owner)

	require.NoError(t, helper.ValidateStruct(b))
	assert.Equal(t, owner, b.UserID)
	assert.Equal(t, "enroll@devworks.com", b.Email)
	assert.Equal(t, model.DefaultPhoto, b.Photo)
	assert.Equal(t, "Boston", b.Location.Data().City)
}

func TestBootcampValidation(t *testing.T) {
	req := validCreate()
	req.Careers = []string{"Basket Weaving"}
	err := helper.ValidateStruct(req.ToModel(uuid.New()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "careers")

	req = validCreate()
	req.Careers = nil
	assert.Error(t, helper.ValidateStruct(req.ToModel(uuid.New())))

	req = validCreate()
	req.Website = "ftp://devworks.com"
	err = helper.ValidateStruct(req.ToModel(uuid.New()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Please use a valid URL with HTTP or HTTPS")

	req = validCreate()
	req.Name = "This name is definitely longer than fifty characters in total"
	err = helper.ValidateStruct(req.ToModel(uuid.New()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name can not be more than 50 characters")
}

func TestUpdateBootcampRequest_Apply(t *testing.T) {
	b := validCreate().ToModel(uuid.New())
	name := "  ModernTech Bootcamp "
	housing := false
	careers := []string{"Data Science"}

	cols := UpdateBootcampRequest{Name: &name, Housing: &housing, Careers: &careers}.Apply(b)
	assert.Equal(t, []string{"name", "careers", "housing"}, cols)
	assert.Equal(t, "ModernTech Bootcamp", b.Name)
	assert.False(t, b.Housing)
	assert.Equal(t, []string{"Data Science"}, []string(b.Careers))

	assert.Empty(t, UpdateBootcampRequest{}.Apply(b))
}
