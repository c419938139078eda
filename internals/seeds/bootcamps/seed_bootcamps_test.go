package bootcamps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devcamper_backend/internals/features/bootcamps/bootcamp/model"
)

func TestLoad_SampleData(t *testing.T) {
	d, err := Load(".")
	require.NoError(t, err)
	require.NoError(t, d.Validate())

	require.Len(t, d.Bootcamps, 2)
	assert.Equal(t, "devworks-bootcamp", d.Bootcamps[0].Slug)
	assert.Equal(t, model.DefaultPhoto, d.Bootcamps[0].Photo)
	assert.Equal(t, "Boston", d.Bootcamps[0].Location.Data().City)
	assert.Equal(t, "advanced", d.Courses[3].MinimumSkill)
}

func writeSet(t *testing.T, bootcamps, courses, reviews string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range map[string]string{
		"data_bootcamps.json": bootcamps,
		"data_courses.json":   courses,
		"data_reviews.json":   reviews,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

const oneBootcamp = `[{"id":"7a1c2e3f-1b2d-4e5f-8a9b-000000000001","name":"Devworks","description":"d","email":"a@b.com","address":"x","careers":["Business"],"user":"5d7a514b-5d2c-4c6d-8e1b-0a6f1c2b3d02"}]`

func TestValidate_DanglingCourse(t *testing.T) {
	dir := writeSet(t, oneBootcamp,
		`[{"id":"8b2d3f40-2c3e-4f60-9bac-000000000001","title":"t","description":"d","weeks":"4","tuition":1,"minimumSkill":"beginner","bootcampId":"7a1c2e3f-1b2d-4e5f-8a9b-00000000ffff"}]`,
		`[]`)
	d, err := Load(dir)
	require.NoError(t, err)
	assert.ErrorContains(t, d.Validate(), "unknown bootcamp")
}

func TestValidate_DuplicateReview(t *testing.T) {
	review := `{"title":"t","text":"x","rating":5,"courseId":"8b2d3f40-2c3e-4f60-9bac-000000000001","user":"5d7a514b-5d2c-4c6d-8e1b-0a6f1c2b3d04"}`
	dir := writeSet(t, oneBootcamp,
		`[{"id":"8b2d3f40-2c3e-4f60-9bac-000000000001","title":"t","description":"d","weeks":"4","tuition":1,"minimumSkill":"beginner","bootcampId":"7a1c2e3f-1b2d-4e5f-8a9b-000000000001"}]`,
		`[`+review+`,`+review+`]`)
	d, err := Load(dir)
	require.NoError(t, err)
	assert.ErrorContains(t, d.Validate(), "twice")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}
