package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validJob = `{
	"role": "Go Developer",
	"required_skills": ["Go", "Docker"],
	"preferred_skills": ["Kubernetes"],
	"seniority": "mid"
}`

const validResume = `{
	"name": "Jordan Smith",
	"email": "jordan@example.com",
	"skills": ["Go", "Docker"],
	"experience": [
		{
			"title": "Engineer",
			"company": "Acme",
			"duration": "2020 - 2024",
			"description": ["Built services"]
		}
	],
	"raw_text": "Jordan Smith ..."
}`

func requireSchema(t *testing.T, relativePath string) string {
	t.Helper()
	path := ResolveSchemaPath(relativePath)
	require.NotEmpty(t, path, "schema %s not found from test working directory", relativePath)
	return path
}

func TestResolveSchemaPath(t *testing.T) {
	path := ResolveSchemaPath(JobRequirementSchema)
	require.NotEmpty(t, path)
	assert.True(t, filepath.IsAbs(path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestResolveSchemaPath_Missing(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/no_such.schema.json"))
}

func TestValidateBytes_ValidDocuments(t *testing.T) {
	assert.NoError(t, ValidateBytes(requireSchema(t, JobRequirementSchema), []byte(validJob)))
	assert.NoError(t, ValidateBytes(requireSchema(t, ResumeProfileSchema), []byte(validResume)))
}

func TestValidateBytes_MissingRequiredField(t *testing.T) {
	err := ValidateBytes(requireSchema(t, JobRequirementSchema), []byte(`{"role": "Go Developer", "seniority": "mid"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "required_skills")
}

func TestValidateBytes_InvalidEnumValue(t *testing.T) {
	doc := `{"role": "Go Developer", "required_skills": ["Go"], "seniority": "wizard"}`
	err := ValidateBytes(requireSchema(t, JobRequirementSchema), []byte(doc))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "seniority", validationErr.Errors[0].Field)
}

func TestValidateBytes_WrongType(t *testing.T) {
	doc := `{"role": "Go Developer", "required_skills": "Go", "seniority": "mid"}`
	err := ValidateBytes(requireSchema(t, JobRequirementSchema), []byte(doc))
	assert.Error(t, err)
}

func TestValidateBytes_SchemaFileMissing(t *testing.T) {
	err := ValidateBytes(filepath.Join(t.TempDir(), "no_such.schema.json"), []byte(validJob))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestValidateBytes_MalformedDocument(t *testing.T) {
	err := ValidateBytes(requireSchema(t, JobRequirementSchema), []byte(`{"role": `))
	assert.Error(t, err)
}

func TestValidateJSON(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "job.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(validJob), 0o644))

	assert.NoError(t, ValidateJSON(requireSchema(t, JobRequirementSchema), jsonPath))
}

func TestValidateJSON_DocumentMissing(t *testing.T) {
	err := ValidateJSON(requireSchema(t, JobRequirementSchema), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "role", Message: "is required"},
		{Field: "seniority", Message: "must be one of the allowed values"},
	}}
	msg := err.Error()
	assert.Contains(t, msg, "1. role")
	assert.Contains(t, msg, "2. seniority")
}

func TestSchemaLoadError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &SchemaLoadError{Path: "x.json", Message: "load failed", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "x.json")
}
