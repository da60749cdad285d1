package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestValidateDocument_Valid(t *testing.T) {
	assert.NoError(t, ValidateDocument(readTestdata(t, "valid_document.json")))
}

func TestValidateDocument_Invalid(t *testing.T) {
	err := ValidateDocument(readTestdata(t, "invalid_document.json"))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))

	fields := make([]string, 0, len(validationErr.Errors))
	for _, fe := range validationErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "personalInfo")
	assert.Contains(t, fields, "projects.0.status")
	assert.Contains(t, fields, "projects.0.githubUrl")
	assert.Contains(t, fields, "skills.tools")
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateDocument_MissingPersonalInfo(t *testing.T) {
	err := ValidateDocument([]byte(`{"about": "hi"}`))
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidateDocument_NotJSON(t *testing.T) {
	err := ValidateDocument([]byte(`{"personalInfo": `))
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestValidateDocument_NullOptionals(t *testing.T) {
	doc := `{
		"personalInfo": {"name": "Jane", "title": "Eng", "email": "j@x.io", "website": "", "github": null},
		"experience": null,
		"projects": [{"title": "P", "status": null, "demoUrl": "HTTPS://demo.example"}]
	}`
	assert.NoError(t, ValidateDocument([]byte(doc)))
}

func TestValidateBytes_UnknownSchema(t *testing.T) {
	err := ValidateBytes("nope.schema.json", []byte(`{}`))
	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "nope.schema.json", loadErr.Path)
}

func TestValidateBytes_Violations(t *testing.T) {
	assert.NoError(t, ValidateBytes("violations.schema.json",
		[]byte(`{"violations": [{"type": "link_count", "severity": "error", "details": "x", "page": 2}]}`)))
	assert.Error(t, ValidateBytes("violations.schema.json",
		[]byte(`{"violations": [{"type": "made_up", "severity": "error", "details": "x"}]}`)))
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name": "Go"}`))

	err := ValidateJSONString(schema, `{"name": 1}`)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "name", validationErr.Errors[0].Field)

	err = ValidateJSONString(`{"type": 12}`, `{}`)
	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}
