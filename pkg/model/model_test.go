package model

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellmaintained/projgen/internal/errors"
)

func TestNewEnvTable(t *testing.T) {
	tests := []struct {
		name    string
		vars    []EnvVar
		wantErr string
	}{
		{
			name: "keeps order",
			vars: []EnvVar{{"B", "2"}, {"A", "1"}, {"C", "3"}},
		},
		{
			name: "empty table",
		},
		{
			name:    "duplicate name",
			vars:    []EnvVar{{"A", "1"}, {"A", "2"}},
			wantErr: `environment variable "A": duplicate name`,
		},
		{
			name:    "whitespace in name",
			vars:    []EnvVar{{"MY VAR", "1"}},
			wantErr: "invalid name",
		},
		{
			name:    "equals in name",
			vars:    []EnvVar{{"A=B", "1"}},
			wantErr: "invalid name",
		},
		{
			name:    "leading digit",
			vars:    []EnvVar{{"1A", "1"}},
			wantErr: "invalid name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewEnvTable(tt.vars...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, 2, errors.GetExitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.vars), table.Len())
			for i, name := range table.Names() {
				assert.Equal(t, tt.vars[i].Name, name)
			}
		})
	}
}

func TestEnvTableEntriesIsCopy(t *testing.T) {
	table := MustEnvTable(EnvVar{"A", "1"})
	entries := table.Entries()
	entries[0].Value = "changed"

	v, ok := table.Get("A")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestEnvTableNil(t *testing.T) {
	var table *EnvTable
	assert.Equal(t, 0, table.Len())
	assert.Nil(t, table.Entries())
	assert.Empty(t, table.Map())
	_, ok := table.Get("A")
	assert.False(t, ok)
}

func TestMustEnvTablePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustEnvTable(EnvVar{"A", "1"}, EnvVar{"A", "1"})
	})
}

func TestDefault(t *testing.T) {
	m := Default()
	require.NoError(t, m.Validate())

	assert.Equal(t, Metadata{
		Name:        "tai-search-service",
		Version:     "0.1.0",
		ModuleName:  "taisearch",
		AuthorName:  "Jacob Petterle",
		AuthorEmail: "jacobpetterle+aiforu@gmail.com",
		CdkVersion:  "2.1.0",
		VenvDir:     ".venv",
	}, m.Metadata)
	assert.Equal(t, []string{".build*"}, m.GitIgnore)
}

func TestDefaultDependenciesKeepDuplicates(t *testing.T) {
	deps := Default().Dependencies

	require.Len(t, deps.Runtime, 27)
	assert.Equal(t, "pydantic<=1.10.11", deps.Runtime[0])
	assert.Equal(t, "selenium", deps.Runtime[26])
	count := func(list []string, want string) int {
		n := 0
		for _, s := range list {
			if s == want {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 2, count(deps.Runtime, "pymongo"))
	assert.Equal(t, 2, count(deps.Runtime, "aws-lambda-powertools"))

	assert.Equal(t, []string{
		"boto3-stubs[secretsmanager]",
		"boto3-stubs[essential]",
		"aws-lambda-typing",
		"boto3-stubs[essential]",
		"ipykernel",
	}, deps.Dev)
}

func TestDefaultEnvTables(t *testing.T) {
	m := Default()

	assert.Equal(t, []string{
		"PINECONE_DB_API_KEY_SECRET_NAME",
		"PINECONE_DB_ENVIRONMENT",
		"PINECONE_DB_INDEX_NAME",
		"DOC_DB_CREDENTIALS_SECRET_NAME",
		"DOC_DB_USERNAME_SECRET_KEY",
		"DOC_DB_PASSWORD_SECRET_KEY",
		"DOC_DB_FULLY_QUALIFIED_DOMAIN_NAME",
		"DOC_DB_PORT",
		"DOC_DB_DATABASE_NAME",
		"DOC_DB_CLASS_RESOURCE_COLLECTION_NAME",
		"DOC_DB_CLASS_RESOURCE_CHUNK_COLLECTION_NAME",
		"OPENAI_API_KEY_SECRET_NAME",
		"AWS_DEFAULT_REGION",
		"COLD_STORE_BUCKET_NAME",
		"NLTK_DATA",
	}, m.Runtime.Names())
	v, _ := m.Runtime.Get("DOC_DB_FULLY_QUALIFIED_DOMAIN_NAME")
	assert.Equal(t, "tai-service-645860363137.us-east-1.docdb-elastic.amazonaws.com", v)

	assert.Equal(t, []EnvVar{
		{"PINECONE_DB_API_KEY_SECRET_NAME", "dev/tai_service/pinecone_db/api_key"},
		{"OPENAI_API_KEY_SECRET_NAME", "dev/tai_service/openai/api_key"},
		{"PINECONE_DB_ENVIRONMENT", "us-east-1-aws"},
		{"DOC_DB_READ_ONLY_USER_PASSWORD_SECRET_NAME", "dev/tai_service/document_DB/read_ONLY_user_password"},
		{"DOC_DB_READ_WRITE_USER_PASSWORD_SECRET_NAME", "dev/tai_service/document_DB/read_write_user_password"},
		{"DOC_DB_ADMIN_USER_PASSWORD_SECRET_NAME", "dev/tai_service/document_DB/admin_password"},
		{"AWS_DEPLOYMENT_ACCOUNT_ID", "645860363137"},
		{"DEPLOYMENT_TYPE", "dev"},
	}, m.Deployment.Entries())
}

func TestDefaultReturnsFreshModel(t *testing.T) {
	a := Default()
	a.Dependencies.Runtime[0] = "changed"
	b := Default()
	assert.NotEqual(t, "changed", b.Dependencies.Runtime[0])
}

func TestLoadOverridesAndKeepsOrder(t *testing.T) {
	doc := `
metadata:
  name: catalog-search
  module_name: catalog_search
dependencies:
  runtime: [fastapi, fastapi]
runtime_env:
  ZED: last-alphabetically
  ALPHA: "1"
  MIDDLE: two words
`
	m, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "catalog-search", m.Metadata.Name)
	assert.Equal(t, "catalog_search", m.Metadata.ModuleName)
	assert.Equal(t, Default().Metadata.Version, m.Metadata.Version)
	assert.Equal(t, []string{"fastapi", "fastapi"}, m.Dependencies.Runtime)
	assert.Equal(t, []string{"ZED", "ALPHA", "MIDDLE"}, m.Runtime.Names())

	v, _ := m.Runtime.Get("MIDDLE")
	assert.Equal(t, "two words", v)

	// untouched tables keep their defaults
	assert.Equal(t, Default().Deployment.Names(), m.Deployment.Names())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"unknown field", "metadata:\n  nmae: x\n", "invalid model"},
		{"duplicate env name", "runtime_env:\n  A: '1'\n  A: '2'\n", "invalid model"},
		{"invalid env name", "runtime_env:\n  'BAD NAME': x\n", "invalid name"},
		{"env not a mapping", "runtime_env: [A, B]\n", "must be a mapping"},
		{"empty local url", "service:\n  local_url: ''\n", "service.local_url is required"},
		{"empty launch module", "service:\n  launch_module: ''\n", "service.launch_module is required"},
		{"blank gitignore pattern", "gitignore: ['  ']\n", `gitignore pattern "  " is invalid`},
		{"empty name", "metadata:\n  name: ''\n", "metadata.name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, 2, errors.GetExitCode(err))
		})
	}
}

func TestLoadEmptyDocument(t *testing.T) {
	m, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default().Metadata, m.Metadata)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metadata:\n  version: 2.0.0\n"), 0644))

	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", m.Metadata.Version)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, 1, errors.GetExitCode(err))
}

func TestEncodeRoundTripKeepsEnvOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Encode(&buf))
	assert.Contains(t, buf.String(), `AWS_DEPLOYMENT_ACCOUNT_ID: "645860363137"`)

	m, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, Default().Runtime.Names(), m.Runtime.Names())
	assert.Equal(t, Default().Deployment.Map(), m.Deployment.Map())
}
