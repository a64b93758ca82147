package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellmaintained/projgen/pkg/model"
)

func TestEnvFileRender(t *testing.T) {
	f, err := NewEnvFile(New(t.TempDir()), ".env")
	require.NoError(t, err)

	require.NoError(t, f.Add("ZED", "last"))
	require.NoError(t, f.Add("ALPHA", "two words"))
	require.NoError(t, f.AddTable(model.MustEnvTable(model.EnvVar{Name: "FROM_TABLE", Value: "x"})))

	data, err := f.Render()
	require.NoError(t, err)
	assert.Equal(t, "# "+GeneratedNotice+"\n"+
		"ZED=\"last\"\n"+
		"ALPHA=\"two words\"\n"+
		"FROM_TABLE=\"x\"\n", string(data))
}

func TestEnvFileAddValidation(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"duplicate", "EXISTING", "2", `env file "EXISTING": duplicate variable`},
		{"whitespace in name", "MY VAR", "1", "invalid variable name"},
		{"equals in name", "A=B", "1", "invalid variable name"},
		{"empty name", "", "1", "invalid variable name"},
		{"newline in value", "MULTI", "a\nb", "value contains a newline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewEnvFile(New(t.TempDir()), ".env")
			require.NoError(t, err)
			require.NoError(t, f.Add("EXISTING", "1"))

			err = f.Add(tt.key, tt.value)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
